package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/priority-matching/internal/config"
	"github.com/jonathan/priority-matching/internal/db"
	"github.com/jonathan/priority-matching/internal/observability"
	"github.com/jonathan/priority-matching/internal/types"
)

// UserStore is the subset of the database the login flow needs.
type UserStore interface {
	GetUserByEmployeeID(ctx context.Context, employeeID int) (*db.User, error)
	TouchLogin(ctx context.Context, employeeID int) error
	GetEmployee(ctx context.Context, employeeID int) (*types.Employee, error)
}

var _ UserStore = (*db.DB)(nil)

// UserService authenticates employees against their login records.
type UserService struct {
	db             UserStore
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(store UserStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		db:             store,
		passwordConfig: passwordConfig,
	}
}

// Authenticated is the result of a successful login.
type Authenticated struct {
	EmployeeID int
	Name       string
}

// Login checks the password of an active account. Unknown employees and wrong
// passwords produce the same error.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*Authenticated, error) {
	user, err := s.db.GetUserByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, &ErrInvalidCredentials{}
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !s.passwordConfig.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}
	if !user.Active {
		return nil, &ErrAccountInactive{EmployeeID: user.EmployeeID}
	}

	log := observability.FromContext(ctx).WithField("employee_id", user.EmployeeID)
	if err := s.db.TouchLogin(ctx, user.EmployeeID); err != nil {
		log.WithError(err).Warn("failed to record login time")
	}

	name := fmt.Sprintf("Employee %d", user.EmployeeID)
	emp, err := s.db.GetEmployee(ctx, user.EmployeeID)
	switch {
	case err == nil:
		if full := emp.FullName(); full != "" {
			name = full
		}
	case !errors.Is(err, db.ErrNotFound):
		log.WithError(err).Warn("failed to load employee name")
	}

	log.Info("employee logged in")
	return &Authenticated{EmployeeID: user.EmployeeID, Name: name}, nil
}
