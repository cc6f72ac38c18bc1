package db

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
)

// User is the login record of an employee.
type User struct {
	EmployeeID   int        `json:"employee_id"`
	PasswordHash string     `json:"-" db:"password_hash"` // Never serialize to JSON
	Active       bool       `json:"active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// GetUserByEmployeeID retrieves the login record of an employee.
// Returns ErrNotFound when the employee has no account.
func (db *DB) GetUserByEmployeeID(ctx context.Context, employeeID int) (*User, error) {
	if !validKey(employeeID) {
		return nil, ErrNotFound
	}
	var u User
	err := db.pool.QueryRow(ctx,
		`SELECT employee_id, password_hash, active, last_login_at, created_at
		 FROM users WHERE employee_id = $1`,
		employeeID,
	).Scan(&u.EmployeeID, &u.PasswordHash, &u.Active, &u.LastLoginAt, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user %d: %w", employeeID, err)
	}
	return &u, nil
}

// CreateUser creates an active login for an employee.
func (db *DB) CreateUser(ctx context.Context, employeeID int, passwordHash string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO users (employee_id, password_hash, active) VALUES ($1, $2, TRUE)`,
		employeeID, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// TouchLogin records a successful login.
func (db *DB) TouchLogin(ctx context.Context, employeeID int) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE users SET last_login_at = NOW() WHERE employee_id = $1`,
		employeeID,
	)
	if err != nil {
		return fmt.Errorf("failed to record login: %w", err)
	}
	return nil
}

// DeleteUser removes an employee's login.
func (db *DB) DeleteUser(ctx context.Context, employeeID int) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM users WHERE employee_id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
