package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/priority-matching/internal/matching"
	"github.com/jonathan/priority-matching/internal/schemas"
)

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid employee ID or password"
}

// ErrAccountInactive indicates the login exists but is disabled
type ErrAccountInactive struct {
	EmployeeID int
}

func (e *ErrAccountInactive) Error() string {
	return "your account is inactive, please contact an administrator"
}

// ErrForbidden indicates the caller may not use the endpoint
type ErrForbidden struct{}

func (e *ErrForbidden) Error() string {
	return "forbidden"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		invalidCredentials *ErrInvalidCredentials
		inactive           *ErrAccountInactive
		forbidden          *ErrForbidden
		validation         *ErrValidation
		schemaViolation    *schemas.ValidationError
	)
	switch {
	case errors.As(err, &invalidCredentials), errors.Is(err, matching.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.As(err, &inactive), errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.Is(err, matching.ErrServiceOrderNotFound), errors.Is(err, matching.ErrEmployeeNotFound):
		return http.StatusNotFound
	case errors.As(err, &validation), errors.As(err, &schemaViolation), errors.Is(err, matching.ErrInvalidBatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
