package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/priority-matching/internal/matching"
	"github.com/jonathan/priority-matching/internal/schemas"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "invalid credentials", err: &ErrInvalidCredentials{}, expected: http.StatusUnauthorized},
		{name: "unauthenticated", err: matching.ErrUnauthenticated, expected: http.StatusUnauthorized},
		{name: "inactive", err: &ErrAccountInactive{EmployeeID: 5}, expected: http.StatusForbidden},
		{name: "forbidden", err: &ErrForbidden{}, expected: http.StatusForbidden},
		{name: "order not found", err: matching.ErrServiceOrderNotFound, expected: http.StatusNotFound},
		{name: "employee not found", err: fmt.Errorf("lookup: %w", matching.ErrEmployeeNotFound), expected: http.StatusNotFound},
		{name: "invalid batch", err: fmt.Errorf("%w: empty", matching.ErrInvalidBatch), expected: http.StatusBadRequest},
		{name: "validation", err: &ErrValidation{Field: "id", Message: "must be a number"}, expected: http.StatusBadRequest},
		{name: "schema", err: &schemas.ValidationError{}, expected: http.StatusBadRequest},
		{name: "other", err: errors.New("connection reset"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "validation error: id - must be a number", (&ErrValidation{Field: "id", Message: "must be a number"}).Error())
	assert.Contains(t, (&ErrAccountInactive{}).Error(), "inactive")
	assert.Equal(t, "invalid employee ID or password", (&ErrInvalidCredentials{}).Error())
}
