// Package middleware provides HTTP middleware for caller identity.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jonathan/priority-matching/internal/observability"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// employeeIDKey is the context key for the authenticated employee ID.
const employeeIDKey ContextKey = "employeeID"

// TokenValidator validates a bearer token.
// This allows the middleware to work with any JWT service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (EmployeeIDGetter, error)
}

// EmployeeIDGetter extracts the employee ID from token claims.
type EmployeeIDGetter interface {
	GetEmployeeID() int
}

// AuthMiddleware validates the bearer token and stores the caller's employee
// ID in the request context. Tokens without a positive employee ID are rejected.
func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := validator.ValidateToken(tokenString)
			if err != nil {
				observability.FromContext(r.Context()).WithError(err).Debug("rejected bearer token")
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			employeeID := claims.GetEmployeeID()
			if employeeID <= 0 {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := WithEmployeeID(r.Context(), employeeID)
			ctx = observability.WithLogger(ctx, observability.FromContext(ctx).WithField("employee_id", employeeID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken parses an Authorization header. The scheme is case-insensitive.
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// WithEmployeeID stores the caller's employee ID in ctx.
func WithEmployeeID(ctx context.Context, employeeID int) context.Context {
	return context.WithValue(ctx, employeeIDKey, employeeID)
}

// GetEmployeeID extracts the authenticated employee ID from the request context.
func GetEmployeeID(r *http.Request) (int, error) {
	employeeID, ok := r.Context().Value(employeeIDKey).(int)
	if !ok {
		return 0, fmt.Errorf("employee ID not found in request context")
	}
	return employeeID, nil
}
