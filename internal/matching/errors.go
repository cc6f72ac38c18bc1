package matching

import "github.com/go-faster/errors"

var (
	// ErrUnauthenticated is returned when the caller has no valid employee identity.
	ErrUnauthenticated = errors.New("caller is not authenticated")
	// ErrServiceOrderNotFound covers both a missing order and one the caller does not own.
	ErrServiceOrderNotFound = errors.New("service order not found")
	// ErrEmployeeNotFound is returned when an employee record is missing.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrInvalidBatch is returned for a structurally invalid willingness batch.
	ErrInvalidBatch = errors.New("invalid willingness batch")
)
