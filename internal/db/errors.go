package db

import (
	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when a single-row lookup matches nothing.
	ErrNotFound = errors.New("record not found")
)

// SQLSTATE codes raised when a store-side trigger or constraint refuses a
// statement shape rather than the data itself.
var storeRejectionCodes = map[string]struct{}{
	"P0001": {}, // raise_exception
	"09000": {}, // triggered_action_exception
	"27000": {}, // triggered_data_change_violation
	"0A000": {}, // feature_not_supported
}

// IsStoreRejection reports whether err is the store refusing the write path
// (typically a trigger), as opposed to a connectivity or data error.
func IsStoreRejection(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	_, ok := storeRejectionCodes[pgErr.Code]
	return ok
}
