package db

import (
	"context"
	_ "embed"
	"fmt"
)

// Schema is the idempotent DDL for every table, view and function the
// repositories read or write.
//
//go:embed schema.sql
var Schema string

// ApplySchema executes Schema. It is safe to run against an existing database.
func (db *DB) ApplySchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
