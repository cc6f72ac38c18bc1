//go:build integration

package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Fixture IDs live in a high range so the tests can share a database.
const (
	fxManager   = 910001
	fxOther     = 910002
	fxCandidate = 910003
	fxOrderA    = 920001
	fxOrderB    = 920002
	fxOrderC    = 920003
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := Connect(ctx, dbURL)
	if err != nil {
		t.Skipf("Skipping integration test: failed to connect to DB: %v", err)
	}
	require.NoError(t, db.ApplySchema(ctx))

	cleanupFixtures(t, db)
	t.Cleanup(func() {
		cleanupFixtures(t, db)
		db.Close()
	})
	return db
}

func cleanupFixtures(t *testing.T, db *DB) {
	t.Helper()
	ctx := context.Background()
	_, err := db.pool.Exec(ctx,
		`DELETE FROM service_orders WHERE service_order_id BETWEEN 920000 AND 929999`)
	require.NoError(t, err)
	_, err = db.pool.Exec(ctx,
		`DELETE FROM employees WHERE employee_id BETWEEN 910000 AND 919999`)
	require.NoError(t, err)
	_, err = db.pool.Exec(ctx,
		`DELETE FROM users WHERE employee_id BETWEEN 910000 AND 919999`)
	require.NoError(t, err)
}

func exec(t *testing.T, db *DB, sql string, args ...any) {
	t.Helper()
	_, err := db.pool.Exec(context.Background(), sql, args...)
	require.NoError(t, err)
}

// seedFixtures creates a manager owning orders A and B, another manager owning
// C, and a candidate with matching rows across all three.
func seedFixtures(t *testing.T, db *DB) {
	t.Helper()

	exec(t, db, `INSERT INTO employees (employee_id, first_name, last_name, supervisor_id, email, grade, location)
		VALUES ($1, 'Maya', 'Manager', NULL, 'maya@example.com', 'E5', 'Chennai'),
		       ($2, 'Omar', 'Other', $1, 'omar@example.com', 'E4', 'Pune'),
		       ($3, 'Cara', 'Candidate', $1, 'cara@example.com', 'E2', 'Chennai')`,
		fxManager, fxOther, fxCandidate)

	exec(t, db, `INSERT INTO service_orders (service_order_id, account_name, location, cca_role, hiring_manager, required_from, so_state, assigned_to_resource, grade)
		VALUES ($1, 'Acme', 'Chennai', 'Developer', $4, '2026-01-15', 'Open', NULL, 'E2'),
		       ($2, 'Globex', 'Pune', 'Tester', $4, NULL, 'Open', $5, 'E3'),
		       ($3, 'Initech', 'Delhi', 'Analyst', $6, NULL, 'Open', NULL, 'E2')`,
		fxOrderA, fxOrderB, fxOrderC, fxManager, fxCandidate, fxOther)
}
