// Command smoke_matching is a manual end-to-end check of the matching service
// against a real database. It seeds a few rows in a reserved ID range, runs
// the read and write paths, and removes the rows again.
//
// Usage:
//
//	go run ./cmd/tools/smoke_matching
//
// Requires DATABASE_URL environment variable to be set.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/priority-matching/internal/access"
	"github.com/jonathan/priority-matching/internal/db"
	"github.com/jonathan/priority-matching/internal/matching"
	"github.com/jonathan/priority-matching/internal/types"
)

const (
	smokeManager   = 990001
	smokeCandidate = 990002
	smokeOrder     = 990101
	smokeRowA      = 990201
	smokeRowB      = 990202
)

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "FAIL: "+format+"\n", args...)
	os.Exit(1)
}

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "ERROR: DATABASE_URL environment variable not set")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		fail("connect: %v", err)
	}
	defer pool.Close()

	database, err := db.Connect(ctx, dsn)
	if err != nil {
		fail("connect: %v", err)
	}
	defer database.Close()

	fmt.Println("=== Priority Matching Smoke Test ===")
	fmt.Println()

	cleanup := func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM service_orders WHERE service_order_id = $1`, smokeOrder)
		_, _ = pool.Exec(context.Background(), `DELETE FROM employees WHERE employee_id IN ($1, $2)`, smokeManager, smokeCandidate)
	}
	cleanup()
	defer cleanup()

	fmt.Println("Step 1: Seeding rows...")
	seed := []struct {
		sql  string
		args []any
	}{
		{`INSERT INTO employees (employee_id, first_name, last_name) VALUES ($1, 'Smoke', 'Manager'), ($2, 'Smoke', 'Candidate')`,
			[]any{smokeManager, smokeCandidate}},
		{`INSERT INTO service_orders (service_order_id, account_name, hiring_manager, so_state) VALUES ($1, 'Smoke Account', $2, 'Open')`,
			[]any{smokeOrder, smokeManager}},
		{`INSERT INTO priority_matching_list (matching_list_id, service_order_id, employee_id, priority, matching_index_score)
		  VALUES ($1, $3, $4, 2, 70), ($2, $3, $4, 1, 90)`,
			[]any{smokeRowA, smokeRowB, smokeOrder, smokeCandidate}},
	}
	for _, s := range seed {
		if _, err := pool.Exec(ctx, s.sql, s.args...); err != nil {
			fail("seed: %v", err)
		}
	}

	svc := matching.NewService(database, access.NewPolicy([]int{smokeManager}, nil))

	fmt.Println("Step 2: Listing owned service orders...")
	orders, err := svc.ListOwnedByManager(ctx, smokeManager)
	if err != nil {
		fail("ListOwnedByManager: %v", err)
	}
	if len(orders) != 1 || orders[0].HiringManagerName != "Smoke Manager" {
		fail("unexpected orders: %+v", orders)
	}
	fmt.Printf("  ✓ %d order, manager %q, assigned %q\n", len(orders), orders[0].HiringManagerName, orders[0].AssignedResourceName)

	fmt.Println("Step 3: Reading the priority list...")
	list, err := svc.PriorityList(ctx, smokeOrder, smokeManager)
	if err != nil {
		fail("PriorityList: %v", err)
	}
	if len(list.Candidates) != 2 || list.Candidates[0].MatchingListID != smokeRowB {
		fail("unexpected candidate order: %+v", list.Candidates)
	}
	fmt.Printf("  ✓ %d candidates, first is row %d\n", len(list.Candidates), list.Candidates[0].MatchingListID)

	fmt.Println("Step 4: Applying willingness...")
	result, err := svc.ApplyUpdates(ctx, smokeCandidate, []types.WillingnessUpdate{
		{MatchingListID: smokeRowA, IsWilling: true},
		{MatchingListID: smokeRowB, IsWilling: false},
		{MatchingListID: 1, IsWilling: true},
	})
	if err != nil {
		fail("ApplyUpdates: %v", err)
	}
	if result.UpdatedCount != 2 {
		fail("expected 2 updated rows, got %d", result.UpdatedCount)
	}
	fmt.Printf("  ✓ %s\n", result.Summary())

	fmt.Println()
	fmt.Println("=== All Checks Passed ===")
}
