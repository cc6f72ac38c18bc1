// Command apply_schema creates or updates the tables, views and functions the
// service reads and writes.
//
// Usage:
//
//	go run ./cmd/tools/apply_schema
//
// Requires DATABASE_URL environment variable to be set.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/priority-matching/internal/config"
	"github.com/jonathan/priority-matching/internal/db"
)

func main() {
	if _, err := config.LoadEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: %v\n", err)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "ERROR: DATABASE_URL environment variable not set")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	database, err := db.Connect(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	fmt.Println("=== Applying Schema ===")
	if err := database.ApplySchema(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	// Report what exists now so operators can confirm the view and guard function.
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: Failed to open inspection pool: %v\n", err)
		return
	}
	defer pool.Close()

	rows, err := pool.Query(ctx, `
		SELECT table_name, table_type
		FROM information_schema.tables
		WHERE table_schema = current_schema()
		  AND table_name IN ('employees', 'service_orders', 'priority_matching_list',
		                     'users', 'interview_schedule_redirects',
		                     'vw_interview_schedule_redirect_required')
		ORDER BY table_name
	`)
	if err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: Failed to list tables: %v\n", err)
		return
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var name, kind string
		if err := rows.Scan(&name, &kind); err != nil {
			continue
		}
		fmt.Printf("  ✓ %s (%s)\n", name, kind)
		count++
	}

	fmt.Println()
	fmt.Printf("=== Schema Applied (%d relations) ===\n", count)
}
