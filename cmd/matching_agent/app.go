package main

import (
	"context"
	"fmt"

	"github.com/jonathan/priority-matching/internal/access"
	"github.com/jonathan/priority-matching/internal/db"
	"github.com/jonathan/priority-matching/internal/matching"
	"github.com/jonathan/priority-matching/internal/observability"
)

// app bundles the database and the service built on it. Callers must Close it.
type app struct {
	db      *db.DB
	service *matching.Service
}

func openApp(ctx context.Context) (*app, error) {
	if err := cfg.RequireDatabase(); err != nil {
		return nil, err
	}
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	policy := access.NewPolicy(cfg.ServiceOrderViewerIDs, cfg.AdminEmployeeIDs)
	return &app{
		db:      database,
		service: matching.NewService(database, policy),
	}, nil
}

func (a *app) Close() {
	a.db.Close()
}

// commandContext attaches the CLI logger to ctx.
func commandContext(ctx context.Context, command string) context.Context {
	return observability.WithLogger(ctx, logger.WithField("command", command))
}
