package db

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/priority-matching/internal/types"
)

// serviceOrderColumns is the fixed projection used by every service order
// read. Hiring manager and assigned resource come back as bare integers.
const serviceOrderColumns = `service_order_id, account_name, location, cca_role, hiring_manager,
	required_from, client_evaluation, so_state, assigned_to_resource, grade`

func scanServiceOrder(row pgx.Row) (*types.ServiceOrder, error) {
	var (
		so                                       types.ServiceOrder
		location, role, evaluation, state, grade *string
		requiredFrom                             *time.Time
	)
	if err := row.Scan(&so.ID, &so.AccountName, &location, &role, &so.HiringManager,
		&requiredFrom, &evaluation, &state, &so.AssignedToResource, &grade); err != nil {
		return nil, err
	}
	so.Location = deref(location)
	so.Role = deref(role)
	so.RequiredFrom = types.NewDate(requiredFrom)
	so.ClientEvaluation = deref(evaluation)
	so.State = deref(state)
	so.Grade = deref(grade)
	return &so, nil
}

func collectServiceOrders(rows pgx.Rows) ([]types.ServiceOrder, error) {
	defer rows.Close()

	orders := []types.ServiceOrder{}
	for rows.Next() {
		so, err := scanServiceOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service order: %w", err)
		}
		orders = append(orders, *so)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read service orders: %w", err)
	}
	return orders, nil
}

// ListServiceOrdersByHiringManager returns orders whose hiring manager is the
// given employee, newest first.
func (db *DB) ListServiceOrdersByHiringManager(ctx context.Context, employeeID int) ([]types.ServiceOrder, error) {
	if !validKey(employeeID) {
		return []types.ServiceOrder{}, nil
	}
	rows, err := db.pool.Query(ctx,
		`SELECT `+serviceOrderColumns+`
		 FROM service_orders
		 WHERE hiring_manager = $1
		 ORDER BY service_order_id DESC`,
		employeeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list service orders for manager %d: %w", employeeID, err)
	}
	return collectServiceOrders(rows)
}

// GetServiceOrderOwned returns the order only when it exists and its hiring
// manager is the given employee. Absence and ownership mismatch both return
// ErrNotFound.
func (db *DB) GetServiceOrderOwned(ctx context.Context, serviceOrderID, employeeID int) (*types.ServiceOrder, error) {
	if !validKey(serviceOrderID) || !validKey(employeeID) {
		return nil, ErrNotFound
	}
	so, err := scanServiceOrder(db.pool.QueryRow(ctx,
		`SELECT `+serviceOrderColumns+`
		 FROM service_orders
		 WHERE service_order_id = $1 AND hiring_manager = $2`,
		serviceOrderID, employeeID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get service order %d: %w", serviceOrderID, err)
	}
	return so, nil
}

// ListAllServiceOrders returns every order, newest first. Callers gate access.
func (db *DB) ListAllServiceOrders(ctx context.Context) ([]types.ServiceOrder, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+serviceOrderColumns+`
		 FROM service_orders
		 ORDER BY service_order_id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list service orders: %w", err)
	}
	return collectServiceOrders(rows)
}
