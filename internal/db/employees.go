package db

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/priority-matching/internal/types"
)

// GetEmployee retrieves one employee by ID. Returns ErrNotFound when absent.
func (db *DB) GetEmployee(ctx context.Context, employeeID int) (*types.Employee, error) {
	if !validKey(employeeID) {
		return nil, ErrNotFound
	}
	var (
		e                                               types.Employee
		first, last, email, grade, location, preference *string
		joined                                          *time.Time
	)
	err := db.pool.QueryRow(ctx,
		`SELECT employee_id, first_name, last_name, supervisor_id, email, date_of_join,
		        grade, location, location_preference, available_for_deployment
		 FROM employees WHERE employee_id = $1`,
		employeeID,
	).Scan(&e.ID, &first, &last, &e.SupervisorID, &email, &joined,
		&grade, &location, &preference, &e.AvailableForDeployment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get employee %d: %w", employeeID, err)
	}

	e.FirstName = deref(first)
	e.LastName = deref(last)
	e.Email = deref(email)
	e.DateOfJoin = types.NewDate(joined)
	e.Grade = deref(grade)
	e.Location = deref(location)
	e.LocationPreference = deref(preference)
	return &e, nil
}

// ResolveEmployeeDisplayInfo batch-fetches display info for a set of employee
// IDs. IDs with no employee row are absent from the result; an empty input
// performs no query.
func (db *DB) ResolveEmployeeDisplayInfo(ctx context.Context, ids []int) (types.EmployeeDirectory, error) {
	ids = positiveUnique(ids)
	dir := make(types.EmployeeDirectory, len(ids))
	if len(ids) == 0 {
		return dir, nil
	}

	rows, err := db.pool.Query(ctx,
		`SELECT employee_id, first_name, last_name, email, grade, location
		 FROM employees WHERE employee_id = ANY($1::int[])`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve employees: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id                                  int
			first, last, email, grade, location *string
		)
		if err := rows.Scan(&id, &first, &last, &email, &grade, &location); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		dir[id] = types.EmployeeDisplayInfo{
			FirstName: deref(first),
			LastName:  deref(last),
			Email:     deref(email),
			Grade:     deref(grade),
			Location:  deref(location),
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to resolve employees: %w", err)
	}
	return dir, nil
}
