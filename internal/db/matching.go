package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/priority-matching/internal/types"
)

// ListMatchingForOrder returns the candidates of a service order: priority
// ascending with unranked rows last, then best score first.
func (db *DB) ListMatchingForOrder(ctx context.Context, serviceOrderID int) ([]types.PriorityMatchingListItem, error) {
	if !validKey(serviceOrderID) {
		return []types.PriorityMatchingListItem{}, nil
	}
	rows, err := db.pool.Query(ctx,
		`SELECT matching_list_id, service_order_id, employee_id, matching_index_score,
		        remarks, priority, associate_willing
		 FROM priority_matching_list
		 WHERE service_order_id = $1
		 ORDER BY priority ASC NULLS LAST, matching_index_score DESC NULLS LAST, matching_list_id ASC`,
		serviceOrderID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list matching items for service order %d: %w", serviceOrderID, err)
	}
	defer rows.Close()

	items := []types.PriorityMatchingListItem{}
	for rows.Next() {
		var (
			item    types.PriorityMatchingListItem
			remarks *string
		)
		if err := rows.Scan(&item.MatchingListID, &item.ServiceOrderID, &item.EmployeeID,
			&item.MatchingIndexScore, &remarks, &item.Priority, &item.AssociateWilling); err != nil {
			return nil, fmt.Errorf("failed to scan matching item: %w", err)
		}
		item.Remarks = deref(remarks)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list matching items: %w", err)
	}
	return items, nil
}

// ListMatchingForEmployee returns every matching row of an employee joined
// with its service order. Unranked rows sort as if priority were MaxInt32.
func (db *DB) ListMatchingForEmployee(ctx context.Context, employeeID int) ([]types.AssociateWillingnessItem, error) {
	if !validKey(employeeID) {
		return []types.AssociateWillingnessItem{}, nil
	}
	rows, err := db.pool.Query(ctx,
		`SELECT pml.matching_list_id, pml.service_order_id, pml.employee_id,
		        so.account_name, so.location, so.cca_role, so.required_from, so.grade,
		        pml.matching_index_score, pml.remarks, pml.priority, pml.associate_willing
		 FROM priority_matching_list pml
		 JOIN service_orders so ON so.service_order_id = pml.service_order_id
		 WHERE pml.employee_id = $1
		 ORDER BY COALESCE(pml.priority, 2147483647) ASC, pml.service_order_id ASC`,
		employeeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list matching items for employee %d: %w", employeeID, err)
	}
	defer rows.Close()

	items := []types.AssociateWillingnessItem{}
	for rows.Next() {
		var (
			item                                    types.AssociateWillingnessItem
			account, location, role, grade, remarks *string
			requiredFrom                            *time.Time
		)
		if err := rows.Scan(&item.MatchingListID, &item.ServiceOrderID, &item.EmployeeID,
			&account, &location, &role, &requiredFrom, &grade,
			&item.MatchingIndexScore, &remarks, &item.Priority, &item.AssociateWilling); err != nil {
			return nil, fmt.Errorf("failed to scan matching item: %w", err)
		}
		item.AccountName = deref(account)
		item.Location = deref(location)
		item.Role = deref(role)
		item.RequiredFrom = types.NewDate(requiredFrom)
		item.Grade = deref(grade)
		item.Remarks = deref(remarks)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list matching items: %w", err)
	}
	return items, nil
}
