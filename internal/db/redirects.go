package db

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/priority-matching/internal/types"
)

const redirectColumns = `service_order_id, account_name, service_location, role, required_from,
	so_state, client_evaluation, hiring_manager, assigned_to_resource,
	employee_id, employee_name, employee_email, employee_grade, employee_location,
	hiring_manager_name, hiring_manager_email,
	priority, matching_index_score, associate_willing, remarks,
	interview_schedule_redirect_link, redirect_reason, redirect_status`

// redirectOrder picks the representative row when the view yields several
// for one service order.
const redirectOrder = `priority ASC NULLS LAST, employee_id ASC`

func scanRedirect(row pgx.Row) (*types.InterviewScheduleRedirect, error) {
	var (
		r            types.InterviewScheduleRedirect
		requiredFrom *time.Time
		willing      *bool
		account, location, role, state, evaluation,
		name, email, grade, empLocation,
		hmName, hmEmail, remarks,
		link, reason, status *string
	)
	err := row.Scan(
		&r.ServiceOrderID, &account, &location, &role, &requiredFrom,
		&state, &evaluation, &r.HiringManager, &r.AssignedToResource,
		&r.EmployeeID, &name, &email, &grade, &empLocation,
		&hmName, &hmEmail,
		&r.Priority, &r.MatchingIndexScore, &willing, &remarks,
		&link, &reason, &status,
	)
	if err != nil {
		return nil, err
	}

	r.AccountName = deref(account)
	r.ServiceLocation = deref(location)
	r.Role = deref(role)
	r.RequiredFrom = types.NewDate(requiredFrom)
	r.State = deref(state)
	r.ClientEvaluation = deref(evaluation)
	r.EmployeeName = deref(name)
	r.EmployeeEmail = deref(email)
	r.EmployeeGrade = deref(grade)
	r.EmployeeLocation = deref(empLocation)
	r.HiringManagerName = deref(hmName)
	r.HiringManagerEmail = deref(hmEmail)
	r.AssociateWilling = willing != nil && *willing
	r.Remarks = deref(remarks)
	r.InterviewScheduleRedirectLink = deref(link)
	r.RedirectReason = deref(reason)
	r.RedirectStatus = deref(status)
	return &r, nil
}

// ResolveRedirect returns the redirect row for a service order, or nil when
// the view has none.
func (db *DB) ResolveRedirect(ctx context.Context, serviceOrderID int) (*types.InterviewScheduleRedirect, error) {
	if !validKey(serviceOrderID) {
		return nil, nil
	}
	r, err := scanRedirect(db.pool.QueryRow(ctx,
		`SELECT `+redirectColumns+`
		 FROM vw_interview_schedule_redirect_required
		 WHERE service_order_id = $1
		 ORDER BY `+redirectOrder+`
		 LIMIT 1`,
		serviceOrderID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve redirect for service order %d: %w", serviceOrderID, err)
	}
	return r, nil
}

// ResolveRedirects looks up redirects for many service orders in one query.
// Orders without a redirect row are absent from the result.
func (db *DB) ResolveRedirects(ctx context.Context, serviceOrderIDs []int) (map[int]types.InterviewScheduleRedirect, error) {
	ids := positiveUnique(serviceOrderIDs)
	redirects := make(map[int]types.InterviewScheduleRedirect, len(ids))
	if len(ids) == 0 {
		return redirects, nil
	}

	rows, err := db.pool.Query(ctx,
		`SELECT DISTINCT ON (service_order_id) `+redirectColumns+`
		 FROM vw_interview_schedule_redirect_required
		 WHERE service_order_id = ANY($1::int[])
		 ORDER BY service_order_id, `+redirectOrder,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve redirects: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		r, err := scanRedirect(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan redirect: %w", err)
		}
		redirects[r.ServiceOrderID] = *r
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to resolve redirects: %w", err)
	}
	return redirects, nil
}
