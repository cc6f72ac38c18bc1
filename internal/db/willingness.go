package db

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jonathan/priority-matching/internal/observability"
	"github.com/jonathan/priority-matching/internal/types"
)

// WillingnessWrite reports which submitted items were written.
type WillingnessWrite struct {
	// Applied is aligned with the submitted items.
	Applied      []bool
	UsedFallback bool
}

// UpdateWillingness sets associate_willing on the caller's own matching rows.
// The whole batch goes out as one statement; if the store rejects that
// statement the items are written one by one instead. Rows belonging to other
// employees are never touched. IDs outside the key range match no row and are
// reported as not applied.
func (db *DB) UpdateWillingness(ctx context.Context, employeeID int, items []types.WillingnessUpdate) (*WillingnessWrite, error) {
	write := &WillingnessWrite{Applied: make([]bool, len(items))}
	if !validKey(employeeID) {
		return write, nil
	}
	storable := make([]types.WillingnessUpdate, 0, len(items))
	for _, item := range items {
		if validKey(item.MatchingListID) {
			storable = append(storable, item)
		}
	}
	if len(storable) == 0 {
		return write, nil
	}

	written, err := db.updateWillingnessBatch(ctx, employeeID, storable)
	if err == nil {
		for i, item := range items {
			_, write.Applied[i] = written[item.MatchingListID]
		}
		return write, nil
	}
	if !IsStoreRejection(err) {
		return nil, fmt.Errorf("failed to update willingness: %w", err)
	}

	observability.FromContext(ctx).WithField("employee_id", employeeID).WithError(err).
		Warn("batch willingness update rejected, falling back to per-item writes")
	write.UsedFallback = true

	if err := updateWillingnessEach(ctx, db.pool, employeeID, items, write.Applied); err != nil {
		return nil, fmt.Errorf("failed to update willingness: %w", err)
	}
	return write, nil
}

// execer runs a single statement. *pgxpool.Pool satisfies it.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// updateWillingnessEach writes items one statement at a time in submission
// order and marks applied[i] when a row changed. Errors raised by the store
// for a single row are logged and skipped; a cancelled context or a transport
// error stops the loop and is returned.
func updateWillingnessEach(ctx context.Context, ex execer, employeeID int, items []types.WillingnessUpdate, applied []bool) error {
	log := observability.FromContext(ctx).WithField("employee_id", employeeID)
	for i, item := range items {
		if !validKey(item.MatchingListID) {
			continue
		}
		tag, err := ex.Exec(ctx,
			`UPDATE priority_matching_list SET associate_willing = $1
			 WHERE matching_list_id = $2 AND employee_id = $3`,
			item.IsWilling, item.MatchingListID, employeeID,
		)
		entry := log.WithField("matching_list_id", item.MatchingListID)
		if err != nil {
			var pgErr *pgconn.PgError
			if ctx.Err() != nil || !errors.As(err, &pgErr) {
				return errors.Wrapf(err, "write matching list item %d", item.MatchingListID)
			}
			entry.WithError(err).Error("willingness update failed")
			continue
		}
		applied[i] = tag.RowsAffected() > 0
		entry.WithField("updated", applied[i]).Debug("willingness item written")
	}
	return nil
}

// updateWillingnessBatch writes all items in one statement and returns the
// set of matching list IDs that were updated. Repeated IDs keep the last
// submitted flag.
func (db *DB) updateWillingnessBatch(ctx context.Context, employeeID int, items []types.WillingnessUpdate) (map[int]struct{}, error) {
	index := make(map[int]int, len(items))
	ids := make([]int, 0, len(items))
	flags := make([]bool, 0, len(items))
	for _, item := range items {
		if i, ok := index[item.MatchingListID]; ok {
			flags[i] = item.IsWilling
			continue
		}
		index[item.MatchingListID] = len(ids)
		ids = append(ids, item.MatchingListID)
		flags = append(flags, item.IsWilling)
	}

	rows, err := db.pool.Query(ctx,
		`UPDATE priority_matching_list AS pml
		 SET associate_willing = u.is_willing
		 FROM unnest($2::int[], $3::bool[]) AS u(matching_list_id, is_willing)
		 WHERE pml.matching_list_id = u.matching_list_id AND pml.employee_id = $1
		 RETURNING pml.matching_list_id`,
		employeeID, ids, flags,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	written := make(map[int]struct{}, len(ids))
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		written[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return written, nil
}
