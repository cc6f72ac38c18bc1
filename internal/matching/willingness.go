package matching

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jonathan/priority-matching/internal/observability"
	"github.com/jonathan/priority-matching/internal/types"
)

// ApplyUpdates writes the caller's willingness flags and reports per-item
// outcomes. Items that name another employee's row or a missing row are
// skipped, not rejected. Structural problems refuse the whole batch before
// anything is written.
func (s *Service) ApplyUpdates(ctx context.Context, employeeID int, items []types.WillingnessUpdate) (*types.WillingnessResult, error) {
	if employeeID <= 0 {
		return nil, ErrUnauthenticated
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no items to update", ErrInvalidBatch)
	}
	for _, item := range items {
		if item.MatchingListID <= 0 {
			return nil, fmt.Errorf("%w: matching list id must be positive, got %d", ErrInvalidBatch, item.MatchingListID)
		}
	}

	log := observability.FromContext(ctx).WithField("employee_id", employeeID)
	log.WithField("items", len(items)).Info("starting willingness update")

	write, err := s.store.UpdateWillingness(ctx, employeeID, items)
	if err != nil {
		return nil, fmt.Errorf("failed to update willingness: %w", err)
	}

	result := &types.WillingnessResult{
		Submitted:    len(items),
		Outcomes:     make([]types.ItemOutcome, len(items)),
		UsedFallback: write.UsedFallback,
	}
	for i, item := range items {
		updated := i < len(write.Applied) && write.Applied[i]
		result.Outcomes[i] = types.ItemOutcome{
			MatchingListID: item.MatchingListID,
			IsWilling:      item.IsWilling,
			Updated:        updated,
		}
		recordWillingnessItem(updated)
		if !updated {
			continue
		}
		result.UpdatedCount++
		if item.IsWilling {
			result.WillingCount++
		} else {
			result.NotWillingCount++
		}
	}
	if write.UsedFallback {
		willingnessFallbacks.Inc()
	}

	entry := log.WithFields(logrus.Fields{
		"updated":     result.UpdatedCount,
		"willing":     result.WillingCount,
		"not_willing": result.NotWillingCount,
		"fallback":    result.UsedFallback,
	})
	if result.Partial() {
		entry.WithField("skipped", result.Submitted-result.UpdatedCount).Warn("willingness update skipped some items")
		return result, nil
	}
	entry.Info("willingness update finished")
	return result, nil
}
