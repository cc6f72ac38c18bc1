package matching

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/priority-matching/internal/types"
)

// Dashboard assembles the calling employee's landing page: their record, the
// service orders they manage and their own matching items. The two lists are
// read concurrently.
func (s *Service) Dashboard(ctx context.Context, employeeID int) (*types.Dashboard, error) {
	if employeeID <= 0 {
		return nil, ErrUnauthenticated
	}
	emp, err := s.getEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	var (
		orders []types.ServiceOrderView
		items  []types.AssociateWillingnessItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.ListOwnedByManager(gctx, employeeID)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.ListForEmployee(gctx, employeeID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &types.Dashboard{
		Employee:              emp,
		ServiceOrders:         orders,
		PriorityMatchingItems: items,
	}, nil
}
