package matching

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"

	"github.com/jonathan/priority-matching/internal/db"
	"github.com/jonathan/priority-matching/internal/observability"
	"github.com/jonathan/priority-matching/internal/types"
)

// ListOwnedByManager returns the service orders the employee is hiring
// manager of, decorated with names and redirect flags. Employees outside the
// allow-list get an empty list without touching the store.
func (s *Service) ListOwnedByManager(ctx context.Context, employeeID int) ([]types.ServiceOrderView, error) {
	if employeeID <= 0 {
		return nil, ErrUnauthenticated
	}

	log := observability.FromContext(ctx).WithField("employee_id", employeeID)
	allowed := s.policy.IsAuthorizedToViewServiceOrders(employeeID)
	recordAccessDecision(allowed)
	if !allowed {
		log.Info("employee is not authorized to view service orders")
		return []types.ServiceOrderView{}, nil
	}

	orders, err := s.store.ListServiceOrdersByHiringManager(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list service orders: %w", err)
	}
	log.WithField("count", len(orders)).Debug("found service orders for hiring manager")

	views, err := s.decorate(ctx, orders)
	if err != nil {
		return nil, err
	}
	if err := s.attachRedirects(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

// GetOwned returns one service order the employee owns, with its redirect.
// A missing order and an order owned by someone else both yield
// ErrServiceOrderNotFound.
func (s *Service) GetOwned(ctx context.Context, serviceOrderID, employeeID int) (*types.ServiceOrderView, error) {
	if employeeID <= 0 {
		return nil, ErrUnauthenticated
	}

	so, err := s.store.GetServiceOrderOwned(ctx, serviceOrderID, employeeID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrServiceOrderNotFound
		}
		return nil, fmt.Errorf("failed to get service order: %w", err)
	}

	views, err := s.decorate(ctx, []types.ServiceOrder{*so})
	if err != nil {
		return nil, err
	}
	view := &views[0]

	redirect, err := s.store.ResolveRedirect(ctx, so.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve redirect: %w", err)
	}
	view.ApplyRedirect(redirect)
	return view, nil
}

// ListAll returns every service order with names resolved. Access control is
// the caller's responsibility.
func (s *Service) ListAll(ctx context.Context) ([]types.ServiceOrderView, error) {
	orders, err := s.store.ListAllServiceOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list service orders: %w", err)
	}
	return s.decorate(ctx, orders)
}

// decorate resolves hiring manager and assigned resource names in one lookup.
func (s *Service) decorate(ctx context.Context, orders []types.ServiceOrder) ([]types.ServiceOrderView, error) {
	views := make([]types.ServiceOrderView, len(orders))
	if len(orders) == 0 {
		return views, nil
	}

	ids := make([]int, 0, 2*len(orders))
	for _, so := range orders {
		if so.HiringManager != nil {
			ids = append(ids, *so.HiringManager)
		}
		if so.AssignedToResource != nil {
			ids = append(ids, *so.AssignedToResource)
		}
	}

	dir := types.EmployeeDirectory{}
	if len(ids) > 0 {
		var err error
		dir, err = s.store.ResolveEmployeeDisplayInfo(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve employee names: %w", err)
		}
	}

	for i, so := range orders {
		views[i] = types.ServiceOrderView{
			ServiceOrder:         so,
			HiringManagerName:    dir.NameOf(so.HiringManager),
			AssignedResourceName: dir.NameOf(so.AssignedToResource),
		}
	}
	return views, nil
}

// attachRedirects sets the redirect flags of each view from one batched lookup.
func (s *Service) attachRedirects(ctx context.Context, views []types.ServiceOrderView) error {
	if len(views) == 0 {
		return nil
	}
	ids := make([]int, len(views))
	for i := range views {
		ids[i] = views[i].ID
	}

	redirects, err := s.store.ResolveRedirects(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to resolve redirects: %w", err)
	}
	for i := range views {
		if r, ok := redirects[views[i].ID]; ok {
			views[i].ApplyRedirect(&r)
		} else {
			views[i].ApplyRedirect(nil)
		}
	}
	return nil
}
