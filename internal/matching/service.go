// Package matching orchestrates service order access, redirect decoration,
// priority matching lists and willingness updates on top of the store.
package matching

import (
	"context"

	"github.com/jonathan/priority-matching/internal/access"
	"github.com/jonathan/priority-matching/internal/db"
	"github.com/jonathan/priority-matching/internal/types"
)

// Store is the persistence surface the service depends on. *db.DB satisfies it.
type Store interface {
	GetEmployee(ctx context.Context, employeeID int) (*types.Employee, error)
	ResolveEmployeeDisplayInfo(ctx context.Context, ids []int) (types.EmployeeDirectory, error)

	ListServiceOrdersByHiringManager(ctx context.Context, employeeID int) ([]types.ServiceOrder, error)
	GetServiceOrderOwned(ctx context.Context, serviceOrderID, employeeID int) (*types.ServiceOrder, error)
	ListAllServiceOrders(ctx context.Context) ([]types.ServiceOrder, error)

	ResolveRedirect(ctx context.Context, serviceOrderID int) (*types.InterviewScheduleRedirect, error)
	ResolveRedirects(ctx context.Context, serviceOrderIDs []int) (map[int]types.InterviewScheduleRedirect, error)

	ListMatchingForOrder(ctx context.Context, serviceOrderID int) ([]types.PriorityMatchingListItem, error)
	ListMatchingForEmployee(ctx context.Context, employeeID int) ([]types.AssociateWillingnessItem, error)

	UpdateWillingness(ctx context.Context, employeeID int, items []types.WillingnessUpdate) (*db.WillingnessWrite, error)
}

var _ Store = (*db.DB)(nil)

// Service provides the read and write operations exposed to callers.
type Service struct {
	store  Store
	policy *access.Policy
}

// NewService creates a Service. A nil policy uses the default allow-list.
func NewService(store Store, policy *access.Policy) *Service {
	if policy == nil {
		policy = access.NewPolicy(nil, nil)
	}
	return &Service{store: store, policy: policy}
}

// Policy returns the access policy the service enforces.
func (s *Service) Policy() *access.Policy {
	return s.policy
}
