package matching

import (
	"context"
	"fmt"

	"github.com/jonathan/priority-matching/internal/types"
)

// PriorityList returns the ranked candidates of a service order the employee
// owns. Candidates whose names cannot be resolved get placeholder names.
func (s *Service) PriorityList(ctx context.Context, serviceOrderID, employeeID int) (*types.PriorityList, error) {
	order, err := s.GetOwned(ctx, serviceOrderID, employeeID)
	if err != nil {
		return nil, err
	}

	items, err := s.store.ListMatchingForOrder(ctx, serviceOrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list priority matching items: %w", err)
	}
	types.SortForOrder(items)

	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.EmployeeID
	}
	dir := types.EmployeeDirectory{}
	if len(ids) > 0 {
		dir, err = s.store.ResolveEmployeeDisplayInfo(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve candidates: %w", err)
		}
	}

	candidates := make([]types.Candidate, len(items))
	for i, item := range items {
		candidates[i] = newCandidate(item, dir)
	}
	return &types.PriorityList{ServiceOrder: *order, Candidates: candidates}, nil
}

func newCandidate(item types.PriorityMatchingListItem, dir types.EmployeeDirectory) types.Candidate {
	info := dir[item.EmployeeID]
	c := types.Candidate{
		PriorityMatchingListItem: item,
		FirstName:                info.FirstName,
		LastName:                 info.LastName,
		Email:                    info.Email,
		Grade:                    info.Grade,
		Location:                 info.Location,
	}
	if c.FirstName == "" {
		c.FirstName = types.UnknownFirstName
	}
	if c.LastName == "" {
		c.LastName = types.UnknownLastName
	}
	return c
}

// ListForEmployee returns the employee's own matching items across all
// service orders.
func (s *Service) ListForEmployee(ctx context.Context, employeeID int) ([]types.AssociateWillingnessItem, error) {
	if employeeID <= 0 {
		return nil, ErrUnauthenticated
	}
	items, err := s.store.ListMatchingForEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matching items: %w", err)
	}
	types.SortForEmployee(items)
	return items, nil
}
