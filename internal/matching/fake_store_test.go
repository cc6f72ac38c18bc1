package matching

import (
	"context"
	"sync"

	"github.com/jonathan/priority-matching/internal/db"
	"github.com/jonathan/priority-matching/internal/types"
)

// fakeStore is an in-memory Store. Matching rows are keyed by matching list ID.
type fakeStore struct {
	mu sync.Mutex

	employees map[int]types.Employee
	orders    []types.ServiceOrder
	redirects map[int]types.InterviewScheduleRedirect
	matching  map[int]types.PriorityMatchingListItem

	// rejectBatch makes the single-statement write fail like a store trigger.
	rejectBatch bool
	// failItems makes the per-item write fail for these IDs.
	failItems map[int]bool
	err       error

	calls []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		employees: map[int]types.Employee{},
		redirects: map[int]types.InterviewScheduleRedirect{},
		matching:  map[int]types.PriorityMatchingListItem{},
		failItems: map[int]bool{},
	}
}

func (f *fakeStore) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeStore) called(call string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == call {
			return true
		}
	}
	return false
}

func (f *fakeStore) GetEmployee(_ context.Context, employeeID int) (*types.Employee, error) {
	f.record("GetEmployee")
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.employees[employeeID]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &e, nil
}

func (f *fakeStore) ResolveEmployeeDisplayInfo(_ context.Context, ids []int) (types.EmployeeDirectory, error) {
	f.record("ResolveEmployeeDisplayInfo")
	if f.err != nil {
		return nil, f.err
	}
	dir := types.EmployeeDirectory{}
	for _, id := range ids {
		if e, ok := f.employees[id]; ok {
			dir[id] = types.EmployeeDisplayInfo{
				FirstName: e.FirstName,
				LastName:  e.LastName,
				Email:     e.Email,
				Grade:     e.Grade,
				Location:  e.Location,
			}
		}
	}
	return dir, nil
}

func (f *fakeStore) ListServiceOrdersByHiringManager(_ context.Context, employeeID int) ([]types.ServiceOrder, error) {
	f.record("ListServiceOrdersByHiringManager")
	if f.err != nil {
		return nil, f.err
	}
	out := []types.ServiceOrder{}
	for _, so := range f.orders {
		if so.HiringManager != nil && *so.HiringManager == employeeID {
			out = append(out, so)
		}
	}
	return out, nil
}

func (f *fakeStore) GetServiceOrderOwned(_ context.Context, serviceOrderID, employeeID int) (*types.ServiceOrder, error) {
	f.record("GetServiceOrderOwned")
	if f.err != nil {
		return nil, f.err
	}
	for _, so := range f.orders {
		if so.ID == serviceOrderID && so.HiringManager != nil && *so.HiringManager == employeeID {
			return &so, nil
		}
	}
	return nil, db.ErrNotFound
}

func (f *fakeStore) ListAllServiceOrders(_ context.Context) ([]types.ServiceOrder, error) {
	f.record("ListAllServiceOrders")
	if f.err != nil {
		return nil, f.err
	}
	return append([]types.ServiceOrder{}, f.orders...), nil
}

func (f *fakeStore) ResolveRedirect(_ context.Context, serviceOrderID int) (*types.InterviewScheduleRedirect, error) {
	f.record("ResolveRedirect")
	r, ok := f.redirects[serviceOrderID]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (f *fakeStore) ResolveRedirects(_ context.Context, ids []int) (map[int]types.InterviewScheduleRedirect, error) {
	f.record("ResolveRedirects")
	out := map[int]types.InterviewScheduleRedirect{}
	for _, id := range ids {
		if r, ok := f.redirects[id]; ok {
			out[id] = r
		}
	}
	return out, nil
}

func (f *fakeStore) ListMatchingForOrder(_ context.Context, serviceOrderID int) ([]types.PriorityMatchingListItem, error) {
	f.record("ListMatchingForOrder")
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []types.PriorityMatchingListItem{}
	for _, item := range f.matching {
		if item.ServiceOrderID == serviceOrderID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeStore) ListMatchingForEmployee(_ context.Context, employeeID int) ([]types.AssociateWillingnessItem, error) {
	f.record("ListMatchingForEmployee")
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []types.AssociateWillingnessItem{}
	for _, item := range f.matching {
		if item.EmployeeID != employeeID {
			continue
		}
		out = append(out, types.AssociateWillingnessItem{
			MatchingListID:     item.MatchingListID,
			ServiceOrderID:     item.ServiceOrderID,
			EmployeeID:         item.EmployeeID,
			MatchingIndexScore: item.MatchingIndexScore,
			Priority:           item.Priority,
			AssociateWilling:   item.AssociateWilling,
		})
	}
	return out, nil
}

// UpdateWillingness mirrors the store's write semantics: rows are only
// written when they belong to the employee.
func (f *fakeStore) UpdateWillingness(_ context.Context, employeeID int, items []types.WillingnessUpdate) (*db.WillingnessWrite, error) {
	f.record("UpdateWillingness")
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	write := &db.WillingnessWrite{Applied: make([]bool, len(items)), UsedFallback: f.rejectBatch}
	for i, item := range items {
		if f.rejectBatch && f.failItems[item.MatchingListID] {
			continue
		}
		row, ok := f.matching[item.MatchingListID]
		if !ok || row.EmployeeID != employeeID {
			continue
		}
		flag := item.IsWilling
		row.AssociateWilling = &flag
		f.matching[item.MatchingListID] = row
		write.Applied[i] = true
	}
	return write, nil
}

func intPtr(i int) *int { return &i }

func boolPtr(b bool) *bool { return &b }
