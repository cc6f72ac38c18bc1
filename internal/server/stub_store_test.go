package server

import (
	"context"
	"sort"
	"sync"

	"github.com/jonathan/priority-matching/internal/db"
	"github.com/jonathan/priority-matching/internal/types"
)

// stubStore is an in-memory matching.Store and UserStore.
type stubStore struct {
	mu sync.Mutex

	employees map[int]types.Employee
	users     map[int]db.User
	orders    []types.ServiceOrder
	redirects map[int]types.InterviewScheduleRedirect
	matching  map[int]types.PriorityMatchingListItem

	err     error
	pingErr error
	touched []int
}

func newStubStore() *stubStore {
	return &stubStore{
		employees: map[int]types.Employee{},
		users:     map[int]db.User{},
		redirects: map[int]types.InterviewScheduleRedirect{},
		matching:  map[int]types.PriorityMatchingListItem{},
	}
}

func (s *stubStore) Ping(_ context.Context) error { return s.pingErr }

func (s *stubStore) GetEmployee(_ context.Context, employeeID int) (*types.Employee, error) {
	if s.err != nil {
		return nil, s.err
	}
	e, ok := s.employees[employeeID]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &e, nil
}

func (s *stubStore) ResolveEmployeeDisplayInfo(_ context.Context, ids []int) (types.EmployeeDirectory, error) {
	if s.err != nil {
		return nil, s.err
	}
	dir := types.EmployeeDirectory{}
	for _, id := range ids {
		if e, ok := s.employees[id]; ok {
			dir[id] = types.EmployeeDisplayInfo{FirstName: e.FirstName, LastName: e.LastName, Email: e.Email}
		}
	}
	return dir, nil
}

func (s *stubStore) ListServiceOrdersByHiringManager(_ context.Context, employeeID int) ([]types.ServiceOrder, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []types.ServiceOrder
	for _, o := range s.orders {
		if o.HiringManager != nil && *o.HiringManager == employeeID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *stubStore) GetServiceOrderOwned(_ context.Context, serviceOrderID, employeeID int) (*types.ServiceOrder, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, o := range s.orders {
		if o.ID == serviceOrderID && o.HiringManager != nil && *o.HiringManager == employeeID {
			return &o, nil
		}
	}
	return nil, db.ErrNotFound
}

func (s *stubStore) ListAllServiceOrders(_ context.Context) ([]types.ServiceOrder, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]types.ServiceOrder(nil), s.orders...), nil
}

func (s *stubStore) ResolveRedirect(_ context.Context, serviceOrderID int) (*types.InterviewScheduleRedirect, error) {
	r, ok := s.redirects[serviceOrderID]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (s *stubStore) ResolveRedirects(_ context.Context, ids []int) (map[int]types.InterviewScheduleRedirect, error) {
	out := map[int]types.InterviewScheduleRedirect{}
	for _, id := range ids {
		if r, ok := s.redirects[id]; ok {
			out[id] = r
		}
	}
	return out, nil
}

func (s *stubStore) ListMatchingForOrder(_ context.Context, serviceOrderID int) ([]types.PriorityMatchingListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []types.PriorityMatchingListItem
	for _, m := range s.matching {
		if m.ServiceOrderID == serviceOrderID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MatchingListID < out[j].MatchingListID })
	return out, nil
}

func (s *stubStore) ListMatchingForEmployee(_ context.Context, employeeID int) ([]types.AssociateWillingnessItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []types.AssociateWillingnessItem
	for _, m := range s.matching {
		if m.EmployeeID == employeeID {
			out = append(out, types.AssociateWillingnessItem{
				MatchingListID:   m.MatchingListID,
				ServiceOrderID:   m.ServiceOrderID,
				Priority:         m.Priority,
				AssociateWilling: m.AssociateWilling,
			})
		}
	}
	return out, nil
}

func (s *stubStore) UpdateWillingness(_ context.Context, employeeID int, items []types.WillingnessUpdate) (*db.WillingnessWrite, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	write := &db.WillingnessWrite{Applied: make([]bool, len(items))}
	for i, item := range items {
		m, ok := s.matching[item.MatchingListID]
		if !ok || m.EmployeeID != employeeID {
			continue
		}
		willing := item.IsWilling
		m.AssociateWilling = &willing
		s.matching[item.MatchingListID] = m
		write.Applied[i] = true
	}
	return write, nil
}

func (s *stubStore) GetUserByEmployeeID(_ context.Context, employeeID int) (*db.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[employeeID]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &u, nil
}

func (s *stubStore) TouchLogin(_ context.Context, employeeID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touched = append(s.touched, employeeID)
	return nil
}

func intPtr(i int) *int { return &i }
