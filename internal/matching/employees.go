package matching

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"

	"github.com/jonathan/priority-matching/internal/db"
	"github.com/jonathan/priority-matching/internal/types"
)

// maxSupervisorDepth bounds the reporting chain walk.
const maxSupervisorDepth = 32

// EmployeeProfile returns an employee with the chain of supervisors above
// them. The walk stops at a missing supervisor or when it revisits an
// employee.
func (s *Service) EmployeeProfile(ctx context.Context, employeeID int) (*types.EmployeeProfile, error) {
	emp, err := s.getEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	profile := &types.EmployeeProfile{Employee: emp, Supervisors: []types.SupervisorLink{}}
	visited := map[int]struct{}{emp.ID: {}}
	next := emp.SupervisorID
	for next != nil && len(profile.Supervisors) < maxSupervisorDepth {
		id := *next
		if _, seen := visited[id]; seen {
			profile.CycleDetected = true
			break
		}
		visited[id] = struct{}{}

		sup, err := s.store.GetEmployee(ctx, id)
		if errors.Is(err, db.ErrNotFound) {
			profile.Supervisors = append(profile.Supervisors, types.SupervisorLink{
				EmployeeID: id,
				Name:       types.UnknownEmployee,
			})
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get supervisor %d: %w", id, err)
		}
		profile.Supervisors = append(profile.Supervisors, types.SupervisorLink{
			EmployeeID: sup.ID,
			Name:       sup.FullName(),
			Resolved:   true,
		})
		next = sup.SupervisorID
	}
	return profile, nil
}

func (s *Service) getEmployee(ctx context.Context, employeeID int) (*types.Employee, error) {
	emp, err := s.store.GetEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}
