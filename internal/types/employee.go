// Package types provides type definitions for structured data used throughout the priority matching system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Placeholders substituted for display fields that cannot be resolved.
const (
	NotAssigned      = "Not assigned"
	UnknownEmployee  = "Unknown"
	UnknownFirstName = "Unknown"
	UnknownLastName  = "Employee"
)

// Employee is a row of the employee directory. SupervisorID is a loose
// self-reference and may point at a missing employee.
type Employee struct {
	ID                     int    `json:"employee_id"`
	FirstName              string `json:"first_name"`
	LastName               string `json:"last_name"`
	SupervisorID           *int   `json:"supervisor_id,omitempty"`
	Email                  string `json:"email,omitempty"`
	DateOfJoin             *Date  `json:"date_of_join,omitempty"`
	Grade                  string `json:"grade,omitempty"`
	Location               string `json:"location,omitempty"`
	LocationPreference     string `json:"location_preference,omitempty"`
	AvailableForDeployment *bool  `json:"available_for_deployment,omitempty"`
}

// FullName joins first and last name.
func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// EmployeeDisplayInfo is the subset of an employee needed to render a reference to them.
type EmployeeDisplayInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	Grade     string `json:"grade,omitempty"`
	Location  string `json:"location,omitempty"`
}

// FullName joins first and last name.
func (i EmployeeDisplayInfo) FullName() string {
	return strings.TrimSpace(i.FirstName + " " + i.LastName)
}

// EmployeeDirectory maps employee IDs to display info. IDs that did not
// resolve are simply absent.
type EmployeeDirectory map[int]EmployeeDisplayInfo

// NameOf renders a loose employee reference. A nil reference is "Not assigned";
// a reference to an employee missing from the directory is "Unknown".
func (d EmployeeDirectory) NameOf(id *int) string {
	if id == nil {
		return NotAssigned
	}
	info, ok := d[*id]
	if !ok {
		return UnknownEmployee
	}
	if name := info.FullName(); name != "" {
		return name
	}
	return UnknownEmployee
}

// SupervisorLink is one step of an employee's reporting chain.
type SupervisorLink struct {
	EmployeeID int    `json:"employee_id"`
	Name       string `json:"name"`
	Resolved   bool   `json:"resolved"`
}

// EmployeeProfile is an employee together with the supervisor chain above them.
type EmployeeProfile struct {
	Employee    *Employee        `json:"employee"`
	Supervisors []SupervisorLink `json:"supervisors"`
	// CycleDetected is set when the chain loops back on an employee already visited.
	CycleDetected bool `json:"cycle_detected,omitempty"`
}
