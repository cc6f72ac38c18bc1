// Package access decides which employees may see service order lists.
package access

import "slices"

// DefaultServiceOrderViewers are the managers allowed to list their service orders.
var DefaultServiceOrderViewers = []int{101, 102, 103, 104}

// Policy is a static allow-list. It grants list-level visibility only;
// ownership of an individual order is checked separately.
type Policy struct {
	viewers map[int]struct{}
	admins  map[int]struct{}
}

// NewPolicy builds a policy. A nil viewers slice falls back to
// DefaultServiceOrderViewers; admins may be empty.
func NewPolicy(viewers, admins []int) *Policy {
	if viewers == nil {
		viewers = DefaultServiceOrderViewers
	}
	p := &Policy{
		viewers: make(map[int]struct{}, len(viewers)),
		admins:  make(map[int]struct{}, len(admins)),
	}
	for _, id := range viewers {
		p.viewers[id] = struct{}{}
	}
	for _, id := range admins {
		p.admins[id] = struct{}{}
	}
	return p
}

// IsAuthorizedToViewServiceOrders reports whether the employee's "my orders"
// list may return any rows.
func (p *Policy) IsAuthorizedToViewServiceOrders(employeeID int) bool {
	_, ok := p.viewers[employeeID]
	return ok
}

// IsAdmin reports whether the employee may see every service order.
func (p *Policy) IsAdmin(employeeID int) bool {
	_, ok := p.admins[employeeID]
	return ok
}

// Viewers returns the allow-list in ascending order.
func (p *Policy) Viewers() []int {
	ids := make([]int, 0, len(p.viewers))
	for id := range p.viewers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
