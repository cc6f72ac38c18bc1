package types

import (
	"cmp"
	"math"
	"slices"
)

// Willingness is the tri-state AssociateWilling flag.
type Willingness string

// Willingness states. Only Willing and NotWilling can be set by an employee.
const (
	WillingnessUnset      Willingness = "unset"
	WillingnessWilling    Willingness = "willing"
	WillingnessNotWilling Willingness = "not_willing"
)

// WillingnessOf maps a nullable flag to its state.
func WillingnessOf(flag *bool) Willingness {
	switch {
	case flag == nil:
		return WillingnessUnset
	case *flag:
		return WillingnessWilling
	default:
		return WillingnessNotWilling
	}
}

// PriorityMatchingListItem pairs a candidate employee with a service order.
// Score and priority are computed upstream and only read here.
type PriorityMatchingListItem struct {
	MatchingListID     int    `json:"matching_list_id"`
	ServiceOrderID     int    `json:"service_order_id"`
	EmployeeID         int    `json:"employee_id"`
	MatchingIndexScore *int   `json:"matching_index_score,omitempty"`
	Remarks            string `json:"remarks,omitempty"`
	Priority           *int   `json:"priority,omitempty"`
	AssociateWilling   *bool  `json:"associate_willing"`
}

// Willingness returns the item's willingness state.
func (i PriorityMatchingListItem) Willingness() Willingness {
	return WillingnessOf(i.AssociateWilling)
}

// AssociateWillingnessItem is a matching list item joined with the display
// fields of its service order.
type AssociateWillingnessItem struct {
	MatchingListID     int    `json:"matching_list_id"`
	ServiceOrderID     int    `json:"service_order_id"`
	EmployeeID         int    `json:"employee_id"`
	AccountName        string `json:"account_name"`
	Location           string `json:"location"`
	Role               string `json:"role"`
	RequiredFrom       *Date  `json:"required_from,omitempty"`
	Grade              string `json:"grade"`
	MatchingIndexScore *int   `json:"matching_index_score,omitempty"`
	Remarks            string `json:"remarks,omitempty"`
	Priority           *int   `json:"priority,omitempty"`
	AssociateWilling   *bool  `json:"associate_willing"`
}

// Candidate is a matching list item with the candidate's display info resolved.
type Candidate struct {
	PriorityMatchingListItem
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	Grade     string `json:"grade,omitempty"`
	Location  string `json:"location,omitempty"`
}

// PriorityList is the candidate list of one service order.
type PriorityList struct {
	ServiceOrder ServiceOrderView `json:"service_order"`
	Candidates   []Candidate      `json:"candidates"`
}

// comparePriority orders priorities ascending with nil last.
func comparePriority(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(*a, *b)
	}
}

// compareScoreDesc orders scores descending with nil last.
func compareScoreDesc(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(*b, *a)
	}
}

// SortForOrder puts a service order's candidates in display order: priority
// ascending (nil last), then matching index score descending.
func SortForOrder(items []PriorityMatchingListItem) {
	slices.SortStableFunc(items, func(a, b PriorityMatchingListItem) int {
		if c := comparePriority(a.Priority, b.Priority); c != 0 {
			return c
		}
		if c := compareScoreDesc(a.MatchingIndexScore, b.MatchingIndexScore); c != 0 {
			return c
		}
		return cmp.Compare(a.MatchingListID, b.MatchingListID)
	})
}

// SortForEmployee puts an employee's items in display order: priority
// ascending with nil treated as math.MaxInt32, then service order ID ascending.
func SortForEmployee(items []AssociateWillingnessItem) {
	key := func(p *int) int {
		if p == nil {
			return math.MaxInt32
		}
		return *p
	}
	slices.SortStableFunc(items, func(a, b AssociateWillingnessItem) int {
		if c := cmp.Compare(key(a.Priority), key(b.Priority)); c != 0 {
			return c
		}
		return cmp.Compare(a.ServiceOrderID, b.ServiceOrderID)
	})
}
