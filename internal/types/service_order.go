package types

// ServiceOrder is an open staffing requisition. HiringManager and
// AssignedToResource are bare employee IDs that are never joined by the store.
type ServiceOrder struct {
	ID                 int    `json:"service_order_id"`
	AccountName        string `json:"account_name"`
	Location           string `json:"location,omitempty"`
	Role               string `json:"role,omitempty"`
	HiringManager      *int   `json:"hiring_manager,omitempty"`
	RequiredFrom       *Date  `json:"required_from,omitempty"`
	ClientEvaluation   string `json:"client_evaluation,omitempty"`
	State              string `json:"state,omitempty"`
	AssignedToResource *int   `json:"assigned_to_resource,omitempty"`
	Grade              string `json:"grade,omitempty"`
}

// ServiceOrderView is a service order with its employee references resolved
// and its interview schedule redirect flags attached.
type ServiceOrderView struct {
	ServiceOrder
	HiringManagerName    string `json:"hiring_manager_name"`
	AssignedResourceName string `json:"assigned_resource_name"`

	ShowInterviewScheduleLink bool   `json:"show_interview_schedule_link"`
	InterviewScheduleLink     string `json:"interview_schedule_link,omitempty"`
	RedirectReason            string `json:"redirect_reason,omitempty"`
	RedirectEmployeeName      string `json:"redirect_employee_name,omitempty"`
}

// ApplyRedirect copies redirect details onto the view. A nil redirect clears the flag.
func (v *ServiceOrderView) ApplyRedirect(r *InterviewScheduleRedirect) {
	if r == nil {
		v.ShowInterviewScheduleLink = false
		v.InterviewScheduleLink = ""
		v.RedirectReason = ""
		v.RedirectEmployeeName = ""
		return
	}
	v.ShowInterviewScheduleLink = true
	v.InterviewScheduleLink = r.InterviewScheduleRedirectLink
	v.RedirectReason = r.RedirectReason
	v.RedirectEmployeeName = r.EmployeeName
}

// Dashboard is the "my service orders" page for the calling employee.
type Dashboard struct {
	Employee              *Employee                  `json:"employee"`
	ServiceOrders         []ServiceOrderView         `json:"service_orders"`
	PriorityMatchingItems []AssociateWillingnessItem `json:"priority_matching_items"`
}
