package types

// InterviewScheduleRedirect is a row of the read-only redirect view. Its
// presence means the interview for the order must be scheduled through the
// external link.
type InterviewScheduleRedirect struct {
	ServiceOrderID     int    `json:"service_order_id"`
	AccountName        string `json:"account_name,omitempty"`
	ServiceLocation    string `json:"service_location,omitempty"`
	Role               string `json:"role,omitempty"`
	RequiredFrom       *Date  `json:"required_from,omitempty"`
	State              string `json:"state,omitempty"`
	ClientEvaluation   string `json:"client_evaluation,omitempty"`
	HiringManager      *int   `json:"hiring_manager,omitempty"`
	AssignedToResource *int   `json:"assigned_to_resource,omitempty"`

	EmployeeID       int    `json:"employee_id"`
	EmployeeName     string `json:"employee_name,omitempty"`
	EmployeeEmail    string `json:"employee_email,omitempty"`
	EmployeeGrade    string `json:"employee_grade,omitempty"`
	EmployeeLocation string `json:"employee_location,omitempty"`

	HiringManagerName  string `json:"hiring_manager_name,omitempty"`
	HiringManagerEmail string `json:"hiring_manager_email,omitempty"`

	Priority           *int   `json:"priority,omitempty"`
	MatchingIndexScore *int   `json:"matching_index_score,omitempty"`
	AssociateWilling   bool   `json:"associate_willing"`
	Remarks            string `json:"remarks,omitempty"`

	InterviewScheduleRedirectLink string `json:"interview_schedule_redirect_link,omitempty"`
	RedirectReason                string `json:"redirect_reason,omitempty"`
	RedirectStatus                string `json:"redirect_status,omitempty"`
}
