package attendance

type CheckInRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
}

type RecordResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	WorkDate     string  `json:"work_date"`
	CheckIn      *string `json:"check_in,omitempty"`
	CheckOut     *string `json:"check_out,omitempty"`
	WorkedHours  string  `json:"worked_hours"`
	WorkDays     string  `json:"work_days"`
}

type SummaryResponse struct {
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name"`
	TotalWorkDays string `json:"total_work_days"`
	TotalHours    string `json:"total_worked_hours"`
	RecordCount   int64  `json:"record_count"`
}
