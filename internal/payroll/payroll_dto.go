package payroll

type CalculateRequest struct {
	Month      string `json:"month" binding:"required"`
	EmployeeID string `json:"employee_id"`
}

type EmployeeResult struct {
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name"`
	BaseSalary    string `json:"base_salary"`
	TotalWorkDays string `json:"total_work_days"`
	NetPay        string `json:"net_pay"`
	Created       bool   `json:"created"`
}

type EmployeeFailure struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Error        string `json:"error"`
}

type CalculateResponse struct {
	Message  string            `json:"message"`
	Results  []EmployeeResult  `json:"results"`
	Failures []EmployeeFailure `json:"failures,omitempty"`
}

type RecordResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name,omitempty"`
	Month         string `json:"month"`
	TotalWorkDays string `json:"total_work_days"`
	NetPay        string `json:"net_pay"`
	ComputedAt    string `json:"computed_at"`
}
