package events

import "time"

const PayrollComputedTopic = "hr.payroll.computed.v1"

// PayrollComputedEvent is emitted once per employee after a payroll run has
// persisted the month's record. It carries everything the email collaborator
// needs so the consumer stays read-free.
type PayrollComputedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	PayrollID     string    `json:"payroll_id"`
	EmployeeID    string    `json:"employee_id"`
	EmployeeName  string    `json:"employee_name"`
	EmployeeEmail string    `json:"employee_email"`
	Month         string    `json:"month"`
	TotalWorkDays string    `json:"total_work_days"`
	NetPay        string    `json:"net_pay"`
	OccurredAt    time.Time `json:"occurred_at"`
}
