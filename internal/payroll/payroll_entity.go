package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Record is one employee-month of payroll. Month is always normalized to the
// first day of the calendar month and acts as the natural key together with
// the employee. ComputedAt is set once at creation and never touched by later
// recomputes.
type Record struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID    uuid.UUID       `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_payroll_employee_month"`
	Month         time.Time       `gorm:"column:month;type:date;not null;uniqueIndex:uq_payroll_employee_month"`
	TotalWorkDays decimal.Decimal `gorm:"column:total_work_days;type:decimal(6,2);not null;default:0"`
	NetPay        decimal.Decimal `gorm:"column:net_pay;type:decimal(12,2);not null;default:0"`
	ComputedAt    time.Time       `gorm:"column:computed_at;not null"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
	Employee      *EmployeeRef    `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Record) TableName() string {
	return "payroll_records"
}

// EmployeeRef carries the soft-delete column so deleted employees drop out
// of payroll runs the same way they drop out of the employee listings.
type EmployeeRef struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FullName     string          `gorm:"column:full_name"`
	Email        string          `gorm:"column:email"`
	Salary       decimal.Decimal `gorm:"column:salary"`
	DepartmentID *uuid.UUID      `gorm:"column:department_id"`
	DeletedAt    gorm.DeletedAt  `gorm:"column:deleted_at"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
