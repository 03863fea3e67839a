package attendance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Record is one employee-day of attendance. WorkDate is pinned when the row
// is created: a check-out past midnight still belongs to the day the shift
// started, and the full duration is attributed to that day.
type Record struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID       `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_day"`
	WorkDate    time.Time       `gorm:"column:work_date;type:date;not null;uniqueIndex:uq_attendance_employee_day"`
	CheckIn     *time.Time      `gorm:"column:check_in;type:timestamptz"`
	CheckOut    *time.Time      `gorm:"column:check_out;type:timestamptz"`
	WorkedHours decimal.Decimal `gorm:"column:worked_hours;type:decimal(4,2);not null;default:0"`
	WorkDays    decimal.Decimal `gorm:"column:work_days;type:decimal(4,2);not null;default:0"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
	Employee    *EmployeeRef    `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Record) TableName() string {
	return "attendance_records"
}

// EmployeeRef carries the soft-delete column so deleted employees can no
// longer check in or out.
type EmployeeRef struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	FullName  string         `gorm:"column:full_name"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
