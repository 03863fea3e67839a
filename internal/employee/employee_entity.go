package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Employee's manager is a nullable self-reference kept as a bare id; the
// manager's name is resolved by lookup at read time, never denormalized onto
// the row.
type Employee struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName     string          `gorm:"column:full_name;type:varchar(120);not null"`
	Email        string          `gorm:"column:email;type:varchar(100);uniqueIndex:uq_employee_email"`
	Phone        *string         `gorm:"column:phone;type:varchar(20)"`
	HireDate     time.Time       `gorm:"column:hire_date;type:date;not null"`
	JobID        uuid.UUID       `gorm:"column:job_id;type:uuid;not null"`
	Salary       decimal.Decimal `gorm:"column:salary;type:decimal(12,2);not null;default:0"`
	ManagerID    *uuid.UUID      `gorm:"column:manager_id;type:uuid"`
	DepartmentID *uuid.UUID      `gorm:"column:department_id;type:uuid;index"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"column:deleted_at;index"`
}

func (Employee) TableName() string {
	return "employees"
}

type Dependent struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID   uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index"`
	FullName     string    `gorm:"column:full_name;type:varchar(120);not null"`
	Relationship string    `gorm:"column:relationship;type:varchar(25);not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (Dependent) TableName() string {
	return "dependents"
}
