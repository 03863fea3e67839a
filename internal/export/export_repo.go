package export

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PayrollRow is the flattened read model behind the payroll sheet.
type PayrollRow struct {
	EmployeeName  string
	EmployeeEmail string
	Month         time.Time
	TotalWorkDays decimal.Decimal
	NetPay        decimal.Decimal
	ComputedAt    *time.Time
}

// AttendanceRow is the flattened read model behind the attendance sheet.
type AttendanceRow struct {
	EmployeeName string
	WorkDate     time.Time
	CheckIn      *time.Time
	CheckOut     *time.Time
	WorkedHours  decimal.Decimal
	WorkDays     decimal.Decimal
}

//go:generate mockgen -source=export_repo.go -destination=mock/export_repo_mock.go -package=mock
type Repository interface {
	PayrollByMonth(ctx context.Context, month time.Time) ([]PayrollRow, error)
	AttendanceByRange(ctx context.Context, start, end time.Time) ([]AttendanceRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) PayrollByMonth(ctx context.Context, month time.Time) ([]PayrollRow, error) {
	var rows []PayrollRow
	err := r.db.WithContext(ctx).
		Table("payroll_records AS p").
		Select(
			"e.full_name AS employee_name",
			"e.email AS employee_email",
			"p.month",
			"p.total_work_days",
			"p.net_pay",
			"p.computed_at",
		).
		Joins("JOIN employees e ON e.id = p.employee_id").
		Where("p.month = ?", month).
		Order("e.full_name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) AttendanceByRange(ctx context.Context, start, end time.Time) ([]AttendanceRow, error) {
	var rows []AttendanceRow
	err := r.db.WithContext(ctx).
		Table("attendance_records AS a").
		Select(
			"e.full_name AS employee_name",
			"a.work_date",
			"a.check_in",
			"a.check_out",
			"a.worked_hours",
			"a.work_days",
		).
		Joins("JOIN employees e ON e.id = a.employee_id").
		Where("a.work_date >= ? AND a.work_date < ?", start, end).
		Order("e.full_name ASC, a.work_date ASC").
		Scan(&rows).Error
	return rows, err
}
