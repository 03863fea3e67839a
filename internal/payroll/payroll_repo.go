package payroll

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rec *Record) error
	Update(ctx context.Context, rec *Record) error
	FindByEmployeeAndMonth(ctx context.Context, employeeID string, month time.Time) (*Record, error)
	SumWorkDays(ctx context.Context, employeeID string, start, end time.Time) (decimal.Decimal, error)
	FindEmployees(ctx context.Context, employeeID string) ([]EmployeeRef, error)
	ListByMonth(ctx context.Context, month time.Time) ([]Record, error)
	ListByDepartmentAndMonth(ctx context.Context, departmentID string, month time.Time) ([]Record, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) Update(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *repository) FindByEmployeeAndMonth(ctx context.Context, employeeID string, month time.Time) (*Record, error) {
	var rec Record
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("month = ?", month.Format("2006-01-02")).
		First(&rec).Error
	return &rec, err
}

// SumWorkDays aggregates the attendance work-day fractions over
// [start, end). Records without a derived fraction contribute zero.
func (r *repository) SumWorkDays(ctx context.Context, employeeID string, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Table("attendance_records").
		Select("COALESCE(SUM(work_days), 0)").
		Where("employee_id = ?", employeeID).
		Where("work_date >= ? AND work_date < ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Scan(&total).Error
	return total, err
}

func (r *repository) FindEmployees(ctx context.Context, employeeID string) ([]EmployeeRef, error) {
	q := r.db.WithContext(ctx).Order("full_name ASC")
	if employeeID != "" {
		q = q.Where("id = ?", employeeID)
	}
	var emps []EmployeeRef
	err := q.Find(&emps).Error
	return emps, err
}

func (r *repository) ListByMonth(ctx context.Context, month time.Time) ([]Record, error) {
	var rows []Record
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("month = ?", month.Format("2006-01-02")).
		Order("computed_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListByDepartmentAndMonth(ctx context.Context, departmentID string, month time.Time) ([]Record, error) {
	var rows []Record
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Joins("JOIN employees e ON e.id = payroll_records.employee_id").
		Where("e.deleted_at IS NULL").
		Where("e.department_id = ?", departmentID).
		Where("payroll_records.month = ?", month.Format("2006-01-02")).
		Order("e.full_name ASC").
		Find(&rows).Error
	return rows, err
}
