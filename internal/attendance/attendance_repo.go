package attendance

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SummaryRow is the per-employee aggregate over a date range.
type SummaryRow struct {
	EmployeeID    string          `gorm:"column:employee_id"`
	FullName      string          `gorm:"column:full_name"`
	TotalWorkDays decimal.Decimal `gorm:"column:total_work_days"`
	TotalHours    decimal.Decimal `gorm:"column:total_worked_hours"`
	RecordCount   int64           `gorm:"column:record_count"`
}

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rec *Record) error
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)
	FindAll(ctx context.Context) ([]Record, error)
	Update(ctx context.Context, rec *Record) error
	SummarizeByRange(ctx context.Context, employeeID string, start, end time.Time) ([]SummaryRow, error)
	FindEmployee(ctx context.Context, employeeID string) (*EmployeeRef, error)
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

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error) {
	var rec Record
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("work_date = ?", date.Format("2006-01-02")).
		First(&rec).Error
	return &rec, err
}

func (r *repository) FindAll(ctx context.Context) ([]Record, error) {
	var rows []Record
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("work_date DESC, check_in DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *repository) SummarizeByRange(ctx context.Context, employeeID string, start, end time.Time) ([]SummaryRow, error) {
	q := r.db.WithContext(ctx).
		Table("attendance_records AS a").
		Select(`a.employee_id::text AS employee_id,
			e.full_name,
			COALESCE(SUM(a.work_days), 0)    AS total_work_days,
			COALESCE(SUM(a.worked_hours), 0) AS total_worked_hours,
			COUNT(*)                         AS record_count`).
		Joins("JOIN employees e ON e.id = a.employee_id").
		Where("e.deleted_at IS NULL").
		Where("a.work_date >= ? AND a.work_date < ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Group("a.employee_id, e.full_name").
		Order("e.full_name ASC")

	if employeeID != "" {
		q = q.Where("a.employee_id = ?", employeeID)
	}

	var rows []SummaryRow
	err := q.Scan(&rows).Error
	return rows, err
}

func (r *repository) FindEmployee(ctx context.Context, employeeID string) (*EmployeeRef, error) {
	var emp EmployeeRef
	err := r.db.WithContext(ctx).First(&emp, "id = ?", employeeID).Error
	return &emp, err
}
