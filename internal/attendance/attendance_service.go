package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	attendanceerrors "go-hrpay/internal/attendance/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	CheckIn(ctx context.Context, req CheckInRequest) (RecordResponse, error)
	CheckOut(ctx context.Context, req CheckOutRequest) (RecordResponse, error)
	MonthlySummary(ctx context.Context, employeeID, month string) ([]SummaryResponse, error)
	GetAll(ctx context.Context) ([]RecordResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, now: time.Now, logger: l}
}

// workDateOf truncates a timestamp to the server-local calendar day.
func workDateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (s *service) CheckIn(ctx context.Context, req CheckInRequest) (RecordResponse, error) {
	emp, err := s.lookupEmployee(ctx, req.EmployeeID)
	if err != nil {
		return RecordResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now()
	today := workDateOf(now)

	rec, err := qtx.FindByEmployeeAndDate(ctx, req.EmployeeID, today)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		rec = &Record{
			ID:         uuid.New(),
			EmployeeID: emp.ID,
			WorkDate:   today,
			CheckIn:    &now,
		}
		if err := qtx.Create(ctx, rec); err != nil {
			if !isUniqueViolation(err) {
				s.logger.Error("check-in persist failed", zap.Error(err))
				return RecordResponse{}, err
			}
			// A concurrent check-in won the insert; fall through to the
			// existing row instead of surfacing a constraint error.
			rec, err = qtx.FindByEmployeeAndDate(ctx, req.EmployeeID, today)
			if err != nil {
				return RecordResponse{}, err
			}
			if rec.CheckIn != nil {
				return RecordResponse{}, attendanceerrors.ErrAlreadyCheckedIn
			}
			rec.CheckIn = &now
			applyDerivedMetrics(rec)
			if err := qtx.Update(ctx, rec); err != nil {
				return RecordResponse{}, err
			}
		}
	case err != nil:
		return RecordResponse{}, err
	default:
		if rec.CheckIn != nil {
			return RecordResponse{}, attendanceerrors.ErrAlreadyCheckedIn
		}
		// Row exists without a check-in (e.g. seeded by an admin import).
		rec.CheckIn = &now
		applyDerivedMetrics(rec)
		if err := qtx.Update(ctx, rec); err != nil {
			return RecordResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return RecordResponse{}, err
	}

	s.logger.Info("check-in recorded",
		zap.String("employee_id", req.EmployeeID),
		zap.String("work_date", today.Format("2006-01-02")),
	)
	return mapToResponse(*rec, emp.FullName), nil
}

func (s *service) CheckOut(ctx context.Context, req CheckOutRequest) (RecordResponse, error) {
	emp, err := s.lookupEmployee(ctx, req.EmployeeID)
	if err != nil {
		return RecordResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now()
	today := workDateOf(now)

	rec, err := qtx.FindByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecordResponse{}, attendanceerrors.ErrNotCheckedIn
		}
		return RecordResponse{}, err
	}
	if rec.CheckIn == nil {
		return RecordResponse{}, attendanceerrors.ErrNotCheckedIn
	}
	if rec.CheckOut != nil {
		return RecordResponse{}, attendanceerrors.ErrAlreadyCheckedOut
	}
	if now.Before(*rec.CheckIn) {
		return RecordResponse{}, attendanceerrors.ErrCheckOutBeforeCheckIn
	}

	rec.CheckOut = &now
	applyDerivedMetrics(rec)

	if err := qtx.Update(ctx, rec); err != nil {
		s.logger.Error("check-out persist failed", zap.Error(err))
		return RecordResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return RecordResponse{}, err
	}

	s.logger.Info("check-out recorded",
		zap.String("employee_id", req.EmployeeID),
		zap.String("worked_hours", rec.WorkedHours.String()),
		zap.String("work_days", rec.WorkDays.String()),
	)
	return mapToResponse(*rec, emp.FullName), nil
}

func (s *service) MonthlySummary(ctx context.Context, employeeID, month string) ([]SummaryResponse, error) {
	if month == "" {
		month = s.now().Format("2006-01")
	}
	start, end, err := parseMonthRange(month)
	if err != nil {
		return nil, err
	}
	if employeeID != "" {
		if _, err := uuid.Parse(employeeID); err != nil {
			return nil, attendanceerrors.ErrInvalidEmployeeID
		}
	}

	rows, err := s.repo.SummarizeByRange(ctx, employeeID, start, end)
	if err != nil {
		s.logger.Error("monthly summary query failed", zap.Error(err))
		return nil, err
	}

	res := make([]SummaryResponse, len(rows))
	for i, row := range rows {
		res[i] = SummaryResponse{
			EmployeeID:    row.EmployeeID,
			EmployeeName:  row.FullName,
			TotalWorkDays: row.TotalWorkDays.StringFixed(2),
			TotalHours:    row.TotalHours.StringFixed(2),
			RecordCount:   row.RecordCount,
		}
	}
	return res, nil
}

func (s *service) GetAll(ctx context.Context) ([]RecordResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]RecordResponse, len(rows))
	for i, rec := range rows {
		name := ""
		if rec.Employee != nil {
			name = rec.Employee.FullName
		}
		res[i] = mapToResponse(rec, name)
	}
	return res, nil
}

func (s *service) lookupEmployee(ctx context.Context, employeeID string) (*EmployeeRef, error) {
	if employeeID == "" {
		return nil, attendanceerrors.ErrMissingEmployeeID
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}
	emp, err := s.repo.FindEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, attendanceerrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return emp, nil
}

// parseMonthRange expands YYYY-MM into [first day, first day of next month).
func parseMonthRange(month string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, attendanceerrors.ErrInvalidMonthFormat
	}
	return start, start.AddDate(0, 1, 0), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func mapToResponse(rec Record, employeeName string) RecordResponse {
	resp := RecordResponse{
		ID:           rec.ID.String(),
		EmployeeID:   rec.EmployeeID.String(),
		EmployeeName: employeeName,
		WorkDate:     rec.WorkDate.Format("2006-01-02"),
		WorkedHours:  rec.WorkedHours.StringFixed(2),
		WorkDays:     rec.WorkDays.StringFixed(2),
	}
	if rec.CheckIn != nil {
		v := rec.CheckIn.Format(time.RFC3339)
		resp.CheckIn = &v
	}
	if rec.CheckOut != nil {
		v := rec.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &v
	}
	return resp
}
