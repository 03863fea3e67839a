package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-hrpay/internal/events"
	"go-hrpay/internal/messaging/kafka"
	payrollerrors "go-hrpay/internal/payroll/errors"
	"go-hrpay/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	BulkRecompute(ctx context.Context, req CalculateRequest) (CalculateResponse, error)
	ByDepartment(ctx context.Context, departmentID, month string) ([]RecordResponse, error)
	ListByMonth(ctx context.Context, month string) ([]RecordResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		now:    time.Now,
		logger: l,
	}
}

func (s *service) BulkRecompute(ctx context.Context, req CalculateRequest) (CalculateResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	month, err := parseMonthKey(req.Month)
	if err != nil {
		return CalculateResponse{}, err
	}
	if req.EmployeeID != "" {
		if _, err := uuid.Parse(req.EmployeeID); err != nil {
			return CalculateResponse{}, payrollerrors.ErrInvalidEmployeeID
		}
	}

	employees, err := s.repo.FindEmployees(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("payroll run list employees failed", zap.String("request_id", rid), zap.Error(err))
		return CalculateResponse{}, err
	}
	if req.EmployeeID != "" && len(employees) == 0 {
		return CalculateResponse{}, payrollerrors.ErrEmployeeNotFound
	}

	s.logger.Info("payroll run started",
		zap.String("request_id", rid),
		zap.String("month", month.Format("2006-01")),
		zap.Int("employees", len(employees)),
	)

	resp := CalculateResponse{Results: make([]EmployeeResult, 0, len(employees))}
	for _, emp := range employees {
		rec, created, err := s.recomputeEmployee(ctx, emp, month)
		if err != nil {
			// One employee must not sink the whole run; record and move on.
			s.logger.Error("payroll recompute failed",
				zap.String("employee_id", emp.ID.String()),
				zap.Error(err),
			)
			resp.Failures = append(resp.Failures, EmployeeFailure{
				EmployeeID:   emp.ID.String(),
				EmployeeName: emp.FullName,
				Error:        err.Error(),
			})
			continue
		}
		resp.Results = append(resp.Results, EmployeeResult{
			EmployeeID:    emp.ID.String(),
			EmployeeName:  emp.FullName,
			BaseSalary:    emp.Salary.StringFixed(2),
			TotalWorkDays: rec.TotalWorkDays.StringFixed(2),
			NetPay:        rec.NetPay.StringFixed(2),
			Created:       created,
		})
	}

	resp.Message = fmt.Sprintf(
		"Payroll computed for %s: %d processed, %d failed",
		month.Format("01/2006"), len(resp.Results), len(resp.Failures),
	)
	s.logger.Info("payroll run finished",
		zap.String("request_id", rid),
		zap.Int("processed", len(resp.Results)),
		zap.Int("failed", len(resp.Failures)),
	)
	return resp, nil
}

// recomputeEmployee performs one employee's read-aggregate-write as a single
// transaction. Recomputing is idempotent: given unchanged attendance it
// rewrites the same totals. A creation race on (employee, month) falls back
// to updating the surviving row.
func (s *service) recomputeEmployee(ctx context.Context, emp EmployeeRef, month time.Time) (*Record, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	total, err := qtx.SumWorkDays(ctx, emp.ID.String(), month, month.AddDate(0, 1, 0))
	if err != nil {
		return nil, false, err
	}

	created := false
	rec, err := qtx.FindByEmployeeAndMonth(ctx, emp.ID.String(), month)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		rec = &Record{
			ID:            uuid.New(),
			EmployeeID:    emp.ID,
			Month:         month,
			TotalWorkDays: total,
			ComputedAt:    s.now(),
		}
		if total.IsPositive() {
			rec.NetPay = computeNetPay(total, emp.Salary)
		}
		if err := qtx.Create(ctx, rec); err != nil {
			if !isUniqueViolation(err) {
				return nil, false, err
			}
			rec, err = qtx.FindByEmployeeAndMonth(ctx, emp.ID.String(), month)
			if err != nil {
				return nil, false, err
			}
			applyRecompute(rec, total, emp.Salary)
			if err := qtx.Update(ctx, rec); err != nil {
				return nil, false, err
			}
		} else {
			created = true
		}
	case err != nil:
		return nil, false, err
	default:
		applyRecompute(rec, total, emp.Salary)
		if err := qtx.Update(ctx, rec); err != nil {
			return nil, false, err
		}
	}

	if s.outbox != nil {
		if err := s.enqueueComputedEvent(ctx, tx, emp, rec); err != nil {
			return nil, false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, false, err
	}
	return rec, created, nil
}

// applyRecompute overwrites the total and, only when the month has worked
// days, the net pay. A zero total leaves the previous net pay in place.
func applyRecompute(rec *Record, total, baseSalary decimal.Decimal) {
	rec.TotalWorkDays = total
	if total.IsPositive() {
		rec.NetPay = computeNetPay(total, baseSalary)
	}
}

func (s *service) enqueueComputedEvent(ctx context.Context, tx *sql.Tx, emp EmployeeRef, rec *Record) error {
	rid := contextutil.GetRequestID(ctx)
	event := events.PayrollComputedEvent{
		EventType:     "payroll_computed",
		RequestID:     rid,
		PayrollID:     rec.ID.String(),
		EmployeeID:    emp.ID.String(),
		EmployeeName:  emp.FullName,
		EmployeeEmail: emp.Email,
		Month:         rec.Month.Format("2006-01-02"),
		TotalWorkDays: rec.TotalWorkDays.StringFixed(2),
		NetPay:        rec.NetPay.StringFixed(2),
		OccurredAt:    time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, kafka.NewOutboxEvent(
		rid, "payroll", rec.ID.String(), event.EventType,
		events.PayrollComputedTopic, payload,
	))
}

func (s *service) ByDepartment(ctx context.Context, departmentID, month string) ([]RecordResponse, error) {
	if departmentID == "" {
		return nil, payrollerrors.ErrMissingDepartmentID
	}
	if _, err := uuid.Parse(departmentID); err != nil {
		return nil, payrollerrors.ErrInvalidDepartmentID
	}
	monthKey, err := s.monthOrCurrent(month)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListByDepartmentAndMonth(ctx, departmentID, monthKey)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) ListByMonth(ctx context.Context, month string) ([]RecordResponse, error) {
	monthKey, err := s.monthOrCurrent(month)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListByMonth(ctx, monthKey)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

// monthOrCurrent parses YYYY-MM, defaulting to the current month.
func (s *service) monthOrCurrent(month string) (time.Time, error) {
	if month == "" {
		now := s.now()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, payrollerrors.ErrInvalidMonthFormat
	}
	return t, nil
}

// parseMonthKey accepts any date and normalizes it to the first of its month.
func parseMonthKey(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, payrollerrors.ErrInvalidDateFormat
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func mapToResponse(rec Record) RecordResponse {
	resp := RecordResponse{
		ID:            rec.ID.String(),
		EmployeeID:    rec.EmployeeID.String(),
		Month:         rec.Month.Format("2006-01-02"),
		TotalWorkDays: rec.TotalWorkDays.StringFixed(2),
		NetPay:        rec.NetPay.StringFixed(2),
		ComputedAt:    rec.ComputedAt.Format(time.RFC3339),
	}
	if rec.Employee != nil {
		resp.EmployeeName = rec.Employee.FullName
	}
	return resp
}

func mapToListResponse(rows []Record) []RecordResponse {
	resp := make([]RecordResponse, len(rows))
	for i, rec := range rows {
		resp[i] = mapToResponse(rec)
	}
	return resp
}
