package export

import (
	"context"
	"fmt"
	"time"

	exporterrors "go-hrpay/internal/export/errors"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=export_service.go -destination=mock/export_service_mock.go -package=mock
type Service interface {
	PayrollWorkbook(ctx context.Context, month string) (*excelize.File, string, error)
	AttendanceWorkbook(ctx context.Context, from, to string) (*excelize.File, string, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("export.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("export.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

var payrollHeader = []string{"Employee", "Email", "Month", "Total Work Days", "Net Pay", "Computed At"}

func (s *service) PayrollWorkbook(ctx context.Context, month string) (*excelize.File, string, error) {
	monthStart, err := s.monthOrCurrent(month)
	if err != nil {
		return nil, "", err
	}

	rows, err := s.repo.PayrollByMonth(ctx, monthStart)
	if err != nil {
		s.logger.Error("export payroll query failed", zap.Error(err))
		return nil, "", err
	}

	sheet := "Payroll " + monthStart.Format("2006-01")
	f, err := newWorkbook(sheet, payrollHeader)
	if err != nil {
		return nil, "", err
	}

	for i, row := range rows {
		computedAt := ""
		if row.ComputedAt != nil {
			computedAt = row.ComputedAt.Format("2006-01-02 15:04:05")
		}
		cells := []interface{}{
			row.EmployeeName,
			row.EmployeeEmail,
			row.Month.Format("2006-01"),
			row.TotalWorkDays.StringFixed(2),
			row.NetPay.StringFixed(2),
			computedAt,
		}
		if err := writeRow(f, sheet, i+2, cells); err != nil {
			return nil, "", err
		}
	}

	s.logger.Info("export payroll workbook built",
		zap.String("month", monthStart.Format("2006-01")),
		zap.Int("rows", len(rows)),
	)

	filename := fmt.Sprintf("payroll_%s.xlsx", monthStart.Format("2006-01"))
	return f, filename, nil
}

var attendanceHeader = []string{"Employee", "Work Date", "Check In", "Check Out", "Worked Hours", "Work Days"}

func (s *service) AttendanceWorkbook(ctx context.Context, from, to string) (*excelize.File, string, error) {
	start, end, err := parseRange(from, to)
	if err != nil {
		return nil, "", err
	}

	rows, err := s.repo.AttendanceByRange(ctx, start, end)
	if err != nil {
		s.logger.Error("export attendance query failed", zap.Error(err))
		return nil, "", err
	}

	sheet := "Attendance"
	f, err := newWorkbook(sheet, attendanceHeader)
	if err != nil {
		return nil, "", err
	}

	for i, row := range rows {
		cells := []interface{}{
			row.EmployeeName,
			row.WorkDate.Format("2006-01-02"),
			formatClock(row.CheckIn),
			formatClock(row.CheckOut),
			row.WorkedHours.StringFixed(2),
			row.WorkDays.StringFixed(2),
		}
		if err := writeRow(f, sheet, i+2, cells); err != nil {
			return nil, "", err
		}
	}

	s.logger.Info("export attendance workbook built",
		zap.String("from", start.Format("2006-01-02")),
		zap.String("to", end.AddDate(0, 0, -1).Format("2006-01-02")),
		zap.Int("rows", len(rows)),
	)

	filename := fmt.Sprintf("attendance_%s_%s.xlsx",
		start.Format("2006-01-02"),
		end.AddDate(0, 0, -1).Format("2006-01-02"),
	)
	return f, filename, nil
}

func (s *service) monthOrCurrent(month string) (time.Time, error) {
	if month == "" {
		now := s.now()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, exporterrors.ErrInvalidMonthFormat
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
}

// parseRange returns a half-open [start, end) interval covering both days.
func parseRange(from, to string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return time.Time{}, time.Time{}, exporterrors.ErrInvalidDateRange
	}
	last, err := time.Parse("2006-01-02", to)
	if err != nil {
		return time.Time{}, time.Time{}, exporterrors.ErrInvalidDateRange
	}
	if last.Before(start) {
		return time.Time{}, time.Time{}, exporterrors.ErrInvalidDateRange
	}
	return start, last.AddDate(0, 0, 1), nil
}

func newWorkbook(sheet string, header []string) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	if err := writeRow(f, sheet, 1, toCells(header)); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err == nil {
		endCol, _ := excelize.ColumnNumberToName(len(header))
		f.SetCellStyle(sheet, "A1", endCol+"1", headerStyle)
	}

	return f, nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	for i, v := range cells {
		cellRef, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cellRef, v); err != nil {
			return err
		}
	}
	return nil
}

func toCells(header []string) []interface{} {
	cells := make([]interface{}, len(header))
	for i, h := range header {
		cells[i] = h
	}
	return cells
}

func formatClock(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04:05")
}
