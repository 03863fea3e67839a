package attendance_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrpay/internal/attendance"
	attendanceerrors "go-hrpay/internal/attendance/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeAttendanceService struct {
	CheckInFn        func(ctx context.Context, req attendance.CheckInRequest) (attendance.RecordResponse, error)
	CheckOutFn       func(ctx context.Context, req attendance.CheckOutRequest) (attendance.RecordResponse, error)
	MonthlySummaryFn func(ctx context.Context, employeeID, month string) ([]attendance.SummaryResponse, error)
	GetAllFn         func(ctx context.Context) ([]attendance.RecordResponse, error)
}

func (f *fakeAttendanceService) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.RecordResponse, error) {
	return f.CheckInFn(ctx, req)
}
func (f *fakeAttendanceService) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.RecordResponse, error) {
	return f.CheckOutFn(ctx, req)
}
func (f *fakeAttendanceService) MonthlySummary(ctx context.Context, employeeID, month string) ([]attendance.SummaryResponse, error) {
	return f.MonthlySummaryFn(ctx, employeeID, month)
}
func (f *fakeAttendanceService) GetAll(ctx context.Context) ([]attendance.RecordResponse, error) {
	return f.GetAllFn(ctx)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAttendanceHandler_CheckIn(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		employeeID := uuid.New().String()
		svc := &fakeAttendanceService{
			CheckInFn: func(ctx context.Context, req attendance.CheckInRequest) (attendance.RecordResponse, error) {
				assert.Equal(t, employeeID, req.EmployeeID)
				return attendance.RecordResponse{ID: uuid.New().String(), EmployeeID: req.EmployeeID}, nil
			},
		}

		h := attendance.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"employee_id":"` + employeeID + `"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/attendances/check-in", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.CheckIn(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing employee_id", func(t *testing.T) {
		h := attendance.NewHandler(&fakeAttendanceService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/attendances/check-in", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.CheckIn(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate check-in maps to conflict", func(t *testing.T) {
		svc := &fakeAttendanceService{
			CheckInFn: func(ctx context.Context, req attendance.CheckInRequest) (attendance.RecordResponse, error) {
				return attendance.RecordResponse{}, attendanceerrors.ErrAlreadyCheckedIn
			},
		}

		h := attendance.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"employee_id":"` + uuid.New().String() + `"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/attendances/check-in", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.CheckIn(c)

		assert.Equal(t, http.StatusConflict, w.Code)

		var envelope struct {
			Ok    bool `json:"ok"`
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.False(t, envelope.Ok)
		assert.Equal(t, "CONFLICT", envelope.Error.Code)
	})
}

func TestAttendanceHandler_CheckOut(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeAttendanceService{
			CheckOutFn: func(ctx context.Context, req attendance.CheckOutRequest) (attendance.RecordResponse, error) {
				return attendance.RecordResponse{ID: uuid.New().String(), WorkedHours: "8.00", WorkDays: "1.00"}, nil
			},
		}

		h := attendance.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"employee_id":"` + uuid.New().String() + `"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/attendances/check-out", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.CheckOut(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not checked in maps to conflict", func(t *testing.T) {
		svc := &fakeAttendanceService{
			CheckOutFn: func(ctx context.Context, req attendance.CheckOutRequest) (attendance.RecordResponse, error) {
				return attendance.RecordResponse{}, attendanceerrors.ErrNotCheckedIn
			},
		}

		h := attendance.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"employee_id":"` + uuid.New().String() + `"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/attendances/check-out", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.CheckOut(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAttendanceHandler_Summary(t *testing.T) {
	t.Run("passes filters through", func(t *testing.T) {
		employeeID := uuid.New().String()
		svc := &fakeAttendanceService{
			MonthlySummaryFn: func(ctx context.Context, gotEmployee, gotMonth string) ([]attendance.SummaryResponse, error) {
				assert.Equal(t, employeeID, gotEmployee)
				assert.Equal(t, "2025-02", gotMonth)
				return []attendance.SummaryResponse{{EmployeeID: gotEmployee, TotalWorkDays: "20.00"}}, nil
			},
		}

		h := attendance.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/attendances/summary?employee_id="+employeeID+"&month=2025-02", nil)

		h.Summary(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid month maps to bad request", func(t *testing.T) {
		svc := &fakeAttendanceService{
			MonthlySummaryFn: func(ctx context.Context, employeeID, month string) ([]attendance.SummaryResponse, error) {
				return nil, attendanceerrors.ErrInvalidMonthFormat
			},
		}

		h := attendance.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/attendances/summary?month=bogus", nil)

		h.Summary(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAttendanceHandler_GetAll_Pagination(t *testing.T) {
	rows := make([]attendance.RecordResponse, 25)
	for i := range rows {
		rows[i] = attendance.RecordResponse{ID: uuid.New().String()}
	}
	svc := &fakeAttendanceService{
		GetAllFn: func(ctx context.Context) ([]attendance.RecordResponse, error) {
			return rows, nil
		},
	}

	h := attendance.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/attendances?page=3&page_size=10", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Ok   bool                        `json:"ok"`
		Data []attendance.RecordResponse `json:"data"`
		Meta struct {
			Total      int64 `json:"total"`
			Page       int   `json:"page"`
			TotalPages int   `json:"totalPages"`
		} `json:"meta"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Ok)
	assert.Len(t, envelope.Data, 5)
	assert.Equal(t, int64(25), envelope.Meta.Total)
	assert.Equal(t, 3, envelope.Meta.Page)
}
