package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrpay/internal/employee"
	employeeerrors "go-hrpay/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	CreateFn          func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetAllFn          func(ctx context.Context) ([]employee.EmployeeResponse, error)
	GetOptionsFn      func(ctx context.Context) ([]employee.EmployeeResponse, error)
	GetByIDFn         func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	UpdateFn          func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn          func(ctx context.Context, id string) error
	AddDependentFn    func(ctx context.Context, employeeID string, req employee.CreateDependentRequest) (employee.DependentResponse, error)
	GetDependentsFn   func(ctx context.Context, employeeID string) ([]employee.DependentResponse, error)
	RemoveDependentFn func(ctx context.Context, employeeID, dependentID string) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeEmployeeService) GetOptions(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.GetOptionsFn(ctx)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}
func (f *fakeEmployeeService) AddDependent(ctx context.Context, employeeID string, req employee.CreateDependentRequest) (employee.DependentResponse, error) {
	return f.AddDependentFn(ctx, employeeID, req)
}
func (f *fakeEmployeeService) GetDependents(ctx context.Context, employeeID string) ([]employee.DependentResponse, error) {
	return f.GetDependentsFn(ctx, employeeID)
}
func (f *fakeEmployeeService) RemoveDependent(ctx context.Context, employeeID, dependentID string) error {
	return f.RemoveDependentFn(ctx, employeeID, dependentID)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "Dewi Lestari", req.FullName)
				return employee.EmployeeResponse{ID: uuid.New().String(), FullName: req.FullName}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"full_name":"Dewi Lestari","email":"dewi@example.com","hire_date":"2024-06-01","job_id":"` + uuid.New().String() + `","salary":"8500000"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{"full_name":"Dewi"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate email maps to conflict", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyExists
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"full_name":"Dewi Lestari","email":"dewi@example.com","hire_date":"2024-06-01","job_id":"` + uuid.New().String() + `","salary":"8500000"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

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

func TestEmployeeHandler_GetAll(t *testing.T) {
	rows := []employee.EmployeeResponse{
		{ID: uuid.New().String(), FullName: "Budi Santoso", Email: "budi@example.com", HireDate: "2023-01-09"},
		{ID: uuid.New().String(), FullName: "Dewi Lestari", Email: "dewi@example.com", HireDate: "2024-06-01"},
		{ID: uuid.New().String(), FullName: "Agus Wijaya", Email: "agus@example.com", HireDate: "2022-03-14"},
	}
	svc := &fakeEmployeeService{
		GetAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
			return rows, nil
		},
	}

	t.Run("filters by q", func(t *testing.T) {
		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/employees?q=dewi", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var envelope struct {
			Data []employee.EmployeeResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Len(t, envelope.Data, 1)
		assert.Equal(t, "Dewi Lestari", envelope.Data[0].FullName)
	})

	t.Run("sorts by hire_date descending", func(t *testing.T) {
		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/employees?sort_by=hire_date&sort_dir=desc", nil)

		h.GetAll(c)

		var envelope struct {
			Data []employee.EmployeeResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Len(t, envelope.Data, 3)
		assert.Equal(t, "Dewi Lestari", envelope.Data[0].FullName)
		assert.Equal(t, "Agus Wijaya", envelope.Data[2].FullName)
	})

	t.Run("paginates", func(t *testing.T) {
		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/employees?page=2&page_size=2", nil)

		h.GetAll(c)

		var envelope struct {
			Data []employee.EmployeeResponse `json:"data"`
			Meta struct {
				Total      int64 `json:"total"`
				TotalPages int   `json:"totalPages"`
			} `json:"meta"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Len(t, envelope.Data, 1)
		assert.Equal(t, int64(3), envelope.Meta.Total)
		assert.Equal(t, 2, envelope.Meta.TotalPages)
	})
}

func TestEmployeeHandler_GetById_NotFound(t *testing.T) {
	svc := &fakeEmployeeService{
		GetByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		},
	}

	h := employee.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
	c.Request = httptest.NewRequest(http.MethodGet, "/employees/x", nil)

	h.GetById(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmployeeHandler_Dependents(t *testing.T) {
	employeeID := uuid.New().String()

	t.Run("add", func(t *testing.T) {
		svc := &fakeEmployeeService{
			AddDependentFn: func(ctx context.Context, gotEmployee string, req employee.CreateDependentRequest) (employee.DependentResponse, error) {
				assert.Equal(t, employeeID, gotEmployee)
				return employee.DependentResponse{ID: uuid.New().String(), FullName: req.FullName}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Params = gin.Params{{Key: "id", Value: employeeID}}
		body := `{"full_name":"Putri","relationship":"daughter"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/employees/x/dependents", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.AddDependent(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("remove missing dependent", func(t *testing.T) {
		svc := &fakeEmployeeService{
			RemoveDependentFn: func(ctx context.Context, gotEmployee, dependentID string) error {
				return employeeerrors.ErrDependentNotFound
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Params = gin.Params{
			{Key: "id", Value: employeeID},
			{Key: "dependentId", Value: uuid.New().String()},
		}
		c.Request = httptest.NewRequest(http.MethodDelete, "/employees/x/dependents/y", nil)

		h.RemoveDependent(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
