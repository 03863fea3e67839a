package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	employeeerrors "go-hrpay/internal/employee/errors"
	"go-hrpay/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const EmployeeOptionsKey = "employees:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error

	AddDependent(ctx context.Context, employeeID string, req CreateDependentRequest) (DependentResponse, error)
	GetDependents(ctx context.Context, employeeID string) ([]DependentResponse, error)
	RemoveDependent(ctx context.Context, employeeID, dependentID string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		s.logger.Warn("create employee invalid hire_date",
			zap.String("hire_date", req.HireDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}
	salary, err := decimal.NewFromString(req.Salary)
	if err != nil || salary.IsNegative() {
		return EmployeeResponse{}, employeeerrors.ErrInvalidSalary
	}

	empl := &Employee{
		ID:       uuid.New(),
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		HireDate: hireDate,
		JobID:    uuid.MustParse(req.JobID),
		Salary:   salary,
	}
	empl.DepartmentID = uuidPtrFromString(req.DepartmentID)

	if req.ManagerID != nil && *req.ManagerID != "" {
		managerID, err := s.resolveManagerID(ctx, *req.ManagerID)
		if err != nil {
			return EmployeeResponse{}, err
		}
		empl.ManagerID = managerID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return s.mapWithManagerName(ctx, *empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return s.mapListWithManagerNames(ctx, empls), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		empls, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(empls)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return s.mapWithManagerName(ctx, *empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		s.logger.Warn("update employee invalid hire_date",
			zap.String("hire_date", req.HireDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}
	salary, err := decimal.NewFromString(req.Salary)
	if err != nil || salary.IsNegative() {
		return EmployeeResponse{}, employeeerrors.ErrInvalidSalary
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.FullName = req.FullName
	empl.Email = req.Email
	empl.Phone = req.Phone
	empl.HireDate = hireDate
	empl.JobID = uuid.MustParse(req.JobID)
	empl.Salary = salary
	empl.DepartmentID = uuidPtrFromString(req.DepartmentID)

	empl.ManagerID = nil
	if req.ManagerID != nil && *req.ManagerID != "" {
		if *req.ManagerID == empl.ID.String() {
			return EmployeeResponse{}, employeeerrors.ErrInvalidManagerID
		}
		managerID, err := s.resolveManagerID(ctx, *req.ManagerID)
		if err != nil {
			return EmployeeResponse{}, err
		}
		empl.ManagerID = managerID
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update employee success", zap.String("employee_id", id))

	return s.mapWithManagerName(ctx, *empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) AddDependent(ctx context.Context, employeeID string, req CreateDependentRequest) (DependentResponse, error) {
	exists, err := s.repo.ExistsByID(ctx, employeeID)
	if err != nil {
		s.logger.Error("add dependent employee lookup failed", zap.Error(err))
		return DependentResponse{}, mapRepositoryError(err)
	}
	if !exists {
		return DependentResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	dep := &Dependent{
		ID:           uuid.New(),
		EmployeeID:   uuid.MustParse(employeeID),
		FullName:     req.FullName,
		Relationship: req.Relationship,
	}
	if err := s.repo.CreateDependent(ctx, dep); err != nil {
		s.logger.Error("add dependent persist failed", zap.Error(err))
		return DependentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("add dependent success",
		zap.String("employee_id", employeeID),
		zap.String("dependent_id", dep.ID.String()),
	)

	return mapDependentToResponse(*dep), nil
}

func (s *service) GetDependents(ctx context.Context, employeeID string) ([]DependentResponse, error) {
	exists, err := s.repo.ExistsByID(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if !exists {
		return nil, employeeerrors.ErrEmployeeNotFound
	}

	deps, err := s.repo.FindDependentsByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("get dependents failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]DependentResponse, len(deps))
	for i, d := range deps {
		res[i] = mapDependentToResponse(d)
	}
	return res, nil
}

func (s *service) RemoveDependent(ctx context.Context, employeeID, dependentID string) error {
	affected, err := s.repo.DeleteDependent(ctx, employeeID, dependentID)
	if err != nil {
		s.logger.Error("remove dependent failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if affected == 0 {
		return employeeerrors.ErrDependentNotFound
	}

	s.logger.Info("remove dependent success",
		zap.String("employee_id", employeeID),
		zap.String("dependent_id", dependentID),
	)
	return nil
}

func (s *service) resolveManagerID(ctx context.Context, raw string) (*uuid.UUID, error) {
	managerID, err := uuid.Parse(raw)
	if err != nil {
		return nil, employeeerrors.ErrInvalidManagerID
	}
	exists, err := s.repo.ExistsByID(ctx, managerID.String())
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if !exists {
		return nil, employeeerrors.ErrManagerNotFound
	}
	return &managerID, nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}

func (s *service) mapWithManagerName(ctx context.Context, empl Employee) EmployeeResponse {
	resp := mapToResponse(empl)
	if empl.ManagerID == nil {
		return resp
	}
	names, err := s.repo.FindNamesByIDs(ctx, []uuid.UUID{*empl.ManagerID})
	if err != nil {
		s.logger.Warn("resolve manager name failed", zap.Error(err))
		return resp
	}
	resp.ManagerName = names[*empl.ManagerID]
	return resp
}

func (s *service) mapListWithManagerNames(ctx context.Context, empls []Employee) []EmployeeResponse {
	ids := make([]uuid.UUID, 0, len(empls))
	seen := make(map[uuid.UUID]struct{}, len(empls))
	for _, e := range empls {
		if e.ManagerID == nil {
			continue
		}
		if _, ok := seen[*e.ManagerID]; ok {
			continue
		}
		seen[*e.ManagerID] = struct{}{}
		ids = append(ids, *e.ManagerID)
	}

	names, err := s.repo.FindNamesByIDs(ctx, ids)
	if err != nil {
		s.logger.Warn("resolve manager names failed", zap.Error(err))
		names = nil
	}

	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		resp := mapToResponse(e)
		if e.ManagerID != nil {
			resp.ManagerName = names[*e.ManagerID]
		}
		res[i] = resp
	}
	return res
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:       empl.ID.String(),
		FullName: empl.FullName,
		Email:    empl.Email,
		Phone:    empl.Phone,
		HireDate: empl.HireDate.Format("2006-01-02"),
		JobID:    empl.JobID.String(),
		Salary:   empl.Salary.StringFixed(2),
	}
	if empl.ManagerID != nil {
		resp.ManagerID = empl.ManagerID.String()
	}
	if empl.DepartmentID != nil {
		resp.DepartmentID = empl.DepartmentID.String()
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

func mapDependentToResponse(dep Dependent) DependentResponse {
	return DependentResponse{
		ID:           dep.ID.String(),
		EmployeeID:   dep.EmployeeID.String(),
		FullName:     dep.FullName,
		Relationship: dep.Relationship,
	}
}

func uuidPtrFromString(v *string) *uuid.UUID {
	if v == nil || *v == "" {
		return nil
	}
	id, err := uuid.Parse(*v)
	if err != nil {
		return nil
	}
	return &id
}
