package job

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	joberrors "go-hrpay/internal/job/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=job_service.go -destination=mock/job_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateJobRequest) (JobResponse, error)
	GetAll(ctx context.Context) ([]JobResponse, error)
	GetByID(ctx context.Context, id string) (JobResponse, error)
	Update(ctx context.Context, id string, req UpdateJobRequest) (JobResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateJobRequest) (JobResponse, error) {
	minSalary, maxSalary, err := parseSalaryBounds(req.MinSalary, req.MaxSalary)
	if err != nil {
		return JobResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return JobResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	job := &Job{
		ID:        uuid.New(),
		Title:     req.Title,
		MinSalary: minSalary,
		MaxSalary: maxSalary,
	}

	if err := qtx.Create(ctx, job); err != nil {
		return JobResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return JobResponse{}, err
	}

	return mapToResponse(*job), nil
}

func (s *service) GetAll(ctx context.Context) ([]JobResponse, error) {
	jobs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]JobResponse, len(jobs))
	for i, j := range jobs {
		res[i] = mapToResponse(j)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (JobResponse, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return JobResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*job), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateJobRequest) (JobResponse, error) {
	minSalary, maxSalary, err := parseSalaryBounds(req.MinSalary, req.MaxSalary)
	if err != nil {
		return JobResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return JobResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	job, err := qtx.FindByID(ctx, id)
	if err != nil {
		return JobResponse{}, mapRepositoryError(err)
	}

	job.Title = req.Title
	job.MinSalary = minSalary
	job.MaxSalary = maxSalary

	if err := qtx.Update(ctx, job); err != nil {
		return JobResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return JobResponse{}, err
	}

	return mapToResponse(*job), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func parseSalaryBounds(rawMin, rawMax *string) (decimal.NullDecimal, decimal.NullDecimal, error) {
	var minSalary, maxSalary decimal.NullDecimal

	if rawMin != nil && *rawMin != "" {
		v, err := decimal.NewFromString(*rawMin)
		if err != nil || v.IsNegative() {
			return minSalary, maxSalary, joberrors.ErrInvalidSalary
		}
		minSalary = decimal.NewNullDecimal(v)
	}
	if rawMax != nil && *rawMax != "" {
		v, err := decimal.NewFromString(*rawMax)
		if err != nil || v.IsNegative() {
			return minSalary, maxSalary, joberrors.ErrInvalidSalary
		}
		maxSalary = decimal.NewNullDecimal(v)
	}
	if minSalary.Valid && maxSalary.Valid && minSalary.Decimal.GreaterThan(maxSalary.Decimal) {
		return minSalary, maxSalary, joberrors.ErrInvalidSalaryRange
	}

	return minSalary, maxSalary, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return joberrors.ErrJobNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_job_title" {
			return joberrors.ErrJobAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_job_title") {
		return joberrors.ErrJobAlreadyExists
	}

	return err
}

func mapToResponse(job Job) JobResponse {
	resp := JobResponse{
		ID:    job.ID.String(),
		Title: job.Title,
	}
	if job.MinSalary.Valid {
		resp.MinSalary = job.MinSalary.Decimal.StringFixed(2)
	}
	if job.MaxSalary.Valid {
		resp.MaxSalary = job.MaxSalary.Decimal.StringFixed(2)
	}
	return resp
}
