package department_test

import (
	"context"
	"database/sql"
	"testing"

	"go-hrpay/internal/department"
	departmenterrors "go-hrpay/internal/department/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeDepartmentRepo struct {
	WithTxFn      func(tx *sql.Tx) department.Repository
	CreateFn      func(ctx context.Context, dept *department.Department) error
	FindAllFn     func(ctx context.Context) ([]department.Department, error)
	FindByIDFn    func(ctx context.Context, id string) (*department.Department, error)
	FindMembersFn func(ctx context.Context, id string) ([]department.Member, error)
	UpdateFn      func(ctx context.Context, dept *department.Department) error
	DeleteFn      func(ctx context.Context, id string) error
}

func (f *fakeDepartmentRepo) WithTx(tx *sql.Tx) department.Repository { return f.WithTxFn(tx) }
func (f *fakeDepartmentRepo) Create(ctx context.Context, dept *department.Department) error {
	return f.CreateFn(ctx, dept)
}
func (f *fakeDepartmentRepo) FindAll(ctx context.Context) ([]department.Department, error) {
	return f.FindAllFn(ctx)
}
func (f *fakeDepartmentRepo) FindByID(ctx context.Context, id string) (*department.Department, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeDepartmentRepo) FindMembers(ctx context.Context, id string) ([]department.Member, error) {
	return f.FindMembersFn(ctx, id)
}
func (f *fakeDepartmentRepo) Update(ctx context.Context, dept *department.Department) error {
	return f.UpdateFn(ctx, dept)
}
func (f *fakeDepartmentRepo) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func newDepartmentRepo() *fakeDepartmentRepo {
	repo := &fakeDepartmentRepo{}
	repo.WithTxFn = func(tx *sql.Tx) department.Repository { return repo }
	return repo
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, sqlMock, _ := sqlmock.New()
		defer db.Close()

		repo := newDepartmentRepo()
		repo.CreateFn = func(ctx context.Context, dept *department.Department) error { return nil }

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		svc := department.NewService(db, repo)
		resp, err := svc.Create(ctx, department.CreateDepartmentRequest{Name: "Engineering"})
		assert.NoError(t, err)
		assert.Equal(t, "Engineering", resp.Name)
		assert.NotEmpty(t, resp.ID)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate name maps to conflict", func(t *testing.T) {
		db, sqlMock, _ := sqlmock.New()
		defer db.Close()

		repo := newDepartmentRepo()
		repo.CreateFn = func(ctx context.Context, dept *department.Department) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_department_name"}
		}

		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		svc := department.NewService(db, repo)
		_, err := svc.Create(ctx, department.CreateDepartmentRequest{Name: "Engineering"})
		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentAlreadyExists)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestDepartmentService_GetByID_NotFound(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := newDepartmentRepo()
	repo.FindByIDFn = func(ctx context.Context, id string) (*department.Department, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := department.NewService(db, repo)
	_, err := svc.GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
}

func TestDepartmentService_GetMembers(t *testing.T) {
	ctx := context.Background()

	t.Run("lists members of an existing department", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		deptID := uuid.New()
		repo := newDepartmentRepo()
		repo.FindByIDFn = func(ctx context.Context, id string) (*department.Department, error) {
			return &department.Department{ID: deptID, Name: "Engineering"}, nil
		}
		repo.FindMembersFn = func(ctx context.Context, id string) ([]department.Member, error) {
			assert.Equal(t, deptID.String(), id)
			return []department.Member{
				{ID: uuid.New(), FullName: "Budi Santoso", Email: "budi@example.com", JobID: uuid.New()},
				{ID: uuid.New(), FullName: "Dewi Lestari", Email: "dewi@example.com", JobID: uuid.New()},
			}, nil
		}

		svc := department.NewService(db, repo)
		members, err := svc.GetMembers(ctx, deptID.String())
		assert.NoError(t, err)
		assert.Len(t, members, 2)
		assert.Equal(t, "Budi Santoso", members[0].FullName)
	})

	t.Run("unknown department", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		repo := newDepartmentRepo()
		repo.FindByIDFn = func(ctx context.Context, id string) (*department.Department, error) {
			return nil, gorm.ErrRecordNotFound
		}

		svc := department.NewService(db, repo)
		_, err := svc.GetMembers(ctx, uuid.New().String())
		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})
}

func TestDepartmentService_Update(t *testing.T) {
	db, sqlMock, _ := sqlmock.New()
	defer db.Close()

	deptID := uuid.New()
	repo := newDepartmentRepo()
	repo.FindByIDFn = func(ctx context.Context, id string) (*department.Department, error) {
		return &department.Department{ID: deptID, Name: "Engineering"}, nil
	}
	var saved *department.Department
	repo.UpdateFn = func(ctx context.Context, dept *department.Department) error {
		saved = dept
		return nil
	}

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	svc := department.NewService(db, repo)
	resp, err := svc.Update(context.Background(), deptID.String(), department.UpdateDepartmentRequest{Name: "Platform Engineering"})
	assert.NoError(t, err)
	assert.Equal(t, "Platform Engineering", resp.Name)
	assert.NotNil(t, saved)
	assert.Equal(t, "Platform Engineering", saved.Name)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestDepartmentService_Delete_NotFound(t *testing.T) {
	db, sqlMock, _ := sqlmock.New()
	defer db.Close()

	repo := newDepartmentRepo()
	repo.FindByIDFn = func(ctx context.Context, id string) (*department.Department, error) {
		return nil, gorm.ErrRecordNotFound
	}

	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()

	svc := department.NewService(db, repo)
	err := svc.Delete(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
