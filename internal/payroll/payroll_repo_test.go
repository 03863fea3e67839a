package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func openGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db, PreferSimpleProtocol: true}), &gorm.Config{})
	assert.NoError(t, err)
	return gdb, mock
}

func TestRepository_FindEmployees_SkipsDeleted(t *testing.T) {
	gdb, mock := openGormDB(t)
	repo := NewRepository(gdb)

	mock.ExpectQuery(`SELECT .* FROM "employees" WHERE "employees"\."deleted_at" IS NULL ORDER BY full_name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email", "salary"}).
			AddRow(uuid.New().String(), "Dewi Lestari", "dewi@example.com", "8500000"))

	emps, err := repo.FindEmployees(context.Background(), "")
	assert.NoError(t, err)
	assert.Len(t, emps, 1)
	assert.Equal(t, "Dewi Lestari", emps[0].FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindEmployees_ByID_SkipsDeleted(t *testing.T) {
	gdb, mock := openGormDB(t)
	repo := NewRepository(gdb)
	employeeID := uuid.New().String()

	mock.ExpectQuery(`SELECT .* FROM "employees" WHERE id = .* AND "employees"\."deleted_at" IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email", "salary"}))

	emps, err := repo.FindEmployees(context.Background(), employeeID)
	assert.NoError(t, err)
	assert.Empty(t, emps)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByDepartmentAndMonth_SkipsDeleted(t *testing.T) {
	gdb, mock := openGormDB(t)
	repo := NewRepository(gdb)
	departmentID := uuid.New().String()
	month := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .* FROM "payroll_records" JOIN employees e ON e\.id = payroll_records\.employee_id WHERE e\.deleted_at IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	rows, err := repo.ListByDepartmentAndMonth(context.Background(), departmentID, month)
	assert.NoError(t, err)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
