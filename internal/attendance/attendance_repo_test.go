package attendance

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

func TestRepository_FindEmployee_SkipsDeleted(t *testing.T) {
	gdb, mock := openGormDB(t)
	repo := NewRepository(gdb)
	employeeID := uuid.New().String()

	mock.ExpectQuery(`SELECT .* FROM "employees" WHERE id = .* AND "employees"\."deleted_at" IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name"}).
			AddRow(employeeID, "Budi Santoso"))

	emp, err := repo.FindEmployee(context.Background(), employeeID)
	assert.NoError(t, err)
	assert.Equal(t, "Budi Santoso", emp.FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SummarizeByRange_SkipsDeleted(t *testing.T) {
	gdb, mock := openGormDB(t)
	repo := NewRepository(gdb)

	mock.ExpectQuery(`FROM attendance_records AS a JOIN employees e ON e\.id = a\.employee_id WHERE e\.deleted_at IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"employee_id", "full_name", "total_work_days", "total_worked_hours", "record_count"}))

	rows, err := repo.SummarizeByRange(
		context.Background(), "",
		time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	)
	assert.NoError(t, err)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
