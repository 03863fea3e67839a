package app

import (
	"database/sql"

	"go-hrpay/internal/attendance"
	"go-hrpay/internal/department"
	"go-hrpay/internal/employee"
	"go-hrpay/internal/export"
	"go-hrpay/internal/job"
	"go-hrpay/internal/messaging/kafka"
	"go-hrpay/internal/org"
	"go-hrpay/internal/payroll"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	exportRepo := export.NewRepository(gormDB)
	jobRepo := job.NewRepository(gormDB)
	orgRepo := org.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)

	// --- Services ---
	attendanceService := attendance.NewService(db, attendanceRepo)
	departmentService := department.NewService(db, departmentRepo)
	employeeService := employee.NewService(db, employeeRepo, rdb)
	exportService := export.NewService(exportRepo)
	jobService := job.NewService(db, jobRepo)
	orgService := org.NewService(db, orgRepo)
	payrollService := payroll.NewServiceWithOutbox(db, payrollRepo, outboxRepo)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	exportHandler := export.NewHandler(exportService)
	jobHandler := job.NewHandler(jobService)
	orgHandler := org.NewHandler(orgService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		attendance.RegisterRoutes(api, attendanceHandler)
		department.RegisterRoutes(api, departmentHandler)
		employee.RegisterRoutes(api, employeeHandler)
		export.RegisterRoutes(api, exportHandler)
		job.RegisterRoutes(api, jobHandler)
		org.RegisterRoutes(api, orgHandler)
		payroll.RegisterRoutes(api, payrollHandler, rdb)
	}

	return nil
}
