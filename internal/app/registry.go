package app

import (
	"uni-payroll/internal/bootstrap"
	"uni-payroll/internal/compensation"
	"uni-payroll/internal/config"
	"uni-payroll/internal/employee"
	"uni-payroll/internal/messaging/kafka"
	"uni-payroll/internal/payroll"
	"uni-payroll/internal/position"
	"uni-payroll/internal/rbac"
	"uni-payroll/internal/rbac/infra"
	"uni-payroll/internal/shared/counter"
	"uni-payroll/internal/timesheet"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newCompensationService(cfg *config.Config, i *infrastructure) compensation.Service {
	return compensation.NewService(i.sqlDB, compensation.NewRepository(i.gormDB), i.rdb, cfg.Payroll.ConfigCacheTTL)
}

// newPayrollService builds the run orchestrator with its collaborators.
// The API, worker and consumer binaries share it.
func newPayrollService(
	cfg *config.Config,
	i *infrastructure,
	rules payroll.RuleSource,
	outbox kafka.OutboxRepository,
	audit bootstrap.AuditLogger,
) payroll.Service {
	ledger := timesheet.NewLedger(timesheet.NewRepository(i.gormDB))

	return payroll.NewService(
		i.sqlDB,
		payroll.NewRepository(i.gormDB),
		ledger,
		rules,
		counter.NewRepository(i.gormDB),
		outbox,
		payroll.NewRunLocker(i.rdb, cfg.Payroll.RunLockTTL),
		audit,
		payroll.Options{
			Workers:       cfg.Payroll.Workers,
			StaleRunAfter: cfg.Payroll.StaleRunAfter,
		},
	)
}

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	i *infrastructure,
	audit bootstrap.AuditLogger,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(i.gormDB)
	employeeRepo := employee.NewRepository(i.gormDB)
	outboxRepo := kafka.NewOutboxRepository(i.sqlDB)
	positionRepo := position.NewRepository(i.gormDB)
	timesheetRepo := timesheet.NewRepository(i.gormDB)
	counterRepo := counter.NewRepository(i.gormDB)

	// --- Services ---
	employeeService := employee.NewService(i.sqlDB, employeeRepo, counterRepo)

	enforcer, err := infra.NewEnforcer(cfg.App.RBACModel)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, employeeService)

	compensationService := newCompensationService(cfg, i)
	positionService := position.NewService(i.sqlDB, positionRepo, i.rdb)
	timesheetService := timesheet.NewService(i.sqlDB, timesheetRepo, employeeService, rbacService, outboxRepo, audit)
	payrollService := newPayrollService(cfg, i, compensationService, outboxRepo, audit)

	// --- Handlers ---
	compensationHandler := compensation.NewHandler(compensationService)
	employeeHandler := employee.NewHandler(employeeService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, i.rdb)
	positionHandler := position.NewHandler(positionService)
	rbacHandler := rbac.NewHandler(rbacService)
	timesheetHandler := timesheet.NewHandler(timesheetService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		compensation.RegisterRoutes(api, compensationHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService, zap.L())
		position.RegisterRoutes(api, positionHandler, rbacService)
		timesheet.RegisterRoutes(api, timesheetHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, payroll.RouteOptions{
			IdempotencyLockTTL: cfg.Payroll.IdempotencyLockTTL,
			ProcessRatePerSec:  cfg.Payroll.ProcessRatePerSec,
			ProcessRateBurst:   cfg.Payroll.ProcessRateBurst,
		}, i.rdb)
		rbac.RegisterRoutes(api, rbacHandler)
	}

	return nil
}
