package payroll

import (
	"time"

	"uni-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RouteOptions carries the knobs the payroll routes need from config.
type RouteOptions struct {
	IdempotencyLockTTL time.Duration
	ProcessRatePerSec  float64
	ProcessRateBurst   int
}

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	opts RouteOptions,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}
	if opts.ProcessRatePerSec <= 0 {
		opts.ProcessRatePerSec = 1
	}
	if opts.ProcessRateBurst < 1 {
		opts.ProcessRateBurst = 3
	}
	processLimit := middleware.RateLimitByUser(rate.Limit(opts.ProcessRatePerSec), opts.ProcessRateBurst)

	periods := r.Group("/payroll-periods")
	periods.Use(middleware.AuthMiddleware())
	{
		periods.GET("", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetPeriods)
		periods.GET("/:id", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetPeriod)
		periods.GET("/:id/runs", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetRuns)
		periods.POST("", middleware.RBACAuthorize(rbacService, "payroll", "create"), handler.CreatePeriod)
		periods.POST("/:id/close", middleware.RBACAuthorize(rbacService, "payroll", "approve"), handler.ClosePeriod)
	}

	runs := r.Group("/payroll-runs")
	runs.Use(middleware.AuthMiddleware())
	runs.Use(middleware.ContextLogger(zap.L()))
	{
		runs.GET("/:id", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetRun)
		runs.GET("/:id/payments", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetPayments)
		if redisClient != nil {
			runs.POST(
				"",
				middleware.Idempotency(redisClient, opts.IdempotencyLockTTL),
				middleware.RBACAuthorize(rbacService, "payroll", "create"),
				handler.CreateRun,
			)
		} else {
			runs.POST("", middleware.RBACAuthorize(rbacService, "payroll", "create"), handler.CreateRun)
		}
		runs.POST("/:id/process", processLimit, middleware.RBACAuthorize(rbacService, "payroll", "process"), handler.ProcessRun)
		runs.POST("/:id/process-async", processLimit, middleware.RBACAuthorize(rbacService, "payroll", "process"), handler.ProcessRunAsync)
		runs.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "payroll", "approve"), handler.ApproveRun)
		runs.POST("/:id/cancel", middleware.RBACAuthorize(rbacService, "payroll", "approve"), handler.CancelRun)
	}

	payments := r.Group("/payroll-payments")
	payments.Use(middleware.AuthMiddleware())
	{
		payments.GET("/:id", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetPayment)
		payments.POST("/:id/adjustments", middleware.RBACAuthorize(rbacService, "payroll", "adjust"), handler.CreateAdjustment)
	}

	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("/:id/ytd", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetYTDEarnings)
	}
}
