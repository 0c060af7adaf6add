package employee

import (
	"uni-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.GetAll,
		)

		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.GetById,
		)

		employees.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "employee", "create"),
			handler.Create,
		)

		employees.PUT("/:id/status",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "employee", "update"),
			handler.UpdateStatus,
		)

		employees.GET("/:id/assignments",
			middleware.RBACAuthorize(rbacService, "assignment", "read"),
			handler.GetAssignments,
		)

		employees.POST("/:id/assignments",
			middleware.RBACAuthorize(rbacService, "assignment", "create"),
			handler.CreateAssignment,
		)
	}

	assignments := r.Group("/assignments")
	assignments.Use(middleware.AuthMiddleware())
	assignments.Use(middleware.ContextLogger(logger))
	{
		assignments.POST("/:id/approve",
			middleware.RBACAuthorize(rbacService, "assignment", "approve"),
			handler.ApproveAssignment,
		)
	}
}
