package compensation

import (
	"uni-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
) {
	allowanceConfigs := r.Group("/allowance-configs")
	allowanceConfigs.Use(middleware.AuthMiddleware())
	{
		allowanceConfigs.GET("", middleware.RBACAuthorize(rbacService, "compensation", "read"), h.GetAllowanceConfigs)
		allowanceConfigs.POST("", middleware.RBACAuthorize(rbacService, "compensation", "manage"), h.CreateAllowanceConfig)
		allowanceConfigs.PUT("/:id", middleware.RBACAuthorize(rbacService, "compensation", "manage"), h.UpdateAllowanceConfig)
	}

	deductionConfigs := r.Group("/deduction-configs")
	deductionConfigs.Use(middleware.AuthMiddleware())
	{
		deductionConfigs.GET("", middleware.RBACAuthorize(rbacService, "compensation", "read"), h.GetDeductionConfigs)
		deductionConfigs.POST("", middleware.RBACAuthorize(rbacService, "compensation", "manage"), h.CreateDeductionConfig)
		deductionConfigs.PUT("/:id", middleware.RBACAuthorize(rbacService, "compensation", "manage"), h.UpdateDeductionConfig)
	}

	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("/:id/compensation", middleware.RBACAuthorize(rbacService, "compensation", "read"), h.GetEmployeeCompensation)
		employees.POST("/:id/allowances", middleware.RBACAuthorize(rbacService, "compensation", "manage"), h.AssignAllowance)
		employees.POST("/:id/deductions", middleware.RBACAuthorize(rbacService, "compensation", "manage"), h.AssignDeduction)
	}

	r.POST("/employee-allowances/:id/deactivate",
		middleware.AuthMiddleware(),
		middleware.RBACAuthorize(rbacService, "compensation", "manage"),
		h.DeactivateAllowance,
	)
	r.POST("/employee-deductions/:id/deactivate",
		middleware.AuthMiddleware(),
		middleware.RBACAuthorize(rbacService, "compensation", "manage"),
		h.DeactivateDeduction,
	)
}
