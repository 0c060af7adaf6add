package timesheet

import (
	"uni-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes exposes the user-driven transitions only. Processed and paid
// are reached through the payroll run.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	timesheets := r.Group("/timesheets")
	timesheets.Use(middleware.AuthMiddleware())
	{
		timesheets.GET("", middleware.RBACAuthorize(rbacService, "timesheet", "read"), handler.GetAll)
		timesheets.GET("/:id", middleware.RBACAuthorize(rbacService, "timesheet", "read"), handler.GetById)
		timesheets.POST("", middleware.RBACAuthorize(rbacService, "timesheet", "create"), handler.Create)
		timesheets.PUT("/:id/entries", middleware.RBACAuthorize(rbacService, "timesheet", "create"), handler.ReplaceEntries)
		timesheets.POST("/:id/submit", middleware.RBACAuthorize(rbacService, "timesheet", "create"), handler.Submit)
		timesheets.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "timesheet", "approve"), handler.Approve)
		timesheets.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "timesheet", "approve"), handler.Reject)
	}
}
