package position

import (
	"uni-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes exposes job positions. Their pay defaults fill the gaps of
// assignments that carry no rate of their own, so writes need "manage".
func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
) {
	read := middleware.RBACAuthorize(rbacService, "position", "read")
	manage := middleware.RBACAuthorize(rbacService, "position", "manage")

	positions := r.Group("/positions")
	positions.Use(middleware.AuthMiddleware())
	{
		positions.GET("", read, h.GetAll)
		positions.GET("/:id", read, h.GetById)
		positions.POST("", manage, h.Create)
		positions.PUT("/:id", manage, h.Update)
		positions.DELETE("/:id", manage, h.Delete)
	}
}
