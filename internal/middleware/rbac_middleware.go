package middleware

import (
	"net/http"

	"uni-payroll/internal/domain"
	"uni-payroll/internal/shared/apperror"
	"uni-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type ContextKey string

const (
	ContextEmployeeID   ContextKey = "employee_id"
	ContextUniversityID ContextKey = "university_id"
)

// RBACService adalah interface lokal.
// Apapun package yang punya method Enforce(domain.EnforceRequest) bisa masuk ke sini.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID := c.GetString(string(ContextEmployeeID))
		universityID := c.GetString(string(ContextUniversityID))

		if employeeID == "" || universityID == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			EmployeeID:   employeeID,
			UniversityID: universityID,
			Resource:     resource,
			Action:       action,
		})
		if err != nil {
			response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, apperror.ErrInternal.Message, nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden, apperror.ErrForbidden.Message, gin.H{
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
