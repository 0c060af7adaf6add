package compensation

import (
	"net/http"

	"uni-payroll/internal/shared/apperror"
	"uni-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) CreateAllowanceConfig(c *gin.Context) {
	universityID := c.GetString("university_id")
	actorID := c.GetString("employee_id")

	var req UpsertAllowanceConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.CreateAllowanceConfig(c.Request.Context(), universityID, actorID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) UpdateAllowanceConfig(c *gin.Context) {
	universityID := c.GetString("university_id")
	id := c.Param("id")

	var req UpsertAllowanceConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.UpdateAllowanceConfig(c.Request.Context(), universityID, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAllowanceConfigs(c *gin.Context) {
	resp, err := h.service.GetAllowanceConfigs(c.Request.Context(), c.GetString("university_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CreateDeductionConfig(c *gin.Context) {
	universityID := c.GetString("university_id")
	actorID := c.GetString("employee_id")

	var req UpsertDeductionConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.CreateDeductionConfig(c.Request.Context(), universityID, actorID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) UpdateDeductionConfig(c *gin.Context) {
	universityID := c.GetString("university_id")
	id := c.Param("id")

	var req UpsertDeductionConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.UpdateDeductionConfig(c.Request.Context(), universityID, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetDeductionConfigs(c *gin.Context) {
	resp, err := h.service.GetDeductionConfigs(c.Request.Context(), c.GetString("university_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AssignAllowance(c *gin.Context) {
	universityID := c.GetString("university_id")
	employeeID := c.Param("id")

	var req AssignRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.AssignAllowance(c.Request.Context(), universityID, employeeID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) AssignDeduction(c *gin.Context) {
	universityID := c.GetString("university_id")
	employeeID := c.Param("id")

	var req AssignRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.AssignDeduction(c.Request.Context(), universityID, employeeID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) DeactivateAllowance(c *gin.Context) {
	if err := h.service.DeactivateAllowance(c.Request.Context(), c.GetString("university_id"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) DeactivateDeduction(c *gin.Context) {
	if err := h.service.DeactivateDeduction(c.Request.Context(), c.GetString("university_id"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) GetEmployeeCompensation(c *gin.Context) {
	resp, err := h.service.GetEmployeeCompensation(c.Request.Context(), c.GetString("university_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
