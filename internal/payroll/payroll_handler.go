package payroll

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"uni-payroll/internal/middleware"
	payrollerrors "uni-payroll/internal/payroll/errors"
	"uni-payroll/internal/shared/apperror"
	"uni-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("payroll.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.handler")
	}
	return &Handler{service: service, logger: l}
}

// NewHandlerWithRedis enables storing idempotent responses for run creation.
func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	h := NewHandler(service, logger...)
	h.rdb = rdb
	return h
}

func getActorID(c *gin.Context) string {
	actorID := c.GetString("employee_id")
	if actorID == "" {
		actorID = c.GetString("user_id_validated")
	}
	return actorID
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("payroll request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) CreatePeriod(c *gin.Context) {
	var req CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create payroll period validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CreatePeriod(c.Request.Context(), c.GetString("university_id"), getActorID(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetPeriods(c *gin.Context) {
	resp, err := h.service.GetPeriods(c.Request.Context(), c.GetString("university_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Paginate(c, resp)
}

func (h *Handler) GetPeriod(c *gin.Context) {
	resp, err := h.service.GetPeriod(c.Request.Context(), c.GetString("university_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ClosePeriod(c *gin.Context) {
	resp, err := h.service.ClosePeriod(c.Request.Context(), c.GetString("university_id"), getActorID(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CreateRun(c *gin.Context) {
	lockKey, _ := c.Get(middleware.IdempotencyLockKey)
	cacheKey, _ := c.Get(middleware.IdempotencyCacheKey)

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	universityID := c.GetString("university_id")
	actorID := getActorID(c)
	h.logger.Debug("http create payroll run", zap.String("university_id", universityID), zap.String("actor_id", actorID))

	var req CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CreateRun(c.Request.Context(), universityID, actorID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetRuns(c *gin.Context) {
	resp, err := h.service.GetRuns(c.Request.Context(), c.GetString("university_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Paginate(c, resp)
}

func (h *Handler) GetRun(c *gin.Context) {
	resp, err := h.service.GetRun(c.Request.Context(), c.GetString("university_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ProcessRun(c *gin.Context) {
	resp, err := h.service.ProcessRun(c.Request.Context(), c.GetString("university_id"), getActorID(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// ProcessRunAsync queues processing for the worker and returns at once.
func (h *Handler) ProcessRunAsync(c *gin.Context) {
	resp, err := h.service.RequestProcess(c.Request.Context(), c.GetString("university_id"), getActorID(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	status := http.StatusAccepted
	if IsCalculatedOrLater(resp.Status) {
		status = http.StatusOK
	}
	response.Success(c, status, resp, nil)
}

func (h *Handler) ApproveRun(c *gin.Context) {
	resp, err := h.service.ApproveRun(c.Request.Context(), c.GetString("university_id"), getActorID(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CancelRun(c *gin.Context) {
	var req CancelRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CancelRun(c.Request.Context(), c.GetString("university_id"), getActorID(c), c.Param("id"), req.Reason)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetPayments(c *gin.Context) {
	resp, err := h.service.GetPayments(c.Request.Context(), c.GetString("university_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Paginate(c, resp)
}

func (h *Handler) GetPayment(c *gin.Context) {
	resp, err := h.service.GetPayment(c.Request.Context(), c.GetString("university_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CreateAdjustment(c *gin.Context) {
	var req CreateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CreateAdjustment(c.Request.Context(), c.GetString("university_id"), getActorID(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetYTDEarnings(c *gin.Context) {
	year := time.Now().UTC().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.writeServiceError(c, payrollerrors.ErrInvalidYear)
			return
		}
		year = parsed
	}

	resp, err := h.service.GetYTDEarnings(c.Request.Context(), c.GetString("university_id"), c.Param("id"), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
