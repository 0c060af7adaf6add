package payroll_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"uni-payroll/internal/middleware"
	"uni-payroll/internal/payroll"
	payrollerrors "uni-payroll/internal/payroll/errors"
	payrollMock "uni-payroll/internal/payroll/mock"
	"uni-payroll/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type apiEnvelope struct {
	Ok   bool            `json:"ok"`
	Data json.RawMessage `json:"data"`
	Meta struct {
		Total int64 `json:"total"`
	} `json:"meta"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestMain(m *testing.M) {
	apperror.Init()
	os.Exit(m.Run())
}

func newTestContext(method, target, body string, universityID, employeeID string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set("university_id", universityID)
	c.Set("employee_id", employeeID)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestPayrollHandler_CreateRun(t *testing.T) {
	universityID := uuid.NewString()
	actorID := uuid.NewString()
	periodID := uuid.NewString()

	t.Run("success stores idempotent response and releases lock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := payrollMock.NewMockService(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		runID := uuid.NewString()

		resp := payroll.RunResponse{ID: runID, PayrollPeriodID: periodID, RunNumber: 3, Status: payroll.RunStatusPending}
		svc.EXPECT().
			CreateRun(gomock.Any(), universityID, actorID, payroll.CreateRunRequest{PayrollPeriodID: periodID}).
			Return(resp, nil)

		payload, _ := json.Marshal(resp)
		redisMock.ExpectSet("idemp:cache", payload, 24*time.Hour).SetVal("OK")
		redisMock.ExpectDel("idemp:cache:lock").SetVal(1)

		c, w := newTestContext(http.MethodPost, "/payroll-runs", `{"payroll_period_id":"`+periodID+`"}`, universityID, actorID)
		c.Set(middleware.IdempotencyCacheKey, "idemp:cache")
		c.Set(middleware.IdempotencyLockKey, "idemp:cache:lock")

		payroll.NewHandlerWithRedis(svc, rdb).CreateRun(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decode(t, w)
		assert.True(t, env.Ok)
		assert.Contains(t, string(env.Data), `"run_number":3`)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("duplicate run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := payrollMock.NewMockService(ctrl)

		svc.EXPECT().
			CreateRun(gomock.Any(), universityID, actorID, gomock.Any()).
			Return(payroll.RunResponse{}, payrollerrors.ErrDuplicateRun)

		c, w := newTestContext(http.MethodPost, "/payroll-runs", `{"payroll_period_id":"`+periodID+`"}`, universityID, actorID)

		payroll.NewHandler(svc).CreateRun(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, apperror.CodeDuplicateRun, decode(t, w).Error.Code)
	})

	t.Run("period id must be a uuid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := payrollMock.NewMockService(ctrl)

		c, w := newTestContext(http.MethodPost, "/payroll-runs", `{"payroll_period_id":"march"}`, universityID, actorID)

		payroll.NewHandler(svc).CreateRun(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", decode(t, w).Error.Code)
	})
}

func TestPayrollHandler_ProcessRun(t *testing.T) {
	universityID := uuid.NewString()
	actorID := uuid.NewString()
	runID := uuid.NewString()

	t.Run("busy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := payrollMock.NewMockService(ctrl)

		svc.EXPECT().ProcessRun(gomock.Any(), universityID, actorID, runID).Return(payroll.RunResponse{}, payrollerrors.ErrRunBusy)

		c, w := newTestContext(http.MethodPost, "/payroll-runs/"+runID+"/process", "", universityID, actorID)
		c.Params = gin.Params{{Key: "id", Value: runID}}

		payroll.NewHandler(svc).ProcessRun(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, apperror.CodeBusy, decode(t, w).Error.Code)
	})

	t.Run("configuration error carries details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := payrollMock.NewMockService(ctrl)
		employeeID := uuid.NewString()

		svc.EXPECT().ProcessRun(gomock.Any(), universityID, actorID, runID).Return(
			payroll.RunResponse{},
			payrollerrors.ErrRunConfiguration.WithDetails([]payroll.ConfigIssue{{EmployeeID: employeeID, Message: "hourly assignment has no hourly rate"}}),
		)

		c, w := newTestContext(http.MethodPost, "/payroll-runs/"+runID+"/process", "", universityID, actorID)
		c.Params = gin.Params{{Key: "id", Value: runID}}

		payroll.NewHandler(svc).ProcessRun(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), employeeID)
	})

	t.Run("async accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := payrollMock.NewMockService(ctrl)

		svc.EXPECT().RequestProcess(gomock.Any(), universityID, actorID, runID).
			Return(payroll.RunResponse{ID: runID, Status: payroll.RunStatusPending}, nil)

		c, w := newTestContext(http.MethodPost, "/payroll-runs/"+runID+"/process-async", "", universityID, actorID)
		c.Params = gin.Params{{Key: "id", Value: runID}}

		payroll.NewHandler(svc).ProcessRunAsync(c)

		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("async on calculated run answers ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := payrollMock.NewMockService(ctrl)

		svc.EXPECT().RequestProcess(gomock.Any(), universityID, actorID, runID).
			Return(payroll.RunResponse{ID: runID, Status: payroll.RunStatusCalculated}, nil)

		c, w := newTestContext(http.MethodPost, "/payroll-runs/"+runID+"/process-async", "", universityID, actorID)
		c.Params = gin.Params{{Key: "id", Value: runID}}

		payroll.NewHandler(svc).ProcessRunAsync(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestPayrollHandler_ApproveAndCancel(t *testing.T) {
	universityID := uuid.NewString()
	actorID := uuid.NewString()
	runID := uuid.NewString()

	t.Run("approve pending run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := payrollMock.NewMockService(ctrl)

		svc.EXPECT().ApproveRun(gomock.Any(), universityID, actorID, runID).
			Return(payroll.RunResponse{}, apperror.StateTransition("payroll run", payroll.RunStatusPending, payroll.RunStatusApproved))

		c, w := newTestContext(http.MethodPost, "/payroll-runs/"+runID+"/approve", "", universityID, actorID)
		c.Params = gin.Params{{Key: "id", Value: runID}}

		payroll.NewHandler(svc).ApproveRun(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decode(t, w)
		assert.Equal(t, apperror.CodeInvalidState, env.Error.Code)
		assert.Contains(t, env.Error.Message, "pending")
	})

	t.Run("cancel requires reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := payrollMock.NewMockService(ctrl)

		c, w := newTestContext(http.MethodPost, "/payroll-runs/"+runID+"/cancel", `{}`, universityID, actorID)
		c.Params = gin.Params{{Key: "id", Value: runID}}

		payroll.NewHandler(svc).CancelRun(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("cancel passes reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := payrollMock.NewMockService(ctrl)

		svc.EXPECT().CancelRun(gomock.Any(), universityID, actorID, runID, "wrong period").
			Return(payroll.RunResponse{ID: runID, Status: payroll.RunStatusCancelled}, nil)

		c, w := newTestContext(http.MethodPost, "/payroll-runs/"+runID+"/cancel", `{"reason":"wrong period"}`, universityID, actorID)
		c.Params = gin.Params{{Key: "id", Value: runID}}

		payroll.NewHandler(svc).CancelRun(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"cancelled"`)
	})
}

func TestPayrollHandler_GetPayments(t *testing.T) {
	universityID := uuid.NewString()
	runID := uuid.NewString()

	ctrl := gomock.NewController(t)
	svc := payrollMock.NewMockService(ctrl)

	svc.EXPECT().GetPayments(gomock.Any(), universityID, runID).Return([]payroll.PaymentResponse{
		{ID: "a"}, {ID: "b"}, {ID: "c"},
	}, nil)

	c, w := newTestContext(http.MethodGet, "/payroll-runs/"+runID+"/payments?page=2&page_size=2", "", universityID, uuid.NewString())
	c.Params = gin.Params{{Key: "id", Value: runID}}

	payroll.NewHandler(svc).GetPayments(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.Equal(t, int64(3), env.Meta.Total)
	var items []payroll.PaymentResponse
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "c", items[0].ID)
}

func TestPayrollHandler_GetYTDEarnings(t *testing.T) {
	universityID := uuid.NewString()
	employeeID := uuid.NewString()

	t.Run("explicit year", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := payrollMock.NewMockService(ctrl)

		svc.EXPECT().GetYTDEarnings(gomock.Any(), universityID, employeeID, 2025).
			Return(payroll.YTDResponse{EmployeeID: employeeID, Year: 2025, GrossPay: "700.00"}, nil)

		c, w := newTestContext(http.MethodGet, "/employees/"+employeeID+"/ytd?year=2025", "", universityID, uuid.NewString())
		c.Params = gin.Params{{Key: "id", Value: employeeID}}

		payroll.NewHandler(svc).GetYTDEarnings(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"gross_pay":"700.00"`)
	})

	t.Run("year is not a number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := payrollMock.NewMockService(ctrl)

		c, w := newTestContext(http.MethodGet, "/employees/"+employeeID+"/ytd?year=last", "", universityID, uuid.NewString())
		c.Params = gin.Params{{Key: "id", Value: employeeID}}

		payroll.NewHandler(svc).GetYTDEarnings(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPayrollHandler_CreateAdjustment(t *testing.T) {
	universityID := uuid.NewString()
	actorID := uuid.NewString()
	paymentID := uuid.NewString()

	t.Run("amount must be a decimal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := payrollMock.NewMockService(ctrl)

		c, w := newTestContext(http.MethodPost, "/payroll-payments/"+paymentID+"/adjustments", `{"amount":"ten","reason":"typo"}`, universityID, actorID)
		c.Params = gin.Params{{Key: "id", Value: paymentID}}

		payroll.NewHandler(svc).CreateAdjustment(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decode(t, w)
		assert.Equal(t, apperror.CodeValidation, env.Error.Code)
		assert.Equal(t, "Amount is invalid", env.Error.Message)
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := payrollMock.NewMockService(ctrl)

		svc.EXPECT().
			CreateAdjustment(gomock.Any(), universityID, actorID, paymentID, payroll.CreateAdjustmentRequest{Amount: "-12.5", Reason: "overpaid stipend"}).
			Return(payroll.AdjustmentResponse{ID: uuid.NewString(), Amount: "-12.50", Reason: "overpaid stipend"}, nil)

		c, w := newTestContext(http.MethodPost, "/payroll-payments/"+paymentID+"/adjustments", `{"amount":"-12.5","reason":"overpaid stipend"}`, universityID, actorID)
		c.Params = gin.Params{{Key: "id", Value: paymentID}}

		payroll.NewHandler(svc).CreateAdjustment(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"amount":"-12.50"`)
	})
}
