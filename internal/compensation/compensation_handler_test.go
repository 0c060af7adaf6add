package compensation_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"uni-payroll/internal/compensation"
	compensationerrors "uni-payroll/internal/compensation/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompensationService struct {
	compensation.Service

	CreateAllowanceConfigFn   func(ctx context.Context, universityID, actorID string, req compensation.UpsertAllowanceConfigRequest) (compensation.AllowanceConfigResponse, error)
	AssignDeductionFn         func(ctx context.Context, universityID, employeeID string, req compensation.AssignRuleRequest) (compensation.EmployeeRuleResponse, error)
	DeactivateAllowanceFn     func(ctx context.Context, universityID, id string) error
	GetEmployeeCompensationFn func(ctx context.Context, universityID, employeeID string) (compensation.EmployeeCompensationResponse, error)
}

func (f *fakeCompensationService) CreateAllowanceConfig(ctx context.Context, universityID, actorID string, req compensation.UpsertAllowanceConfigRequest) (compensation.AllowanceConfigResponse, error) {
	return f.CreateAllowanceConfigFn(ctx, universityID, actorID, req)
}
func (f *fakeCompensationService) AssignDeduction(ctx context.Context, universityID, employeeID string, req compensation.AssignRuleRequest) (compensation.EmployeeRuleResponse, error) {
	return f.AssignDeductionFn(ctx, universityID, employeeID, req)
}
func (f *fakeCompensationService) DeactivateAllowance(ctx context.Context, universityID, id string) error {
	return f.DeactivateAllowanceFn(ctx, universityID, id)
}
func (f *fakeCompensationService) GetEmployeeCompensation(ctx context.Context, universityID, employeeID string) (compensation.EmployeeCompensationResponse, error) {
	return f.GetEmployeeCompensationFn(ctx, universityID, employeeID)
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestCompensationHandler_CreateAllowanceConfig(t *testing.T) {
	universityID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		svc := &fakeCompensationService{
			CreateAllowanceConfigFn: func(ctx context.Context, uid, actorID string, req compensation.UpsertAllowanceConfigRequest) (compensation.AllowanceConfigResponse, error) {
				assert.Equal(t, universityID, uid)
				assert.Equal(t, "HOUSING", req.Code)
				return compensation.AllowanceConfigResponse{RuleResponse: compensation.RuleResponse{ID: "cfg-1", Code: req.Code}}, nil
			},
		}
		h := compensation.NewHandler(svc)

		c, w := newTestContext(http.MethodPost, "/allowance-configs",
			`{"code":"HOUSING","name":"Housing","calculation_method":"fixed_amount","default_amount":"150","frequency":"monthly"}`)
		c.Set("university_id", universityID)

		h.CreateAllowanceConfig(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("binding error", func(t *testing.T) {
		h := compensation.NewHandler(&fakeCompensationService{})

		c, w := newTestContext(http.MethodPost, "/allowance-configs", `{"name":"Housing"}`)
		c.Set("university_id", universityID)

		h.CreateAllowanceConfig(c)

		var env apiEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("duplicate code maps to conflict", func(t *testing.T) {
		svc := &fakeCompensationService{
			CreateAllowanceConfigFn: func(ctx context.Context, uid, actorID string, req compensation.UpsertAllowanceConfigRequest) (compensation.AllowanceConfigResponse, error) {
				return compensation.AllowanceConfigResponse{}, compensationerrors.ErrConfigCodeExists
			},
		}
		h := compensation.NewHandler(svc)

		c, w := newTestContext(http.MethodPost, "/allowance-configs",
			`{"code":"HOUSING","name":"Housing","calculation_method":"fixed_amount","default_amount":"150","frequency":"monthly"}`)
		c.Set("university_id", universityID)

		h.CreateAllowanceConfig(c)

		var env apiEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "CONFLICT", env.Error.Code)
	})
}

func TestCompensationHandler_AssignDeduction(t *testing.T) {
	employeeID := uuid.New().String()
	configID := uuid.New().String()

	svc := &fakeCompensationService{
		AssignDeductionFn: func(ctx context.Context, uid, eid string, req compensation.AssignRuleRequest) (compensation.EmployeeRuleResponse, error) {
			assert.Equal(t, employeeID, eid)
			assert.Equal(t, configID, req.ConfigID)
			return compensation.EmployeeRuleResponse{}, compensationerrors.ErrOverlappingRange
		},
	}
	h := compensation.NewHandler(svc)

	c, w := newTestContext(http.MethodPost, "/employees/"+employeeID+"/deductions",
		`{"config_id":"`+configID+`","effective_from":"2024-01-01"}`)
	c.Params = gin.Params{{Key: "id", Value: employeeID}}
	c.Set("university_id", uuid.New().String())

	h.AssignDeduction(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCompensationHandler_DeactivateAllowance(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeCompensationService{
			DeactivateAllowanceFn: func(ctx context.Context, uid, id string) error {
				assert.Equal(t, "row-1", id)
				return nil
			},
		}
		h := compensation.NewHandler(svc)

		c, _ := newTestContext(http.MethodPost, "/employee-allowances/row-1/deactivate", "")
		c.Params = gin.Params{{Key: "id", Value: "row-1"}}

		h.DeactivateAllowance(c)

		assert.Equal(t, http.StatusNoContent, c.Writer.Status())
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeCompensationService{
			DeactivateAllowanceFn: func(ctx context.Context, uid, id string) error {
				return compensationerrors.ErrEmployeeRuleNotFound
			},
		}
		h := compensation.NewHandler(svc)

		c, w := newTestContext(http.MethodPost, "/employee-allowances/row-1/deactivate", "")
		c.Params = gin.Params{{Key: "id", Value: "row-1"}}

		h.DeactivateAllowance(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCompensationHandler_GetEmployeeCompensation(t *testing.T) {
	employeeID := uuid.New().String()
	svc := &fakeCompensationService{
		GetEmployeeCompensationFn: func(ctx context.Context, uid, eid string) (compensation.EmployeeCompensationResponse, error) {
			return compensation.EmployeeCompensationResponse{
				EmployeeID: eid,
				Allowances: []compensation.EmployeeRuleResponse{{Code: "HOUSING"}},
				Deductions: []compensation.EmployeeRuleResponse{},
			}, nil
		},
	}
	h := compensation.NewHandler(svc)

	c, w := newTestContext(http.MethodGet, "/employees/"+employeeID+"/compensation", "")
	c.Params = gin.Params{{Key: "id", Value: employeeID}}

	h.GetEmployeeCompensation(c)

	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Ok)

	var body compensation.EmployeeCompensationResponse
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, employeeID, body.EmployeeID)
	assert.Len(t, body.Allowances, 1)
}
