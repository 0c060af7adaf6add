package position_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"uni-payroll/internal/position"
	positionerrors "uni-payroll/internal/position/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakePositionService struct {
	CreateFn  func(ctx context.Context, universityID string, req position.CreatePositionRequest) (position.PositionResponse, error)
	GetAllFn  func(ctx context.Context, universityID string) ([]position.PositionResponse, error)
	GetByIDFn func(ctx context.Context, universityID, id string) (position.PositionResponse, error)
	UpdateFn  func(ctx context.Context, universityID, id string, req position.UpdatePositionRequest) (position.PositionResponse, error)
	DeleteFn  func(ctx context.Context, universityID, id string) error
}

func (f *fakePositionService) Create(ctx context.Context, universityID string, req position.CreatePositionRequest) (position.PositionResponse, error) {
	return f.CreateFn(ctx, universityID, req)
}
func (f *fakePositionService) GetAll(ctx context.Context, universityID string) ([]position.PositionResponse, error) {
	return f.GetAllFn(ctx, universityID)
}
func (f *fakePositionService) GetByID(ctx context.Context, universityID, id string) (position.PositionResponse, error) {
	return f.GetByIDFn(ctx, universityID, id)
}
func (f *fakePositionService) Update(ctx context.Context, universityID, id string, req position.UpdatePositionRequest) (position.PositionResponse, error) {
	return f.UpdateFn(ctx, universityID, id, req)
}
func (f *fakePositionService) Delete(ctx context.Context, universityID, id string) error {
	return f.DeleteFn(ctx, universityID, id)
}

// --- Test Create ---
func TestPositionHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		universityID := uuid.New().String()
		svc := &fakePositionService{
			CreateFn: func(ctx context.Context, uid string, req position.CreatePositionRequest) (position.PositionResponse, error) {
				assert.Equal(t, universityID, uid)
				assert.Equal(t, "hourly", req.DefaultPayRateType)
				if assert.NotNil(t, req.DefaultHourlyRate) {
					assert.Equal(t, "18.50", *req.DefaultHourlyRate)
				}
				return position.PositionResponse{ID: uuid.New().String(), Name: req.Name, UniversityID: uid, DefaultPayRateType: req.DefaultPayRateType, DefaultHourlyRate: req.DefaultHourlyRate}, nil
			},
		}

		h := position.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"Teaching Assistant","default_pay_rate_type":"hourly","default_hourly_rate":"18.50"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/positions", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("university_id", universityID)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got position.PositionResponse
		err := json.Unmarshal(env.Data, &got)
		assert.NoError(t, err)
		assert.Equal(t, universityID, got.UniversityID)
		assert.Equal(t, "hourly", got.DefaultPayRateType)
		assert.Equal(t, "Teaching Assistant", got.Name)
	})

	t.Run("validation error", func(t *testing.T) {
		h := position.NewHandler(&fakePositionService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/positions", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown pay rate type", func(t *testing.T) {
		h := position.NewHandler(&fakePositionService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/positions", strings.NewReader(`{"name":"TA","default_pay_rate_type":"commission"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakePositionService{
			CreateFn: func(ctx context.Context, uid string, req position.CreatePositionRequest) (position.PositionResponse, error) {
				return position.PositionResponse{}, errors.New("failed")
			},
		}

		h := position.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"HR"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/positions", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("university_id", uuid.New().String())

		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		if assert.NotNil(t, env.Error) {
			assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
			assert.Equal(t, "An unexpected error occurred", env.Error.Message)
		}
	})
}

// --- Test GetAll ---
func TestPositionHandler_GetAll(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		universityID := uuid.New().String()
		svc := &fakePositionService{
			GetAllFn: func(ctx context.Context, uid string) ([]position.PositionResponse, error) {
				assert.Equal(t, universityID, uid)
				return []position.PositionResponse{{ID: uuid.New().String(), Name: "HR", UniversityID: uid}}, nil
			},
		}

		h := position.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/positions", nil)
		c.Set("university_id", universityID)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got []position.PositionResponse
		err := json.Unmarshal(env.Data, &got)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, universityID, got[0].UniversityID)
	})
}

// --- Test GetByID ---
func TestPositionHandler_GetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		universityID := uuid.New().String()
		deptID := uuid.New().String()

		svc := &fakePositionService{
			GetByIDFn: func(ctx context.Context, uid, id string) (position.PositionResponse, error) {
				assert.Equal(t, universityID, uid)
				assert.Equal(t, deptID, id)
				return position.PositionResponse{ID: id, Name: "HR", UniversityID: uid}, nil
			},
		}

		h := position.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/positions/"+deptID, nil)
		c.Params = []gin.Param{{Key: "id", Value: deptID}}
		c.Set("university_id", universityID)

		h.GetById(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got position.PositionResponse
		err := json.Unmarshal(env.Data, &got)
		assert.NoError(t, err)
		assert.Equal(t, deptID, got.ID)
		assert.Equal(t, universityID, got.UniversityID)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakePositionService{
			GetByIDFn: func(ctx context.Context, uid, id string) (position.PositionResponse, error) {
				return position.PositionResponse{}, positionerrors.ErrPositionNotFound
			},
		}

		h := position.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/positions/x", nil)
		c.Params = []gin.Param{{Key: "id", Value: "x"}}

		h.GetById(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		if assert.NotNil(t, env.Error) {
			assert.Equal(t, "NOT_FOUND", env.Error.Code)
		}
	})
}

// --- Test Update ---
func TestPositionHandler_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		universityID := uuid.New().String()
		deptID := uuid.New().String()

		svc := &fakePositionService{
			UpdateFn: func(ctx context.Context, uid, id string, req position.UpdatePositionRequest) (position.PositionResponse, error) {
				assert.Equal(t, "salary", req.DefaultPayRateType)
				return position.PositionResponse{ID: id, Name: req.Name, UniversityID: uid, DefaultPayRateType: req.DefaultPayRateType}, nil
			},
		}

		h := position.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"Finance","default_pay_rate_type":"salary","default_salary_amount":"52000"}`
		c.Request = httptest.NewRequest(http.MethodPut, "/positions/"+deptID, strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: deptID}}
		c.Set("university_id", universityID)

		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got position.PositionResponse
		err := json.Unmarshal(env.Data, &got)
		assert.NoError(t, err)
		assert.Equal(t, deptID, got.ID)
		assert.Equal(t, "Finance", got.Name)
		assert.Equal(t, "salary", got.DefaultPayRateType)
	})
}

// --- Test Delete ---
func TestPositionHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		universityID := uuid.New().String()
		deptID := uuid.New().String()

		svc := &fakePositionService{
			DeleteFn: func(ctx context.Context, uid, id string) error {
				assert.Equal(t, universityID, uid)
				assert.Equal(t, deptID, id)
				return nil
			},
		}

		h := position.NewHandler(svc)
		r := gin.New()
		r.Use(func(c *gin.Context) {
			c.Set("university_id", universityID)
			c.Next()
		})
		r.DELETE("/positions/:id", h.Delete)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/positions/"+deptID, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("in use", func(t *testing.T) {
		svc := &fakePositionService{
			DeleteFn: func(ctx context.Context, uid, id string) error {
				return positionerrors.ErrPositionInUse
			},
		}

		h := position.NewHandler(svc)
		r := gin.New()
		r.DELETE("/positions/:id", h.Delete)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/positions/"+uuid.New().String(), nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
