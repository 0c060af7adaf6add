package position_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"uni-payroll/internal/position"
	positionerrors "uni-payroll/internal/position/errors"
	"uni-payroll/internal/shared/apperror"

	positionMock "uni-payroll/internal/position/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	redisMock redismock.ClientMock
	service   position.Service
	repo      *positionMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	rdb, redisMock := redismock.NewClientMock()
	repo := positionMock.NewMockRepository(ctrl)

	svc := position.NewService(db, repo, rdb)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		redisMock: redisMock,
		service:   svc,
		repo:      repo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func strPtr(s string) *string { return &s }

func TestPositionService_Create(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	universityID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		req := position.CreatePositionRequest{
			Name: "Research Assistant",
			PayDefaults: position.PayDefaults{
				DefaultPayRateType: "hourly",
				DefaultHourlyRate:  strPtr("22.5"),
				MaxHoursPerWeek:    strPtr("20"),
			},
		}

		expectTx(t, deps.sqlMock, true)
		deps.redisMock.ExpectDel(position.GetPositionAllKey(universityID)).SetVal(1)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, p *position.Position) error {
				assert.Equal(t, req.Name, p.Name)
				assert.Equal(t, universityID, p.UniversityID.String())
				assert.True(t, p.DefaultHourlyRate.Equal(decimal.RequireFromString("22.5")))
				assert.True(t, p.MaxHoursPerWeek.Equal(decimal.NewFromInt(20)))
				return nil
			})

		resp, err := deps.service.Create(ctx, universityID, req)

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, req.Name, resp.Name)
		if assert.NotNil(t, resp.DefaultHourlyRate) {
			assert.Equal(t, "22.5", *resp.DefaultHourlyRate)
		}
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("negative default is rejected before any write", func(t *testing.T) {
		req := position.CreatePositionRequest{
			Name:        "Grader",
			PayDefaults: position.PayDefaults{DefaultHourlyRate: strPtr("-1")},
		}

		_, err := deps.service.Create(ctx, universityID, req)

		assert.ErrorIs(t, err, positionerrors.ErrInvalidPayDefaults)
	})

	t.Run("unknown stipend frequency", func(t *testing.T) {
		req := position.CreatePositionRequest{
			Name:        "Fellow",
			PayDefaults: position.PayDefaults{DefaultStipendFrequency: "fortnightly"},
		}

		_, err := deps.service.Create(ctx, universityID, req)

		assert.ErrorIs(t, err, positionerrors.ErrInvalidStipendFrequency)
	})

	t.Run("repo error -> rollback", func(t *testing.T) {
		req := position.CreatePositionRequest{Name: "HR"}

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New("db error"))

		_, err := deps.service.Create(ctx, universityID, req)

		assert.Error(t, err)
	})
}

func TestPositionService_GetAll(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	universityID := uuid.New().String()
	cacheKey := position.GetPositionAllKey(universityID)

	t.Run("cache hit", func(t *testing.T) {
		cached := []position.PositionResponse{{ID: "p-1", Name: "Lecturer"}}
		payload, _ := json.Marshal(cached)
		deps.redisMock.ExpectGet(cacheKey).SetVal(string(payload))

		resp, err := deps.service.GetAll(ctx, universityID)

		assert.NoError(t, err)
		assert.Equal(t, cached, resp)
	})

	t.Run("cache miss loads from repo", func(t *testing.T) {
		rate := decimal.RequireFromString("15")
		positions := []position.Position{{
			ID:                 uuid.New(),
			UniversityID:       uuid.MustParse(universityID),
			Name:               "Tutor",
			DefaultPayRateType: "hourly",
			DefaultHourlyRate:  &rate,
		}}

		deps.redisMock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().FindAllByUniversity(ctx, universityID).Return(positions, nil)

		hourly := "15"
		expected := []position.PositionResponse{{
			ID:                 positions[0].ID.String(),
			UniversityID:       universityID,
			Name:               "Tutor",
			DefaultPayRateType: "hourly",
			DefaultHourlyRate:  &hourly,
		}}
		payload, _ := json.Marshal(expected)
		deps.redisMock.ExpectSet(cacheKey, payload, position.DefaultCacheTTL).SetVal("OK")

		resp, err := deps.service.GetAll(ctx, universityID)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})
}

func TestPositionService_GetByID(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	universityID := uuid.New().String()
	targetID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		expected := &position.Position{
			ID:           uuid.MustParse(targetID),
			Name:         "HR",
			UniversityID: uuid.MustParse(universityID),
		}

		deps.repo.EXPECT().
			FindByIDAndUniversity(ctx, universityID, targetID).
			Return(expected, nil).
			Times(1)

		resp, err := deps.service.GetByID(ctx, universityID, targetID)

		assert.NoError(t, err)
		assert.Equal(t, targetID, resp.ID, "ID yang dikembalikan harus sama dengan targetID")
	})

	t.Run("not found", func(t *testing.T) {
		deps.repo.EXPECT().
			FindByIDAndUniversity(ctx, universityID, targetID).
			Return(nil, gorm.ErrRecordNotFound)

		resp, err := deps.service.GetByID(ctx, universityID, targetID)

		assert.Empty(t, resp.ID)
		assert.True(t, errors.Is(err, positionerrors.ErrPositionNotFound))
		assert.True(t, apperror.HasCode(err, apperror.CodeNotFound))
	})
}

func TestPositionService_Update(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	targetID := uuid.New()
	universityID := uuid.New()

	t.Run("success", func(t *testing.T) {
		req := position.UpdatePositionRequest{
			Name:        "Lecturer",
			PayDefaults: position.PayDefaults{DefaultPayRateType: "salary", DefaultSalaryAmount: strPtr("52000")},
		}

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

		existing := &position.Position{ID: targetID, UniversityID: universityID, Name: "Old"}
		deps.repo.EXPECT().
			FindByIDAndUniversity(ctx, universityID.String(), targetID.String()).
			Return(existing, nil)

		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, p *position.Position) error {
				assert.Equal(t, req.Name, p.Name)
				assert.Equal(t, "salary", p.DefaultPayRateType)
				return nil
			})

		deps.sqlMock.ExpectCommit()
		deps.redisMock.ExpectDel(position.GetPositionAllKey(universityID.String())).SetVal(1)

		resp, err := deps.service.Update(ctx, universityID.String(), targetID.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, req.Name, resp.Name)
		if assert.NotNil(t, resp.DefaultSalaryAmount) {
			assert.Equal(t, "52000.00", *resp.DefaultSalaryAmount)
		}
	})

	t.Run("error - position not found", func(t *testing.T) {
		req := position.UpdatePositionRequest{Name: "HR Updated"}

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

		deps.repo.EXPECT().
			FindByIDAndUniversity(ctx, universityID.String(), targetID.String()).
			Return(nil, gorm.ErrRecordNotFound)

		deps.sqlMock.ExpectRollback()

		resp, err := deps.service.Update(ctx, universityID.String(), targetID.String(), req)

		assert.ErrorIs(t, err, positionerrors.ErrPositionNotFound)
		assert.Empty(t, resp.ID)
	})
}

func TestPositionService_Delete(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	universityID := uuid.New().String()
	targetID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)
		deps.redisMock.ExpectDel(position.GetPositionAllKey(universityID)).SetVal(1)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().HasActiveAssignments(ctx, universityID, targetID).Return(false, nil)
		deps.repo.EXPECT().Delete(ctx, universityID, targetID).Return(nil)

		err := deps.service.Delete(ctx, universityID, targetID)

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("position used by an active assignment", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().HasActiveAssignments(ctx, universityID, targetID).Return(true, nil)

		err := deps.service.Delete(ctx, universityID, targetID)

		assert.ErrorIs(t, err, positionerrors.ErrPositionInUse)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("failure - db error", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().HasActiveAssignments(ctx, universityID, targetID).Return(false, nil)
		deps.repo.EXPECT().
			Delete(ctx, universityID, targetID).
			Return(errors.New("db error"))

		err := deps.service.Delete(ctx, universityID, targetID)

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
