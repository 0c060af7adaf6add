package compensation_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"uni-payroll/internal/compensation"
	compensationerrors "uni-payroll/internal/compensation/errors"

	compensationMock "uni-payroll/internal/compensation/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   compensation.Service
	repo      *compensationMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	dbRedis, redisMock := redismock.NewClientMock()
	repo := compensationMock.NewMockRepository(ctrl)

	svc := compensation.NewService(db, repo, dbRedis, 0)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		redismock: redisMock,
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

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCompensationService_CreateAllowanceConfig(t *testing.T) {
	ctx := context.Background()
	universityID := uuid.New().String()
	actorID := uuid.New().String()

	t.Run("success invalidates cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			CreateAllowanceConfig(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cfg *compensation.AllowanceConfig) error {
				assert.Equal(t, "HOUSING", cfg.Code)
				assert.True(t, cfg.IsActive)
				assert.True(t, cfg.ContributesToNet)
				assert.True(t, cfg.DefaultAmount.Equal(decimal.NewFromInt(150)))
				return nil
			})
		deps.redismock.ExpectDel(compensation.GetAllowanceConfigsKey(universityID)).SetVal(1)

		resp, err := deps.service.CreateAllowanceConfig(ctx, universityID, actorID, compensation.UpsertAllowanceConfigRequest{
			RuleRequest: compensation.RuleRequest{
				Code:              "HOUSING",
				Name:              "Housing",
				CalculationMethod: "fixed_amount",
				DefaultAmount:     strPtr("150"),
				Frequency:         "monthly",
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "150.00", *resp.DefaultAmount)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("percentage without value", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.CreateAllowanceConfig(ctx, universityID, actorID, compensation.UpsertAllowanceConfigRequest{
			RuleRequest: compensation.RuleRequest{
				Code:              "MEAL",
				Name:              "Meal",
				CalculationMethod: "percentage_of_base",
				Frequency:         "per_period",
			},
		})

		assert.ErrorIs(t, err, compensationerrors.ErrPercentageRequired)
	})

	t.Run("deduction method rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.CreateAllowanceConfig(ctx, universityID, actorID, compensation.UpsertAllowanceConfigRequest{
			RuleRequest: compensation.RuleRequest{
				Code:              "MEAL",
				Name:              "Meal",
				CalculationMethod: "percentage_of_gross",
				Percentage:        strPtr("5"),
				Frequency:         "per_period",
			},
		})

		assert.ErrorIs(t, err, compensationerrors.ErrInvalidMethod)
	})

	t.Run("min above max", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.CreateAllowanceConfig(ctx, universityID, actorID, compensation.UpsertAllowanceConfigRequest{
			RuleRequest: compensation.RuleRequest{
				Code:              "MEAL",
				Name:              "Meal",
				CalculationMethod: "fixed_amount",
				DefaultAmount:     strPtr("10"),
				MinAmount:         strPtr("50"),
				MaxAmount:         strPtr("20"),
				Frequency:         "per_period",
			},
		})

		assert.ErrorIs(t, err, compensationerrors.ErrMinAboveMax)
	})

	t.Run("duplicate code", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			CreateAllowanceConfig(gomock.Any(), gomock.Any()).
			Return(errors.New(`duplicate key value violates unique constraint "uq_allowance_configs_code"`))

		_, err := deps.service.CreateAllowanceConfig(ctx, universityID, actorID, compensation.UpsertAllowanceConfigRequest{
			RuleRequest: compensation.RuleRequest{
				Code:              "HOUSING",
				Name:              "Housing",
				CalculationMethod: "fixed_amount",
				DefaultAmount:     strPtr("150"),
				Frequency:         "monthly",
			},
		})

		assert.ErrorIs(t, err, compensationerrors.ErrConfigCodeExists)
	})
}

func TestCompensationService_UpdateDeductionConfig(t *testing.T) {
	ctx := context.Background()
	universityID := uuid.New()
	configID := uuid.New()

	existing := func() *compensation.DeductionConfig {
		return &compensation.DeductionConfig{
			ID:           configID,
			UniversityID: universityID,
			RuleFields: compensation.RuleFields{
				Code:              "PENSION",
				Name:              "Pension",
				CalculationMethod: "percentage_of_gross",
				Percentage:        decPtr("5"),
				Frequency:         "per_period",
				IsMandatory:       true,
				IsActive:          true,
			},
		}
	}

	request := func(pct, name string) compensation.UpsertDeductionConfigRequest {
		return compensation.UpsertDeductionConfigRequest{
			RuleRequest: compensation.RuleRequest{
				Code:              "PENSION",
				Name:              name,
				CalculationMethod: "percentage_of_gross",
				Percentage:        strPtr(pct),
				Frequency:         "per_period",
				IsMandatory:       true,
			},
		}
	}

	t.Run("financial change on referenced config is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindDeductionConfigByID(gomock.Any(), universityID.String(), configID.String()).Return(existing(), nil)
		deps.repo.EXPECT().IsConfigReferenced(gomock.Any(), compensation.KindDeduction, configID.String()).Return(true, nil)

		_, err := deps.service.UpdateDeductionConfig(ctx, universityID.String(), configID.String(), request("6", "Pension"))

		assert.ErrorIs(t, err, compensationerrors.ErrConfigInUse)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("rename on referenced config is allowed", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindDeductionConfigByID(gomock.Any(), universityID.String(), configID.String()).Return(existing(), nil)
		deps.repo.EXPECT().IsConfigReferenced(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		deps.repo.EXPECT().UpdateDeductionConfig(gomock.Any(), gomock.Any()).Return(nil)
		deps.redismock.ExpectDel(compensation.GetDeductionConfigsKey(universityID.String())).SetVal(1)

		resp, err := deps.service.UpdateDeductionConfig(ctx, universityID.String(), configID.String(), request("5.0", "Pension Plan"))

		require.NoError(t, err)
		assert.Equal(t, "Pension Plan", resp.Name)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindDeductionConfigByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, sql.ErrNoRows)

		_, err := deps.service.UpdateDeductionConfig(ctx, universityID.String(), configID.String(), request("5", "Pension"))

		assert.Error(t, err)
	})
}

func TestCompensationService_GetAllowanceConfigs(t *testing.T) {
	ctx := context.Background()
	universityID := uuid.New()
	cacheKey := compensation.GetAllowanceConfigsKey(universityID.String())

	t.Run("cache hit", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached := []compensation.AllowanceConfigResponse{
			{RuleResponse: compensation.RuleResponse{ID: "cfg-1", Code: "HOUSING"}},
		}
		payload, _ := json.Marshal(cached)
		deps.redismock.ExpectGet(cacheKey).SetVal(string(payload))
		deps.repo.EXPECT().FindAllowanceConfigs(gomock.Any(), gomock.Any()).Times(0)

		resp, err := deps.service.GetAllowanceConfigs(ctx, universityID.String())

		require.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "HOUSING", resp[0].Code)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		configID := uuid.New()
		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().
			FindAllowanceConfigs(gomock.Any(), universityID.String()).
			Return([]compensation.AllowanceConfig{
				{
					ID:           configID,
					UniversityID: universityID,
					RuleFields: compensation.RuleFields{
						Code:              "HOUSING",
						Name:              "Housing",
						CalculationMethod: "fixed_amount",
						DefaultAmount:     decPtr("150"),
						Frequency:         "monthly",
						IsActive:          true,
					},
					ContributesToNet: true,
				},
			}, nil)

		expected := []compensation.AllowanceConfigResponse{
			{
				RuleResponse: compensation.RuleResponse{
					ID:                configID.String(),
					UniversityID:      universityID.String(),
					Code:              "HOUSING",
					Name:              "Housing",
					CalculationMethod: "fixed_amount",
					DefaultAmount:     strPtr("150.00"),
					Frequency:         "monthly",
					IsActive:          true,
				},
				ContributesToNet: true,
			},
		}
		payload, _ := json.Marshal(expected)
		deps.redismock.ExpectSet(cacheKey, payload, compensation.DefaultCacheTTL).SetVal("OK")

		resp, err := deps.service.GetAllowanceConfigs(ctx, universityID.String())

		require.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("repository error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().FindAllowanceConfigs(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		resp, err := deps.service.GetAllowanceConfigs(ctx, universityID.String())

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestCompensationService_AssignAllowance(t *testing.T) {
	ctx := context.Background()
	universityID := uuid.New().String()
	employeeID := uuid.New().String()
	configID := uuid.New()

	activeConfig := &compensation.AllowanceConfig{
		ID:         configID,
		RuleFields: compensation.RuleFields{Code: "HOUSING", Name: "Housing", IsActive: true},
	}
	req := compensation.AssignRuleRequest{
		ConfigID:      configID.String(),
		CustomAmount:  strPtr("200"),
		EffectiveFrom: "2024-01-01",
	}

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeBelongsToUniversity(gomock.Any(), universityID, employeeID).Return(true, nil)
		deps.repo.EXPECT().FindAllowanceConfigByID(gomock.Any(), universityID, configID.String()).Return(activeConfig, nil)
		deps.repo.EXPECT().
			HasOverlappingRange(gomock.Any(), compensation.KindAllowance, employeeID, configID.String(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		deps.repo.EXPECT().CreateEmployeeAllowance(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.AssignAllowance(ctx, universityID, employeeID, req)

		require.NoError(t, err)
		assert.Equal(t, "HOUSING", resp.Code)
		assert.Equal(t, "200.00", *resp.CustomAmount)
		assert.Equal(t, "2024-01-01", resp.EffectiveFrom)
		assert.Nil(t, resp.EffectiveTo)
		assert.True(t, resp.IsActive)
	})

	t.Run("overlapping range", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeBelongsToUniversity(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		deps.repo.EXPECT().FindAllowanceConfigByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(activeConfig, nil)
		deps.repo.EXPECT().
			HasOverlappingRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)
		deps.repo.EXPECT().CreateEmployeeAllowance(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.AssignAllowance(ctx, universityID, employeeID, req)

		assert.ErrorIs(t, err, compensationerrors.ErrOverlappingRange)
	})

	t.Run("employee from another university", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeBelongsToUniversity(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := deps.service.AssignAllowance(ctx, universityID, employeeID, req)

		assert.ErrorIs(t, err, compensationerrors.ErrEmployeeNotInUniversity)
	})

	t.Run("inverted range", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		bad := req
		bad.EffectiveTo = strPtr("2023-12-31")

		_, err := deps.service.AssignAllowance(ctx, universityID, employeeID, bad)

		assert.ErrorIs(t, err, compensationerrors.ErrInvalidDateRange)
	})

	t.Run("bad date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		bad := req
		bad.EffectiveFrom = "01/01/2024"

		_, err := deps.service.AssignAllowance(ctx, universityID, employeeID, bad)

		assert.ErrorIs(t, err, compensationerrors.ErrInvalidDateFormat)
	})
}

func TestCompensationService_DeactivateDeduction(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().DeactivateEmployeeDeduction(gomock.Any(), "uni", "row").Return(int64(0), nil)

		err := deps.service.DeactivateDeduction(ctx, "uni", "row")

		assert.ErrorIs(t, err, compensationerrors.ErrEmployeeRuleNotFound)
	})

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().DeactivateEmployeeDeduction(gomock.Any(), "uni", "row").Return(int64(1), nil)

		assert.NoError(t, deps.service.DeactivateDeduction(ctx, "uni", "row"))
	})
}

func TestCompensationService_Snapshot(t *testing.T) {
	ctx := context.Background()
	universityID := uuid.New().String()
	empA := uuid.New()
	empB := uuid.New()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	housing := &compensation.AllowanceConfig{
		ID:               uuid.New(),
		RuleFields:       compensation.RuleFields{Code: "HOUSING", CalculationMethod: "fixed_amount", DefaultAmount: decPtr("100"), Frequency: "per_period", IsActive: true},
		ContributesToNet: true,
	}
	union := &compensation.DeductionConfig{
		ID:              uuid.New(),
		RuleFields:      compensation.RuleFields{Code: "UNION", CalculationMethod: "fixed_amount", DefaultAmount: decPtr("15"), Frequency: "per_period", IsActive: true},
		AnnualMaxAmount: decPtr("500"),
	}
	pension := compensation.DeductionConfig{
		ID:         uuid.New(),
		RuleFields: compensation.RuleFields{Code: "PENSION", CalculationMethod: "percentage_of_gross", Percentage: decPtr("5"), Frequency: "per_period", IsMandatory: true, IsActive: true},
	}

	deps := setupServiceTest(t)
	defer deps.db.Close()

	ids := []string{empA.String(), empB.String()}
	deps.repo.EXPECT().FindEmployeeAllowances(gomock.Any(), universityID, ids).Return([]compensation.EmployeeAllowance{
		{ID: uuid.New(), EmployeeID: empA, Config: housing, OverrideFields: compensation.OverrideFields{EffectiveFrom: from, IsActive: true}},
		{ID: uuid.New(), EmployeeID: empA, Config: nil},
	}, nil)
	deps.repo.EXPECT().FindEmployeeDeductions(gomock.Any(), universityID, ids).Return([]compensation.EmployeeDeduction{
		{ID: uuid.New(), EmployeeID: empB, Config: union, OverrideFields: compensation.OverrideFields{EffectiveFrom: from, IsActive: false}},
	}, nil)
	deps.repo.EXPECT().FindMandatoryDeductionConfigs(gomock.Any(), universityID).Return([]compensation.DeductionConfig{pension}, nil)

	snap, err := deps.service.Snapshot(ctx, universityID, ids)

	require.NoError(t, err)
	require.Len(t, snap.Allowances[empA.String()], 1)
	assert.Equal(t, "HOUSING", snap.Allowances[empA.String()][0].Rule.Code)
	assert.True(t, snap.Allowances[empA.String()][0].Rule.ContributesToNet)
	assert.Empty(t, snap.Allowances[empB.String()])

	require.Len(t, snap.Deductions[empB.String()], 1)
	assert.False(t, snap.Deductions[empB.String()][0].IsActive)
	assert.True(t, snap.Deductions[empB.String()][0].Rule.AnnualMaxAmount.Equal(decimal.NewFromInt(500)))

	require.Len(t, snap.Mandatory, 1)
	assert.Equal(t, pension.ID.String(), snap.Mandatory[0].ConfigID)
}
