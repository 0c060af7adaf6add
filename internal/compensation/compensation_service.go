package compensation

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	compensationerrors "uni-payroll/internal/compensation/errors"
	"uni-payroll/internal/paycalc"
	"uni-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	AllowanceConfigsKeyPrefix = "compensation:allowance-configs:"
	DeductionConfigsKeyPrefix = "compensation:deduction-configs:"

	DefaultCacheTTL = 30 * time.Minute
)

func GetAllowanceConfigsKey(universityID string) string {
	return AllowanceConfigsKeyPrefix + universityID
}

func GetDeductionConfigsKey(universityID string) string {
	return DeductionConfigsKeyPrefix + universityID
}

// Snapshot is the rule data a payroll run needs, keyed by employee id.
// Rows are returned regardless of is_active; the engine decides what applies.
type Snapshot struct {
	Allowances map[string][]paycalc.Override
	Deductions map[string][]paycalc.Override
	Mandatory  []paycalc.Rule
}

//go:generate mockgen -source=compensation_service.go -destination=mock/compensation_service_mock.go -package=mock
type Service interface {
	CreateAllowanceConfig(ctx context.Context, universityID, actorID string, req UpsertAllowanceConfigRequest) (AllowanceConfigResponse, error)
	UpdateAllowanceConfig(ctx context.Context, universityID, id string, req UpsertAllowanceConfigRequest) (AllowanceConfigResponse, error)
	GetAllowanceConfigs(ctx context.Context, universityID string) ([]AllowanceConfigResponse, error)

	CreateDeductionConfig(ctx context.Context, universityID, actorID string, req UpsertDeductionConfigRequest) (DeductionConfigResponse, error)
	UpdateDeductionConfig(ctx context.Context, universityID, id string, req UpsertDeductionConfigRequest) (DeductionConfigResponse, error)
	GetDeductionConfigs(ctx context.Context, universityID string) ([]DeductionConfigResponse, error)

	AssignAllowance(ctx context.Context, universityID, employeeID string, req AssignRuleRequest) (EmployeeRuleResponse, error)
	AssignDeduction(ctx context.Context, universityID, employeeID string, req AssignRuleRequest) (EmployeeRuleResponse, error)
	DeactivateAllowance(ctx context.Context, universityID, id string) error
	DeactivateDeduction(ctx context.Context, universityID, id string) error
	GetEmployeeCompensation(ctx context.Context, universityID, employeeID string) (EmployeeCompensationResponse, error)

	Snapshot(ctx context.Context, universityID string, employeeIDs []string) (Snapshot, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	rdb      *redis.Client
	sf       *singleflight.Group
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, cacheTTL time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("compensation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("compensation.service")
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &service{
		db:       db,
		repo:     repo,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		cacheTTL: cacheTTL,
		logger:   l,
	}
}

func (s *service) CreateAllowanceConfig(
	ctx context.Context,
	universityID, actorID string,
	req UpsertAllowanceConfigRequest,
) (AllowanceConfigResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create allowance config requested",
		zap.String("university_id", universityID),
		zap.String("code", req.Code),
	)

	universityUUID, err := uuid.Parse(universityID)
	if err != nil {
		return AllowanceConfigResponse{}, compensationerrors.ErrInvalidUniversityID
	}
	rule, err := parseRule(req.RuleRequest, paycalc.MethodPercentageOfBase)
	if err != nil {
		log.Warn("create allowance config validation failed", zap.Error(err))
		return AllowanceConfigResponse{}, err
	}

	cfg := &AllowanceConfig{
		ID:               uuid.New(),
		UniversityID:     universityUUID,
		RuleFields:       rule,
		ContributesToNet: req.ContributesToNet == nil || *req.ContributesToNet,
		CreatedBy:        uuidPtr(actorID),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create allowance config begin tx failed", zap.Error(err))
		return AllowanceConfigResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).CreateAllowanceConfig(ctx, cfg); err != nil {
		log.Error("create allowance config persist failed", zap.Error(err))
		return AllowanceConfigResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		log.Error("create allowance config commit failed", zap.Error(err))
		return AllowanceConfigResponse{}, err
	}

	s.invalidate(ctx, GetAllowanceConfigsKey(universityID))
	log.Info("create allowance config success", zap.String("config_id", cfg.ID.String()))
	return mapAllowanceConfig(*cfg), nil
}

func (s *service) UpdateAllowanceConfig(
	ctx context.Context,
	universityID, id string,
	req UpsertAllowanceConfigRequest,
) (AllowanceConfigResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	rule, err := parseRule(req.RuleRequest, paycalc.MethodPercentageOfBase)
	if err != nil {
		return AllowanceConfigResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update allowance config begin tx failed", zap.Error(err))
		return AllowanceConfigResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	cfg, err := qtx.FindAllowanceConfigByID(ctx, universityID, id)
	if err != nil {
		return AllowanceConfigResponse{}, mapRepositoryError(err)
	}

	if !sameFinancials(cfg.RuleFields, rule) {
		referenced, err := qtx.IsConfigReferenced(ctx, KindAllowance, id)
		if err != nil {
			log.Error("update allowance config reference check failed", zap.Error(err))
			return AllowanceConfigResponse{}, err
		}
		if referenced {
			log.Warn("update allowance config rejected, config in use", zap.String("config_id", id))
			return AllowanceConfigResponse{}, compensationerrors.ErrConfigInUse
		}
	}

	cfg.RuleFields = rule
	if req.ContributesToNet != nil {
		cfg.ContributesToNet = *req.ContributesToNet
	}
	if err := qtx.UpdateAllowanceConfig(ctx, cfg); err != nil {
		log.Error("update allowance config persist failed", zap.Error(err))
		return AllowanceConfigResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return AllowanceConfigResponse{}, err
	}

	s.invalidate(ctx, GetAllowanceConfigsKey(universityID))
	return mapAllowanceConfig(*cfg), nil
}

func (s *service) GetAllowanceConfigs(ctx context.Context, universityID string) ([]AllowanceConfigResponse, error) {
	cacheKey := GetAllowanceConfigsKey(universityID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []AllowanceConfigResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		cfgs, err := s.repo.FindAllowanceConfigs(ctx, universityID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]AllowanceConfigResponse, len(cfgs))
		for i, c := range cfgs {
			resp[i] = mapAllowanceConfig(c)
		}
		s.store(ctx, cacheKey, resp)
		return resp, nil
	})
	if err != nil {
		s.logger.Error("get allowance configs failed", zap.String("university_id", universityID), zap.Error(err))
		return nil, err
	}

	return v.([]AllowanceConfigResponse), nil
}

func (s *service) CreateDeductionConfig(
	ctx context.Context,
	universityID, actorID string,
	req UpsertDeductionConfigRequest,
) (DeductionConfigResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create deduction config requested",
		zap.String("university_id", universityID),
		zap.String("code", req.Code),
	)

	universityUUID, err := uuid.Parse(universityID)
	if err != nil {
		return DeductionConfigResponse{}, compensationerrors.ErrInvalidUniversityID
	}
	rule, err := parseRule(req.RuleRequest, paycalc.MethodPercentageOfGross)
	if err != nil {
		log.Warn("create deduction config validation failed", zap.Error(err))
		return DeductionConfigResponse{}, err
	}
	annualMax, err := parseAmount(req.AnnualMaxAmount)
	if err != nil {
		return DeductionConfigResponse{}, err
	}

	cfg := &DeductionConfig{
		ID:              uuid.New(),
		UniversityID:    universityUUID,
		RuleFields:      rule,
		AnnualMaxAmount: annualMax,
		CreatedBy:       uuidPtr(actorID),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create deduction config begin tx failed", zap.Error(err))
		return DeductionConfigResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).CreateDeductionConfig(ctx, cfg); err != nil {
		log.Error("create deduction config persist failed", zap.Error(err))
		return DeductionConfigResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		log.Error("create deduction config commit failed", zap.Error(err))
		return DeductionConfigResponse{}, err
	}

	s.invalidate(ctx, GetDeductionConfigsKey(universityID))
	log.Info("create deduction config success", zap.String("config_id", cfg.ID.String()))
	return mapDeductionConfig(*cfg), nil
}

func (s *service) UpdateDeductionConfig(
	ctx context.Context,
	universityID, id string,
	req UpsertDeductionConfigRequest,
) (DeductionConfigResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	rule, err := parseRule(req.RuleRequest, paycalc.MethodPercentageOfGross)
	if err != nil {
		return DeductionConfigResponse{}, err
	}
	annualMax, err := parseAmount(req.AnnualMaxAmount)
	if err != nil {
		return DeductionConfigResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update deduction config begin tx failed", zap.Error(err))
		return DeductionConfigResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	cfg, err := qtx.FindDeductionConfigByID(ctx, universityID, id)
	if err != nil {
		return DeductionConfigResponse{}, mapRepositoryError(err)
	}

	if !sameFinancials(cfg.RuleFields, rule) || !equalDecimal(cfg.AnnualMaxAmount, annualMax) {
		referenced, err := qtx.IsConfigReferenced(ctx, KindDeduction, id)
		if err != nil {
			log.Error("update deduction config reference check failed", zap.Error(err))
			return DeductionConfigResponse{}, err
		}
		if referenced {
			log.Warn("update deduction config rejected, config in use", zap.String("config_id", id))
			return DeductionConfigResponse{}, compensationerrors.ErrConfigInUse
		}
	}

	cfg.RuleFields = rule
	cfg.AnnualMaxAmount = annualMax
	if err := qtx.UpdateDeductionConfig(ctx, cfg); err != nil {
		log.Error("update deduction config persist failed", zap.Error(err))
		return DeductionConfigResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return DeductionConfigResponse{}, err
	}

	s.invalidate(ctx, GetDeductionConfigsKey(universityID))
	return mapDeductionConfig(*cfg), nil
}

func (s *service) GetDeductionConfigs(ctx context.Context, universityID string) ([]DeductionConfigResponse, error) {
	cacheKey := GetDeductionConfigsKey(universityID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []DeductionConfigResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		cfgs, err := s.repo.FindDeductionConfigs(ctx, universityID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]DeductionConfigResponse, len(cfgs))
		for i, c := range cfgs {
			resp[i] = mapDeductionConfig(c)
		}
		s.store(ctx, cacheKey, resp)
		return resp, nil
	})
	if err != nil {
		s.logger.Error("get deduction configs failed", zap.String("university_id", universityID), zap.Error(err))
		return nil, err
	}

	return v.([]DeductionConfigResponse), nil
}

func (s *service) AssignAllowance(
	ctx context.Context,
	universityID, employeeID string,
	req AssignRuleRequest,
) (EmployeeRuleResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	ids, fields, err := parseAssignRequest(universityID, employeeID, req)
	if err != nil {
		return EmployeeRuleResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("assign allowance begin tx failed", zap.Error(err))
		return EmployeeRuleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := s.checkEmployee(ctx, qtx, universityID, employeeID); err != nil {
		return EmployeeRuleResponse{}, err
	}

	cfg, err := qtx.FindAllowanceConfigByID(ctx, universityID, req.ConfigID)
	if err != nil {
		return EmployeeRuleResponse{}, mapRepositoryError(err)
	}
	if !cfg.IsActive {
		return EmployeeRuleResponse{}, compensationerrors.ErrConfigInactive
	}

	overlap, err := qtx.HasOverlappingRange(ctx, KindAllowance, employeeID, req.ConfigID, fields.EffectiveFrom, fields.EffectiveTo)
	if err != nil {
		log.Error("assign allowance overlap check failed", zap.Error(err))
		return EmployeeRuleResponse{}, err
	}
	if overlap {
		log.Warn("assign allowance overlapping range",
			zap.String("employee_id", employeeID),
			zap.String("config_id", req.ConfigID),
		)
		return EmployeeRuleResponse{}, compensationerrors.ErrOverlappingRange
	}

	row := &EmployeeAllowance{
		ID:                uuid.New(),
		UniversityID:      ids.university,
		EmployeeID:        ids.employee,
		AllowanceConfigID: ids.config,
		OverrideFields:    fields,
	}
	if err := qtx.CreateEmployeeAllowance(ctx, row); err != nil {
		log.Error("assign allowance persist failed", zap.Error(err))
		return EmployeeRuleResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return EmployeeRuleResponse{}, err
	}

	log.Info("assign allowance success",
		zap.String("employee_id", employeeID),
		zap.String("employee_allowance_id", row.ID.String()),
	)
	row.Config = cfg
	return mapEmployeeAllowance(*row), nil
}

func (s *service) AssignDeduction(
	ctx context.Context,
	universityID, employeeID string,
	req AssignRuleRequest,
) (EmployeeRuleResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	ids, fields, err := parseAssignRequest(universityID, employeeID, req)
	if err != nil {
		return EmployeeRuleResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("assign deduction begin tx failed", zap.Error(err))
		return EmployeeRuleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := s.checkEmployee(ctx, qtx, universityID, employeeID); err != nil {
		return EmployeeRuleResponse{}, err
	}

	cfg, err := qtx.FindDeductionConfigByID(ctx, universityID, req.ConfigID)
	if err != nil {
		return EmployeeRuleResponse{}, mapRepositoryError(err)
	}
	if !cfg.IsActive {
		return EmployeeRuleResponse{}, compensationerrors.ErrConfigInactive
	}

	overlap, err := qtx.HasOverlappingRange(ctx, KindDeduction, employeeID, req.ConfigID, fields.EffectiveFrom, fields.EffectiveTo)
	if err != nil {
		log.Error("assign deduction overlap check failed", zap.Error(err))
		return EmployeeRuleResponse{}, err
	}
	if overlap {
		log.Warn("assign deduction overlapping range",
			zap.String("employee_id", employeeID),
			zap.String("config_id", req.ConfigID),
		)
		return EmployeeRuleResponse{}, compensationerrors.ErrOverlappingRange
	}

	row := &EmployeeDeduction{
		ID:                uuid.New(),
		UniversityID:      ids.university,
		EmployeeID:        ids.employee,
		DeductionConfigID: ids.config,
		OverrideFields:    fields,
	}
	if err := qtx.CreateEmployeeDeduction(ctx, row); err != nil {
		log.Error("assign deduction persist failed", zap.Error(err))
		return EmployeeRuleResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return EmployeeRuleResponse{}, err
	}

	log.Info("assign deduction success",
		zap.String("employee_id", employeeID),
		zap.String("employee_deduction_id", row.ID.String()),
	)
	row.Config = cfg
	return mapEmployeeDeduction(*row), nil
}

func (s *service) DeactivateAllowance(ctx context.Context, universityID, id string) error {
	n, err := s.repo.DeactivateEmployeeAllowance(ctx, universityID, id)
	if err != nil {
		s.logger.Error("deactivate allowance failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if n == 0 {
		return compensationerrors.ErrEmployeeRuleNotFound
	}
	return nil
}

func (s *service) DeactivateDeduction(ctx context.Context, universityID, id string) error {
	n, err := s.repo.DeactivateEmployeeDeduction(ctx, universityID, id)
	if err != nil {
		s.logger.Error("deactivate deduction failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if n == 0 {
		return compensationerrors.ErrEmployeeRuleNotFound
	}
	return nil
}

func (s *service) GetEmployeeCompensation(ctx context.Context, universityID, employeeID string) (EmployeeCompensationResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return EmployeeCompensationResponse{}, compensationerrors.ErrInvalidEmployeeID
	}

	allowances, err := s.repo.FindEmployeeAllowances(ctx, universityID, []string{employeeID})
	if err != nil {
		return EmployeeCompensationResponse{}, mapRepositoryError(err)
	}
	deductions, err := s.repo.FindEmployeeDeductions(ctx, universityID, []string{employeeID})
	if err != nil {
		return EmployeeCompensationResponse{}, mapRepositoryError(err)
	}

	resp := EmployeeCompensationResponse{
		EmployeeID: employeeID,
		Allowances: make([]EmployeeRuleResponse, 0, len(allowances)),
		Deductions: make([]EmployeeRuleResponse, 0, len(deductions)),
	}
	for _, a := range allowances {
		resp.Allowances = append(resp.Allowances, mapEmployeeAllowance(a))
	}
	for _, d := range deductions {
		resp.Deductions = append(resp.Deductions, mapEmployeeDeduction(d))
	}
	return resp, nil
}

func (s *service) Snapshot(ctx context.Context, universityID string, employeeIDs []string) (Snapshot, error) {
	snap := Snapshot{
		Allowances: make(map[string][]paycalc.Override, len(employeeIDs)),
		Deductions: make(map[string][]paycalc.Override, len(employeeIDs)),
	}
	if len(employeeIDs) == 0 {
		return snap, nil
	}

	allowances, err := s.repo.FindEmployeeAllowances(ctx, universityID, employeeIDs)
	if err != nil {
		return Snapshot{}, err
	}
	for _, a := range allowances {
		if a.Config == nil {
			continue
		}
		key := a.EmployeeID.String()
		snap.Allowances[key] = append(snap.Allowances[key], toOverride(a.ID, a.Config.toRule(), a.OverrideFields))
	}

	deductions, err := s.repo.FindEmployeeDeductions(ctx, universityID, employeeIDs)
	if err != nil {
		return Snapshot{}, err
	}
	for _, d := range deductions {
		if d.Config == nil {
			continue
		}
		key := d.EmployeeID.String()
		snap.Deductions[key] = append(snap.Deductions[key], toOverride(d.ID, d.Config.toRule(), d.OverrideFields))
	}

	mandatory, err := s.repo.FindMandatoryDeductionConfigs(ctx, universityID)
	if err != nil {
		return Snapshot{}, err
	}
	for _, m := range mandatory {
		snap.Mandatory = append(snap.Mandatory, m.toRule())
	}

	s.logger.Debug("compensation snapshot loaded",
		zap.String("university_id", universityID),
		zap.Int("employees", len(employeeIDs)),
		zap.Int("allowances", len(allowances)),
		zap.Int("deductions", len(deductions)),
		zap.Int("mandatory", len(mandatory)),
	)
	return snap, nil
}

func (s *service) checkEmployee(ctx context.Context, qtx Repository, universityID, employeeID string) error {
	belongs, err := qtx.EmployeeBelongsToUniversity(ctx, universityID, employeeID)
	if err != nil {
		return err
	}
	if !belongs {
		return compensationerrors.ErrEmployeeNotInUniversity
	}
	return nil
}

func (s *service) store(ctx context.Context, key string, v any) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *service) invalidate(ctx context.Context, key string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Error("failed to invalidate compensation cache", zap.String("key", key), zap.Error(err))
	}
}

func sameFinancials(a, b RuleFields) bool {
	return a.CalculationMethod == b.CalculationMethod &&
		a.Frequency == b.Frequency &&
		a.IsMandatory == b.IsMandatory &&
		equalDecimal(a.DefaultAmount, b.DefaultAmount) &&
		equalDecimal(a.Percentage, b.Percentage) &&
		equalDecimal(a.MinAmount, b.MinAmount) &&
		equalDecimal(a.MaxAmount, b.MaxAmount)
}

func equalDecimal(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
