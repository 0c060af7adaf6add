package position

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"uni-payroll/internal/paycalc"
	positionerrors "uni-payroll/internal/position/errors"
	"uni-payroll/internal/shared/apperror"
	"uni-payroll/internal/shared/contextutil"
	"uni-payroll/internal/shared/money"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	// Prefix untuk Position
	PositionAllKeyPrefix = "positions:all:"

	DefaultCacheTTL = 30 * time.Minute
)

// Helper untuk mendapatkan key lengkap
func GetPositionAllKey(universityID string) string {
	return PositionAllKeyPrefix + universityID
}

var stipendFrequencies = map[string]bool{
	string(paycalc.FrequencyPerPeriod): true,
	string(paycalc.FrequencyWeekly):    true,
	string(paycalc.FrequencyBiweekly):  true,
	string(paycalc.FrequencyMonthly):   true,
	string(paycalc.FrequencyQuarterly): true,
	string(paycalc.FrequencySemester):  true,
	string(paycalc.FrequencyAnnually):  true,
	string(paycalc.FrequencyOneTime):   true,
}

//go:generate mockgen -source=position_service.go -destination=mock/position_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, universityID string, req CreatePositionRequest) (PositionResponse, error)
	GetAll(ctx context.Context, universityID string) ([]PositionResponse, error)
	GetByID(ctx context.Context, universityID, id string) (PositionResponse, error)
	Update(ctx context.Context, universityID, id string, req UpdatePositionRequest) (PositionResponse, error)
	Delete(ctx context.Context, universityID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("position.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("position.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	universityID string,
	req CreatePositionRequest,
) (PositionResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	universityUUID, err := uuid.Parse(universityID)
	if err != nil {
		return PositionResponse{}, apperror.ErrInvalidInput
	}

	pos := &Position{
		ID:           uuid.New(),
		Name:         req.Name,
		Description:  req.Description,
		UniversityID: universityUUID,
	}
	if err := applyPayDefaults(pos, req.PayDefaults); err != nil {
		log.Warn("create position rejected", zap.Error(err))
		return PositionResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PositionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Create(ctx, pos); err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PositionResponse{}, err
	}

	s.invalidate(ctx, universityID)
	log.Info("position created", zap.String("position_id", pos.ID.String()))

	return mapToResponse(*pos), nil
}

func (s *service) GetAll(
	ctx context.Context,
	universityID string,
) ([]PositionResponse, error) {
	cacheKey := GetPositionAllKey(universityID)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp []PositionResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	// Gunakan Singleflight untuk mencegah query berulang ke DB
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		positions, err := s.repo.FindAllByUniversity(ctx, universityID)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(positions)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, DefaultCacheTTL).Err(); err != nil {
					s.logger.Warn("cache set failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]PositionResponse), nil
}

func (s *service) GetByID(
	ctx context.Context,
	universityID, id string,
) (PositionResponse, error) {
	pos, err := s.repo.FindByIDAndUniversity(ctx, universityID, id)
	if err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*pos), nil
}

func (s *service) Update(
	ctx context.Context,
	universityID, id string,
	req UpdatePositionRequest,
) (PositionResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PositionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	pos, err := qtx.FindByIDAndUniversity(ctx, universityID, id)
	if err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}

	pos.Name = req.Name
	pos.Description = req.Description
	if err := applyPayDefaults(pos, req.PayDefaults); err != nil {
		return PositionResponse{}, err
	}

	if err := qtx.Update(ctx, pos); err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PositionResponse{}, err
	}

	s.invalidate(ctx, universityID)

	return mapToResponse(*pos), nil
}

func (s *service) Delete(
	ctx context.Context,
	universityID, id string,
) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	inUse, err := qtx.HasActiveAssignments(ctx, universityID, id)
	if err != nil {
		return err
	}
	if inUse {
		return positionerrors.ErrPositionInUse
	}

	if err := qtx.Delete(ctx, universityID, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	// Invalidasi cache dilakukan tepat setelah data di DB resmi terhapus
	s.invalidate(ctx, universityID)

	return nil
}

func (s *service) invalidate(ctx context.Context, universityID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetPositionAllKey(universityID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate position cache", zap.String("key", cacheKey), zap.Error(err))
	}
}

func applyPayDefaults(pos *Position, req PayDefaults) error {
	if req.DefaultStipendFrequency != "" && !stipendFrequencies[req.DefaultStipendFrequency] {
		return positionerrors.ErrInvalidStipendFrequency
	}

	parsed := make([]*decimal.Decimal, 0, 4)
	for _, raw := range []*string{req.DefaultHourlyRate, req.DefaultSalaryAmount, req.DefaultStipendAmount, req.MaxHoursPerWeek} {
		d, err := money.ParseOptional(raw)
		if err != nil || (d != nil && d.IsNegative()) {
			return positionerrors.ErrInvalidPayDefaults
		}
		parsed = append(parsed, d)
	}

	pos.DefaultPayRateType = req.DefaultPayRateType
	pos.DefaultHourlyRate = parsed[0]
	pos.DefaultSalaryAmount = parsed[1]
	pos.DefaultStipendAmount = parsed[2]
	pos.MaxHoursPerWeek = parsed[3]
	pos.DefaultStipendFrequency = req.DefaultStipendFrequency
	return nil
}

func decimalString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	v := d.String()
	return &v
}

func mapToResponse(pos Position) PositionResponse {
	resp := PositionResponse{
		ID:                      pos.ID.String(),
		UniversityID:            pos.UniversityID.String(),
		Name:                    pos.Name,
		Description:             pos.Description,
		DefaultPayRateType:      pos.DefaultPayRateType,
		DefaultHourlyRate:       decimalString(pos.DefaultHourlyRate),
		DefaultSalaryAmount:     money.StringPtr(pos.DefaultSalaryAmount),
		DefaultStipendAmount:    money.StringPtr(pos.DefaultStipendAmount),
		DefaultStipendFrequency: pos.DefaultStipendFrequency,
		MaxHoursPerWeek:         decimalString(pos.MaxHoursPerWeek),
	}
	if !pos.CreatedAt.IsZero() {
		resp.CreatedAt = pos.CreatedAt.Format(time.RFC3339)
	}
	if !pos.UpdatedAt.IsZero() {
		resp.UpdatedAt = pos.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(positions []Position) []PositionResponse {
	res := make([]PositionResponse, len(positions))
	for i, p := range positions {
		res[i] = mapToResponse(p)
	}
	return res
}
