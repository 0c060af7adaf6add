package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"uni-payroll/internal/bootstrap"
	"uni-payroll/internal/compensation"
	"uni-payroll/internal/events"
	"uni-payroll/internal/messaging/kafka"
	payrollerrors "uni-payroll/internal/payroll/errors"
	"uni-payroll/internal/shared/apperror"
	"uni-payroll/internal/shared/contextutil"
	"uni-payroll/internal/shared/counter"
	"uni-payroll/internal/shared/money"
	"uni-payroll/internal/timesheet"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RuleSource loads the allowance and deduction rules a run applies.
type RuleSource interface {
	Snapshot(ctx context.Context, universityID string, employeeIDs []string) (compensation.Snapshot, error)
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	CreatePeriod(ctx context.Context, universityID, actorID string, req CreatePeriodRequest) (PeriodResponse, error)
	GetPeriods(ctx context.Context, universityID string) ([]PeriodResponse, error)
	GetPeriod(ctx context.Context, universityID, id string) (PeriodResponse, error)
	ClosePeriod(ctx context.Context, universityID, actorID, id string) (PeriodResponse, error)

	CreateRun(ctx context.Context, universityID, actorID string, req CreateRunRequest) (RunResponse, error)
	GetRun(ctx context.Context, universityID, id string) (RunResponse, error)
	GetRuns(ctx context.Context, universityID, periodID string) ([]RunResponse, error)
	ProcessRun(ctx context.Context, universityID, actorID, id string) (RunResponse, error)
	RequestProcess(ctx context.Context, universityID, actorID, id string) (RunResponse, error)
	ApproveRun(ctx context.Context, universityID, approverID, id string) (RunResponse, error)
	CancelRun(ctx context.Context, universityID, actorID, id, reason string) (RunResponse, error)
	ReapStaleRuns(ctx context.Context) (int, error)

	GetPayments(ctx context.Context, universityID, runID string) ([]PaymentResponse, error)
	GetPayment(ctx context.Context, universityID, id string) (PaymentResponse, error)
	CreateAdjustment(ctx context.Context, universityID, actorID, paymentID string, req CreateAdjustmentRequest) (AdjustmentResponse, error)
	GetYTDEarnings(ctx context.Context, universityID, employeeID string, year int) (YTDResponse, error)
}

// Options tune run processing.
type Options struct {
	Workers       int
	StaleRunAfter time.Duration
}

type service struct {
	db       *sql.DB
	repo     Repository
	ledger   timesheet.Ledger
	rules    RuleSource
	counters counter.Repository
	outbox   kafka.OutboxRepository
	locker   RunLocker
	audit    bootstrap.AuditLogger
	opts     Options
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	ledger timesheet.Ledger,
	rules RuleSource,
	counters counter.Repository,
	outbox kafka.OutboxRepository,
	locker RunLocker,
	audit bootstrap.AuditLogger,
	opts Options,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	if audit == nil {
		audit = bootstrap.NopAuditLogger{}
	}
	if locker == nil {
		locker = NewRunLocker(nil, 0)
	}
	if opts.Workers < 1 {
		opts.Workers = 4
	}
	if opts.StaleRunAfter <= 0 {
		opts.StaleRunAfter = 30 * time.Minute
	}
	return &service{
		db:       db,
		repo:     repo,
		ledger:   ledger,
		rules:    rules,
		counters: counters,
		outbox:   outbox,
		locker:   locker,
		audit:    audit,
		opts:     opts,
		logger:   l,
	}
}

func (s *service) CreatePeriod(ctx context.Context, universityID, actorID string, req CreatePeriodRequest) (PeriodResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create payroll period requested",
		zap.String("university_id", universityID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	universityUUID, err := uuid.Parse(universityID)
	if err != nil {
		return PeriodResponse{}, payrollerrors.ErrInvalidUniversityID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PeriodResponse{}, payrollerrors.ErrInvalidActorID
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return PeriodResponse{}, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return PeriodResponse{}, err
	}
	paymentDate, err := parseDate(req.PaymentDate)
	if err != nil {
		return PeriodResponse{}, err
	}
	if start.After(end) {
		return PeriodResponse{}, payrollerrors.ErrInvalidDateRange
	}
	if paymentDate.Before(start) {
		return PeriodResponse{}, payrollerrors.ErrInvalidPaymentDate
	}

	period := &PayrollPeriod{
		ID:           uuid.New(),
		UniversityID: universityUUID,
		Name:         strings.TrimSpace(req.Name),
		Frequency:    req.Frequency,
		StartDate:    start,
		EndDate:      end,
		PaymentDate:  paymentDate,
		CreatedBy:    actorUUID,
	}
	if err := s.repo.CreatePeriod(ctx, period); err != nil {
		mapped := mapRepositoryError(err, payrollerrors.ErrPeriodNotFound)
		if errors.Is(mapped, payrollerrors.ErrPeriodExists) {
			log.Warn("create payroll period duplicate", zap.String("start_date", req.StartDate))
		} else {
			log.Error("create payroll period failed", zap.Error(err))
		}
		return PeriodResponse{}, mapped
	}

	log.Info("create payroll period success", zap.String("period_id", period.ID.String()))
	return mapPeriodToResponse(*period), nil
}

func (s *service) GetPeriods(ctx context.Context, universityID string) ([]PeriodResponse, error) {
	periods, err := s.repo.FindPeriods(ctx, universityID)
	if err != nil {
		return nil, err
	}
	return mapPeriodsToResponse(periods), nil
}

func (s *service) GetPeriod(ctx context.Context, universityID, id string) (PeriodResponse, error) {
	period, err := s.repo.FindPeriodByID(ctx, universityID, id)
	if err != nil {
		return PeriodResponse{}, mapRepositoryError(err, payrollerrors.ErrPeriodNotFound)
	}
	return mapPeriodToResponse(*period), nil
}

// ClosePeriod settles a period. The authoritative run, the latest one not
// cancelled or failed, must be completed.
func (s *service) ClosePeriod(ctx context.Context, universityID, actorID, id string) (PeriodResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PeriodResponse{}, payrollerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PeriodResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	period, err := qtx.LockPeriod(ctx, universityID, id)
	if err != nil {
		return PeriodResponse{}, mapRepositoryError(err, payrollerrors.ErrPeriodNotFound)
	}
	if period.IsClosed {
		return PeriodResponse{}, payrollerrors.ErrPeriodClosed
	}

	run, err := qtx.FindAuthoritativeRun(ctx, universityID, id)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return PeriodResponse{}, err
	}
	if run == nil || run.Status != RunStatusCompleted {
		log.Warn("close payroll period not settled", zap.String("period_id", id))
		return PeriodResponse{}, payrollerrors.ErrPeriodNotSettled
	}

	now := time.Now().UTC()
	affected, err := qtx.ClosePeriod(ctx, universityID, id, actorID, now)
	if err != nil {
		return PeriodResponse{}, err
	}
	if affected == 0 {
		return PeriodResponse{}, payrollerrors.ErrPeriodClosed
	}

	if err := tx.Commit(); err != nil {
		return PeriodResponse{}, err
	}

	period.IsClosed = true
	period.ClosedAt = &now
	period.ClosedBy = &actorUUID

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "PAYROLL_PERIOD_CLOSED",
		Message: "payroll period closed",
		Meta: map[string]any{
			"period_id": id,
			"run_id":    run.ID.String(),
			"actor_id":  actorID,
		},
	})
	log.Info("close payroll period success", zap.String("period_id", id))
	return mapPeriodToResponse(*period), nil
}

func (s *service) CreateRun(ctx context.Context, universityID, actorID string, req CreateRunRequest) (RunResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create payroll run requested",
		zap.String("university_id", universityID),
		zap.String("period_id", req.PayrollPeriodID),
	)

	universityUUID, err := uuid.Parse(universityID)
	if err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidUniversityID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(req.PayrollPeriodID); err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidPeriodID
	}
	if req.RunNumber != nil && *req.RunNumber < 1 {
		return RunResponse{}, payrollerrors.ErrInvalidRunNumber
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	period, err := qtx.LockPeriod(ctx, universityID, req.PayrollPeriodID)
	if err != nil {
		return RunResponse{}, mapRepositoryError(err, payrollerrors.ErrPeriodNotFound)
	}
	if period.IsClosed {
		log.Warn("create payroll run on closed period", zap.String("period_id", req.PayrollPeriodID))
		return RunResponse{}, payrollerrors.ErrPeriodClosed
	}

	active, err := qtx.HasActiveRun(ctx, universityID, req.PayrollPeriodID, "")
	if err != nil {
		return RunResponse{}, err
	}
	if active {
		log.Warn("create payroll run duplicate", zap.String("period_id", req.PayrollPeriodID))
		return RunResponse{}, payrollerrors.ErrDuplicateRun
	}

	var runNumber int64
	if req.RunNumber != nil {
		runNumber = *req.RunNumber
	} else {
		runNumber, err = s.counters.WithTx(tx).GetNextValue(ctx, universityID, counter.TypePayrollRun)
		if err != nil {
			log.Error("create payroll run counter failed", zap.Error(err))
			return RunResponse{}, err
		}
	}

	run := &PayrollRun{
		ID:              uuid.New(),
		UniversityID:    universityUUID,
		PayrollPeriodID: period.ID,
		RunNumber:       runNumber,
		Status:          RunStatusPending,
		CreatedBy:       actorUUID,
	}
	if err := qtx.CreateRun(ctx, run); err != nil {
		return RunResponse{}, mapRepositoryError(err, payrollerrors.ErrRunNotFound)
	}

	if err := tx.Commit(); err != nil {
		return RunResponse{}, err
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "PAYROLL_RUN_CREATED",
		Message: "payroll run created",
		Meta: map[string]any{
			"run_id":     run.ID.String(),
			"period_id":  req.PayrollPeriodID,
			"run_number": runNumber,
			"actor_id":   actorID,
		},
	})
	log.Info("create payroll run success",
		zap.String("run_id", run.ID.String()),
		zap.Int64("run_number", runNumber),
	)
	return mapRunToResponse(*run), nil
}

func (s *service) GetRun(ctx context.Context, universityID, id string) (RunResponse, error) {
	run, err := s.repo.FindRunByID(ctx, universityID, id)
	if err != nil {
		return RunResponse{}, mapRepositoryError(err, payrollerrors.ErrRunNotFound)
	}
	return mapRunToResponse(*run), nil
}

func (s *service) GetRuns(ctx context.Context, universityID, periodID string) ([]RunResponse, error) {
	if _, err := s.repo.FindPeriodByID(ctx, universityID, periodID); err != nil {
		return nil, mapRepositoryError(err, payrollerrors.ErrPeriodNotFound)
	}
	runs, err := s.repo.FindRunsByPeriod(ctx, universityID, periodID)
	if err != nil {
		return nil, err
	}
	return mapRunsToResponse(runs), nil
}

// RequestProcess hands processing to the worker through the outbox.
func (s *service) RequestProcess(ctx context.Context, universityID, actorID, id string) (RunResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(actorID); err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidActorID
	}
	run, err := s.repo.FindRunByID(ctx, universityID, id)
	if err != nil {
		return RunResponse{}, mapRepositoryError(err, payrollerrors.ErrRunNotFound)
	}
	if IsCalculatedOrLater(run.Status) && !run.RetriesPayments() {
		return mapRunToResponse(*run), nil
	}
	if !CanTransitionRun(run.Status, RunStatusCalculating) && run.Status != RunStatusCalculating {
		return RunResponse{}, apperror.StateTransition("payroll run", run.Status, RunStatusCalculating)
	}
	if s.outbox == nil {
		log.Error("request payroll process without outbox", zap.String("run_id", id))
		return RunResponse{}, apperror.ErrInternal
	}

	rid := contextutil.GetRequestID(ctx)
	payload, err := json.Marshal(events.PayrollRunProcessRequestedEvent{
		EventType:    events.PayrollRunProcessRequested,
		RequestID:    rid,
		RunID:        id,
		UniversityID: universityID,
		RequestedBy:  actorID,
		OccurredAt:   time.Now().UTC(),
	})
	if err != nil {
		return RunResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RunResponse{}, err
	}
	defer tx.Rollback()

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "payroll_run",
		AggregateID:   id,
		EventType:     events.PayrollRunProcessRequested,
		Topic:         events.PayrollRunProcessRequestedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		log.Error("request payroll process outbox persist failed", zap.String("run_id", id), zap.Error(err))
		return RunResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return RunResponse{}, err
	}

	log.Info("payroll process requested", zap.String("run_id", id))
	return mapRunToResponse(*run), nil
}

// ApproveRun completes a calculated run in one transaction: payments,
// timesheets and the run itself. Calling it again on a completed run is a
// no-op.
func (s *service) ApproveRun(ctx context.Context, universityID, approverID, id string) (RunResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("approve payroll run requested", zap.String("run_id", id), zap.String("approver_id", approverID))

	approverUUID, err := uuid.Parse(approverID)
	if err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	run, err := qtx.LockRun(ctx, universityID, id)
	if err != nil {
		return RunResponse{}, mapRepositoryError(err, payrollerrors.ErrRunNotFound)
	}
	switch run.Status {
	case RunStatusCompleted:
		return mapRunToResponse(*run), nil
	case RunStatusCalculated, RunStatusApproved, RunStatusProcessing:
	default:
		log.Warn("approve payroll run invalid transition",
			zap.String("run_id", id),
			zap.String("from_status", run.Status),
		)
		return RunResponse{}, apperror.StateTransition("payroll run", run.Status, RunStatusApproved)
	}
	if run.CreatedBy == approverUUID {
		log.Warn("approve payroll run by its creator", zap.String("run_id", id))
		return RunResponse{}, payrollerrors.ErrSelfApproval
	}

	now := time.Now().UTC()
	if run.Status == RunStatusCalculated {
		if err := s.stepRun(ctx, qtx, run, RunStatusApproved, map[string]any{
			"approved_by": approverUUID,
			"approved_at": now,
		}); err != nil {
			return RunResponse{}, err
		}
		run.ApprovedBy, run.ApprovedAt = &approverUUID, &now
	}
	if run.Status == RunStatusApproved {
		if err := s.stepRun(ctx, qtx, run, RunStatusProcessing, nil); err != nil {
			return RunResponse{}, err
		}
	}

	paid, err := qtx.CompletePayments(ctx, id, now)
	if err != nil {
		log.Error("approve payroll run complete payments failed", zap.Error(err))
		return RunResponse{}, err
	}
	if _, err := s.ledger.WithTx(tx).MarkPaid(ctx, universityID, id); err != nil {
		log.Error("approve payroll run mark timesheets paid failed", zap.Error(err))
		return RunResponse{}, err
	}

	if err := s.stepRun(ctx, qtx, run, RunStatusCompleted, map[string]any{"completed_at": now}); err != nil {
		return RunResponse{}, err
	}
	run.CompletedAt = &now

	if err := s.enqueueRunEvent(ctx, tx, run, events.PayrollRunCompleted, ""); err != nil {
		log.Error("approve payroll run outbox persist failed", zap.Error(err))
		return RunResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RunResponse{}, err
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "PAYROLL_RUN_COMPLETED",
		Message: "payroll run approved and completed",
		Meta: map[string]any{
			"run_id":        id,
			"approver_id":   approverID,
			"payments_paid": paid,
			"total_net_pay": run.TotalNetPay.StringFixed(money.Places),
		},
	})
	log.Info("approve payroll run success", zap.String("run_id", id), zap.Int64("payments", paid))
	return mapRunToResponse(*run), nil
}

// CancelRun stops a run before completion. It holds the run row lock, so
// employee transactions still in flight either finish first or see the
// cancellation and abandon their work.
func (s *service) CancelRun(ctx context.Context, universityID, actorID, id, reason string) (RunResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidActorID
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return RunResponse{}, payrollerrors.ErrReasonRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	run, err := qtx.LockRun(ctx, universityID, id)
	if err != nil {
		return RunResponse{}, mapRepositoryError(err, payrollerrors.ErrRunNotFound)
	}
	if !CanTransitionRun(run.Status, RunStatusCancelled) {
		log.Warn("cancel payroll run invalid transition",
			zap.String("run_id", id),
			zap.String("from_status", run.Status),
		)
		return RunResponse{}, apperror.StateTransition("payroll run", run.Status, RunStatusCancelled)
	}

	now := time.Now().UTC()
	if err := s.stepRun(ctx, qtx, run, RunStatusCancelled, map[string]any{
		"cancelled_by":        actorUUID,
		"cancelled_at":        now,
		"cancellation_reason": reason,
		"lock_token":          nil,
		"locked_at":           nil,
	}); err != nil {
		return RunResponse{}, err
	}
	run.CancelledBy, run.CancelledAt, run.CancellationReason = &actorUUID, &now, &reason

	cancelled, err := qtx.CancelPayments(ctx, id)
	if err != nil {
		return RunResponse{}, err
	}
	released, err := s.ledger.WithTx(tx).Release(ctx, universityID, id)
	if err != nil {
		return RunResponse{}, err
	}

	if err := s.enqueueRunEvent(ctx, tx, run, events.PayrollRunCancelled, reason); err != nil {
		log.Error("cancel payroll run outbox persist failed", zap.Error(err))
		return RunResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RunResponse{}, err
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "PAYROLL_RUN_CANCELLED",
		Message: "payroll run cancelled",
		Meta: map[string]any{
			"run_id":              id,
			"actor_id":            actorID,
			"reason":              reason,
			"payments_cancelled":  cancelled,
			"timesheets_released": released,
		},
	})
	log.Info("cancel payroll run success", zap.String("run_id", id))
	return mapRunToResponse(*run), nil
}

func (s *service) GetPayments(ctx context.Context, universityID, runID string) ([]PaymentResponse, error) {
	if _, err := s.repo.FindRunByID(ctx, universityID, runID); err != nil {
		return nil, mapRepositoryError(err, payrollerrors.ErrRunNotFound)
	}
	payments, err := s.repo.FindPaymentsByRun(ctx, universityID, runID)
	if err != nil {
		return nil, err
	}
	return mapPaymentsToResponse(payments), nil
}

func (s *service) GetPayment(ctx context.Context, universityID, id string) (PaymentResponse, error) {
	payment, err := s.repo.FindPaymentByID(ctx, universityID, id)
	if err != nil {
		return PaymentResponse{}, mapRepositoryError(err, payrollerrors.ErrPaymentNotFound)
	}
	return mapPaymentToResponse(*payment), nil
}

// CreateAdjustment records a signed correction. The payment row itself is
// never edited once completed.
func (s *service) CreateAdjustment(ctx context.Context, universityID, actorID, paymentID string, req CreateAdjustmentRequest) (AdjustmentResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return AdjustmentResponse{}, payrollerrors.ErrInvalidActorID
	}
	amount, err := money.Parse(req.Amount)
	if err != nil || amount.IsZero() {
		return AdjustmentResponse{}, payrollerrors.ErrInvalidAdjustment
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return AdjustmentResponse{}, payrollerrors.ErrReasonRequired
	}

	payment, err := s.repo.FindPaymentByID(ctx, universityID, paymentID)
	if err != nil {
		return AdjustmentResponse{}, mapRepositoryError(err, payrollerrors.ErrPaymentNotFound)
	}
	if payment.Status != PaymentStatusCompleted {
		return AdjustmentResponse{}, payrollerrors.ErrAdjustOnlyCompleted
	}

	adj := &PaymentAdjustment{
		ID:        uuid.New(),
		PaymentID: payment.ID,
		Amount:    money.Round(amount),
		Reason:    reason,
		CreatedBy: actorUUID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateAdjustment(ctx, adj); err != nil {
		log.Error("create payment adjustment failed", zap.Error(err))
		return AdjustmentResponse{}, err
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "PAYROLL_PAYMENT_ADJUSTED",
		Message: "payment adjustment recorded",
		Meta: map[string]any{
			"payment_id": paymentID,
			"amount":     adj.Amount.StringFixed(money.Places),
			"actor_id":   actorID,
			"reason":     reason,
		},
	})
	return mapAdjustmentToResponse(*adj), nil
}

func (s *service) GetYTDEarnings(ctx context.Context, universityID, employeeID string, year int) (YTDResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return YTDResponse{}, payrollerrors.ErrInvalidEmployeeID
	}
	if year < 1000 || year > 9999 {
		return YTDResponse{}, payrollerrors.ErrInvalidYear
	}

	totals, err := s.repo.YTDEarnings(ctx, universityID, employeeID, year)
	if err != nil {
		return YTDResponse{}, err
	}
	byCode, err := s.repo.YTDDeductionsByCode(ctx, universityID, employeeID, year)
	if err != nil {
		return YTDResponse{}, err
	}
	return mapYTDToResponse(employeeID, year, totals, byCode), nil
}

// stepRun moves a locked run one edge forward with a status guard.
func (s *service) stepRun(ctx context.Context, qtx Repository, run *PayrollRun, to string, extra map[string]any) error {
	if !CanTransitionRun(run.Status, to) {
		return apperror.StateTransition("payroll run", run.Status, to)
	}
	updates := map[string]any{"status": to}
	for k, v := range extra {
		updates[k] = v
	}
	affected, err := qtx.UpdateRun(ctx, run.UniversityID.String(), run.ID.String(), RunGuard{Statuses: []string{run.Status}}, updates)
	if err != nil {
		return err
	}
	if affected == 0 {
		return payrollerrors.ErrRunBusy
	}
	run.Status = to
	return nil
}

func (s *service) enqueueRunEvent(ctx context.Context, tx *sql.Tx, run *PayrollRun, eventType, reason string) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	payload, err := json.Marshal(events.PayrollRunLifecycleEvent{
		EventType:          eventType,
		RequestID:          rid,
		RunID:              run.ID.String(),
		PeriodID:           run.PayrollPeriodID.String(),
		UniversityID:       run.UniversityID.String(),
		Status:             run.Status,
		EmployeesProcessed: run.TotalEmployeesProcessed,
		EmployeesSkipped:   run.TotalEmployeesSkipped,
		TotalGrossPay:      run.TotalGrossPay.StringFixed(money.Places),
		TotalNetPay:        run.TotalNetPay.StringFixed(money.Places),
		Reason:             reason,
		OccurredAt:         time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "payroll_run",
		AggregateID:   run.ID.String(),
		EventType:     eventType,
		Topic:         events.PayrollRunLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, payrollerrors.ErrInvalidDateFormat
	}
	return t, nil
}
