package timesheet

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"uni-payroll/internal/bootstrap"
	"uni-payroll/internal/employee"
	"uni-payroll/internal/events"
	"uni-payroll/internal/messaging/kafka"
	"uni-payroll/internal/shared/apperror"
	"uni-payroll/internal/shared/contextutil"
	timesheeterrors "uni-payroll/internal/timesheet/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EmployeeDirectory is the slice of the employee service timesheets need.
type EmployeeDirectory interface {
	GetEmployee(ctx context.Context, universityID, id string) (*employee.Employee, error)
	ResolveAssignment(ctx context.Context, universityID, employeeID, assignmentID string, start, end time.Time) (*employee.Assignment, error)
}

// Approver answers whether someone may review an employee's timesheets.
type Approver interface {
	CanApproveTimesheet(ctx context.Context, universityID, approverID, employeeID string) (bool, error)
}

//go:generate mockgen -source=timesheet_service.go -destination=mock/timesheet_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, universityID, actorID string, req CreateTimesheetRequest) (TimesheetResponse, error)
	GetAll(ctx context.Context, universityID string, filter ListFilter) ([]TimesheetResponse, error)
	GetByID(ctx context.Context, universityID, id string) (TimesheetResponse, error)
	ReplaceEntries(ctx context.Context, universityID, actorID, id string, req ReplaceEntriesRequest) (TimesheetResponse, error)
	Submit(ctx context.Context, universityID, actorID, id string) (TimesheetResponse, error)
	Approve(ctx context.Context, universityID, approverID, id string) (TimesheetResponse, error)
	Reject(ctx context.Context, universityID, approverID, id, reason string) (TimesheetResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeDirectory
	approver  Approver
	outbox    kafka.OutboxRepository
	audit     bootstrap.AuditLogger
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees EmployeeDirectory,
	approver Approver,
	outbox kafka.OutboxRepository,
	audit bootstrap.AuditLogger,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("timesheet.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timesheet.service")
	}
	if audit == nil {
		audit = bootstrap.NopAuditLogger{}
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		approver:  approver,
		outbox:    outbox,
		audit:     audit,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, universityID, actorID string, req CreateTimesheetRequest) (TimesheetResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create timesheet requested",
		zap.String("university_id", universityID),
		zap.String("actor_id", actorID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("period_start_date", req.PeriodStartDate),
		zap.String("period_end_date", req.PeriodEndDate),
	)

	universityUUID, err := uuid.Parse(universityID)
	if err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrInvalidUniversityID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrInvalidActorID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrInvalidEmployeeID
	}
	start, err := parseDate(req.PeriodStartDate)
	if err != nil {
		return TimesheetResponse{}, err
	}
	end, err := parseDate(req.PeriodEndDate)
	if err != nil {
		return TimesheetResponse{}, err
	}
	if start.After(end) {
		return TimesheetResponse{}, timesheeterrors.ErrInvalidDateRange
	}

	emp, err := s.employees.GetEmployee(ctx, universityID, req.EmployeeID)
	if err != nil {
		return TimesheetResponse{}, err
	}
	if !emp.IsPayrollEligible() {
		log.Warn("create timesheet employee not active",
			zap.String("employee_id", req.EmployeeID),
			zap.String("status", emp.Status),
		)
		return TimesheetResponse{}, timesheeterrors.ErrEmployeeNotActive
	}

	assignment, err := s.employees.ResolveAssignment(ctx, universityID, req.EmployeeID, req.AssignmentID, start, end)
	if err != nil {
		log.Warn("create timesheet assignment resolution failed", zap.Error(err))
		return TimesheetResponse{}, err
	}

	ts := &Timesheet{
		ID:              uuid.New(),
		UniversityID:    universityUUID,
		EmployeeID:      employeeUUID,
		AssignmentID:    assignment.ID,
		PeriodStartDate: start,
		PeriodEndDate:   end,
		Status:          StatusDraft,
		CreatedBy:       actorUUID,
	}

	entries, err := buildEntries(ts.ID, start, end, req.Entries)
	if err != nil {
		log.Warn("create timesheet entries rejected", zap.Error(err))
		return TimesheetResponse{}, err
	}
	ts.Entries = entries
	applyTotals(ts, draftTotals(entries, start, end))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create timesheet begin tx failed", zap.Error(err))
		return TimesheetResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, ts); err != nil {
		log.Error("create timesheet persist failed", zap.Error(err))
		return TimesheetResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("create timesheet commit failed", zap.Error(err))
		return TimesheetResponse{}, err
	}

	log.Info("create timesheet success",
		zap.String("timesheet_id", ts.ID.String()),
		zap.String("assignment_id", assignment.ID.String()),
	)
	return mapToResponse(*ts), nil
}

func (s *service) GetAll(ctx context.Context, universityID string, filter ListFilter) ([]TimesheetResponse, error) {
	list, err := s.repo.FindAll(ctx, universityID, filter)
	if err != nil {
		return nil, err
	}
	res := make([]TimesheetResponse, len(list))
	for i, t := range list {
		res[i] = mapToResponse(t)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, universityID, id string) (TimesheetResponse, error) {
	ts, err := s.repo.FindByIDAndUniversity(ctx, universityID, id)
	if err != nil {
		return TimesheetResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*ts), nil
}

// ReplaceEntries swaps the whole entry set. Editing a rejected timesheet
// returns it to draft and clears the rejection.
func (s *service) ReplaceEntries(ctx context.Context, universityID, actorID, id string, req ReplaceEntriesRequest) (TimesheetResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TimesheetResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ts, err := qtx.FindByIDAndUniversity(ctx, universityID, id)
	if err != nil {
		return TimesheetResponse{}, mapRepositoryError(err)
	}
	if !ts.Editable() {
		log.Warn("replace entries on locked timesheet",
			zap.String("timesheet_id", id),
			zap.String("status", ts.Status),
		)
		return TimesheetResponse{}, timesheeterrors.ErrNotEditable
	}

	entries, err := buildEntries(ts.ID, ts.PeriodStartDate, ts.PeriodEndDate, req.Entries)
	if err != nil {
		return TimesheetResponse{}, err
	}
	totals := draftTotals(entries, ts.PeriodStartDate, ts.PeriodEndDate)

	affected, err := qtx.UpdateIfStatus(ctx, universityID, id, []string{StatusDraft, StatusRejected}, map[string]any{
		"status":                  StatusDraft,
		"total_hours":             totals.Total,
		"regular_hours":           totals.Regular,
		"overtime_hours":          totals.Overtime,
		"overtime_eligible_hours": totals.OvertimeEligible,
		"rejected_by":             nil,
		"rejected_at":             nil,
		"rejection_reason":        nil,
	})
	if err != nil {
		return TimesheetResponse{}, err
	}
	if affected == 0 {
		return TimesheetResponse{}, timesheeterrors.ErrConcurrentUpdate
	}

	if err := qtx.ReplaceEntries(ctx, id, entries); err != nil {
		log.Error("replace entries persist failed", zap.String("timesheet_id", id), zap.Error(err))
		return TimesheetResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return TimesheetResponse{}, err
	}

	ts.Status = StatusDraft
	ts.RejectedBy, ts.RejectedAt, ts.RejectionReason = nil, nil, nil
	ts.Entries = entries
	applyTotals(ts, totals)

	log.Info("timesheet entries replaced",
		zap.String("timesheet_id", id),
		zap.String("actor_id", actorID),
		zap.Int("entries", len(entries)),
	)
	return mapToResponse(*ts), nil
}

func (s *service) Submit(ctx context.Context, universityID, actorID, id string) (TimesheetResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TimesheetResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ts, err := qtx.FindByIDAndUniversity(ctx, universityID, id)
	if err != nil {
		return TimesheetResponse{}, mapRepositoryError(err)
	}
	if !CanTransition(ts.Status, StatusSubmitted) {
		return TimesheetResponse{}, apperror.StateTransition("timesheet", ts.Status, StatusSubmitted)
	}

	totals, err := Summarize(ts.Entries, ts.PeriodStartDate, ts.PeriodEndDate, capsOf(ts.Assignment))
	if err != nil {
		log.Warn("submit timesheet validation failed", zap.String("timesheet_id", id), zap.Error(err))
		return TimesheetResponse{}, err
	}

	now := time.Now().UTC()
	affected, err := qtx.UpdateIfStatus(ctx, universityID, id, []string{StatusDraft, StatusRejected}, map[string]any{
		"status":                  StatusSubmitted,
		"submitted_by":            actorUUID,
		"submitted_at":            now,
		"total_hours":             totals.Total,
		"regular_hours":           totals.Regular,
		"overtime_hours":          totals.Overtime,
		"overtime_eligible_hours": totals.OvertimeEligible,
		"rejected_by":             nil,
		"rejected_at":             nil,
		"rejection_reason":        nil,
	})
	if err != nil {
		return TimesheetResponse{}, err
	}
	if affected == 0 {
		return TimesheetResponse{}, timesheeterrors.ErrConcurrentUpdate
	}

	if err := tx.Commit(); err != nil {
		return TimesheetResponse{}, err
	}

	from := ts.Status
	ts.Status = StatusSubmitted
	ts.SubmittedBy = &actorUUID
	ts.SubmittedAt = &now
	ts.RejectedBy, ts.RejectedAt, ts.RejectionReason = nil, nil, nil
	applyTotals(ts, totals)

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "TIMESHEET_SUBMITTED",
		Message: "timesheet submitted for approval",
		Meta: map[string]any{
			"timesheet_id":            id,
			"from_status":             from,
			"actor_id":                actorID,
			"total_hours":             totals.Total.String(),
			"overtime_eligible_hours": totals.OvertimeEligible.String(),
		},
	})
	log.Info("submit timesheet success", zap.String("timesheet_id", id))
	return mapToResponse(*ts), nil
}

func (s *service) Approve(ctx context.Context, universityID, approverID, id string) (TimesheetResponse, error) {
	return s.review(ctx, universityID, approverID, id, StatusApproved, "")
}

func (s *service) Reject(ctx context.Context, universityID, approverID, id, reason string) (TimesheetResponse, error) {
	return s.review(ctx, universityID, approverID, id, StatusRejected, reason)
}

func (s *service) review(ctx context.Context, universityID, approverID, id, target, reason string) (TimesheetResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("review timesheet requested",
		zap.String("timesheet_id", id),
		zap.String("approver_id", approverID),
		zap.String("target_status", target),
	)

	approverUUID, err := uuid.Parse(approverID)
	if err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrInvalidActorID
	}
	reason = strings.TrimSpace(reason)
	if target == StatusRejected && reason == "" {
		return TimesheetResponse{}, timesheeterrors.ErrRejectionReasonRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TimesheetResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ts, err := qtx.FindByIDAndUniversity(ctx, universityID, id)
	if err != nil {
		return TimesheetResponse{}, mapRepositoryError(err)
	}
	if !CanTransition(ts.Status, target) || ts.Status != StatusSubmitted {
		log.Warn("review timesheet invalid transition",
			zap.String("timesheet_id", id),
			zap.String("from_status", ts.Status),
			zap.String("to_status", target),
		)
		return TimesheetResponse{}, apperror.StateTransition("timesheet", ts.Status, target)
	}
	if ts.EmployeeID == approverUUID {
		return TimesheetResponse{}, timesheeterrors.ErrSelfApproval
	}

	allowed, err := s.approver.CanApproveTimesheet(ctx, universityID, approverID, ts.EmployeeID.String())
	if err != nil {
		log.Error("review timesheet capability lookup failed", zap.Error(err))
		return TimesheetResponse{}, err
	}
	if !allowed {
		return TimesheetResponse{}, timesheeterrors.ErrNotApprover
	}

	now := time.Now().UTC()
	updates := map[string]any{"status": target}
	if target == StatusApproved {
		updates["approved_by"] = approverUUID
		updates["approved_at"] = now
		ts.ApprovedBy, ts.ApprovedAt = &approverUUID, &now
	} else {
		updates["rejected_by"] = approverUUID
		updates["rejected_at"] = now
		updates["rejection_reason"] = reason
		ts.RejectedBy, ts.RejectedAt, ts.RejectionReason = &approverUUID, &now, &reason
	}

	affected, err := qtx.UpdateIfStatus(ctx, universityID, id, []string{StatusSubmitted}, updates)
	if err != nil {
		return TimesheetResponse{}, err
	}
	if affected == 0 {
		return TimesheetResponse{}, timesheeterrors.ErrConcurrentUpdate
	}
	ts.Status = target

	if err := s.enqueueLifecycle(ctx, tx, ts, approverID, reason); err != nil {
		log.Error("review timesheet outbox persist failed", zap.String("timesheet_id", id), zap.Error(err))
		return TimesheetResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return TimesheetResponse{}, err
	}

	action := "TIMESHEET_APPROVED"
	if target == StatusRejected {
		action = "TIMESHEET_REJECTED"
	}
	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  action,
		Message: "timesheet reviewed",
		Meta: map[string]any{
			"timesheet_id": id,
			"employee_id":  ts.EmployeeID.String(),
			"approver_id":  approverID,
			"reason":       reason,
		},
	})
	log.Info("review timesheet success", zap.String("timesheet_id", id), zap.String("status", target))
	return mapToResponse(*ts), nil
}

func (s *service) enqueueLifecycle(ctx context.Context, tx *sql.Tx, ts *Timesheet, actorID, reason string) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	eventType := events.TimesheetApproved
	if ts.Status == StatusRejected {
		eventType = events.TimesheetRejected
	}
	payload, err := json.Marshal(events.TimesheetLifecycleEvent{
		EventType:       eventType,
		RequestID:       rid,
		TimesheetID:     ts.ID.String(),
		EmployeeID:      ts.EmployeeID.String(),
		UniversityID:    ts.UniversityID.String(),
		ActorID:         actorID,
		RejectionReason: reason,
		OccurredAt:      time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "timesheet",
		AggregateID:   ts.ID.String(),
		EventType:     eventType,
		Topic:         events.TimesheetLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func capsOf(a *employee.Assignment) Caps {
	if a == nil {
		return Caps{}
	}
	return Caps{
		WeeklyMax: a.WeeklyCap(),
		PeriodMax: a.MaxHoursPerPeriod,
		Hard:      a.HoursCapIsHard,
	}
}

// draftTotals gives a running total for drafts; caps are only enforced on submit.
func draftTotals(entries []TimeEntry, start, end time.Time) Totals {
	if len(entries) == 0 {
		return Totals{}
	}
	totals, err := Summarize(entries, start, end, Caps{})
	if err != nil {
		return Totals{}
	}
	return totals
}

func applyTotals(ts *Timesheet, totals Totals) {
	ts.TotalHours = totals.Total
	ts.RegularHours = totals.Regular
	ts.OvertimeHours = totals.Overtime
	ts.OvertimeEligibleHours = totals.OvertimeEligible
}
