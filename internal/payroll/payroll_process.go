package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"uni-payroll/internal/bootstrap"
	"uni-payroll/internal/compensation"
	"uni-payroll/internal/events"
	"uni-payroll/internal/paycalc"
	payrollerrors "uni-payroll/internal/payroll/errors"
	"uni-payroll/internal/shared/apperror"
	"uni-payroll/internal/shared/contextutil"
	"uni-payroll/internal/shared/money"
	"uni-payroll/internal/timesheet"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
)

// ConfigIssue is one pre-flight problem that blocks a run.
type ConfigIssue struct {
	EmployeeID   string `json:"employee_id"`
	AssignmentID string `json:"assignment_id,omitempty"`
	Message      string `json:"message"`
}

// employeeWork is one employee's approved hours in the period, summed per
// assignment.
type employeeWork struct {
	EmployeeID   string
	Work         []paycalc.AssignmentHours
	TimesheetIDs []string
}

type employeeOutcome struct {
	Inserted bool
	Failed   bool
}

type calculationSnapshot struct {
	TimesheetIDs []string        `json:"timesheet_ids"`
	Result       *paycalc.Result `json:"result,omitempty"`
	Error        string          `json:"error,omitempty"`
}

// ProcessRun calculates every eligible employee of the run's period. A run
// already calculated or later is returned unchanged, so retries are safe. A
// calculated run with failed payments recalculates only those employees.
func (s *service) ProcessRun(ctx context.Context, universityID, actorID, id string) (RunResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger).With(zap.String("run_id", id))
	log.Debug("process payroll run requested", zap.String("actor_id", actorID))

	if _, err := uuid.Parse(actorID); err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidActorID
	}

	run, err := s.repo.FindRunByID(ctx, universityID, id)
	if err != nil {
		return RunResponse{}, mapRepositoryError(err, payrollerrors.ErrRunNotFound)
	}
	if IsCalculatedOrLater(run.Status) && !run.RetriesPayments() {
		log.Info("process payroll run no-op", zap.String("status", run.Status))
		return mapRunToResponse(*run), nil
	}
	if run.Status == RunStatusCancelled {
		return RunResponse{}, apperror.StateTransition("payroll run", run.Status, RunStatusCalculating)
	}

	token, ok, err := s.locker.Acquire(ctx, id)
	if err != nil {
		log.Error("process payroll run lock failed", zap.Error(err))
		return RunResponse{}, err
	}
	if !ok {
		log.Warn("process payroll run busy")
		return RunResponse{}, payrollerrors.ErrRunBusy
	}
	defer func() {
		if err := s.locker.Release(context.WithoutCancel(ctx), id, token); err != nil {
			log.Warn("process payroll run unlock failed", zap.Error(err))
		}
	}()

	period, claimed, err := s.claimRun(ctx, run, token)
	if err != nil {
		log.Warn("process payroll run claim rejected", zap.Error(err))
		return RunResponse{}, err
	}
	if !claimed {
		current, err := s.repo.FindRunByID(ctx, universityID, id)
		if err != nil {
			return RunResponse{}, mapRepositoryError(err, payrollerrors.ErrRunNotFound)
		}
		if IsCalculatedOrLater(current.Status) {
			return mapRunToResponse(*current), nil
		}
		if current.Status == RunStatusCancelled {
			return RunResponse{}, apperror.StateTransition("payroll run", current.Status, RunStatusCalculating)
		}
		log.Warn("process payroll run claimed elsewhere", zap.String("status", current.Status))
		return RunResponse{}, payrollerrors.ErrRunBusy
	}
	run.Status = RunStatusCalculating
	run.FailureReason = nil

	return s.calculate(ctx, log, run, period, token)
}

// claimRun takes the run for this attempt under the period row lock, so a
// failed run cannot come back while another run owns the period.
func (s *service) claimRun(ctx context.Context, run *PayrollRun, token string) (*PayrollPeriod, bool, error) {
	universityID := run.UniversityID.String()
	runID := run.ID.String()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	period, err := qtx.LockPeriod(ctx, universityID, run.PayrollPeriodID.String())
	if err != nil {
		return nil, false, mapRepositoryError(err, payrollerrors.ErrPeriodNotFound)
	}
	if period.IsClosed {
		return nil, false, payrollerrors.ErrPeriodClosed
	}

	active, err := qtx.HasActiveRun(ctx, universityID, period.ID.String(), runID)
	if err != nil {
		return nil, false, err
	}
	if active {
		return nil, false, payrollerrors.ErrDuplicateRun
	}

	claimed, err := qtx.ClaimRun(ctx, universityID, runID, token, time.Now().UTC().Add(-s.opts.StaleRunAfter))
	if err != nil {
		return nil, false, err
	}
	if claimed == 0 {
		return nil, false, nil
	}
	if err := tx.Commit(); err != nil {
		return nil, false, err
	}
	return period, true, nil
}

func (s *service) calculate(ctx context.Context, log *zap.Logger, run *PayrollRun, period *PayrollPeriod, token string) (RunResponse, error) {
	universityID := run.UniversityID.String()
	runID := run.ID.String()

	// payments an earlier attempt failed or gave up get another chance
	if _, err := s.repo.DiscardUnfinishedPayments(ctx, runID); err != nil {
		return RunResponse{}, s.failRun(ctx, log, run, token, err)
	}

	sheets, err := s.ledger.ListPayable(ctx, universityID, runID, period.StartDate, period.EndDate)
	if err != nil {
		return RunResponse{}, s.failRun(ctx, log, run, token, err)
	}

	calcPeriod := paycalc.Period{
		Start:     period.StartDate,
		End:       period.EndDate,
		Frequency: paycalc.Frequency(period.Frequency),
	}
	batch, issues := groupWork(sheets, calcPeriod)
	if len(issues) > 0 {
		log.Warn("process payroll run configuration errors", zap.Int("issues", len(issues)))
		cfgErr := payrollerrors.ErrRunConfiguration.WithDetails(issues)
		_ = s.failRun(ctx, log, run, token, fmt.Errorf("%s: %s", cfgErr.Message, summarizeIssues(issues)))
		return RunResponse{}, cfgErr
	}

	employeeIDs := make([]string, 0, len(batch))
	for _, w := range batch {
		employeeIDs = append(employeeIDs, w.EmployeeID)
	}
	snap, err := s.rules.Snapshot(ctx, universityID, employeeIDs)
	if err != nil {
		return RunResponse{}, s.failRun(ctx, log, run, token, err)
	}

	outcomes := make([]employeeOutcome, len(batch))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for i, w := range batch {
		i, w := i, w
		g.Go(func() error {
			outcome, err := s.processEmployee(gctx, run, period, calcPeriod, token, w, snap)
			if err != nil {
				return err
			}
			outcomes[i] = outcome
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if errors.Is(err, payrollerrors.ErrRunCancelled) || errors.Is(err, payrollerrors.ErrRunBusy) {
			log.Warn("process payroll run abandoned", zap.Error(err))
			return RunResponse{}, err
		}
		return RunResponse{}, s.failRun(ctx, log, run, token, err)
	}

	inserted, skipped := 0, 0
	for _, o := range outcomes {
		if o.Inserted {
			inserted++
		}
		if o.Failed {
			skipped++
		}
	}
	log.Debug("process payroll run fan-out done",
		zap.Int("employees", len(batch)),
		zap.Int("inserted", inserted),
		zap.Int("failed", skipped),
	)

	return s.finishRun(ctx, log, run, token)
}

// processEmployee computes and stores one payment. Payment, lines and the
// timesheet marks commit together or not at all.
func (s *service) processEmployee(
	ctx context.Context,
	run *PayrollRun,
	period *PayrollPeriod,
	calcPeriod paycalc.Period,
	token string,
	w employeeWork,
	snap compensation.Snapshot,
) (employeeOutcome, error) {
	universityID := run.UniversityID.String()
	runID := run.ID.String()

	ytd, err := s.repo.YTDDeducted(ctx, universityID, w.EmployeeID, period.PaymentDate.Year(), runID)
	if err != nil {
		return employeeOutcome{}, err
	}

	result, calcErr := paycalc.Calculate(paycalc.Input{
		EmployeeID:          w.EmployeeID,
		Period:              calcPeriod,
		Work:                w.Work,
		Allowances:          snap.Allowances[w.EmployeeID],
		Deductions:          snap.Deductions[w.EmployeeID],
		MandatoryDeductions: snap.Mandatory,
		YTDDeducted:         ytd,
	})

	payment, lines, err := buildPayment(run, w, result, calcErr)
	if err != nil {
		return employeeOutcome{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return employeeOutcome{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	status, owner, err := qtx.RunStateForShare(ctx, runID)
	if err != nil {
		return employeeOutcome{}, err
	}
	if status == RunStatusCancelled {
		return employeeOutcome{}, payrollerrors.ErrRunCancelled
	}
	if status != RunStatusCalculating || owner != token {
		return employeeOutcome{}, payrollerrors.ErrRunBusy
	}

	inserted, err := qtx.InsertPayment(ctx, payment)
	if err != nil {
		return employeeOutcome{}, err
	}
	if inserted && calcErr == nil {
		if err := qtx.CreatePaymentLines(ctx, lines); err != nil {
			return employeeOutcome{}, err
		}
		if _, err := s.ledger.WithTx(tx).MarkProcessed(ctx, universityID, runID, w.TimesheetIDs); err != nil {
			return employeeOutcome{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return employeeOutcome{}, err
	}
	return employeeOutcome{Inserted: inserted, Failed: calcErr != nil}, nil
}

// finishRun reduces the stored payments into run totals and marks the run
// calculated, as long as this attempt still owns it.
func (s *service) finishRun(ctx context.Context, log *zap.Logger, run *PayrollRun, token string) (RunResponse, error) {
	universityID := run.UniversityID.String()
	runID := run.ID.String()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RunResponse{}, s.failRun(ctx, log, run, token, err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	totals, err := qtx.SumRunTotals(ctx, runID)
	if err != nil {
		return RunResponse{}, s.failRun(ctx, log, run, token, err)
	}

	now := time.Now().UTC()
	affected, err := qtx.UpdateRun(ctx, universityID, runID, RunGuard{
		Statuses:  []string{RunStatusCalculating},
		LockToken: token,
	}, map[string]any{
		"status":                    RunStatusCalculated,
		"total_employees_processed": totals.Processed,
		"total_employees_skipped":   totals.Skipped,
		"total_gross_pay":           totals.GrossPay,
		"total_allowances":          totals.TotalAllowances,
		"total_deductions":          totals.TotalDeductions,
		"total_net_pay":             totals.NetPay,
		"calculated_at":             now,
		"lock_token":                nil,
		"locked_at":                 nil,
	})
	if err != nil {
		return RunResponse{}, s.failRun(ctx, log, run, token, err)
	}
	if affected == 0 {
		log.Warn("process payroll run lost ownership before fan-in")
		return RunResponse{}, payrollerrors.ErrRunCancelled
	}

	run.Status = RunStatusCalculated
	run.TotalEmployeesProcessed = totals.Processed
	run.TotalEmployeesSkipped = totals.Skipped
	run.TotalGrossPay = totals.GrossPay
	run.TotalAllowances = totals.TotalAllowances
	run.TotalDeductions = totals.TotalDeductions
	run.TotalNetPay = totals.NetPay
	run.CalculatedAt = &now
	run.LockToken, run.LockedAt = nil, nil

	if err := s.enqueueRunEvent(ctx, tx, run, events.PayrollRunCalculated, ""); err != nil {
		return RunResponse{}, s.failRun(ctx, log, run, token, err)
	}
	if err := tx.Commit(); err != nil {
		return RunResponse{}, s.failRun(ctx, log, run, token, err)
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "PAYROLL_RUN_CALCULATED",
		Message: "payroll run calculated",
		Meta: map[string]any{
			"run_id":              runID,
			"employees_processed": totals.Processed,
			"employees_skipped":   totals.Skipped,
			"total_gross_pay":     totals.GrossPay.StringFixed(money.Places),
			"total_net_pay":       totals.NetPay.StringFixed(money.Places),
		},
	})
	log.Info("process payroll run success",
		zap.Int("employees_processed", totals.Processed),
		zap.Int("employees_skipped", totals.Skipped),
	)
	return mapRunToResponse(*run), nil
}

// failRun records a systemic failure on a run this attempt still owns and
// returns cause so callers can pass it straight back. The run gives up its
// pending payments and processed timesheets in the same transaction, so a
// later run for the period picks those employees up again.
func (s *service) failRun(ctx context.Context, log *zap.Logger, run *PayrollRun, token string, cause error) error {
	log.Error("process payroll run failed", zap.Error(cause))

	// the request context may already be cancelled
	ctx = context.WithoutCancel(ctx)
	reason := cause.Error()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("mark payroll run failed: begin", zap.Error(err))
		return cause
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	affected, err := qtx.UpdateRun(ctx, run.UniversityID.String(), run.ID.String(), RunGuard{
		Statuses:  []string{RunStatusCalculating},
		LockToken: token,
	}, map[string]any{
		"status":         RunStatusFailed,
		"failure_reason": reason,
		"lock_token":     nil,
		"locked_at":      nil,
	})
	if err != nil {
		log.Error("mark payroll run failed: update", zap.Error(err))
		return cause
	}
	if affected == 0 {
		return cause
	}
	cancelled, err := qtx.CancelPayments(ctx, run.ID.String())
	if err != nil {
		log.Error("mark payroll run failed: cancel payments", zap.Error(err))
		return cause
	}
	released, err := s.ledger.WithTx(tx).Release(ctx, run.UniversityID.String(), run.ID.String())
	if err != nil {
		log.Error("mark payroll run failed: release timesheets", zap.Error(err))
		return cause
	}

	run.Status = RunStatusFailed
	run.FailureReason = &reason
	if err := s.enqueueRunEvent(ctx, tx, run, events.PayrollRunFailed, reason); err != nil {
		log.Error("mark payroll run failed: outbox", zap.Error(err))
		return cause
	}
	if err := tx.Commit(); err != nil {
		log.Error("mark payroll run failed: commit", zap.Error(err))
		return cause
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "PAYROLL_RUN_FAILED",
		Message: "payroll run failed",
		Meta: map[string]any{
			"run_id":              run.ID.String(),
			"reason":              reason,
			"payments_cancelled":  cancelled,
			"timesheets_released": released,
		},
	})
	return cause
}

// ReapStaleRuns fails runs stuck in calculating past the stale timeout, so
// they can be processed again. It runs across all universities.
func (s *service) ReapStaleRuns(ctx context.Context) (int, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	cutoff := time.Now().UTC().Add(-s.opts.StaleRunAfter)
	runs, err := s.repo.FindStaleRuns(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	reaped := 0
	for i := range runs {
		run := &runs[i]
		token := ""
		if run.LockToken != nil {
			token = *run.LockToken
		}
		timeout := fmt.Errorf("processing exceeded %s without finishing", s.opts.StaleRunAfter)
		_ = s.failRun(ctx, log.With(zap.String("run_id", run.ID.String())), run, token, timeout)
		if run.Status == RunStatusFailed {
			reaped++
		}
	}
	if reaped > 0 {
		log.Info("stale payroll runs reaped", zap.Int("count", reaped))
	}
	return reaped, nil
}

// groupWork folds timesheets into per-employee work, one entry per
// assignment, and collects every configuration problem up front.
func groupWork(sheets []timesheet.Timesheet, period paycalc.Period) ([]employeeWork, []ConfigIssue) {
	byEmployee := map[string]*employeeWork{}
	byAssignment := map[string]int{}
	var issues []ConfigIssue
	checked := map[string]bool{}

	for _, ts := range sheets {
		empID := ts.EmployeeID.String()
		if ts.Assignment == nil {
			issues = append(issues, ConfigIssue{
				EmployeeID:   empID,
				AssignmentID: ts.AssignmentID.String(),
				Message:      "assignment not found",
			})
			continue
		}
		if !ts.Assignment.IsActive || !ts.Assignment.IsApproved {
			issues = append(issues, ConfigIssue{
				EmployeeID:   empID,
				AssignmentID: ts.AssignmentID.String(),
				Message:      "assignment is not active and approved",
			})
			continue
		}
		assignment := ts.Assignment.ToPaycalc()
		if !checked[assignment.ID] {
			checked[assignment.ID] = true
			if err := paycalc.ValidateAssignment(assignment, period); err != nil {
				issues = append(issues, ConfigIssue{
					EmployeeID:   empID,
					AssignmentID: assignment.ID,
					Message:      err.Error(),
				})
				continue
			}
		}

		w, ok := byEmployee[empID]
		if !ok {
			w = &employeeWork{EmployeeID: empID}
			byEmployee[empID] = w
		}
		w.TimesheetIDs = append(w.TimesheetIDs, ts.ID.String())

		key := empID + "/" + assignment.ID
		idx, ok := byAssignment[key]
		if !ok {
			w.Work = append(w.Work, paycalc.AssignmentHours{
				Assignment:    assignment,
				RegularHours:  decimal.Zero,
				OvertimeHours: decimal.Zero,
			})
			idx = len(w.Work) - 1
			byAssignment[key] = idx
		}
		w.Work[idx].RegularHours = w.Work[idx].RegularHours.Add(ts.RegularHours)
		w.Work[idx].OvertimeHours = w.Work[idx].OvertimeHours.Add(ts.OvertimeHours)
	}

	out := make([]employeeWork, 0, len(byEmployee))
	for _, w := range byEmployee {
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out, issues
}

func buildPayment(run *PayrollRun, w employeeWork, result paycalc.Result, calcErr error) (*PayrollPayment, []PaymentLine, error) {
	employeeUUID, err := uuid.Parse(w.EmployeeID)
	if err != nil {
		return nil, nil, err
	}

	payment := &PayrollPayment{
		ID:           uuid.New(),
		UniversityID: run.UniversityID,
		PayrollRunID: run.ID,
		EmployeeID:   employeeUUID,
		Status:       PaymentStatusPending,
	}

	snap := calculationSnapshot{TimesheetIDs: w.TimesheetIDs}
	if calcErr != nil {
		reason := calcErr.Error()
		payment.Status = PaymentStatusFailed
		payment.FailureReason = &reason
		snap.Error = reason
	} else {
		payment.GrossPay = result.GrossPay
		payment.TotalAllowances = result.TotalAllowances
		payment.TotalDeductions = result.TotalDeductions
		payment.NetPay = result.NetPay
		payment.NeedsReview = result.NeedsReview
		if result.ReviewReason != "" {
			reason := result.ReviewReason
			payment.ReviewReason = &reason
		}
		snap.Result = &result
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		return nil, nil, err
	}
	payment.Snapshot = datatypes.JSON(raw)

	if calcErr != nil {
		return payment, nil, nil
	}

	lines := make([]PaymentLine, 0, len(result.Allowances)+len(result.Deductions))
	for _, l := range result.Allowances {
		line, err := toPaymentLine(payment.ID, LineKindAllowance, l)
		if err != nil {
			return nil, nil, err
		}
		lines = append(lines, line)
	}
	for _, l := range result.Deductions {
		line, err := toPaymentLine(payment.ID, LineKindDeduction, l)
		if err != nil {
			return nil, nil, err
		}
		lines = append(lines, line)
	}
	return payment, lines, nil
}

func toPaymentLine(paymentID uuid.UUID, kind string, l paycalc.Line) (PaymentLine, error) {
	configID, err := uuid.Parse(l.ConfigID)
	if err != nil {
		return PaymentLine{}, fmt.Errorf("line %s: invalid config id: %w", l.Code, err)
	}
	return PaymentLine{
		ID:                uuid.New(),
		PaymentID:         paymentID,
		Kind:              kind,
		ConfigID:          configID,
		Code:              l.Code,
		Name:              l.Name,
		CalculationMethod: string(l.Method),
		ComputedAmount:    l.ComputedAmount,
		Amount:            l.Amount,
		CapApplied:        string(l.CapApplied),
		IsTaxable:         l.IsTaxable,
		ContributesToNet:  l.ContributesToNet,
	}, nil
}

func summarizeIssues(issues []ConfigIssue) string {
	parts := make([]string, 0, len(issues))
	for _, i := range issues {
		parts = append(parts, fmt.Sprintf("employee %s: %s", i.EmployeeID, i.Message))
	}
	return strings.Join(parts, "; ")
}
