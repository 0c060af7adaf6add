package payroll_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"uni-payroll/internal/events"
	"uni-payroll/internal/messaging/kafka"
	"uni-payroll/internal/payroll"
	payrollerrors "uni-payroll/internal/payroll/errors"
	"uni-payroll/internal/shared/apperror"
	"uni-payroll/internal/shared/counter"

	kafkaMock "uni-payroll/internal/messaging/kafka/mock"
	payrollMock "uni-payroll/internal/payroll/mock"
	counterMock "uni-payroll/internal/shared/counter/mock"
	timesheetMock "uni-payroll/internal/timesheet/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	service  payroll.Service
	repo     *payrollMock.MockRepository
	ledger   *timesheetMock.MockLedger
	rules    *payrollMock.MockRuleSource
	counters *counterMock.MockRepository
	outbox   *kafkaMock.MockOutboxRepository
	locker   *payrollMock.MockRunLocker
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := payrollMock.NewMockRepository(ctrl)
	ledger := timesheetMock.NewMockLedger(ctrl)
	rules := payrollMock.NewMockRuleSource(ctrl)
	counters := counterMock.NewMockRepository(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)
	locker := payrollMock.NewMockRunLocker(ctrl)

	svc := payroll.NewService(db, repo, ledger, rules, counters, outbox, locker, nil, payroll.Options{
		Workers:       1,
		StaleRunAfter: time.Hour,
	})

	return &serviceDeps{
		db:       db,
		sqlMock:  sqlMock,
		service:  svc,
		repo:     repo,
		ledger:   ledger,
		rules:    rules,
		counters: counters,
		outbox:   outbox,
		locker:   locker,
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

var (
	periodStart = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	periodEnd   = time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	paymentDay  = time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)
)

func newPeriod(universityID string) *payroll.PayrollPeriod {
	return &payroll.PayrollPeriod{
		ID:           uuid.New(),
		UniversityID: uuid.MustParse(universityID),
		Name:         "March 2025",
		Frequency:    payroll.FrequencyMonthly,
		StartDate:    periodStart,
		EndDate:      periodEnd,
		PaymentDate:  paymentDay,
		CreatedBy:    uuid.New(),
	}
}

func newRun(universityID, status string) *payroll.PayrollRun {
	period := newPeriod(universityID)
	return &payroll.PayrollRun{
		ID:              uuid.New(),
		UniversityID:    period.UniversityID,
		PayrollPeriodID: period.ID,
		Period:          period,
		RunNumber:       1,
		Status:          status,
		CreatedBy:       uuid.New(),
	}
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestPayrollService_CreatePeriod(t *testing.T) {
	uni := uuid.NewString()
	actor := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().CreatePeriod(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *payroll.PayrollPeriod) error {
				assert.Equal(t, "March 2025", p.Name)
				assert.Equal(t, periodStart, p.StartDate)
				assert.Equal(t, uni, p.UniversityID.String())
				return nil
			})

		resp, err := deps.service.CreatePeriod(context.Background(), uni, actor, payroll.CreatePeriodRequest{
			Name:        " March 2025 ",
			Frequency:   payroll.FrequencyMonthly,
			StartDate:   "2025-03-01",
			EndDate:     "2025-03-31",
			PaymentDate: "2025-04-05",
		})

		require.NoError(t, err)
		assert.Equal(t, "2025-04-05", resp.PaymentDate)
		assert.False(t, resp.IsClosed)
	})

	t.Run("end before start", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.CreatePeriod(context.Background(), uni, actor, payroll.CreatePeriodRequest{
			Name:        "bad",
			Frequency:   payroll.FrequencyMonthly,
			StartDate:   "2025-03-31",
			EndDate:     "2025-03-01",
			PaymentDate: "2025-04-05",
		})

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidDateRange)
	})

	t.Run("payment date before start", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.CreatePeriod(context.Background(), uni, actor, payroll.CreatePeriodRequest{
			Name:        "bad",
			Frequency:   payroll.FrequencyMonthly,
			StartDate:   "2025-03-01",
			EndDate:     "2025-03-31",
			PaymentDate: "2025-02-28",
		})

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidPaymentDate)
	})
}

func TestPayrollService_CreateRun(t *testing.T) {
	uni := uuid.NewString()
	actor := uuid.NewString()

	t.Run("run number from counter", func(t *testing.T) {
		deps := setupServiceTest(t)
		period := newPeriod(uni)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockPeriod(gomock.Any(), uni, period.ID.String()).Return(period, nil)
		deps.repo.EXPECT().HasActiveRun(gomock.Any(), uni, period.ID.String(), "").Return(false, nil)
		deps.counters.EXPECT().WithTx(gomock.Any()).Return(deps.counters)
		deps.counters.EXPECT().GetNextValue(gomock.Any(), uni, counter.TypePayrollRun).Return(int64(7), nil)
		deps.repo.EXPECT().CreateRun(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *payroll.PayrollRun) error {
				assert.Equal(t, payroll.RunStatusPending, r.Status)
				assert.Equal(t, int64(7), r.RunNumber)
				return nil
			})

		resp, err := deps.service.CreateRun(context.Background(), uni, actor, payroll.CreateRunRequest{
			PayrollPeriodID: period.ID.String(),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.RunNumber)
		assert.Equal(t, "0.00", resp.TotalGrossPay)
	})

	t.Run("duplicate active run", func(t *testing.T) {
		deps := setupServiceTest(t)
		period := newPeriod(uni)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		gomock.InOrder(
			deps.repo.EXPECT().LockPeriod(gomock.Any(), uni, period.ID.String()).Return(period, nil),
			deps.repo.EXPECT().HasActiveRun(gomock.Any(), uni, period.ID.String(), "").Return(true, nil),
		)

		_, err := deps.service.CreateRun(context.Background(), uni, actor, payroll.CreateRunRequest{
			PayrollPeriodID: period.ID.String(),
		})

		assert.ErrorIs(t, err, payrollerrors.ErrDuplicateRun)
		assert.True(t, apperror.HasCode(err, apperror.CodeDuplicateRun))
	})

	t.Run("closed period", func(t *testing.T) {
		deps := setupServiceTest(t)
		period := newPeriod(uni)
		period.IsClosed = true

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockPeriod(gomock.Any(), uni, period.ID.String()).Return(period, nil)

		_, err := deps.service.CreateRun(context.Background(), uni, actor, payroll.CreateRunRequest{
			PayrollPeriodID: period.ID.String(),
		})

		assert.ErrorIs(t, err, payrollerrors.ErrPeriodClosed)
		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidState))
	})

	t.Run("period not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		periodID := uuid.NewString()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockPeriod(gomock.Any(), uni, periodID).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.CreateRun(context.Background(), uni, actor, payroll.CreateRunRequest{
			PayrollPeriodID: periodID,
		})

		assert.ErrorIs(t, err, payrollerrors.ErrPeriodNotFound)
	})

	t.Run("explicit run number must be positive", func(t *testing.T) {
		deps := setupServiceTest(t)
		zero := int64(0)

		_, err := deps.service.CreateRun(context.Background(), uni, actor, payroll.CreateRunRequest{
			PayrollPeriodID: uuid.NewString(),
			RunNumber:       &zero,
		})

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidRunNumber)
	})
}

func TestPayrollService_ApproveRun(t *testing.T) {
	uni := uuid.NewString()
	approver := uuid.NewString()

	t.Run("calculated run completes in one transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		run := newRun(uni, payroll.RunStatusCalculated)
		run.Period = nil
		run.TotalNetPay = dec("530.00")
		id := run.ID.String()

		var steps []string
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockRun(gomock.Any(), uni, id).Return(run, nil)
		deps.repo.EXPECT().UpdateRun(gomock.Any(), uni, id, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, guard payroll.RunGuard, updates map[string]any) (int64, error) {
				require.Len(t, guard.Statuses, 1)
				steps = append(steps, guard.Statuses[0]+">"+updates["status"].(string))
				return 1, nil
			}).Times(3)
		deps.repo.EXPECT().CompletePayments(gomock.Any(), id, gomock.Any()).Return(int64(2), nil)
		deps.ledger.EXPECT().WithTx(gomock.Any()).Return(deps.ledger)
		deps.ledger.EXPECT().MarkPaid(gomock.Any(), uni, id).Return(int64(3), nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, events.PayrollRunLifecycleTopic, ev.Topic)
				assert.Equal(t, events.PayrollRunCompleted, ev.EventType)
				var payload events.PayrollRunLifecycleEvent
				require.NoError(t, json.Unmarshal(ev.Payload, &payload))
				assert.Equal(t, payroll.RunStatusCompleted, payload.Status)
				assert.Equal(t, "530.00", payload.TotalNetPay)
				return nil
			})

		resp, err := deps.service.ApproveRun(context.Background(), uni, approver, id)

		require.NoError(t, err)
		assert.Equal(t, payroll.RunStatusCompleted, resp.Status)
		assert.Equal(t, []string{
			"calculated>approved",
			"approved>processing",
			"processing>completed",
		}, steps)
		require.NotNil(t, resp.ApprovedBy)
		assert.Equal(t, approver, *resp.ApprovedBy)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("completed run is a no-op", func(t *testing.T) {
		deps := setupServiceTest(t)
		run := newRun(uni, payroll.RunStatusCompleted)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockRun(gomock.Any(), uni, run.ID.String()).Return(run, nil)

		resp, err := deps.service.ApproveRun(context.Background(), uni, approver, run.ID.String())

		require.NoError(t, err)
		assert.Equal(t, payroll.RunStatusCompleted, resp.Status)
	})

	t.Run("pending run cannot be approved", func(t *testing.T) {
		deps := setupServiceTest(t)
		run := newRun(uni, payroll.RunStatusPending)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockRun(gomock.Any(), uni, run.ID.String()).Return(run, nil)

		_, err := deps.service.ApproveRun(context.Background(), uni, approver, run.ID.String())

		require.Error(t, err)
		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidState))
		assert.Contains(t, err.Error(), "pending")
	})

	t.Run("creator cannot approve own run", func(t *testing.T) {
		deps := setupServiceTest(t)
		run := newRun(uni, payroll.RunStatusCalculated)
		run.CreatedBy = uuid.MustParse(approver)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockRun(gomock.Any(), uni, run.ID.String()).Return(run, nil)

		_, err := deps.service.ApproveRun(context.Background(), uni, approver, run.ID.String())

		assert.ErrorIs(t, err, payrollerrors.ErrSelfApproval)
		assert.True(t, apperror.HasCode(err, apperror.CodeForbidden))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("failure rolls everything back", func(t *testing.T) {
		deps := setupServiceTest(t)
		run := newRun(uni, payroll.RunStatusCalculated)
		id := run.ID.String()
		dbErr := errors.New("connection reset")

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockRun(gomock.Any(), uni, id).Return(run, nil)
		deps.repo.EXPECT().UpdateRun(gomock.Any(), uni, id, gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(2)
		deps.repo.EXPECT().CompletePayments(gomock.Any(), id, gomock.Any()).Return(int64(0), dbErr)

		_, err := deps.service.ApproveRun(context.Background(), uni, approver, id)

		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPayrollService_CancelRun(t *testing.T) {
	uni := uuid.NewString()
	actor := uuid.NewString()

	t.Run("releases timesheets and cancels payments", func(t *testing.T) {
		deps := setupServiceTest(t)
		run := newRun(uni, payroll.RunStatusCalculated)
		id := run.ID.String()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockRun(gomock.Any(), uni, id).Return(run, nil)
		deps.repo.EXPECT().UpdateRun(gomock.Any(), uni, id, payroll.RunGuard{Statuses: []string{payroll.RunStatusCalculated}}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, _ payroll.RunGuard, updates map[string]any) (int64, error) {
				assert.Equal(t, payroll.RunStatusCancelled, updates["status"])
				assert.Equal(t, "wrong period", updates["cancellation_reason"])
				return 1, nil
			})
		deps.repo.EXPECT().CancelPayments(gomock.Any(), id).Return(int64(4), nil)
		deps.ledger.EXPECT().WithTx(gomock.Any()).Return(deps.ledger)
		deps.ledger.EXPECT().Release(gomock.Any(), uni, id).Return(int64(5), nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, events.PayrollRunCancelled, ev.EventType)
				return nil
			})

		resp, err := deps.service.CancelRun(context.Background(), uni, actor, id, " wrong period ")

		require.NoError(t, err)
		assert.Equal(t, payroll.RunStatusCancelled, resp.Status)
		require.NotNil(t, resp.CancellationReason)
		assert.Equal(t, "wrong period", *resp.CancellationReason)
	})

	t.Run("completed run cannot be cancelled", func(t *testing.T) {
		deps := setupServiceTest(t)
		run := newRun(uni, payroll.RunStatusCompleted)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockRun(gomock.Any(), uni, run.ID.String()).Return(run, nil)

		_, err := deps.service.CancelRun(context.Background(), uni, actor, run.ID.String(), "late")

		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidState))
	})

	t.Run("reason required", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.CancelRun(context.Background(), uni, actor, uuid.NewString(), "  ")

		assert.ErrorIs(t, err, payrollerrors.ErrReasonRequired)
	})
}

func TestPayrollService_ClosePeriod(t *testing.T) {
	uni := uuid.NewString()
	actor := uuid.NewString()

	t.Run("authoritative run still calculated", func(t *testing.T) {
		deps := setupServiceTest(t)
		period := newPeriod(uni)
		run := newRun(uni, payroll.RunStatusCalculated)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockPeriod(gomock.Any(), uni, period.ID.String()).Return(period, nil)
		deps.repo.EXPECT().FindAuthoritativeRun(gomock.Any(), uni, period.ID.String()).Return(run, nil)

		_, err := deps.service.ClosePeriod(context.Background(), uni, actor, period.ID.String())

		assert.ErrorIs(t, err, payrollerrors.ErrPeriodNotSettled)
	})

	t.Run("no run at all", func(t *testing.T) {
		deps := setupServiceTest(t)
		period := newPeriod(uni)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockPeriod(gomock.Any(), uni, period.ID.String()).Return(period, nil)
		deps.repo.EXPECT().FindAuthoritativeRun(gomock.Any(), uni, period.ID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.ClosePeriod(context.Background(), uni, actor, period.ID.String())

		assert.ErrorIs(t, err, payrollerrors.ErrPeriodNotSettled)
	})

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		period := newPeriod(uni)
		run := newRun(uni, payroll.RunStatusCompleted)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockPeriod(gomock.Any(), uni, period.ID.String()).Return(period, nil)
		deps.repo.EXPECT().FindAuthoritativeRun(gomock.Any(), uni, period.ID.String()).Return(run, nil)
		deps.repo.EXPECT().ClosePeriod(gomock.Any(), uni, period.ID.String(), actor, gomock.Any()).Return(int64(1), nil)

		resp, err := deps.service.ClosePeriod(context.Background(), uni, actor, period.ID.String())

		require.NoError(t, err)
		assert.True(t, resp.IsClosed)
		require.NotNil(t, resp.ClosedBy)
		assert.Equal(t, actor, *resp.ClosedBy)
	})

	t.Run("already closed", func(t *testing.T) {
		deps := setupServiceTest(t)
		period := newPeriod(uni)
		period.IsClosed = true

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockPeriod(gomock.Any(), uni, period.ID.String()).Return(period, nil)

		_, err := deps.service.ClosePeriod(context.Background(), uni, actor, period.ID.String())

		assert.ErrorIs(t, err, payrollerrors.ErrPeriodClosed)
	})
}

func TestPayrollService_RequestProcess(t *testing.T) {
	uni := uuid.NewString()
	actor := uuid.NewString()

	t.Run("enqueues process request", func(t *testing.T) {
		deps := setupServiceTest(t)
		run := newRun(uni, payroll.RunStatusPending)
		id := run.ID.String()

		deps.repo.EXPECT().FindRunByID(gomock.Any(), uni, id).Return(run, nil)
		expectTx(t, deps.sqlMock, true)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, events.PayrollRunProcessRequestedTopic, ev.Topic)
				var payload events.PayrollRunProcessRequestedEvent
				require.NoError(t, json.Unmarshal(ev.Payload, &payload))
				assert.Equal(t, id, payload.RunID)
				assert.Equal(t, actor, payload.RequestedBy)
				return nil
			})

		resp, err := deps.service.RequestProcess(context.Background(), uni, actor, id)

		require.NoError(t, err)
		assert.Equal(t, payroll.RunStatusPending, resp.Status)
	})

	t.Run("calculated run is returned without enqueueing", func(t *testing.T) {
		deps := setupServiceTest(t)
		run := newRun(uni, payroll.RunStatusCalculated)

		deps.repo.EXPECT().FindRunByID(gomock.Any(), uni, run.ID.String()).Return(run, nil)

		resp, err := deps.service.RequestProcess(context.Background(), uni, actor, run.ID.String())

		require.NoError(t, err)
		assert.Equal(t, payroll.RunStatusCalculated, resp.Status)
	})

	t.Run("calculated run with failed payments is enqueued again", func(t *testing.T) {
		deps := setupServiceTest(t)
		run := newRun(uni, payroll.RunStatusCalculated)
		run.TotalEmployeesSkipped = 1

		deps.repo.EXPECT().FindRunByID(gomock.Any(), uni, run.ID.String()).Return(run, nil)
		expectTx(t, deps.sqlMock, true)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		_, err := deps.service.RequestProcess(context.Background(), uni, actor, run.ID.String())

		require.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPayrollService_CreateAdjustment(t *testing.T) {
	uni := uuid.NewString()
	actor := uuid.NewString()

	t.Run("completed payment", func(t *testing.T) {
		deps := setupServiceTest(t)
		payment := &payroll.PayrollPayment{ID: uuid.New(), Status: payroll.PaymentStatusCompleted}

		deps.repo.EXPECT().FindPaymentByID(gomock.Any(), uni, payment.ID.String()).Return(payment, nil)
		deps.repo.EXPECT().CreateAdjustment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, adj *payroll.PaymentAdjustment) error {
				assert.Equal(t, payment.ID, adj.PaymentID)
				assert.True(t, adj.Amount.Equal(dec("-12.50")))
				return nil
			})

		resp, err := deps.service.CreateAdjustment(context.Background(), uni, actor, payment.ID.String(), payroll.CreateAdjustmentRequest{
			Amount: "-12.5",
			Reason: "overpaid stipend",
		})

		require.NoError(t, err)
		assert.Equal(t, "-12.50", resp.Amount)
	})

	t.Run("pending payment", func(t *testing.T) {
		deps := setupServiceTest(t)
		payment := &payroll.PayrollPayment{ID: uuid.New(), Status: payroll.PaymentStatusPending}

		deps.repo.EXPECT().FindPaymentByID(gomock.Any(), uni, payment.ID.String()).Return(payment, nil)

		_, err := deps.service.CreateAdjustment(context.Background(), uni, actor, payment.ID.String(), payroll.CreateAdjustmentRequest{
			Amount: "10",
			Reason: "bonus",
		})

		assert.ErrorIs(t, err, payrollerrors.ErrAdjustOnlyCompleted)
	})

	t.Run("zero amount", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.CreateAdjustment(context.Background(), uni, actor, uuid.NewString(), payroll.CreateAdjustmentRequest{
			Amount: "0.00",
			Reason: "noop",
		})

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidAdjustment)
	})
}

func TestPayrollService_GetYTDEarnings(t *testing.T) {
	uni := uuid.NewString()
	emp := uuid.NewString()

	t.Run("totals and per code", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().YTDEarnings(gomock.Any(), uni, emp, 2025).Return(payroll.YTDTotals{
			Payments:        2,
			GrossPay:        dec("700"),
			TotalAllowances: dec("50"),
			TotalDeductions: dec("40"),
			NetPay:          dec("710"),
			Adjustments:     dec("-12.5"),
		}, nil)
		deps.repo.EXPECT().YTDDeductionsByCode(gomock.Any(), uni, emp, 2025).Return([]payroll.CodeTotal{
			{ConfigID: uuid.NewString(), Code: "PENS", Name: "Pension", Amount: dec("40")},
		}, nil)

		resp, err := deps.service.GetYTDEarnings(context.Background(), uni, emp, 2025)

		require.NoError(t, err)
		assert.Equal(t, "700.00", resp.GrossPay)
		assert.Equal(t, "710.00", resp.NetPay)
		assert.Equal(t, "-12.50", resp.Adjustments)
		require.Len(t, resp.Deductions, 1)
		assert.Equal(t, "40.00", resp.Deductions[0].Amount)
	})

	t.Run("invalid year", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.GetYTDEarnings(context.Background(), uni, emp, 25)

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidYear)
	})
}
