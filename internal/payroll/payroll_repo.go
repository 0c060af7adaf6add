package payroll

import (
	"context"
	"database/sql"
	"time"

	"uni-payroll/internal/shared/connection"
	"uni-payroll/internal/tenant"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RunGuard narrows a run update to rows still in one of Statuses and, when
// LockToken is set, still owned by that processing attempt.
type RunGuard struct {
	Statuses  []string
	LockToken string
}

// RunTotals is the fan-in reduction over a run's persisted payments.
type RunTotals struct {
	Processed       int
	Skipped         int
	GrossPay        decimal.Decimal
	TotalAllowances decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
}

type YTDTotals struct {
	Payments        int
	GrossPay        decimal.Decimal
	TotalAllowances decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
	Adjustments     decimal.Decimal
}

type CodeTotal struct {
	ConfigID string
	Code     string
	Name     string
	Amount   decimal.Decimal
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreatePeriod(ctx context.Context, period *PayrollPeriod) error
	FindPeriods(ctx context.Context, universityID string) ([]PayrollPeriod, error)
	FindPeriodByID(ctx context.Context, universityID, id string) (*PayrollPeriod, error)
	LockPeriod(ctx context.Context, universityID, id string) (*PayrollPeriod, error)
	ClosePeriod(ctx context.Context, universityID, id string, closedBy string, at time.Time) (int64, error)

	CreateRun(ctx context.Context, run *PayrollRun) error
	FindRunByID(ctx context.Context, universityID, id string) (*PayrollRun, error)
	LockRun(ctx context.Context, universityID, id string) (*PayrollRun, error)
	FindRunsByPeriod(ctx context.Context, universityID, periodID string) ([]PayrollRun, error)
	HasActiveRun(ctx context.Context, universityID, periodID, excludeRunID string) (bool, error)
	FindAuthoritativeRun(ctx context.Context, universityID, periodID string) (*PayrollRun, error)
	ClaimRun(ctx context.Context, universityID, id, lockToken string, staleBefore time.Time) (int64, error)
	UpdateRun(ctx context.Context, universityID, id string, guard RunGuard, updates map[string]any) (int64, error)
	RunStateForShare(ctx context.Context, runID string) (string, string, error)
	FindStaleRuns(ctx context.Context, lockedBefore time.Time) ([]PayrollRun, error)

	InsertPayment(ctx context.Context, payment *PayrollPayment) (bool, error)
	CreatePaymentLines(ctx context.Context, lines []PaymentLine) error
	DiscardUnfinishedPayments(ctx context.Context, runID string) (int64, error)
	FindPaymentsByRun(ctx context.Context, universityID, runID string) ([]PayrollPayment, error)
	FindPaymentByID(ctx context.Context, universityID, id string) (*PayrollPayment, error)
	CompletePayments(ctx context.Context, runID string, at time.Time) (int64, error)
	CancelPayments(ctx context.Context, runID string) (int64, error)
	SumRunTotals(ctx context.Context, runID string) (RunTotals, error)
	CreateAdjustment(ctx context.Context, adj *PaymentAdjustment) error

	YTDDeducted(ctx context.Context, universityID, employeeID string, year int, excludeRunID string) (map[string]decimal.Decimal, error)
	YTDEarnings(ctx context.Context, universityID, employeeID string, year int) (YTDTotals, error)
	YTDDeductionsByCode(ctx context.Context, universityID, employeeID string, year int) ([]CodeTotal, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.WithSQLTx(r.db, r.tx).WithContext(ctx)
}

func (r *repository) CreatePeriod(ctx context.Context, period *PayrollPeriod) error {
	return r.conn(ctx).Create(period).Error
}

func (r *repository) FindPeriods(ctx context.Context, universityID string) ([]PayrollPeriod, error) {
	var periods []PayrollPeriod
	err := r.conn(ctx).
		Scopes(tenant.Scope(universityID)).
		Order("start_date DESC").
		Find(&periods).Error
	return periods, err
}

func (r *repository) FindPeriodByID(ctx context.Context, universityID, id string) (*PayrollPeriod, error) {
	var period PayrollPeriod
	err := r.conn(ctx).
		Scopes(tenant.Scope(universityID)).
		First(&period, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// LockPeriod takes the period row lock. Run creation, claiming and period
// close serialize on it.
func (r *repository) LockPeriod(ctx context.Context, universityID, id string) (*PayrollPeriod, error) {
	var period PayrollPeriod
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(universityID)).
		First(&period, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *repository) ClosePeriod(ctx context.Context, universityID, id string, closedBy string, at time.Time) (int64, error) {
	res := r.conn(ctx).
		Model(&PayrollPeriod{}).
		Scopes(tenant.Scope(universityID)).
		Where("id = ? AND is_closed = ?", id, false).
		Updates(map[string]any{
			"is_closed": true,
			"closed_at": at,
			"closed_by": closedBy,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) CreateRun(ctx context.Context, run *PayrollRun) error {
	return r.conn(ctx).Omit("Period").Create(run).Error
}

func (r *repository) FindRunByID(ctx context.Context, universityID, id string) (*PayrollRun, error) {
	var run PayrollRun
	err := r.conn(ctx).
		Preload("Period").
		Scopes(tenant.Scope(universityID)).
		First(&run, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// LockRun takes the run row lock. Cancel and approve hold it for their
// whole transaction.
func (r *repository) LockRun(ctx context.Context, universityID, id string) (*PayrollRun, error) {
	var run PayrollRun
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(universityID)).
		First(&run, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *repository) FindRunsByPeriod(ctx context.Context, universityID, periodID string) ([]PayrollRun, error) {
	var runs []PayrollRun
	err := r.conn(ctx).
		Scopes(tenant.Scope(universityID)).
		Where("payroll_period_id = ?", periodID).
		Order("run_number DESC").
		Find(&runs).Error
	return runs, err
}

// HasActiveRun reports whether the period has a live run other than
// excludeRunID. Failed runs hold nothing and do not count.
func (r *repository) HasActiveRun(ctx context.Context, universityID, periodID, excludeRunID string) (bool, error) {
	var count int64
	db := r.conn(ctx).
		Model(&PayrollRun{}).
		Scopes(tenant.Scope(universityID)).
		Where("payroll_period_id = ?", periodID).
		Where("status NOT IN ?", []string{RunStatusCancelled, RunStatusFailed})
	if excludeRunID != "" {
		db = db.Where("id <> ?", excludeRunID)
	}
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) FindAuthoritativeRun(ctx context.Context, universityID, periodID string) (*PayrollRun, error) {
	var run PayrollRun
	err := r.conn(ctx).
		Scopes(tenant.Scope(universityID)).
		Where("payroll_period_id = ?", periodID).
		Where("status NOT IN ?", []string{RunStatusCancelled, RunStatusFailed}).
		Order("run_number DESC").
		First(&run).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// ClaimRun moves a run into calculating for one processing attempt. Pending
// and failed runs are claimable, and so is a calculating run whose lock is
// older than staleBefore (its worker died). A calculated run with failed
// payments can be claimed again to retry them.
func (r *repository) ClaimRun(ctx context.Context, universityID, id, lockToken string, staleBefore time.Time) (int64, error) {
	now := time.Now().UTC()
	res := r.conn(ctx).
		Model(&PayrollRun{}).
		Scopes(tenant.Scope(universityID)).
		Where("id = ?", id).
		Where("(status IN ? OR (status = ? AND locked_at < ?) OR (status = ? AND total_employees_skipped > 0))",
			[]string{RunStatusPending, RunStatusFailed}, RunStatusCalculating, staleBefore, RunStatusCalculated).
		Updates(map[string]any{
			"status":         RunStatusCalculating,
			"lock_token":     lockToken,
			"locked_at":      now,
			"started_at":     now,
			"failure_reason": nil,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) UpdateRun(ctx context.Context, universityID, id string, guard RunGuard, updates map[string]any) (int64, error) {
	db := r.conn(ctx).
		Model(&PayrollRun{}).
		Scopes(tenant.Scope(universityID)).
		Where("id = ?", id)
	if len(guard.Statuses) > 0 {
		db = db.Where("status IN ?", guard.Statuses)
	}
	if guard.LockToken != "" {
		db = db.Where("lock_token = ?", guard.LockToken)
	}
	res := db.Updates(updates)
	return res.RowsAffected, res.Error
}

// RunStateForShare reads the run under FOR SHARE so a concurrent cancel
// (FOR UPDATE) either waits for this transaction or is seen by it.
func (r *repository) RunStateForShare(ctx context.Context, runID string) (string, string, error) {
	var row struct {
		Status    string
		LockToken *string
	}
	err := r.conn(ctx).
		Model(&PayrollRun{}).
		Select("status, lock_token").
		Clauses(clause.Locking{Strength: "SHARE"}).
		Where("id = ?", runID).
		Take(&row).Error
	if err != nil {
		return "", "", err
	}
	token := ""
	if row.LockToken != nil {
		token = *row.LockToken
	}
	return row.Status, token, nil
}

func (r *repository) FindStaleRuns(ctx context.Context, lockedBefore time.Time) ([]PayrollRun, error) {
	var runs []PayrollRun
	err := r.conn(ctx).
		Where("status = ? AND locked_at < ?", RunStatusCalculating, lockedBefore).
		Order("locked_at ASC").
		Find(&runs).Error
	return runs, err
}

// InsertPayment is upsert-or-skip on (payroll_run_id, employee_id). It
// reports false when the employee already has a payment in the run.
func (r *repository) InsertPayment(ctx context.Context, payment *PayrollPayment) (bool, error) {
	res := r.conn(ctx).
		Omit("Lines", "Adjustments").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "payroll_run_id"}, {Name: "employee_id"}},
			DoNothing: true,
		}).
		Create(payment)
	return res.RowsAffected > 0, res.Error
}

func (r *repository) CreatePaymentLines(ctx context.Context, lines []PaymentLine) error {
	if len(lines) == 0 {
		return nil
	}
	return r.conn(ctx).Create(&lines).Error
}

// DiscardUnfinishedPayments drops failed payments and those cancelled when an
// earlier attempt failed, so the next attempt writes them afresh. Lines go
// with them through the foreign key cascade.
func (r *repository) DiscardUnfinishedPayments(ctx context.Context, runID string) (int64, error) {
	res := r.conn(ctx).
		Where("payroll_run_id = ? AND status IN ?", runID, []string{PaymentStatusFailed, PaymentStatusCancelled}).
		Delete(&PayrollPayment{})
	return res.RowsAffected, res.Error
}

func (r *repository) FindPaymentsByRun(ctx context.Context, universityID, runID string) ([]PayrollPayment, error) {
	var payments []PayrollPayment
	err := r.conn(ctx).
		Scopes(tenant.Scope(universityID)).
		Where("payroll_run_id = ?", runID).
		Order("employee_id ASC").
		Find(&payments).Error
	return payments, err
}

func (r *repository) FindPaymentByID(ctx context.Context, universityID, id string) (*PayrollPayment, error) {
	var payment PayrollPayment
	err := r.conn(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("kind ASC, code ASC")
		}).
		Preload("Adjustments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Scopes(tenant.Scope(universityID)).
		First(&payment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *repository) CompletePayments(ctx context.Context, runID string, at time.Time) (int64, error) {
	res := r.conn(ctx).
		Model(&PayrollPayment{}).
		Where("payroll_run_id = ? AND status = ?", runID, PaymentStatusPending).
		Updates(map[string]any{
			"status":       PaymentStatusCompleted,
			"completed_at": at,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) CancelPayments(ctx context.Context, runID string) (int64, error) {
	res := r.conn(ctx).
		Model(&PayrollPayment{}).
		Where("payroll_run_id = ? AND status IN ?", runID, []string{PaymentStatusPending, PaymentStatusProcessing}).
		Update("status", PaymentStatusCancelled)
	return res.RowsAffected, res.Error
}

func (r *repository) SumRunTotals(ctx context.Context, runID string) (RunTotals, error) {
	var totals RunTotals
	err := r.conn(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status <> ?)                     AS processed,
			COUNT(*) FILTER (WHERE status = ?)                      AS skipped,
			COALESCE(SUM(gross_pay) FILTER (WHERE status <> ?), 0)        AS gross_pay,
			COALESCE(SUM(total_allowances) FILTER (WHERE status <> ?), 0) AS total_allowances,
			COALESCE(SUM(total_deductions) FILTER (WHERE status <> ?), 0) AS total_deductions,
			COALESCE(SUM(net_pay) FILTER (WHERE status <> ?), 0)          AS net_pay
		FROM payroll_payments
		WHERE payroll_run_id = ?
	`, PaymentStatusFailed, PaymentStatusFailed, PaymentStatusFailed, PaymentStatusFailed,
		PaymentStatusFailed, PaymentStatusFailed, runID).Scan(&totals).Error
	return totals, err
}

func (r *repository) CreateAdjustment(ctx context.Context, adj *PaymentAdjustment) error {
	return r.conn(ctx).Create(adj).Error
}

// YTDDeducted sums deduction lines per config for the calendar year of the
// period payment date. Pending payments of other live runs count too so two
// unapproved runs cannot both use the same annual headroom.
func (r *repository) YTDDeducted(ctx context.Context, universityID, employeeID string, year int, excludeRunID string) (map[string]decimal.Decimal, error) {
	var rows []struct {
		ConfigID string
		Amount   decimal.Decimal
	}
	err := r.conn(ctx).Raw(`
		SELECT l.config_id::text AS config_id, COALESCE(SUM(l.amount), 0) AS amount
		FROM payroll_payment_lines l
		JOIN payroll_payments p ON p.id = l.payment_id
		JOIN payroll_runs r ON r.id = p.payroll_run_id
		JOIN payroll_periods pp ON pp.id = r.payroll_period_id
		WHERE p.university_id = ?
		  AND p.employee_id = ?
		  AND p.payroll_run_id <> ?
		  AND p.status IN ?
		  AND l.kind = ?
		  AND EXTRACT(YEAR FROM pp.payment_date) = ?
		GROUP BY l.config_id
	`, universityID, employeeID, excludeRunID,
		[]string{PaymentStatusPending, PaymentStatusCompleted}, LineKindDeduction, year).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		out[row.ConfigID] = row.Amount
	}
	return out, nil
}

func (r *repository) YTDEarnings(ctx context.Context, universityID, employeeID string, year int) (YTDTotals, error) {
	var totals YTDTotals
	err := r.conn(ctx).Raw(`
		WITH paid AS (
			SELECT p.id, p.gross_pay, p.total_allowances, p.total_deductions, p.net_pay
			FROM payroll_payments p
			JOIN payroll_runs r ON r.id = p.payroll_run_id
			JOIN payroll_periods pp ON pp.id = r.payroll_period_id
			WHERE p.university_id = ?
			  AND p.employee_id = ?
			  AND p.status = ?
			  AND EXTRACT(YEAR FROM pp.payment_date) = ?
		)
		SELECT
			COUNT(*)                             AS payments,
			COALESCE(SUM(gross_pay), 0)          AS gross_pay,
			COALESCE(SUM(total_allowances), 0)   AS total_allowances,
			COALESCE(SUM(total_deductions), 0)   AS total_deductions,
			COALESCE(SUM(net_pay), 0)            AS net_pay,
			COALESCE((
				SELECT SUM(a.amount)
				FROM payroll_payment_adjustments a
				JOIN paid ON paid.id = a.payment_id
			), 0)                                AS adjustments
		FROM paid
	`, universityID, employeeID, PaymentStatusCompleted, year).Scan(&totals).Error
	return totals, err
}

func (r *repository) YTDDeductionsByCode(ctx context.Context, universityID, employeeID string, year int) ([]CodeTotal, error) {
	var rows []CodeTotal
	err := r.conn(ctx).Raw(`
		SELECT l.config_id::text AS config_id, l.code, MAX(l.name) AS name, COALESCE(SUM(l.amount), 0) AS amount
		FROM payroll_payment_lines l
		JOIN payroll_payments p ON p.id = l.payment_id
		JOIN payroll_runs r ON r.id = p.payroll_run_id
		JOIN payroll_periods pp ON pp.id = r.payroll_period_id
		WHERE p.university_id = ?
		  AND p.employee_id = ?
		  AND p.status = ?
		  AND l.kind = ?
		  AND EXTRACT(YEAR FROM pp.payment_date) = ?
		GROUP BY l.config_id, l.code
		ORDER BY l.code ASC
	`, universityID, employeeID, PaymentStatusCompleted, LineKindDeduction, year).Scan(&rows).Error
	return rows, err
}
