package timesheet

import (
	"context"
	"database/sql"
	"time"
)

// Ledger is the payroll run's view of the time ledger. It is the only path
// that moves timesheets to processed or paid, or back to approved.
//
//go:generate mockgen -source=timesheet_ledger.go -destination=mock/timesheet_ledger_mock.go -package=mock
type Ledger interface {
	WithTx(tx *sql.Tx) Ledger
	// ListPayable returns approved timesheets of active employees inside
	// [start, end], plus those already processed by runID.
	ListPayable(ctx context.Context, universityID, runID string, start, end time.Time) ([]Timesheet, error)
	MarkProcessed(ctx context.Context, universityID, runID string, ids []string) (int64, error)
	MarkPaid(ctx context.Context, universityID, runID string) (int64, error)
	Release(ctx context.Context, universityID, runID string) (int64, error)
}

type ledger struct {
	repo Repository
}

func NewLedger(repo Repository) Ledger {
	return &ledger{repo: repo}
}

func (l *ledger) WithTx(tx *sql.Tx) Ledger {
	return &ledger{repo: l.repo.WithTx(tx)}
}

func (l *ledger) ListPayable(ctx context.Context, universityID, runID string, start, end time.Time) ([]Timesheet, error) {
	return l.repo.ListPayable(ctx, universityID, runID, start, end)
}

func (l *ledger) MarkProcessed(ctx context.Context, universityID, runID string, ids []string) (int64, error) {
	return l.repo.MarkProcessed(ctx, universityID, runID, ids)
}

func (l *ledger) MarkPaid(ctx context.Context, universityID, runID string) (int64, error) {
	return l.repo.MarkPaid(ctx, universityID, runID)
}

func (l *ledger) Release(ctx context.Context, universityID, runID string) (int64, error) {
	return l.repo.Release(ctx, universityID, runID)
}
