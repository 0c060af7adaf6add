package payroll

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Reaper fails runs whose calculating lock outlived the stale timeout.
type Reaper struct {
	cron    *cron.Cron
	service Service
	timeout time.Duration
	logger  *zap.Logger
}

func NewReaper(service Service, schedule string, timeout time.Duration, logger ...*zap.Logger) (*Reaper, error) {
	l := zap.L().Named("payroll.reaper")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.reaper")
	}
	if timeout <= 0 {
		timeout = 4 * time.Minute
	}

	r := &Reaper{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		service: service,
		timeout: timeout,
		logger:  l,
	}

	if _, err := r.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		r.RunOnce(ctx)
	}); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Reaper) Start() {
	r.logger.Info("stale run reaper started")
	r.cron.Start()
}

// Stop waits for a running sweep to finish.
func (r *Reaper) Stop() {
	<-r.cron.Stop().Done()
	r.logger.Info("stale run reaper stopped")
}

func (r *Reaper) RunOnce(ctx context.Context) int {
	reaped, err := r.service.ReapStaleRuns(ctx)
	if err != nil {
		r.logger.Error("reap stale payroll runs failed", zap.Error(err))
		return reaped
	}
	if reaped > 0 {
		r.logger.Warn("stale payroll runs marked failed", zap.Int("count", reaped))
	}
	return reaped
}
