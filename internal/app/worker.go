package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"uni-payroll/internal/bootstrap"
	"uni-payroll/internal/config"
	"uni-payroll/internal/messaging/kafka"
	"uni-payroll/internal/messaging/kafka/producer"
	"uni-payroll/internal/payroll"
	"uni-payroll/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker publishes the outbox and sweeps stale payroll runs.
func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	if err := cfg.RequireKafka(); err != nil {
		return err
	}

	infra, err := connectInfrastructure(cfg, logger)
	if err != nil {
		return err
	}
	defer infra.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Brokers, cfg.Database.MaxRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(infra.sqlDB)
	payrollService := newPayrollService(cfg, infra, newCompensationService(cfg, infra), outboxRepo, bootstrap.NewStdoutAuditLogger())

	reaper, err := payroll.NewReaper(payrollService, cfg.Payroll.ReaperSchedule, 2*time.Minute, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		cfg.Kafka.PollInterval,
	)
	reaper.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()
	reaper.Stop()

	return nil
}
