package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"uni-payroll/internal/bootstrap"
	"uni-payroll/internal/config"
	"uni-payroll/internal/events"
	"uni-payroll/internal/messaging/kafka"
	"uni-payroll/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer processes payroll runs queued through process-async.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if err := cfg.RequireKafka(); err != nil {
		return err
	}

	infra, err := connectInfrastructure(cfg, logger)
	if err != nil {
		return err
	}
	defer infra.Close()

	outboxRepo := kafka.NewOutboxRepository(infra.sqlDB)
	payrollService := newPayrollService(cfg, infra, newCompensationService(cfg, infra), outboxRepo, bootstrap.NewStdoutAuditLogger())

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        cfg.Kafka.Brokers,
		Topic:          events.PayrollRunProcessRequestedTopic,
		GroupID:        cfg.Kafka.ConsumerGroup + "-run-process",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePayrollRunProcessRequested(ctx, reader, payrollService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
