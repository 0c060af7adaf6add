package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"uni-payroll/internal/events"
	"uni-payroll/internal/payroll"
	payrollerrors "uni-payroll/internal/payroll/errors"
	"uni-payroll/internal/shared/apperror"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// RunProcessor runs the payroll calculation for a queued request.
type RunProcessor interface {
	ProcessRun(ctx context.Context, universityID, actorID, id string) (payroll.RunResponse, error)
}

func ConsumePayrollRunProcessRequested(
	ctx context.Context,
	reader MessageReader,
	processor RunProcessor,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_run_process")
	log.Info("payroll run process consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll run process consumer stopped")
				return
			}
			log.Error("fetch payroll run process message failed", zap.Error(err))
			continue
		}

		if !HandleProcessRequested(ctx, processor, msg, log) {
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll run process message failed", zap.Error(err))
		}
	}
}

// HandleProcessRequested reports whether the message is done with and may be
// committed. Transient failures leave it uncommitted for redelivery.
func HandleProcessRequested(ctx context.Context, processor RunProcessor, msg kafkago.Message, log *zap.Logger) bool {
	var event events.PayrollRunProcessRequestedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode payroll run process event failed", zap.Error(err))
		return true
	}

	fields := []zap.Field{
		zap.String("run_id", event.RunID),
		zap.String("university_id", event.UniversityID),
		zap.String("request_id", event.RequestID),
	}

	resp, err := processor.ProcessRun(ctx, event.UniversityID, event.RequestedBy, event.RunID)
	switch {
	case err == nil:
		log.Info("payroll run processed from queue", append(fields, zap.String("status", resp.Status))...)
		return true
	case errors.Is(err, payrollerrors.ErrRunBusy):
		// another worker holds the run; its outcome settles the request
		log.Info("payroll run busy, dropping request", fields...)
		return true
	case isTerminal(err):
		log.Warn("payroll run process request rejected", append(fields, zap.Error(err))...)
		return true
	default:
		log.Error("process payroll run failed", append(fields, zap.Error(err))...)
		return false
	}
}

func isTerminal(err error) bool {
	switch {
	case apperror.HasCode(err, apperror.CodeInvalidInput),
		apperror.HasCode(err, apperror.CodeNotFound),
		apperror.HasCode(err, apperror.CodeInvalidState),
		apperror.HasCode(err, apperror.CodeDuplicateRun),
		apperror.HasCode(err, apperror.CodeConfiguration):
		return true
	}
	return false
}
