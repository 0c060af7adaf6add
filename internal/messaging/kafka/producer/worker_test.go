package producer_test

import (
	"context"
	"errors"
	"testing"

	"uni-payroll/internal/messaging/kafka"
	kafkaMock "uni-payroll/internal/messaging/kafka/mock"
	"uni-payroll/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type recordingWriter struct {
	written []kafkago.Message
	failFor map[string]error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if err, ok := w.failFor[string(m.Key)]; ok {
			return err
		}
		w.written = append(w.written, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and marks sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &recordingWriter{}

		repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{{
			ID:            "evt-1",
			RequestID:     "req-1",
			AggregateType: "payroll_run",
			AggregateID:   "run-1",
			EventType:     "payroll.run.calculated",
			Topic:         "payroll.run.lifecycle.v1",
			Payload:       []byte(`{"run_id":"run-1"}`),
		}}, nil)
		repo.EXPECT().MarkSent(ctx, "evt-1").Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

		require.NoError(t, err)
		assert.Equal(t, 1, sent)
		require.Len(t, writer.written, 1)
		msg := writer.written[0]
		assert.Equal(t, "run-1", string(msg.Key))
		assert.Equal(t, "payroll.run.lifecycle.v1", msg.Topic)
		assert.Contains(t, msg.Headers, kafkago.Header{Key: "request_id", Value: []byte("req-1")})
	})

	t.Run("publish failure is recorded and the batch continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &recordingWriter{failFor: map[string]error{"run-1": errors.New("leader not available")}}

		repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{
			{ID: "evt-1", AggregateID: "run-1", Topic: "t", Payload: []byte("{}")},
			{ID: "evt-2", AggregateID: "run-2", Topic: "t", Payload: []byte("{}")},
		}, nil)
		repo.EXPECT().MarkFailed(ctx, "evt-1", "leader not available").Return(nil)
		repo.EXPECT().MarkSent(ctx, "evt-2").Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

		require.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ListPending(ctx, 50).Return(nil, errors.New("db down"))

		_, err := producer.ProcessPendingEvents(ctx, repo, &recordingWriter{}, zap.NewNop())

		assert.Error(t, err)
	})
}
