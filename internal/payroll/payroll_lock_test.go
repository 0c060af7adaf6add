package payroll_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"uni-payroll/internal/payroll"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLocker(t *testing.T) {
	runID := uuid.NewString()
	key := "payroll:run:lock:" + runID

	t.Run("acquire and release own lock", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		locker := payroll.NewRunLocker(rdb, time.Minute)

		mock.Regexp().ExpectSetNX(key, `.+`, time.Minute).SetVal(true)
		token, ok, err := locker.Acquire(context.Background(), runID)
		require.NoError(t, err)
		require.True(t, ok)
		require.NotEmpty(t, token)

		mock.ExpectEvalSha(payroll.ReleaseLockScriptHash, []string{key}, token).SetVal(int64(1))
		require.NoError(t, locker.Release(context.Background(), runID, token))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second caller is turned away", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		locker := payroll.NewRunLocker(rdb, time.Minute)

		mock.Regexp().ExpectSetNX(key, `.+`, time.Minute).SetVal(false)
		_, ok, err := locker.Acquire(context.Background(), runID)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("release leaves a lock taken over by someone else", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		locker := payroll.NewRunLocker(rdb, time.Minute)

		mock.ExpectEvalSha(payroll.ReleaseLockScriptHash, []string{key}, "mine").SetVal(int64(0))
		require.NoError(t, locker.Release(context.Background(), runID, "mine"))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("release after expiry", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		locker := payroll.NewRunLocker(rdb, time.Minute)

		mock.ExpectEvalSha(payroll.ReleaseLockScriptHash, []string{key}, "mine").RedisNil()
		assert.NoError(t, locker.Release(context.Background(), runID, "mine"))
	})

	t.Run("release surfaces redis errors", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		locker := payroll.NewRunLocker(rdb, time.Minute)

		mock.ExpectEvalSha(payroll.ReleaseLockScriptHash, []string{key}, "mine").SetErr(errors.New("connection reset"))
		assert.Error(t, locker.Release(context.Background(), runID, "mine"))
	})

	t.Run("redis down", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		locker := payroll.NewRunLocker(rdb, time.Minute)

		mock.Regexp().ExpectSetNX(key, `.+`, time.Minute).SetErr(errors.New("dial tcp: refused"))
		_, ok, err := locker.Acquire(context.Background(), runID)

		assert.Error(t, err)
		assert.False(t, ok)
	})

	t.Run("nil client always grants", func(t *testing.T) {
		locker := payroll.NewRunLocker((*redis.Client)(nil), 0)

		token, ok, err := locker.Acquire(context.Background(), runID)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.NotEmpty(t, token)
		assert.NoError(t, locker.Release(context.Background(), runID, token))
	})
}
