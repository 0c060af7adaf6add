package payroll_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"uni-payroll/internal/payroll"
	payrollMock "uni-payroll/internal/payroll/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReaper(t *testing.T) {
	t.Run("invalid schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := payrollMock.NewMockService(ctrl)

		_, err := payroll.NewReaper(svc, "every now and then", time.Minute)

		assert.Error(t, err)
	})

	t.Run("run once reports reaped runs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := payrollMock.NewMockService(ctrl)
		svc.EXPECT().ReapStaleRuns(gomock.Any()).Return(2, nil)

		reaper, err := payroll.NewReaper(svc, "@every 5m", time.Minute)
		require.NoError(t, err)

		assert.Equal(t, 2, reaper.RunOnce(context.Background()))
	})

	t.Run("run once swallows errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := payrollMock.NewMockService(ctrl)
		svc.EXPECT().ReapStaleRuns(gomock.Any()).Return(0, errors.New("db down"))

		reaper, err := payroll.NewReaper(svc, "@every 5m", time.Minute)
		require.NoError(t, err)

		assert.Equal(t, 0, reaper.RunOnce(context.Background()))
	})
}
