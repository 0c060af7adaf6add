package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("JWT_SECRET", "jwt")
		t.Setenv("KAFKA_BROKER", "k1:9092, k2:9092")

		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, "3000", cfg.App.Port)
		assert.Equal(t, 8, cfg.Payroll.Workers)
		assert.Equal(t, 10*time.Minute, cfg.Payroll.RunLockTTL)
		assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
		assert.NoError(t, cfg.RequireKafka())
	})

	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("JWT_SECRET", "")

		_, err := Load()

		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("JWT_SECRET", "jwt")
		t.Setenv("PAYROLL_RUN_LOCK_TTL", "ten minutes")

		_, err := Load()

		assert.ErrorContains(t, err, "PAYROLL_RUN_LOCK_TTL")
	})
}
