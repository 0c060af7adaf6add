package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	MaxRetries int
}

type RedisConfig struct {
	Addr string
}

type KafkaConfig struct {
	Brokers       []string
	ConsumerGroup string
	PollInterval  time.Duration
}

// JWTConfig holds JWT verification settings. Tokens are issued by the portal.
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// ShutdownTimeout should cover the longest synchronous payroll run.
	ShutdownTimeout time.Duration
	RBACModel       string
	RatePerSec      float64
	RateBurst       int
}

// PayrollConfig tunes the run orchestrator and its background jobs.
type PayrollConfig struct {
	Workers            int
	RunLockTTL         time.Duration
	StaleRunAfter      time.Duration
	ReaperSchedule     string
	ProcessRatePerSec  float64
	ProcessRateBurst   int
	ConfigCacheTTL     time.Duration
	IdempotencyLockTTL time.Duration
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	dbRetries, err := strconv.Atoi(getEnv("DB_MAX_RETRIES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_RETRIES: %w", err)
	}
	cfg.Database = DatabaseConfig{
		Host:       getEnv("DB_HOST", "localhost"),
		Port:       getEnv("DB_PORT", "5432"),
		User:       getEnv("DB_USER", "postgres"),
		Password:   getEnv("DB_PASSWORD", ""),
		Name:       getEnv("DB_NAME", "uni_payroll"),
		SSLMode:    getEnv("DB_SSLMODE", "disable"),
		MaxRetries: dbRetries,
	}

	cfg.Redis = RedisConfig{
		Addr: getEnv("REDIS_ADDR", "localhost:6379"),
	}

	pollInterval, err := getDuration("KAFKA_POLL_INTERVAL", "3s")
	if err != nil {
		return nil, err
	}
	cfg.Kafka = KafkaConfig{
		Brokers:       getEnvSlice("KAFKA_BROKER"),
		ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "uni-payroll"),
		PollInterval:  pollInterval,
	}

	cfg.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET", ""),
	}

	readTimeout, err := getDuration("HTTP_READ_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}
	writeTimeout, err := getDuration("HTTP_WRITE_TIMEOUT", "30s")
	if err != nil {
		return nil, err
	}
	idleTimeout, err := getDuration("HTTP_IDLE_TIMEOUT", "60s")
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := getDuration("HTTP_SHUTDOWN_TIMEOUT", "30s")
	if err != nil {
		return nil, err
	}
	appRate, err := strconv.ParseFloat(getEnv("HTTP_RATE_PER_SEC", "20"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_RATE_PER_SEC: %w", err)
	}
	appBurst, err := strconv.Atoi(getEnv("HTTP_RATE_BURST", "40"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_RATE_BURST: %w", err)
	}
	cfg.App = AppConfig{
		Port:            getEnv("PORT", "3000"),
		Env:             getEnv("APP_ENV", "development"),
		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
		IdleTimeout:     idleTimeout,
		ShutdownTimeout: shutdownTimeout,
		RBACModel:       getEnv("RBAC_MODEL_PATH", ""),
		RatePerSec:      appRate,
		RateBurst:       appBurst,
	}

	workers, err := strconv.Atoi(getEnv("PAYROLL_WORKERS", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_WORKERS: %w", err)
	}
	lockTTL, err := getDuration("PAYROLL_RUN_LOCK_TTL", "10m")
	if err != nil {
		return nil, err
	}
	staleAfter, err := getDuration("PAYROLL_STALE_RUN_AFTER", "30m")
	if err != nil {
		return nil, err
	}
	cacheTTL, err := getDuration("COMPENSATION_CACHE_TTL", "30m")
	if err != nil {
		return nil, err
	}
	idempTTL, err := getDuration("IDEMPOTENCY_LOCK_TTL", "30s")
	if err != nil {
		return nil, err
	}
	ratePerSec, err := strconv.ParseFloat(getEnv("PAYROLL_PROCESS_RATE", "1"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_PROCESS_RATE: %w", err)
	}
	rateBurst, err := strconv.Atoi(getEnv("PAYROLL_PROCESS_BURST", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_PROCESS_BURST: %w", err)
	}
	cfg.Payroll = PayrollConfig{
		Workers:            workers,
		RunLockTTL:         lockTTL,
		StaleRunAfter:      staleAfter,
		ReaperSchedule:     getEnv("PAYROLL_REAPER_SCHEDULE", "@every 5m"),
		ProcessRatePerSec:  ratePerSec,
		ProcessRateBurst:   rateBurst,
		ConfigCacheTTL:     cacheTTL,
		IdempotencyLockTTL: idempTTL,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Payroll.Workers < 1 {
		return fmt.Errorf("PAYROLL_WORKERS must be at least 1")
	}
	if c.Database.MaxRetries < 1 {
		c.Database.MaxRetries = 1
	}
	return nil
}

// RequireKafka is checked by the worker and consumer binaries only.
func (c *Config) RequireKafka() error {
	if len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

func getDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
