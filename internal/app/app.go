package app

import (
	"database/sql"

	"uni-payroll/internal/bootstrap"
	"uni-payroll/internal/config"
	"uni-payroll/internal/middleware"
	"uni-payroll/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

type infrastructure struct {
	gormDB *gorm.DB
	sqlDB  *sql.DB
	rdb    *redis.Client
}

func connectInfrastructure(cfg *config.Config, logger *zap.Logger) (*infrastructure, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	logger.Info("redis connection established")

	return &infrastructure{gormDB: gormDB, sqlDB: sqlDB, rdb: rdb}, nil
}

func (i *infrastructure) Close() {
	if i.rdb != nil {
		_ = i.rdb.Close()
	}
	if i.sqlDB != nil {
		_ = i.sqlDB.Close()
	}
}

// BuildApp connects the infrastructure and registers every module on router.
// The returned func releases the connections after the server stops.
func BuildApp(router *gin.Engine, cfg *config.Config, audit bootstrap.AuditLogger) (func(), error) {
	logger := zap.L().Named("app")

	infra, err := connectInfrastructure(cfg, logger)
	if err != nil {
		return nil, err
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(cfg.App.RatePerSec), cfg.App.RateBurst))

	if err := registerModules(router, cfg, infra, audit); err != nil {
		infra.Close()
		return nil, err
	}

	return infra.Close, nil
}
