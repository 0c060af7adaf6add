package main

import (
	"context"

	"uni-payroll/internal/config"
	"uni-payroll/internal/migrations"
	"uni-payroll/internal/shared/connection"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		logger.Fatal("connect database failed", zap.Error(err))
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("database handle failed", zap.Error(err))
	}
	defer sqlDB.Close()

	applied, err := migrations.Apply(context.Background(), sqlDB, logger)
	if err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}
	logger.Info("migrate done", zap.Int("applied", applied))
}
