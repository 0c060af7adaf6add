package main

import (
	"uni-payroll/internal/app"
	"uni-payroll/internal/bootstrap"
	"uni-payroll/internal/config"
	"uni-payroll/internal/shared/apperror"

	"github.com/gin-gonic/gin"
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
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	apperror.Init()
	r := gin.Default()

	auditLogger := bootstrap.NewStdoutAuditLogger()

	// build dependency + routes
	cleanup, err := app.BuildApp(r, cfg, auditLogger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	err = bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:            cfg.App.Port,
			ReadTimeout:     cfg.App.ReadTimeout,
			WriteTimeout:    cfg.App.WriteTimeout,
			IdleTimeout:     cfg.App.IdleTimeout,
			ShutdownTimeout: cfg.App.ShutdownTimeout,
		},
		auditLogger,
	)
	if err != nil {
		logger.Error("http server stopped with error", zap.Error(err))
	}
}
