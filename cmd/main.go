package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"baking_oven/internal/config"
	"baking_oven/internal/handlers"
	"baking_oven/internal/hardware"
	"baking_oven/internal/logger"
	"baking_oven/internal/metrics"
	"baking_oven/internal/repository"
	"baking_oven/internal/server"
	"baking_oven/internal/service"
)

const configDir = "configs"

// @title                       Baking oven API
// @version                     1.0
// @description                 Runs multi-stage baking programs on the oven controller.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// load configs/config.yml + OVEN_* env
	cfg, err := config.Load(configDir)
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	// open DB
	db, err := repository.InitDB(cfg.DB.Path)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err, "path", cfg.DB.Path)
	}
	defer closeDB(db, log)

	// wire dependencies
	panel := hardware.NewPanel()
	m := metrics.New(cfg.Metrics.Namespace)
	repos := repository.NewRepository(db)
	services := service.NewService(repos, service.Deps{
		Panel:   panel,
		Heating: hardware.NewHeatingModule(panel, cfg.Hardware.MaxTempC),
		Fan:     hardware.NewFan(panel),
		Metrics: m,
		Log:     log,
		Auth: service.AuthConfig{
			SigningKey: []byte(cfg.Auth.SigningKey),
			TokenTTL:   cfg.Auth.TokenTTL,
		},
	})
	apiHandler := handlers.NewHandler(services, m, log)

	// start HTTP server
	srv := server.New(cfg.Port, apiHandler.InitRoutes())
	go func() {
		log.Infow("http_server_started", "addr", srv.Addr())
		if err := srv.Run(); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()

	// graceful shutdown
	waitForShutdown(srv, cfg, log)
}

// waitForShutdown blocks until SIGINT/SIGTERM and drains in-flight requests.
func waitForShutdown(srv *server.Server, cfg *config.Config, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}

func closeDB(db *sql.DB, log *logger.Logger) {
	if err := db.Close(); err != nil {
		log.Errorw("failed to close sqlite", "err", err)
	}
}
