package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/consultorio-scheduler/internal/audit"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/consultorio-scheduler/internal/db"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/logging"
	"github.com/BruksfildServices01/consultorio-scheduler/internal/routes"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)
	if envErr != nil {
		logger.Info(".env file not found, using system environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.Open(cfg, logger)
	if err != nil {
		logger.Error("database setup failed", "err", err, "driver", cfg.Driver())
		os.Exit(1)
	}
	defer func() {
		if err := dbpkg.Close(db); err != nil {
			logger.Error("database close failed", "err", err)
		}
	}()

	auditDispatcher := audit.NewDispatcher(audit.New(db), logger)
	defer auditDispatcher.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, db, cfg, logger, auditDispatcher)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server running", "addr", cfg.Addr(), "driver", cfg.Driver())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
	logger.Info("server stopped")
}
