package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"finance-tracker/internal/config"
	"finance-tracker/internal/database"
	"finance-tracker/internal/logging"
	"finance-tracker/internal/server"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// .env is optional; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to load .env file", slog.String("error", err.Error()))
	}

	cfg := config.Load()

	logger := logging.New(logging.Config{
		Level: cfg.Log.SlogLevel(),
		JSON:  cfg.IsProduction(),
	})
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", slog.String("error", err.Error()), slog.String("driver", cfg.Database.Driver))
		os.Exit(1)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv := server.New(server.Options{
		Config:   cfg,
		DB:       db,
		Logger:   logger,
		Registry: registry,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		logger.Error("Server error", slog.String("error", err.Error()), slog.String("port", cfg.Server.Port))
		os.Exit(1)
	}
}
