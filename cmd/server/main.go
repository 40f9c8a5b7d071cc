package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/storage/redis/v3"

	"schoolwidget/internal/config"
	"schoolwidget/internal/db"
	"schoolwidget/internal/handlers"
	"schoolwidget/internal/logging"
	"schoolwidget/internal/metrics"
	"schoolwidget/internal/responder"
	"schoolwidget/internal/server"
	"schoolwidget/internal/widget"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	slog.SetDefault(logging.New(os.Stderr, cfg.LogLevel))

	// Load YAML config (optional)
	yamlCfg, err := config.LoadYAMLConfig(cfg.ConfigFile)
	if err != nil {
		slog.Error("failed to load config file", "path", cfg.ConfigFile, "error", err)
		os.Exit(1)
	}
	school := yamlCfg.SchoolInfo()

	// Answer counters live in Postgres when configured, in memory otherwise
	var (
		store  metrics.Store = metrics.NewMemoryStore()
		pinger handlers.Pinger
	)
	if cfg.HasDatabase() {
		database, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer database.Close()

		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("migrations completed successfully")
		store = database
		pinger = database
	}

	// Rate-limit counters are shared through Redis when configured
	var storage fiber.Storage
	if cfg.HasRedis() {
		storage = redis.New(redis.Config{URL: cfg.RedisURL})
		slog.Info("rate limiter using redis storage")
	}

	srv := server.New(cfg, storage)
	m := metrics.New(srv.Registry, store)

	w := widget.New(
		responder.New(responder.DefaultTable(school)),
		school,
		widget.WithObserver(m),
		widget.WithChips(yamlCfg.ChipsOr(widget.DefaultChips)),
	)
	srv.RegisterRoutes(w, pinger)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	if err := srv.Shutdown(); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}
	if storage != nil {
		if err := storage.Close(); err != nil {
			slog.Error("failed to close redis storage", "error", err)
		}
	}
	slog.Info("server exited")
}
