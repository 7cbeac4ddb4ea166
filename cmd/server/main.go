package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcoot/nhlstats/internal/api"
	"github.com/mcoot/nhlstats/internal/config"
	"github.com/mcoot/nhlstats/internal/dependencies/clock"
	"github.com/mcoot/nhlstats/internal/factory"
	redisstorage "github.com/mcoot/nhlstats/internal/storage/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
	}

	if cfg.StorageType == config.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	if asOf, ok, _ := cfg.AsOfTime(); ok {
		logger.Info("player ages pinned", slog.String("as_of", cfg.AsOf))
		factoryCfg.Clock = clock.NewFixed(asOf)
	}

	// Create application factory
	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Load roster feeds
	if len(cfg.FeedFiles) > 0 {
		n, err := app.RosterService.ImportFiles(context.Background(), cfg.FeedFiles...)
		if err != nil {
			logger.Warn("could not load all feed files", slog.String("error", err.Error()))
		}
		logger.Info("feed files loaded",
			slog.Int("files", len(cfg.FeedFiles)),
			slog.Int("players", n),
		)
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:        logger,
		RosterService: app.RosterService,
		Gametimes:     app.Gametimes,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.HTTPHost
	serverConfig.Port = cfg.HTTPPort
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
