package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/nhlstats/internal/config"
	"github.com/mcoot/nhlstats/internal/dependencies/clock"
	"github.com/mcoot/nhlstats/internal/model"
	"github.com/mcoot/nhlstats/internal/services/roster"
	"github.com/mcoot/nhlstats/internal/storage"
	"github.com/mcoot/nhlstats/internal/storage/memory"
	redisstorage "github.com/mcoot/nhlstats/internal/storage/redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Registries
	Players   *model.Players
	Gametimes *model.Gametimes

	// Services
	RosterService *roster.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Clock is used for player ages (optional)
	// If nil, the system clock is used
	Clock clock.Clock
}

// New creates a new application with all dependencies wired.
// The app shares the process-wide player and gametime registries.
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StorageTypeMemory
	}

	switch storageType {
	case config.StorageTypeMemory:
		store = memory.New()
	case config.StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	var clk clock.Clock = clock.New()
	if cfg.Clock != nil {
		clk = cfg.Clock
	}

	return newWithDependencies(store, clk, model.DefaultPlayers(), model.DefaultGametimes(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	players *model.Players,
	gametimes *model.Gametimes,
	logger *slog.Logger,
) *App {
	return &App{
		Storage:       store,
		Clock:         clk,
		Players:       players,
		Gametimes:     gametimes,
		RosterService: roster.New(store, players, clk, logger),
	}
}
