package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/scoreboard/internal/backend"
	"github.com/mcoot/scoreboard/internal/dependencies/clock"
	"github.com/mcoot/scoreboard/internal/services/auth"
	"github.com/mcoot/scoreboard/internal/services/identity"
	"github.com/mcoot/scoreboard/internal/services/leaderboard"
	"github.com/mcoot/scoreboard/internal/services/stats"
	"github.com/mcoot/scoreboard/internal/storage"
	firestorestorage "github.com/mcoot/scoreboard/internal/storage/firestore"
	"github.com/mcoot/scoreboard/internal/storage/memory"
	redisstorage "github.com/mcoot/scoreboard/internal/storage/redis"
	"github.com/mcoot/scoreboard/internal/storage/seed"
	"github.com/mcoot/scoreboard/internal/web/view"
)

// Storage type constants
const (
	StorageTypeMemory    = "memory"
	StorageTypeRedis     = "redis"
	StorageTypeFirestore = "firestore"
)

// App contains all wired application components
type App struct {
	// Backend handles, published once Connect has run
	Connector *backend.Connector

	// External dependencies
	Clock clock.Clock

	// Services
	Resolver           *identity.Resolver
	LeaderboardService *leaderboard.Service
	StatsService       *stats.Service

	// Views
	LeaderboardView *view.Leaderboard
	StatsView       *view.Stats

	config Config
	logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// AppName is logged when the backend comes up
	AppName string
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the document store ("memory", "redis" or "firestore")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// FirestoreConfig holds Firestore settings (required if StorageType is "firestore")
	FirestoreConfig *firestorestorage.Config
	// SeedFile is a YAML fixture loaded into the store on connect (optional)
	SeedFile string
	// Clock overrides the system clock (optional)
	Clock clock.Clock
}

// New creates a new application with all dependencies wired.
// The backend is not opened until Connect is called.
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if cfg.StorageType == "" {
		cfg.StorageType = StorageTypeMemory
	}
	if cfg.AppName == "" {
		cfg.AppName = "scoreboard"
	}
	if cfg.AuthConfig.SessionDuration == 0 {
		cfg.AuthConfig = auth.DefaultConfig()
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}

	switch cfg.StorageType {
	case StorageTypeMemory:
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
	case StorageTypeFirestore:
		if cfg.FirestoreConfig == nil {
			return nil, errors.New("FirestoreConfig required when StorageType is firestore")
		}
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'firestore'")
	}

	return newWithDependencies(backend.NewConnector(cfg.Logger), cfg), nil
}

// newWithDependencies creates an App around an existing connector (useful for testing)
func newWithDependencies(conn *backend.Connector, cfg Config) *App {
	logger := cfg.Logger

	resolver := identity.New(conn, logger)
	leaderboardService := leaderboard.New(conn, cfg.Clock, logger)
	statsService := stats.New(conn, logger)

	return &App{
		Connector:          conn,
		Clock:              cfg.Clock,
		Resolver:           resolver,
		LeaderboardService: leaderboardService,
		StatsService:       statsService,
		LeaderboardView:    view.NewLeaderboard(leaderboardService, logger),
		StatsView:          view.NewStats(statsService, logger),
		config:             cfg,
		logger:             logger,
	}
}

// Connect opens the store, loads the seed file and publishes the handles.
// Only the first call does any work.
func (a *App) Connect(ctx context.Context) error {
	return a.Connector.Connect(ctx, a.open)
}

// Close releases the store connection
func (a *App) Close() error {
	return a.Connector.Close()
}

// SessionDuration is how long sign-in sessions last
func (a *App) SessionDuration() time.Duration {
	return a.config.AuthConfig.SessionDuration
}

func (a *App) open(ctx context.Context) (*backend.Handles, error) {
	store, err := a.openStore(ctx)
	if err != nil {
		return nil, err
	}

	if a.config.SeedFile != "" {
		w, ok := store.(storage.Writer)
		if !ok {
			return nil, fmt.Errorf("storage type %s cannot be seeded", a.config.StorageType)
		}
		if err := seed.LoadFile(ctx, w, a.config.SeedFile, a.Clock.Now(), a.logger); err != nil {
			return nil, err
		}
	}

	return &backend.Handles{
		AppName: a.config.AppName,
		Auth:    auth.New(store, a.Clock, a.config.AuthConfig, a.logger),
		Store:   store,
	}, nil
}

func (a *App) openStore(ctx context.Context) (storage.Store, error) {
	switch a.config.StorageType {
	case StorageTypeRedis:
		store, err := redisstorage.New(*a.config.RedisConfig)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return store, nil
	case StorageTypeFirestore:
		store, err := firestorestorage.New(ctx, *a.config.FirestoreConfig)
		if err != nil {
			return nil, fmt.Errorf("connect firestore: %w", err)
		}
		return store, nil
	default:
		return memory.New(), nil
	}
}
