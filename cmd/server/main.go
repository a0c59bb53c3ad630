package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mcoot/scoreboard/internal/api"
	"github.com/mcoot/scoreboard/internal/config"
	"github.com/mcoot/scoreboard/internal/factory"
	"github.com/mcoot/scoreboard/internal/services/auth"
	firestorestorage "github.com/mcoot/scoreboard/internal/storage/firestore"
	redisstorage "github.com/mcoot/scoreboard/internal/storage/redis"
	"github.com/mcoot/scoreboard/internal/web"
)

// sessionSweepInterval is how often expired sign-in sessions are dropped
const sessionSweepInterval = 10 * time.Minute

func main() {
	settings, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: settings.LogLevel,
	}))
	slog.SetDefault(logger)

	// Build factory config from settings
	cfg := factory.Config{
		AppName:     settings.AppName,
		AuthConfig:  auth.Config{SessionDuration: settings.SessionDuration},
		Logger:      logger,
		StorageType: settings.StorageType,
		SeedFile:    settings.SeedFile,
	}

	switch cfg.StorageType {
	case factory.StorageTypeRedis:
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = settings.RedisURL
		redisCfg.KeyPrefix = settings.RedisKeyPrefix
		cfg.RedisConfig = &redisCfg
	case factory.StorageTypeFirestore:
		cfg.FirestoreConfig = &firestorestorage.Config{
			ProjectID:       settings.FirestoreProject,
			CredentialsFile: settings.FirestoreCredentials,
		}
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = app.Close() }()

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Requests wait on the connector until the backend is published
	go func() {
		if err := app.Connect(ctx); err != nil {
			logger.Error("backend unavailable", slog.String("error", err.Error()))
			return
		}
		sweepSessions(ctx, app, logger)
	}()

	// Create API router
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		Backend:            app.Connector,
		Resolver:           app.Resolver,
		LeaderboardService: app.LeaderboardService,
		StatsService:       app.StatsService,
	})

	// Create web router
	webRouter := web.NewRouter(web.RouterConfig{
		Logger:          logger,
		Backend:         app.Connector,
		Resolver:        app.Resolver,
		Leaderboard:     app.LeaderboardView,
		Stats:           app.StatsView,
		SessionDuration: app.SessionDuration(),
		StaticDir:       findStaticDir(),
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Port = settings.Port
	server := api.NewServer(mux, serverConfig, logger)

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()), slog.String("storage", cfg.StorageType))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// sweepSessions periodically drops expired sessions until ctx is done
func sweepSessions(ctx context.Context, app *factory.App, logger *slog.Logger) {
	h, err := app.Connector.Handles()
	if err != nil {
		return
	}
	client, err := h.AuthClient()
	if err != nil {
		return
	}

	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := client.CleanExpiredSessions(); n > 0 {
				logger.Info("expired sessions removed", slog.Int("count", n))
			}
		}
	}
}

// findStaticDir looks for the static files directory
func findStaticDir() string {
	// Try common locations
	candidates := []string{
		"internal/web/static",
		filepath.Join(os.Getenv("PWD"), "internal/web/static"),
	}

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}

	// Default to relative path
	return "internal/web/static"
}
