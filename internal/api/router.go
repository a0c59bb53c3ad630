package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/scoreboard/internal/api/handler"
	"github.com/mcoot/scoreboard/internal/api/middleware"
	"github.com/mcoot/scoreboard/internal/api/response"
	"github.com/mcoot/scoreboard/internal/backend"
	"github.com/mcoot/scoreboard/internal/model"
	"github.com/mcoot/scoreboard/internal/services/identity"
	"github.com/mcoot/scoreboard/internal/services/leaderboard"
	"github.com/mcoot/scoreboard/internal/services/stats"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	Backend            *backend.Connector
	Resolver           *identity.Resolver
	LeaderboardService *leaderboard.Service
	StatsService       *stats.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	identityHandler := handler.NewIdentityHandler(cfg.Resolver, cfg.Backend)
	scoresHandler := handler.NewScoresHandler(cfg.LeaderboardService, cfg.StatsService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.Backend)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.RequestID())
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Public routes
	api.HandleFunc("/identity/resolve", identityHandler.Resolve).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", identityHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/leaderboard", scoresHandler.Leaderboard).Methods(http.MethodGet)

	// Protected routes
	protected := api.NewRoute().Subrouter()
	protected.Use(authMiddleware)
	protected.HandleFunc("/auth/me", identityHandler.Me).Methods(http.MethodGet)
	protected.HandleFunc("/auth/logout", identityHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/stats/me", scoresHandler.MyStats).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler(cfg.Backend)).Methods(http.MethodGet)

	return r
}

// healthHandler reports whether the backend handles have been published
func healthHandler(conn *backend.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h, err := conn.Handles()
		switch {
		case err == nil:
			response.JSON(w, http.StatusOK, response.Health{Status: "ok", Backend: "ready", App: h.AppName})
		case errors.Is(err, model.ErrBackendUnavailable):
			response.JSON(w, http.StatusServiceUnavailable, response.Health{Status: "starting", Backend: "pending"})
		default:
			response.JSON(w, http.StatusServiceUnavailable, response.Health{Status: "error", Backend: "failed"})
		}
	}
}
