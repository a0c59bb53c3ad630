package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/mcoot/scoreboard/internal/backend"
	"github.com/mcoot/scoreboard/internal/services/identity"
	"github.com/mcoot/scoreboard/internal/web/handler"
	"github.com/mcoot/scoreboard/internal/web/middleware"
	"github.com/mcoot/scoreboard/internal/web/view"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger          *slog.Logger
	Backend         backend.Source
	Resolver        *identity.Resolver
	Leaderboard     *view.Leaderboard
	Stats           *view.Stats
	SessionDuration time.Duration
	StaticDir       string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	flashMiddleware := middleware.Flash()
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.Backend)

	// Apply global middleware to all routes
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	// Create handlers
	homeHandler := handler.NewHomeHandler(cfg.Leaderboard, cfg.Stats, cfg.Logger)
	statsHandler := handler.NewStatsHandler(cfg.Stats, cfg.Logger)
	authHandler := handler.NewAuthHandler(cfg.Resolver, cfg.Backend, cfg.SessionDuration, cfg.Logger)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// htmx fragments carry no session-dependent content
	r.HandleFunc("/leaderboard/list", homeHandler.List).Methods(http.MethodGet)

	// Pages (optional auth: the stats panel shows a sign-in prompt when signed out)
	pagesRouter := r.NewRoute().Subrouter()
	pagesRouter.Use(flashMiddleware)
	pagesRouter.Use(optionalAuthMiddleware)
	pagesRouter.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	pagesRouter.HandleFunc("/stats", statsHandler.Stats).Methods(http.MethodGet)
	pagesRouter.HandleFunc("/login", authHandler.LoginPage).Methods(http.MethodGet)
	pagesRouter.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	pagesRouter.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	return r
}
