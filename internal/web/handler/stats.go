package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/scoreboard/internal/web/middleware"
	"github.com/mcoot/scoreboard/internal/web/page"
	"github.com/mcoot/scoreboard/internal/web/templates/layout"
	"github.com/mcoot/scoreboard/internal/web/templates/pages"
	"github.com/mcoot/scoreboard/internal/web/view"
)

// StatsHandler handles the personal stats page
type StatsHandler struct {
	stats  *view.Stats
	logger *slog.Logger
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(stats *view.Stats, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		stats:  stats,
		logger: logger,
	}
}

// Stats renders the signed-in user's history, or a sign-in prompt
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := middleware.GetUser(ctx)

	p := page.Stats()
	if err := h.stats.LoadPlayerStats(ctx, p, user); err != nil {
		h.logger.Error("backend not configured", slog.String("error", err.Error()))
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	data := pages.StatsData{
		PageData: layout.PageData{
			Title: "My Stats",
			User:  user,
			Flash: middleware.GetFlash(ctx),
		},
		Page: p,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Stats(data).Render(ctx, w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
