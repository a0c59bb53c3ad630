package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/scoreboard/internal/model"
	"github.com/mcoot/scoreboard/internal/web/middleware"
	"github.com/mcoot/scoreboard/internal/web/page"
	"github.com/mcoot/scoreboard/internal/web/templates/layout"
	"github.com/mcoot/scoreboard/internal/web/templates/pages"
	"github.com/mcoot/scoreboard/internal/web/view"
)

// HomeHandler handles the leaderboard page and its htmx fragment
type HomeHandler struct {
	leaderboard *view.Leaderboard
	stats       *view.Stats
	logger      *slog.Logger
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(leaderboard *view.Leaderboard, stats *view.Stats, logger *slog.Logger) *HomeHandler {
	return &HomeHandler{
		leaderboard: leaderboard,
		stats:       stats,
		logger:      logger,
	}
}

// Home renders the leaderboard for ?period= (weekly by default) alongside the user's stats
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := middleware.GetUser(ctx)

	period, err := model.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		period = model.PeriodWeekly
	}

	p := page.Full()
	if _, err := h.leaderboard.LoadLeaderboard(ctx, p, period); err != nil {
		h.backendError(w, err)
		return
	}
	if err := h.stats.LoadPlayerStats(ctx, p, user); err != nil {
		h.backendError(w, err)
		return
	}

	data := pages.HomeData{
		PageData: layout.PageData{
			Title: period.Label() + " Leaderboard",
			User:  user,
			Flash: middleware.GetFlash(ctx),
		},
		Period: period,
		Page:   p,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Home(data).Render(ctx, w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// List renders only the leaderboard list, for htmx swaps from the period buttons
func (h *HomeHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	period, err := model.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p := page.Leaderboard()
	if _, err := h.leaderboard.LoadLeaderboard(ctx, p, period); err != nil {
		h.backendError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.Slot(page.LeaderboardList).Render(ctx, w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// backendError reports a handle that was never published
func (h *HomeHandler) backendError(w http.ResponseWriter, err error) {
	h.logger.Error("backend not configured", slog.String("error", err.Error()))
	http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
}
