package handler

import (
	"net/http"

	"github.com/mcoot/scoreboard/internal/api/middleware"
	"github.com/mcoot/scoreboard/internal/api/response"
	"github.com/mcoot/scoreboard/internal/model"
	"github.com/mcoot/scoreboard/internal/services/leaderboard"
	"github.com/mcoot/scoreboard/internal/services/stats"
)

// ScoresHandler serves leaderboards and personal stats
type ScoresHandler struct {
	leaderboard *leaderboard.Service
	stats       *stats.Service
}

// NewScoresHandler creates a new scores handler
func NewScoresHandler(leaderboardService *leaderboard.Service, statsService *stats.Service) *ScoresHandler {
	return &ScoresHandler{
		leaderboard: leaderboardService,
		stats:       statsService,
	}
}

// Leaderboard handles GET /api/v1/leaderboard?period=
func (h *ScoresHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	period, err := model.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		WriteError(w, err)
		return
	}

	entries, err := h.leaderboard.Top(r.Context(), period)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromModel(period, entries))
}

// MyStats handles GET /api/v1/stats/me
func (h *ScoresHandler) MyStats(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	result, err := h.stats.Load(r.Context(), *user)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StatsFromModel(result))
}
