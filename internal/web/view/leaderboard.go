// Package view loads backend data into page regions. Loaders catch and log
// query failures, replacing region content with a status message; only a
// missing backend handle is returned to the caller.
package view

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/scoreboard/internal/model"
	"github.com/mcoot/scoreboard/internal/services/leaderboard"
	"github.com/mcoot/scoreboard/internal/web/page"
	"github.com/mcoot/scoreboard/internal/web/templates/components"
)

// ListState is the lifecycle of the leaderboard list
type ListState string

const (
	StateIdle     ListState = "idle"
	StateLoading  ListState = "loading"
	StateRendered ListState = "rendered"
	StateEmpty    ListState = "empty"
	StateError    ListState = "error"
)

// Leaderboard fills the leaderboard list
type Leaderboard struct {
	service *leaderboard.Service
	logger  *slog.Logger
}

// NewLeaderboard creates a Leaderboard loader
func NewLeaderboard(service *leaderboard.Service, logger *slog.Logger) *Leaderboard {
	return &Leaderboard{
		service: service,
		logger:  logger,
	}
}

// LoadLeaderboard renders the period's top entries into the leaderboard list.
// Without a list region it returns StateIdle having read nothing.
func (v *Leaderboard) LoadLeaderboard(ctx context.Context, p *page.Page, period model.Period) (ListState, error) {
	list := p.Get(page.LeaderboardList)
	if list == nil {
		return StateIdle, nil
	}

	list.Set(string(StateLoading), components.Placeholder(components.LoadingMessage))

	entries, err := v.service.Top(ctx, period)
	if err != nil {
		if isConfigError(err) {
			return StateIdle, err
		}
		v.logger.Error("failed to load leaderboard",
			slog.String("period", string(period)),
			slog.String("error", err.Error()))
		list.Set(string(StateError), components.Placeholder(components.LeaderboardErrorMessage))
		return StateError, nil
	}

	if len(entries) == 0 {
		list.Set(string(StateEmpty), components.Placeholder(components.NoScoresMessage))
		return StateEmpty, nil
	}

	list.Set(string(StateRendered), components.LeaderboardRows(model.RankEntries(entries)))
	return StateRendered, nil
}

func isConfigError(err error) bool {
	var ce *model.ConfigError
	return errors.As(err, &ce)
}
