package view

import (
	"context"
	"log/slog"

	"github.com/a-h/templ"

	"github.com/mcoot/scoreboard/internal/model"
	"github.com/mcoot/scoreboard/internal/services/stats"
	"github.com/mcoot/scoreboard/internal/web/page"
	"github.com/mcoot/scoreboard/internal/web/templates/components"
)

// Stats fills the personal stats regions
type Stats struct {
	service *stats.Service
	logger  *slog.Logger
}

// NewStats creates a Stats loader
func NewStats(service *stats.Service, logger *slog.Logger) *Stats {
	return &Stats{
		service: service,
		logger:  logger,
	}
}

// LoadPlayerStats renders the signed-in user's history and summary.
// A nil user gets the sign-in prompt without any reads.
func (v *Stats) LoadPlayerStats(ctx context.Context, p *page.Page, user *model.AuthUser) error {
	title := p.Get(page.StatsTitle)
	status := p.Get(page.StatsStatus)
	list := p.Get(page.StatsList)
	total := p.Get(page.TotalScore)

	set := func(r *page.Region, state string, content templ.Component) {
		if r != nil {
			r.Set(state, content)
		}
	}

	if user == nil {
		set(title, "signed-out", components.Text("Your Stats"))
		set(status, "signed-out", components.Text(components.SignInPrompt))
		set(list, "signed-out", nil)
		set(total, "signed-out", components.Summary(model.StatsSummary{}))
		return nil
	}

	set(status, string(StateLoading), components.Text(components.LoadingMessage))

	name, err := v.service.DisplayName(ctx, *user)
	if err != nil {
		return v.failed(user, status, err)
	}
	set(title, string(StateRendered), components.StatsTitle(name))

	result, err := v.service.History(ctx, *user, name)
	if err != nil {
		return v.failed(user, status, err)
	}

	if !result.HasStats {
		set(status, string(StateEmpty), components.Text(components.NoGamesMessage))
		set(list, string(StateEmpty), nil)
		set(total, string(StateEmpty), components.Summary(model.StatsSummary{}))
		return nil
	}

	set(status, string(StateRendered), nil)
	if len(result.Scores) == 0 {
		set(list, string(StateEmpty), components.Placeholder(components.NoScoresMessage))
	} else {
		set(list, string(StateRendered), components.ScoreRows(result.Scores))
	}
	set(total, string(StateRendered), components.Summary(result.Summary))
	return nil
}

// failed reports a load error in the status region and leaves the other
// regions as they were. A missing backend handle is returned instead.
func (v *Stats) failed(user *model.AuthUser, status *page.Region, err error) error {
	if isConfigError(err) {
		return err
	}
	v.logger.Error("failed to load stats",
		slog.String("uid", string(user.UID)),
		slog.String("error", err.Error()))
	if status != nil {
		status.Set(string(StateError), components.Text(components.StatsErrorMessage))
	}
	return nil
}
