// Package pages holds the full-document views.
package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/scoreboard/internal/model"
	"github.com/mcoot/scoreboard/internal/web/page"
	"github.com/mcoot/scoreboard/internal/web/templates/components"
	"github.com/mcoot/scoreboard/internal/web/templates/layout"
)

// HomeData is the leaderboard page with the stats panel beside it
type HomeData struct {
	layout.PageData
	Period model.Period
	Page   *page.Page
}

// Home renders the leaderboard and, when the page has them, the stats regions
func Home(data HomeData) templ.Component {
	return layout.Base(data.PageData, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="leaderboard"><h1>Leaderboard</h1>`); err != nil {
			return err
		}
		if err := components.PeriodButtons(data.Period).Render(ctx, w); err != nil {
			return err
		}
		if err := data.Page.Slot(page.LeaderboardList).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</section>`); err != nil {
			return err
		}
		return StatsPanel(data.Page).Render(ctx, w)
	}))
}

// StatsPanel renders whichever stats regions the page holds
func StatsPanel(p *page.Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="user-stats">`); err != nil {
			return err
		}
		for _, id := range []string{page.StatsTitle, page.StatsStatus, page.StatsList, page.TotalScore} {
			if err := p.Slot(id).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}
