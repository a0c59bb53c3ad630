package components

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/mcoot/scoreboard/internal/model"
)

// Leaderboard placeholder messages
const (
	NoScoresMessage         = "No scores yet"
	LeaderboardErrorMessage = "Error loading leaderboard"
	LoadingMessage          = "Loading..."
)

// LeaderboardRows renders one <li> per ranked row
func LeaderboardRows(rows []model.LeaderboardRow) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := &writer{w: out}
		for _, row := range rows {
			w.raw(`<li class="leaderboard-row"><span class="rank">`)
			w.raw(strconv.Itoa(row.Rank))
			w.raw(`.</span> <span class="name">`)
			w.text(row.Username)
			w.raw(`</span> <span class="score">`)
			w.text(row.Score)
			w.raw(`</span></li>`)
		}
		return w.err
	})
}

// Placeholder renders the single informational row of an empty or failed list
func Placeholder(message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw(`<li class="placeholder">`)
		w.text(message)
		w.raw(`</li>`)
		return w.err
	})
}

// PeriodButtons renders the weekly/monthly/all-time switcher. Each button
// swaps the leaderboard list via htmx.
func PeriodButtons(active model.Period) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw(`<div class="period-buttons">`)
		for _, p := range model.Periods {
			class := "btn-period"
			if p == active {
				class += " active"
			}
			w.raw(`<button type="button" id="btn-` + string(p) + `" class="` + class + `"`)
			w.raw(` hx-get="/leaderboard/list?period=` + string(p) + `"`)
			w.raw(` hx-target="#leaderboard-list" hx-swap="outerHTML">`)
			w.text(p.Label())
			w.raw(`</button>`)
		}
		w.raw(`</div>`)
		return w.err
	})
}
