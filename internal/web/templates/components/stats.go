package components

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/mcoot/scoreboard/internal/model"
)

// Stats status messages
const (
	SignInPrompt      = "Sign in to see your stats."
	NoGamesMessage    = "No games played yet."
	StatsErrorMessage = "Error loading stats."
)

// ScoreRows renders a user's games in stored order
func ScoreRows(scores []model.ScoreEntry) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := &writer{w: out}
		for i, s := range scores {
			w.raw(`<li class="score-row"><span class="score-left">`)
			w.raw(strconv.Itoa(i + 1))
			w.raw(`. `)
			w.text(model.FormatScore(s.Score))
			w.raw(`</span><span class="score-right">`)
			w.text(s.PlayedAt())
			w.raw(`</span></li>`)
		}
		return w.err
	})
}

// Summary renders games played, total and average
func Summary(s model.StatsSummary) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw(`<span class="games-played">Games Played: `)
		w.raw(strconv.Itoa(s.GamesPlayed))
		w.raw(`</span> <span class="total-score">Total Score: `)
		w.text(model.FormatScore(s.TotalScore))
		w.raw(`</span> <span class="average-score">Average Score: `)
		w.text(s.FormatAverage())
		w.raw(`</span>`)
		return w.err
	})
}

// StatsTitle renders the heading of the stats section
func StatsTitle(displayName string) templ.Component {
	return Text(displayName + "'s Stats")
}
