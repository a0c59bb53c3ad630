package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/scoreboard/internal/model"
)

func renderDoc(t *testing.T, c templ.Component) (*goquery.Document, string) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	html := buf.String()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<ol>" + html + "</ol>"))
	require.NoError(t, err)
	return doc, html
}

func TestLeaderboardRowsEscapesNames(t *testing.T) {
	doc, html := renderDoc(t, LeaderboardRows(model.RankEntries([]model.LeaderboardEntry{
		{Username: "<script>", Score: 12},
		{Username: `a&b"c'd`, Score: 3.5},
	})))

	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "a&amp;b&#34;c&#39;d")

	rows := doc.Find("li.leaderboard-row")
	require.Equal(t, 2, rows.Length())
	assert.Equal(t, "1.", rows.Eq(0).Find(".rank").Text())
	assert.Equal(t, "<script>", rows.Eq(0).Find(".name").Text())
	assert.Equal(t, "3.5", rows.Eq(1).Find(".score").Text())
}

func TestPlaceholder(t *testing.T) {
	doc, _ := renderDoc(t, Placeholder(NoScoresMessage))

	assert.Equal(t, 1, doc.Find("li").Length())
	assert.Equal(t, "No scores yet", doc.Find("li.placeholder").Text())
}

func TestPeriodButtons(t *testing.T) {
	doc, _ := renderDoc(t, PeriodButtons(model.PeriodMonthly))

	assert.Equal(t, 3, doc.Find("button").Length())
	assert.True(t, doc.Find("#btn-monthly").HasClass("active"))
	assert.False(t, doc.Find("#btn-weekly").HasClass("active"))
	href, _ := doc.Find("#btn-alltime").Attr("hx-get")
	assert.Equal(t, "/leaderboard/list?period=alltime", href)
	assert.Equal(t, "All Time", doc.Find("#btn-alltime").Text())
}

func TestScoreRowsKeepOrder(t *testing.T) {
	doc, _ := renderDoc(t, ScoreRows([]model.ScoreEntry{
		{Score: 40, Date: "2025-01-02", Time: "09:00"},
		{Score: 10, Date: "<b>"},
	}))

	rows := doc.Find("li.score-row")
	require.Equal(t, 2, rows.Length())
	assert.Equal(t, "1. 40", rows.Eq(0).Find(".score-left").Text())
	assert.Equal(t, "2025-01-02 09:00", rows.Eq(0).Find(".score-right").Text())
	assert.Equal(t, "<b>", rows.Eq(1).Find(".score-right").Text())
}

func TestSummary(t *testing.T) {
	doc, _ := renderDoc(t, Summary(model.Summarize(100, 3)))

	assert.Equal(t, "Games Played: 3", doc.Find(".games-played").Text())
	assert.Equal(t, "Total Score: 100", doc.Find(".total-score").Text())
	assert.Equal(t, "Average Score: 33.33", doc.Find(".average-score").Text())
}
