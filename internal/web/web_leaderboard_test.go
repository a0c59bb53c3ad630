package web_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeShowsWeeklyByDefault(t *testing.T) {
	ts := newWebTestServer(t)
	require.NoError(t, ts.app.AddScore("alice", 40, time.Hour))
	require.NoError(t, ts.app.AddScore("bob", 90, 10*24*time.Hour))

	rr := ts.get("/")
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	rows := doc.Find("#leaderboard-list li")
	assert.Equal(t, 1, rows.Length())
	assert.Equal(t, "alice", rows.First().Find(".name").Text())
	assert.True(t, doc.Find("#btn-weekly").HasClass("active"))
	assertContainsElement(t, doc, "#btn-monthly")
	assertContainsElement(t, doc, "#btn-alltime")
}

func TestHomePeriodQuery(t *testing.T) {
	ts := newWebTestServer(t)
	require.NoError(t, ts.app.AddScore("alice", 40, time.Hour))
	require.NoError(t, ts.app.AddScore("bob", 90, 10*24*time.Hour))

	rr := ts.get("/?period=monthly")

	doc := parseHTML(rr.Body)
	rows := doc.Find("#leaderboard-list li .name")
	require.Equal(t, 2, rows.Length())
	assert.Equal(t, "bob", rows.First().Text())
	assert.True(t, doc.Find("#btn-monthly").HasClass("active"))
}

func TestHomeUnknownPeriodFallsBackToWeekly(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/?period=daily")

	assert.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assert.True(t, doc.Find("#btn-weekly").HasClass("active"))
}

func TestLeaderboardFragment(t *testing.T) {
	ts := newWebTestServer(t)
	for i := range 15 {
		require.NoError(t, ts.app.AddScore("p", float64(i), time.Duration(i)*time.Minute))
	}

	rr := ts.getHTMX("/leaderboard/list?period=weekly")

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.True(t, strings.HasPrefix(body, `<ol id="leaderboard-list"`), body)
	assert.NotContains(t, body, "<html")

	doc := parseHTML(strings.NewReader(body))
	rows := doc.Find("#leaderboard-list li")
	assert.Equal(t, 10, rows.Length())
	assert.Equal(t, "14", rows.First().Find(".score").Text())
}

func TestLeaderboardFragmentAllTime(t *testing.T) {
	ts := newWebTestServer(t)
	require.NoError(t, ts.app.AddScore("fifty", 50, 300*24*time.Hour))
	require.NoError(t, ts.app.AddScore("older90", 90, 200*24*time.Hour))
	require.NoError(t, ts.app.AddScore("newer90", 90, 100*24*time.Hour))

	rr := ts.getHTMX("/leaderboard/list?period=alltime")

	doc := parseHTML(rr.Body)
	names := doc.Find("#leaderboard-list li .name").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	assert.Equal(t, []string{"newer90", "older90", "fifty"}, names)
}

func TestLeaderboardFragmentBadPeriod(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.getHTMX("/leaderboard/list?period=yearly")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLeaderboardEmptyPlaceholder(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/")

	doc := parseHTML(rr.Body)
	rows := doc.Find("#leaderboard-list li")
	assert.Equal(t, 1, rows.Length())
	assert.Contains(t, rows.Text(), "No scores yet")
	assert.Equal(t, "empty", doc.Find("#leaderboard-list").AttrOr("data-state", ""))
}

func TestLeaderboardErrorPlaceholder(t *testing.T) {
	ts := newWebTestServer(t)
	ts.app.Storage.FailReads(errors.New("backend unavailable"))

	rr := ts.getHTMX("/leaderboard/list")

	assert.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	rows := doc.Find("#leaderboard-list li")
	assert.Equal(t, 1, rows.Length())
	assert.Contains(t, rows.Text(), "Error loading leaderboard")
}

func TestLeaderboardEscapesUsernames(t *testing.T) {
	ts := newWebTestServer(t)
	require.NoError(t, ts.app.AddScore("<script>alert(1)</script>", 10, time.Minute))

	rr := ts.get("/")

	assert.Contains(t, rr.Body.String(), "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.NotContains(t, rr.Body.String(), "<script>alert(1)</script>")
}

func TestLeaderboardAnonymousEntries(t *testing.T) {
	ts := newWebTestServer(t)
	require.NoError(t, ts.app.AddScore("", 5, time.Minute))

	doc := parseHTML(ts.get("/").Body)

	assertContainsText(t, doc, "#leaderboard-list .name", "Anonymous")
}
