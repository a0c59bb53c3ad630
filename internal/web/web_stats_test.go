package web_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsSignedOut(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/stats")

	assert.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "#user-stats-status", "Sign in to see your stats.")
	assertContainsText(t, doc, "#user-total-score", "Total Score: 0")
	assert.Equal(t, int64(0), ts.app.Storage.Reads())
}

func TestStatsHistory(t *testing.T) {
	ts := newWebTestServer(t)
	ts.addPlayer("u1", "Alice", "alice@example.com", "password123")
	require.NoError(t, ts.app.SetHistory("u1", 50, 20, 30))
	ts.signIn("alice", "password123")

	rr := ts.get("/stats")

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "#user-stats-title", "Alice's Stats")
	rows := doc.Find("#user-stats-list li")
	require.Equal(t, 3, rows.Length())
	assert.Equal(t, "1. 50", rows.Eq(0).Find(".score-left").Text())
	assert.Equal(t, "3. 30", rows.Eq(2).Find(".score-left").Text())
	assertContainsText(t, doc, "#user-total-score .games-played", "Games Played: 3")
	assertContainsText(t, doc, "#user-total-score .total-score", "Total Score: 100")
	assertContainsText(t, doc, "#user-total-score .average-score", "Average Score: 33.33")
}

func TestStatsWholeAverage(t *testing.T) {
	ts := newWebTestServer(t)
	ts.addPlayer("u1", "Alice", "alice@example.com", "password123")
	require.NoError(t, ts.app.SetHistory("u1", 25, 25, 25, 25))
	ts.signIn("alice@example.com", "password123")

	doc := parseHTML(ts.get("/stats").Body)

	assertContainsText(t, doc, "#user-total-score .average-score", "Average Score: 25")
}

func TestStatsNoGames(t *testing.T) {
	ts := newWebTestServer(t)
	ts.addPlayer("u1", "Alice", "alice@example.com", "password123")
	ts.signIn("alice", "password123")

	doc := parseHTML(ts.get("/stats").Body)

	assertContainsText(t, doc, "#user-stats-status", "No games played yet.")
	assertContainsText(t, doc, "#user-total-score", "Total Score: 0")
	assertNotContainsElement(t, doc, "#user-stats-list li")
}

func TestStatsOnHomePage(t *testing.T) {
	ts := newWebTestServer(t)
	ts.addPlayer("u1", "Alice", "alice@example.com", "password123")
	require.NoError(t, ts.app.SetHistory("u1", 10))
	ts.signIn("alice", "password123")

	doc := parseHTML(ts.get("/").Body)

	assertContainsElement(t, doc, "#leaderboard-list")
	assertContainsText(t, doc, "#user-total-score", "Total Score: 10")
}

func TestStatsErrorMessage(t *testing.T) {
	ts := newWebTestServer(t)
	ts.addPlayer("u1", "Alice", "alice@example.com", "password123")
	ts.signIn("alice", "password123")
	ts.app.Storage.FailReads(errors.New("quota exceeded"))

	rr := ts.get("/stats")

	assert.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "#user-stats-status", "Error loading stats.")
}
