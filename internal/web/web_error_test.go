package web_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/scoreboard/internal/backend"
	"github.com/mcoot/scoreboard/internal/dependencies/clock"
	"github.com/mcoot/scoreboard/internal/services/identity"
	"github.com/mcoot/scoreboard/internal/services/leaderboard"
	"github.com/mcoot/scoreboard/internal/services/stats"
	"github.com/mcoot/scoreboard/internal/web"
	"github.com/mcoot/scoreboard/internal/web/view"
)

func TestFlashMessageClearedAfterDisplay(t *testing.T) {
	ts := newWebTestServer(t)
	ts.addPlayer("u1", "Alice", "alice@example.com", "password123")
	ts.signIn("alice", "password123")

	doc := parseHTML(ts.get("/").Body)
	assertContainsElement(t, doc, ".flash")

	doc = parseHTML(ts.get("/").Body)
	assertNotContainsElement(t, doc, ".flash")
}

func TestNotFound(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/no-such-page")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestStaleSessionCookieIgnored(t *testing.T) {
	ts := newWebTestServer(t)
	ts.cookies.cookies["session"] = &http.Cookie{Name: "session", Value: "sess_unknown"}

	rr := ts.get("/stats")

	assert.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "#user-stats-status", "Sign in")
}

func TestMissingStoreHandleIsUnavailable(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	src := backend.Static{H: &backend.Handles{AppName: "empty"}}
	lb := view.NewLeaderboard(leaderboard.New(src, clock.New(), logger), logger)
	st := view.NewStats(stats.New(src, logger), logger)

	router := web.NewRouter(web.RouterConfig{
		Logger:      logger,
		Backend:     src,
		Resolver:    identity.New(src, logger),
		Leaderboard: lb,
		Stats:       st,
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
