package factory

import (
	"context"
	"time"

	"github.com/mcoot/scoreboard/internal/backend"
	"github.com/mcoot/scoreboard/internal/dependencies/clock"
	"github.com/mcoot/scoreboard/internal/model"
	"github.com/mcoot/scoreboard/internal/services/auth"
	"github.com/mcoot/scoreboard/internal/storage/memory"
	"github.com/mcoot/scoreboard/internal/testutil"
)

// TestNow is the fixed time a TestApp starts at
var TestNow = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Direct access for test setup
	Storage    *memory.Storage
	FixedClock *clock.Fixed
	Auth       *auth.Service
}

// NewTestApp creates an App over an in-memory store with a fixed clock.
// The backend is already published.
func NewTestApp() *TestApp {
	store := memory.New()
	fixed := clock.NewFixed(TestNow)
	logger := testutil.NopLogger()
	authService := auth.New(store, fixed, auth.DefaultConfig(), logger)

	conn := backend.NewConnector(logger)
	_ = conn.Publish(&backend.Handles{
		AppName: "scoreboard-test",
		Auth:    authService,
		Store:   store,
	})

	app := newWithDependencies(conn, Config{
		AppName:     "scoreboard-test",
		AuthConfig:  auth.DefaultConfig(),
		Logger:      logger,
		StorageType: StorageTypeMemory,
		Clock:       fixed,
	})

	return &TestApp{
		App:        app,
		Storage:    store,
		FixedClock: fixed,
		Auth:       authService,
	}
}

// AddPlayer registers a user with a username and password
func (t *TestApp) AddPlayer(id model.UserID, username, email, password string) error {
	ctx := context.Background()
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	if err := t.Storage.SaveUser(ctx, id, &model.UserRecord{Email: email, Username: username}); err != nil {
		return err
	}
	if err := t.Storage.SaveUsername(ctx, model.NormalizeUsername(username), &model.UsernameRecord{UserID: id}); err != nil {
		return err
	}
	return t.Storage.SaveCredential(ctx, &model.Credential{UserID: id, Email: email, PasswordHash: hash})
}

// AddScore records a leaderboard entry played ago before the test clock
func (t *TestApp) AddScore(username string, score float64, ago time.Duration) error {
	return t.Storage.AddLeaderboardEntry(context.Background(), &model.LeaderboardEntry{
		Username:  username,
		Score:     score,
		Timestamp: t.FixedClock.Now().Add(-ago),
	})
}

// SetHistory replaces a user's stats document
func (t *TestApp) SetHistory(id model.UserID, scores ...float64) error {
	rec := &model.UserStatsRecord{}
	for i, s := range scores {
		played := t.FixedClock.Now().AddDate(0, 0, i-len(scores))
		rec.Scores = append(rec.Scores, model.ScoreEntry{
			Score: s,
			Date:  played.Format("2006-01-02"),
			Time:  played.Format("15:04"),
		})
		rec.TotalScore += s
	}
	return t.Storage.SaveUserStats(context.Background(), id, rec)
}
