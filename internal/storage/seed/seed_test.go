package seed

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/scoreboard/internal/model"
	"github.com/mcoot/scoreboard/internal/storage"
	"github.com/mcoot/scoreboard/internal/storage/memory"
	"github.com/mcoot/scoreboard/internal/testutil"
)

const fixture = `
users:
  - id: u1
    email: alice@example.com
    username: "  Alice "
    password: hunter22
    stats:
      totalScore: 100
      scores:
        - {score: 40, date: "2024-01-01", time: "10:00"}
        - {score: 60}
usernames:
  - key: legacy
    userId: u1
leaderboard:
  - {username: Alice, score: 90, ago: 36h}
  - {username: Bob, score: 70, timestamp: 2024-01-01T00:00:00Z}
`

func TestApplyWritesAllDocuments(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	f, err := Parse(strings.NewReader(fixture))
	require.NoError(t, err)
	require.NoError(t, Apply(ctx, store, f, now))

	user, err := store.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "  Alice ", user.Username)

	un, err := store.GetUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", un.Email)
	assert.Equal(t, model.UserID("u1"), un.UserID)

	legacy, err := store.GetUsername(ctx, "legacy")
	require.NoError(t, err)
	assert.Empty(t, legacy.Email)
	assert.Equal(t, model.UserID("u1"), legacy.UserID)

	cred, err := store.GetCredential(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte("hunter22")))

	stats, err := store.GetUserStats(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, stats.Scores, 2)
	assert.Equal(t, float64(100), stats.TotalScore)

	entries, err := store.QueryLeaderboard(ctx, storage.LeaderboardQuery{
		OrderBy: []storage.Order{{Field: storage.FieldScore, Direction: storage.Desc}},
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Timestamp.Equal(now.Add(-36*time.Hour)))
	assert.Equal(t, "Bob", entries[1].Username)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader("players: []\n"))
	assert.Error(t, err)
}

func TestParseEmptyDocument(t *testing.T) {
	f, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Users)
}

func TestApplyRejectsUserWithoutID(t *testing.T) {
	f := &Fixture{Users: []User{{Username: "ghost"}}}
	assert.Error(t, Apply(context.Background(), memory.New(), f, time.Now()))
}

func TestApplyRejectsBadAgo(t *testing.T) {
	f := &Fixture{Leaderboard: []LeaderboardEntry{{Username: "x", Ago: "yesterday"}}}
	assert.Error(t, Apply(context.Background(), memory.New(), f, time.Now()))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	store := memory.New()
	err := LoadFile(context.Background(), store, path, time.Now(), testutil.NopLogger())
	require.NoError(t, err)

	_, err = store.GetUser(context.Background(), "u1")
	assert.NoError(t, err)
}
