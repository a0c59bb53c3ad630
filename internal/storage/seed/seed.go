// Package seed loads fixture documents into a store.
// Score submission is not part of the app, so fixtures are how data gets in
// for local runs and demos.
package seed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mcoot/scoreboard/internal/model"
	"github.com/mcoot/scoreboard/internal/services/auth"
	"github.com/mcoot/scoreboard/internal/storage"
)

// Fixture is the YAML document layout
type Fixture struct {
	Users       []User             `yaml:"users"`
	Usernames   []Username         `yaml:"usernames"`
	Leaderboard []LeaderboardEntry `yaml:"leaderboard"`
}

// User creates users/{id}, usernames/{normalized username} and optionally
// credentials/{email} and userStats/{id}
type User struct {
	ID       model.UserID           `yaml:"id"`
	Email    string                 `yaml:"email"`
	Username string                 `yaml:"username"`
	Password string                 `yaml:"password"`
	Stats    *model.UserStatsRecord `yaml:"stats"`
}

// Username is an explicit usernames record, for layouts the users list cannot express
type Username struct {
	Key    string       `yaml:"key"`
	Email  string       `yaml:"email"`
	UserID model.UserID `yaml:"userId"`
}

// LeaderboardEntry is a leaderboard document. Ago, when set, places the
// timestamp relative to load time (e.g. "36h").
type LeaderboardEntry struct {
	Username  string    `yaml:"username"`
	Score     float64   `yaml:"score"`
	Timestamp time.Time `yaml:"timestamp"`
	Ago       string    `yaml:"ago"`
}

// Parse decodes a fixture
func Parse(r io.Reader) (*Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &f, nil
		}
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &f, nil
}

// LoadFile parses the fixture at path and writes it to w
func LoadFile(ctx context.Context, w storage.Writer, path string, now time.Time, logger *slog.Logger) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	f, err := Parse(file)
	if err != nil {
		return err
	}
	if err := Apply(ctx, w, f, now); err != nil {
		return err
	}

	logger.Info("fixture loaded",
		slog.String("path", path),
		slog.Int("users", len(f.Users)),
		slog.Int("leaderboard_entries", len(f.Leaderboard)))
	return nil
}

// Apply writes every document of the fixture
func Apply(ctx context.Context, w storage.Writer, f *Fixture, now time.Time) error {
	for _, u := range f.Users {
		if u.ID == "" {
			return fmt.Errorf("fixture user %q has no id", u.Username)
		}
		if err := w.SaveUser(ctx, u.ID, &model.UserRecord{Email: u.Email, Username: u.Username}); err != nil {
			return fmt.Errorf("save user %s: %w", u.ID, err)
		}
		if u.Username != "" {
			rec := &model.UsernameRecord{Email: u.Email, UserID: u.ID}
			if err := w.SaveUsername(ctx, model.NormalizeUsername(u.Username), rec); err != nil {
				return fmt.Errorf("save username %s: %w", u.Username, err)
			}
		}
		if u.Password != "" {
			hash, err := auth.HashPassword(u.Password)
			if err != nil {
				return err
			}
			cred := &model.Credential{UserID: u.ID, Email: u.Email, PasswordHash: hash}
			if err := w.SaveCredential(ctx, cred); err != nil {
				return fmt.Errorf("save credential %s: %w", u.Email, err)
			}
		}
		if u.Stats != nil {
			if err := w.SaveUserStats(ctx, u.ID, u.Stats); err != nil {
				return fmt.Errorf("save stats %s: %w", u.ID, err)
			}
		}
	}

	for _, un := range f.Usernames {
		rec := &model.UsernameRecord{Email: un.Email, UserID: un.UserID}
		if err := w.SaveUsername(ctx, model.NormalizeUsername(un.Key), rec); err != nil {
			return fmt.Errorf("save username %s: %w", un.Key, err)
		}
	}

	for _, e := range f.Leaderboard {
		ts := e.Timestamp
		if e.Ago != "" {
			d, err := time.ParseDuration(e.Ago)
			if err != nil {
				return fmt.Errorf("leaderboard entry for %q: %w", e.Username, err)
			}
			ts = now.Add(-d)
		}
		entry := &model.LeaderboardEntry{Username: e.Username, Score: e.Score, Timestamp: ts}
		if err := w.AddLeaderboardEntry(ctx, entry); err != nil {
			return fmt.Errorf("add leaderboard entry: %w", err)
		}
	}
	return nil
}
