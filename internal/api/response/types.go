package response

import (
	"time"

	"github.com/mcoot/scoreboard/internal/model"
	"github.com/mcoot/scoreboard/internal/services/auth"
)

// Health is the response for the health endpoint
type Health struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
	App     string `json:"app,omitempty"`
}

// Resolve is the response for identifier resolution
type Resolve struct {
	Email string `json:"email"`
}

// User represents the signed-in user
type User struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// UserFromModel converts a model.AuthUser
func UserFromModel(u model.AuthUser) User {
	return User{
		UID:   string(u.UID),
		Email: u.Email,
	}
}

// AuthResponse is the response for sign-in
type AuthResponse struct {
	User         User      `json:"user"`
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		User:         UserFromModel(s.User),
		SessionToken: s.Token,
		ExpiresAt:    s.ExpiresAt,
	}
}

// LeaderboardEntry is one ranked line
type LeaderboardEntry struct {
	Rank      int        `json:"rank"`
	Username  string     `json:"username"`
	Score     float64    `json:"score"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// Leaderboard is the response for a period's leaderboard
type Leaderboard struct {
	Period  string             `json:"period"`
	Entries []LeaderboardEntry `json:"entries"`
}

// LeaderboardFromModel ranks entries from 1 in the given order
func LeaderboardFromModel(period model.Period, entries []model.LeaderboardEntry) Leaderboard {
	out := make([]LeaderboardEntry, len(entries))
	for i, e := range entries {
		name := e.Username
		if name == "" {
			name = model.AnonymousName
		}
		out[i] = LeaderboardEntry{Rank: i + 1, Username: name, Score: e.Score}
		if !e.Timestamp.IsZero() {
			ts := e.Timestamp
			out[i].Timestamp = &ts
		}
	}
	return Leaderboard{Period: string(period), Entries: out}
}

// ScoreEntry is one game in a user's history
type ScoreEntry struct {
	Score    float64 `json:"score"`
	PlayedAt string  `json:"played_at,omitempty"`
}

// Stats is the response for the signed-in user's statistics
type Stats struct {
	DisplayName  string       `json:"display_name"`
	HasStats     bool         `json:"has_stats"`
	Scores       []ScoreEntry `json:"scores"`
	GamesPlayed  int          `json:"games_played"`
	TotalScore   float64      `json:"total_score"`
	AverageScore float64      `json:"average_score"`
	Average      string       `json:"average_display"`
}

// StatsFromModel converts model.PlayerStats
func StatsFromModel(p *model.PlayerStats) Stats {
	scores := make([]ScoreEntry, len(p.Scores))
	for i, s := range p.Scores {
		scores[i] = ScoreEntry{Score: s.Score, PlayedAt: s.PlayedAt()}
	}
	return Stats{
		DisplayName:  p.DisplayName,
		HasStats:     p.HasStats,
		Scores:       scores,
		GamesPlayed:  p.Summary.GamesPlayed,
		TotalScore:   p.Summary.TotalScore,
		AverageScore: p.Summary.AverageScore,
		Average:      p.Summary.FormatAverage(),
	}
}
