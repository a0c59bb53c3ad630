package model

import (
	"strings"
	"time"
)

// UserID identifies a user document and the matching stats document
type UserID string

// Collection names in the document store
const (
	CollectionUsernames   = "usernames"
	CollectionUsers       = "users"
	CollectionUserStats   = "userStats"
	CollectionLeaderboard = "leaderboard"
	CollectionCredentials = "credentials"
)

// UsernameRecord maps a normalized username to its owner.
// At least one of Email or UserID is expected to lead to an email.
type UsernameRecord struct {
	Email  string `json:"email,omitempty" firestore:"email,omitempty" yaml:"email,omitempty"`
	UserID UserID `json:"userId,omitempty" firestore:"userId,omitempty" yaml:"userId,omitempty"`
}

// UserRecord is the profile document stored at users/{uid}
type UserRecord struct {
	Email    string `json:"email,omitempty" firestore:"email,omitempty" yaml:"email,omitempty"`
	Username string `json:"username,omitempty" firestore:"username,omitempty" yaml:"username,omitempty"`
}

// ScoreEntry is a single finished game in a user's history
type ScoreEntry struct {
	Score float64 `json:"score" firestore:"score" yaml:"score"`
	Date  string  `json:"date,omitempty" firestore:"date,omitempty" yaml:"date,omitempty"`
	Time  string  `json:"time,omitempty" firestore:"time,omitempty" yaml:"time,omitempty"`
}

// PlayedAt joins date and time for display
func (e ScoreEntry) PlayedAt() string {
	return strings.TrimSpace(e.Date + " " + e.Time)
}

// UserStatsRecord holds aggregate statistics for a user.
// Scores are kept in insertion order.
type UserStatsRecord struct {
	Scores     []ScoreEntry `json:"scores" firestore:"scores" yaml:"scores"`
	TotalScore float64      `json:"totalScore" firestore:"totalScore" yaml:"totalScore"`
}

// LeaderboardEntry is one submitted game result. A user may have many.
type LeaderboardEntry struct {
	ID        string    `json:"id,omitempty" firestore:"-" yaml:"id,omitempty"`
	Username  string    `json:"username,omitempty" firestore:"username,omitempty" yaml:"username,omitempty"`
	Score     float64   `json:"score" firestore:"score" yaml:"score"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp" yaml:"timestamp"`
}

// Credential is the sign-in secret for an email address
type Credential struct {
	UserID       UserID `json:"userId" firestore:"userId"`
	Email        string `json:"email" firestore:"email"`
	PasswordHash string `json:"passwordHash" firestore:"passwordHash"`
}

// NormalizeUsername derives the usernames collection key from raw input
func NormalizeUsername(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// NormalizeEmail derives the credentials collection key from an email address.
// Email addresses compare case-insensitively for sign-in.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// AnonymousName is shown for leaderboard entries without a username
const AnonymousName = "Anonymous"

// LeaderboardRow is one rendered line of the leaderboard
type LeaderboardRow struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Score    string `json:"score"`
}

// RankEntries numbers entries from 1 in the order given
func RankEntries(entries []LeaderboardEntry) []LeaderboardRow {
	rows := make([]LeaderboardRow, 0, len(entries))
	for i, e := range entries {
		name := e.Username
		if name == "" {
			name = AnonymousName
		}
		rows = append(rows, LeaderboardRow{
			Rank:     i + 1,
			Username: name,
			Score:    FormatScore(e.Score),
		})
	}
	return rows
}
