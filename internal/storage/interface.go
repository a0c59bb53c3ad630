package storage

import (
	"context"
	"time"

	"github.com/mcoot/scoreboard/internal/model"
)

// Store defines the read side of the document database.
// Missing documents are reported as model.ErrDocumentNotFound.
type Store interface {
	// Single-document reads
	GetUsername(ctx context.Context, key string) (*model.UsernameRecord, error)
	GetUser(ctx context.Context, id model.UserID) (*model.UserRecord, error)
	GetUserStats(ctx context.Context, id model.UserID) (*model.UserStatsRecord, error)
	GetCredential(ctx context.Context, email string) (*model.Credential, error)

	// Collection queries
	QueryLeaderboard(ctx context.Context, q LeaderboardQuery) ([]model.LeaderboardEntry, error)
}

// Writer is implemented by stores that can be loaded with fixture data
type Writer interface {
	SaveUsername(ctx context.Context, key string, rec *model.UsernameRecord) error
	SaveUser(ctx context.Context, id model.UserID, rec *model.UserRecord) error
	SaveUserStats(ctx context.Context, id model.UserID, rec *model.UserStatsRecord) error
	SaveCredential(ctx context.Context, cred *model.Credential) error
	AddLeaderboardEntry(ctx context.Context, entry *model.LeaderboardEntry) error
}

// Field is a sortable leaderboard field
type Field string

const (
	FieldScore     Field = "score"
	FieldTimestamp Field = "timestamp"
)

// Direction is a sort direction
type Direction int

const (
	Asc Direction = iota
	Desc
)

// Order is one ORDER BY clause
type Order struct {
	Field     Field
	Direction Direction
}

// LeaderboardQuery describes a filtered, ordered, limited read of the leaderboard collection
type LeaderboardQuery struct {
	// Since keeps entries with timestamp >= Since; zero means no filter
	Since   time.Time
	OrderBy []Order
	// Limit caps the result size; zero means unlimited
	Limit int
}
