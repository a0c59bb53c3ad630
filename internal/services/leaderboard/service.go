package leaderboard

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/mcoot/scoreboard/internal/backend"
	"github.com/mcoot/scoreboard/internal/dependencies/clock"
	"github.com/mcoot/scoreboard/internal/model"
	"github.com/mcoot/scoreboard/internal/storage"
)

const (
	// WindowFetchLimit is how many recent entries a windowed period reads before ranking
	WindowFetchLimit = 100
	// TopN is how many entries any leaderboard shows
	TopN = 10
)

var rankOrder = []storage.Order{
	{Field: storage.FieldScore, Direction: storage.Desc},
	{Field: storage.FieldTimestamp, Direction: storage.Desc},
}

// Service reads ranked leaderboard entries for a period
type Service struct {
	backend backend.Source
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a leaderboard Service
func New(src backend.Source, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		backend: src,
		clock:   clock,
		logger:  logger,
	}
}

// Plan returns the store query for a period evaluated at now
func Plan(period model.Period, now time.Time) storage.LeaderboardQuery {
	switch period {
	case model.PeriodMonthly:
		return windowQuery(MonthBefore(now))
	case model.PeriodAllTime:
		return storage.LeaderboardQuery{
			OrderBy: rankOrder,
			Limit:   TopN,
		}
	default:
		return windowQuery(now.AddDate(0, 0, -7))
	}
}

func windowQuery(since time.Time) storage.LeaderboardQuery {
	return storage.LeaderboardQuery{
		Since:   since,
		OrderBy: []storage.Order{{Field: storage.FieldTimestamp, Direction: storage.Desc}},
		Limit:   WindowFetchLimit,
	}
}

// MonthBefore moves t back one calendar month keeping the day of month,
// clamped to the last day of the earlier month (Mar 31 -> Feb 28 or 29).
func MonthBefore(t time.Time) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month-1, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	lastDay := first.AddDate(0, 1, -1).Day()
	return first.AddDate(0, 0, min(day, lastDay)-1)
}

// Top returns at most TopN entries for the period, best first
func (s *Service) Top(ctx context.Context, period model.Period) ([]model.LeaderboardEntry, error) {
	h, err := s.backend.Wait(ctx)
	if err != nil {
		return nil, err
	}
	db, err := h.DB()
	if err != nil {
		return nil, err
	}

	q := Plan(period, s.clock.Now())
	entries, err := db.QueryLeaderboard(ctx, q)
	if err != nil {
		return nil, &model.QueryError{Op: "query leaderboard", Err: err}
	}

	s.logger.Debug("leaderboard fetched",
		slog.String("period", string(period)),
		slog.Int("count", len(entries)))

	if period == model.PeriodAllTime {
		if len(entries) > TopN {
			entries = entries[:TopN]
		}
		return entries, nil
	}
	return Rank(entries), nil
}

// Rank re-sorts a window by score then recency and keeps the best TopN.
// The input is not modified.
func Rank(entries []model.LeaderboardEntry) []model.LeaderboardEntry {
	ranked := slices.Clone(entries)
	slices.SortStableFunc(ranked, func(a, b model.LeaderboardEntry) int {
		return storage.Compare(a, b, rankOrder...)
	})
	if len(ranked) > TopN {
		ranked = ranked[:TopN]
	}
	return ranked
}
