package storage

import (
	"cmp"
	"slices"

	"github.com/mcoot/scoreboard/internal/model"
)

// Evaluate applies a query to an in-memory set of entries.
// Stores without native query support (memory, redis) use it.
func Evaluate(entries []model.LeaderboardEntry, q LeaderboardQuery) []model.LeaderboardEntry {
	result := make([]model.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		if !q.Since.IsZero() && (e.Timestamp.IsZero() || e.Timestamp.Before(q.Since)) {
			continue
		}
		result = append(result, e)
	}

	if len(q.OrderBy) > 0 {
		slices.SortStableFunc(result, func(a, b model.LeaderboardEntry) int {
			return Compare(a, b, q.OrderBy...)
		})
	}

	if q.Limit > 0 && len(result) > q.Limit {
		result = result[:q.Limit]
	}
	return result
}

// Compare orders two entries by the given clauses. A zero timestamp sorts as the earliest.
func Compare(a, b model.LeaderboardEntry, orders ...Order) int {
	for _, o := range orders {
		var c int
		switch o.Field {
		case FieldScore:
			c = cmp.Compare(a.Score, b.Score)
		case FieldTimestamp:
			c = a.Timestamp.Compare(b.Timestamp)
		}
		if o.Direction == Desc {
			c = -c
		}
		if c != 0 {
			return c
		}
	}
	return 0
}
