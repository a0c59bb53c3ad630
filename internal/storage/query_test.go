package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/scoreboard/internal/model"
)

var base = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func entry(name string, score float64, ts time.Time) model.LeaderboardEntry {
	return model.LeaderboardEntry{ID: name, Username: name, Score: score, Timestamp: ts}
}

func names(entries []model.LeaderboardEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Username
	}
	return out
}

func TestEvaluateFiltersBySince(t *testing.T) {
	entries := []model.LeaderboardEntry{
		entry("old", 10, base.Add(-48*time.Hour)),
		entry("edge", 20, base),
		entry("new", 30, base.Add(time.Hour)),
		entry("undated", 40, time.Time{}),
	}

	got := Evaluate(entries, LeaderboardQuery{Since: base})

	assert.Equal(t, []string{"edge", "new"}, names(got))
}

func TestEvaluateOrdersByScoreThenTimestamp(t *testing.T) {
	entries := []model.LeaderboardEntry{
		entry("a", 50, base),
		entry("b", 90, base),
		entry("c", 90, base.Add(time.Hour)),
		entry("d", 90, time.Time{}),
	}

	got := Evaluate(entries, LeaderboardQuery{
		OrderBy: []Order{{FieldScore, Desc}, {FieldTimestamp, Desc}},
	})

	assert.Equal(t, []string{"c", "b", "d", "a"}, names(got))
}

func TestEvaluateAppliesLimit(t *testing.T) {
	var entries []model.LeaderboardEntry
	for i := range 15 {
		entries = append(entries, entry("p", float64(i), base))
	}

	got := Evaluate(entries, LeaderboardQuery{Limit: 10})

	assert.Len(t, got, 10)
	assert.Len(t, Evaluate(entries, LeaderboardQuery{}), 15)
}

func TestEvaluateDoesNotMutateInput(t *testing.T) {
	entries := []model.LeaderboardEntry{entry("low", 1, base), entry("high", 2, base)}

	_ = Evaluate(entries, LeaderboardQuery{OrderBy: []Order{{FieldScore, Desc}}})

	assert.Equal(t, []string{"low", "high"}, names(entries))
}
