package model

import (
	"math"
	"strconv"
)

// StatsSummary holds the three figures shown under a player's history
type StatsSummary struct {
	GamesPlayed  int
	TotalScore   float64
	AverageScore float64
}

// Summarize computes the summary for a total spread over a number of games
func Summarize(totalScore float64, games int) StatsSummary {
	var avg float64
	if games > 0 {
		avg = totalScore / float64(games)
	}
	return StatsSummary{
		GamesPlayed:  games,
		TotalScore:   totalScore,
		AverageScore: avg,
	}
}

// FormatAverage renders whole numbers without decimals and anything else with two
func (s StatsSummary) FormatAverage() string {
	if s.AverageScore == math.Trunc(s.AverageScore) {
		return FormatScore(s.AverageScore)
	}
	return strconv.FormatFloat(s.AverageScore, 'f', 2, 64)
}

// FormatScore renders a score the way it was stored, without trailing zeros
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// PlayerStats is everything needed to render the personal stats section
type PlayerStats struct {
	DisplayName string
	// HasStats is false when the user has no stats document yet
	HasStats bool
	Scores   []ScoreEntry
	Summary  StatsSummary
}
