package model

import "fmt"

// Period selects the time window of a leaderboard
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodAllTime Period = "alltime"
)

// Periods lists the supported periods in display order
var Periods = []Period{PeriodWeekly, PeriodMonthly, PeriodAllTime}

// ParsePeriod parses a period name. An empty string selects weekly.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case "":
		return PeriodWeekly, nil
	case PeriodWeekly, PeriodMonthly, PeriodAllTime:
		return Period(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
}

// Label returns the button caption for the period
func (p Period) Label() string {
	switch p {
	case PeriodMonthly:
		return "Monthly"
	case PeriodAllTime:
		return "All Time"
	default:
		return "Weekly"
	}
}
