package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
)

var (
	headingColor = color.New(color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	leaderColor  = color.New(color.FgYellow)
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
	errW   io.Writer
}

// NewOutput creates a new Output formatter writing to the command's streams
func NewOutput(format string, w, errW io.Writer) *Output {
	return &Output{format: format, w: w, errW: errW}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		_, _ = fmt.Fprintln(o.errW, string(data))
	} else {
		_, _ = errorColor.Fprint(o.errW, "Error:")
		_, _ = fmt.Fprintf(o.errW, " %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case HealthResult:
		o.printHealthResult(v)
	case ResolveResult:
		o.printf("Email: %s\n", v.Email)
	case AuthResult:
		o.printAuthResult(v)
	case User:
		o.printf("Signed in as %s (%s)\n", v.Email, v.UID)
	case LeaderboardResult:
		o.printLeaderboard(v)
	case StatsResult:
		o.printStats(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

// HealthResult response type (matches API)
type HealthResult struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
	App     string `json:"app,omitempty"`
}

// ResolveResult response type
type ResolveResult struct {
	Email string `json:"email"`
}

// User response type
type User struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// AuthResult combines the user and token
type AuthResult struct {
	User         User      `json:"user"`
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	Rank     int     `json:"rank"`
	Username string  `json:"username"`
	Score    float64 `json:"score"`
}

// LeaderboardResult response type
type LeaderboardResult struct {
	Period  string             `json:"period"`
	Entries []LeaderboardEntry `json:"entries"`
}

// ScoreEntry response type
type ScoreEntry struct {
	Score    float64 `json:"score"`
	PlayedAt string  `json:"played_at,omitempty"`
}

// StatsResult response type
type StatsResult struct {
	DisplayName  string       `json:"display_name"`
	HasStats     bool         `json:"has_stats"`
	Scores       []ScoreEntry `json:"scores"`
	GamesPlayed  int          `json:"games_played"`
	TotalScore   float64      `json:"total_score"`
	AverageScore float64      `json:"average_score"`
	Average      string       `json:"average_display"`
}

func (o *Output) printHealthResult(h HealthResult) {
	o.printf("Status: %s\n", h.Status)
	o.printf("Backend: %s\n", h.Backend)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printf("Signed in as %s (%s)\n", a.User.Email, a.User.UID)
	o.printf("Token: %s\n", a.SessionToken)
	o.printf("Expires: %s\n", a.ExpiresAt.Format(time.RFC3339))
}

func (o *Output) printLeaderboard(l LeaderboardResult) {
	_, _ = headingColor.Fprintf(o.w, "Leaderboard (%s)\n", l.Period)
	if len(l.Entries) == 0 {
		o.printf("No scores yet\n")
		return
	}
	for _, e := range l.Entries {
		line := fmt.Sprintf("%3d. %-20s %s\n", e.Rank, e.Username, formatScore(e.Score))
		if e.Rank == 1 {
			_, _ = leaderColor.Fprint(o.w, line)
			continue
		}
		o.printf("%s", line)
	}
}

func (o *Output) printStats(s StatsResult) {
	_, _ = headingColor.Fprintf(o.w, "%s's Stats\n", s.DisplayName)
	if !s.HasStats || len(s.Scores) == 0 {
		o.printf("No games played yet.\n")
	}
	for i, e := range s.Scores {
		o.printf("%3d. %-10s %s\n", i+1, formatScore(e.Score), e.PlayedAt)
	}
	o.printf("Games Played: %d\n", s.GamesPlayed)
	o.printf("Total Score: %s\n", formatScore(s.TotalScore))
	o.printf("Average Score: %s\n", s.Average)
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
