package clock

import "time"

// Clock supplies the current time so leaderboard windows and session
// expiry can be pinned in tests
type Clock interface {
	Now() time.Time
}

// System reads the wall clock
type System struct{}

// New returns the system clock
func New() System {
	return System{}
}

// Now returns the current UTC time
func (System) Now() time.Time {
	return time.Now().UTC()
}
