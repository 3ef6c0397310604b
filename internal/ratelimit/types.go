package ratelimit

import "time"

// Entry is one client's counter for the current window.
type Entry struct {
	Count     int
	ResetTime time.Time
}

// Expired reports whether the window has elapsed at now.
func (e Entry) Expired(now time.Time) bool {
	return now.After(e.ResetTime)
}

// Config tunes a Limiter.
type Config struct {
	// Limit is the number of allowed calls per window.
	Limit int
	// Window is the length of a counting window.
	Window time.Duration
	// Now overrides the clock, for tests.
	Now func() time.Time
}
