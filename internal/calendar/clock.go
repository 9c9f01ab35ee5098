package calendar

import "time"

// Clock supplies the reference date for window checks and two-digit year
// resolution. Injecting it keeps every analysis reproducible in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current UTC time truncated to midnight.
func (SystemClock) Now() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// FixedClock always reports the same instant.
type FixedClock struct {
	Instant time.Time
}

// Fixed returns a clock pinned to the given instant.
func Fixed(t time.Time) FixedClock {
	return FixedClock{Instant: t}
}

// Now returns the pinned instant.
func (c FixedClock) Now() time.Time {
	return c.Instant
}
