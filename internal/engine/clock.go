package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// The HTTP layer reads it once per request and threads the resulting
// day through the pure functions below.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Today reduces a clock reading to the server-local calendar day.
func Today(c Clock) Date {
	return DateOf(c.Now())
}
