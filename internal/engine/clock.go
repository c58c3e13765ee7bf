package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// The Resolver and the Scheduler both take their "now" from here so tests
// can supply frozen instants instead of racing the wall clock.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
