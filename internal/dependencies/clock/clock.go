package clock

import "time"

// Clock provides time operations that can be mocked for testing
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant. Reports use it to compute
// ages "as of" a given day.
type FixedClock struct {
	at time.Time
}

// NewFixed creates a FixedClock stopped at t
func NewFixed(t time.Time) *FixedClock {
	return &FixedClock{at: t}
}

// Now returns the fixed instant
func (c *FixedClock) Now() time.Time {
	return c.at
}
