// Package time2 provides a clock abstraction so that code measuring elapsed
// time can be driven by a fake clock in tests.
package time2

import (
	"time"
)

// These methods are equivalent to those provided by the time package.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

type realClock struct{}

func NewRealClock() Clock {
	return &realClock{}
}

// Now reads the wall clock together with the monotonic reading, so Since
// is immune to wall clock adjustments.
func (c *realClock) Now() time.Time {
	return time.Now()
}

func (c *realClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

var DefaultClock = NewRealClock()
