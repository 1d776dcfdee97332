// Package clock abstracts time for code that must be testable against fixed
// instants, such as idempotency TTLs and notification run times.
package clock

import "time"

// Clock yields the current instant. Production code receives a RealClock;
// tests substitute a MockClock pinned to a known time.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// MockClock reports a fixed instant that tests move explicitly.
type MockClock struct {
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	return c.now
}

func (c *MockClock) Set(t time.Time) {
	c.now = t
}

// Add advances the reported instant by d.
func (c *MockClock) Add(d time.Duration) {
	c.now = c.now.Add(d)
}
