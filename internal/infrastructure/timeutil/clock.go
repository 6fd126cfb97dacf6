// Package timeutil provides a clock abstraction so that time-dependent
// code, such as session expiry and token refresh, can be tested against a
// controllable clock.
package timeutil

import (
	"time"
)

// Clock abstracts time.Now for testability.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

var _ Clock = (*RealClock)(nil)

// NewRealClock returns the production clock.
func NewRealClock() *RealClock {
	return &RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a clock that only moves when told to.
type MockClock struct {
	current time.Time
}

var _ Clock = (*MockClock)(nil)

// NewMockClock returns a clock frozen at the given instant.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

func (m *MockClock) Now() time.Time {
	return m.current
}

// Set moves the clock to the given instant.
func (m *MockClock) Set(t time.Time) {
	m.current = t
}

// Advance moves the clock by d, which may be negative.
func (m *MockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
