// Package timeutil supplies the calendar arithmetic behind month sweeps and
// a clock abstraction so sweep anchoring is testable.
package timeutil

import (
	"time"
)

// Clock abstracts time.Now. Month sweeps anchor "remaining days" on it, so
// tests pin the anchor with a MockClock while production uses RealClock.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

// NewRealClock returns the production clock.
func NewRealClock() *RealClock {
	return &RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock holds a fixed instant that tests move explicitly.
type MockClock struct {
	fixedTime time.Time
}

// NewMockClock creates a clock pinned to the given instant.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{fixedTime: t}
}

// NewMockClockFromString creates a clock pinned to an RFC3339 instant.
// Panics on a bad string; meant for test fixtures only.
func NewMockClockFromString(timeStr string) *MockClock {
	t, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		panic("invalid time string: " + err.Error())
	}
	return &MockClock{fixedTime: t}
}

// Now returns the pinned instant.
func (m *MockClock) Now() time.Time {
	return m.fixedTime
}

// Set repins the clock, for tests that walk a sweep across anchor dates.
func (m *MockClock) Set(t time.Time) {
	m.fixedTime = t
}

// Advance moves the pinned instant forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.fixedTime = m.fixedTime.Add(d)
}

// AdvanceMinutes moves the pinned instant forward by whole minutes.
func (m *MockClock) AdvanceMinutes(minutes int) {
	m.Advance(time.Duration(minutes) * time.Minute)
}

// AdvanceHours moves the pinned instant forward by whole hours.
func (m *MockClock) AdvanceHours(hours int) {
	m.Advance(time.Duration(hours) * time.Hour)
}

// AdvanceDays moves the pinned instant forward by whole 24h days.
func (m *MockClock) AdvanceDays(days int) {
	m.Advance(time.Duration(days) * 24 * time.Hour)
}

var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
