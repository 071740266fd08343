package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	clock := NewRealClock()

	before := time.Now()
	now := clock.Now()
	after := time.Now()

	assert.False(t, now.Before(before))
	assert.False(t, now.After(after))
}

func TestMockClock_Now(t *testing.T) {
	anchor := time.Date(2025, 3, 23, 10, 30, 0, 0, time.UTC)
	clock := NewMockClock(anchor)

	// The pinned instant never drifts between reads.
	assert.Equal(t, anchor, clock.Now())
	assert.Equal(t, anchor, clock.Now())
}

func TestMockClock_Set(t *testing.T) {
	clock := NewMockClock(time.Date(2025, 3, 23, 10, 0, 0, 0, time.UTC))

	repinned := time.Date(2025, 3, 28, 14, 30, 0, 0, time.UTC)
	clock.Set(repinned)

	assert.Equal(t, repinned, clock.Now())
}

func TestMockClock_Advance(t *testing.T) {
	clock := NewMockClock(time.Date(2025, 3, 23, 10, 0, 0, 0, time.UTC))

	clock.Advance(30 * time.Minute)
	assert.Equal(t, time.Date(2025, 3, 23, 10, 30, 0, 0, time.UTC), clock.Now())

	// Negative advances rewind.
	clock.Advance(-2 * time.Hour)
	assert.Equal(t, time.Date(2025, 3, 23, 8, 30, 0, 0, time.UTC), clock.Now())
}

func TestMockClock_AdvanceHelpers(t *testing.T) {
	clock := NewMockClock(time.Date(2025, 3, 23, 10, 0, 0, 0, time.UTC))

	clock.AdvanceMinutes(30)
	clock.AdvanceHours(2)
	clock.AdvanceDays(1)

	assert.Equal(t, time.Date(2025, 3, 24, 12, 30, 0, 0, time.UTC), clock.Now())
}

func TestNewMockClockFromString(t *testing.T) {
	clock := NewMockClockFromString("2025-03-23T10:30:00Z")

	assert.Equal(t, time.Date(2025, 3, 23, 10, 30, 0, 0, time.UTC), clock.Now())
}

func TestNewMockClockFromString_Panic(t *testing.T) {
	assert.Panics(t, func() {
		NewMockClockFromString("not-a-time")
	})
}

func TestMockClock_AnchorsSweepDays(t *testing.T) {
	// A sweep anchored mid-month must only see days from the anchor on.
	clock := NewMockClock(time.Date(2025, 3, 28, 9, 0, 0, 0, time.UTC))

	days := RemainingDaysOfMonth(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), clock.Now())

	assert.Len(t, days, 4)
	assert.Equal(t, time.Date(2025, 3, 28, 0, 0, 0, 0, time.UTC), days[0])
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), days[3])
}
