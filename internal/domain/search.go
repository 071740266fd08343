package domain

import (
	"fmt"
	"regexp"
	"time"
)

// SearchQuery defines the parameters for a day-trip search, normalized from
// the HTTP request. Date is always truncated to a UTC calendar day before
// any comparison.
type SearchQuery struct {
	// Departure is the IATA code of the home airport.
	Departure string `json:"departure"`

	// Date is the search day, truncated to midnight UTC. For month sweeps
	// it anchors the month to search.
	Date time.Time `json:"date"`

	// Destination optionally narrows the search. Currently unused by
	// matching; carried for forward compatibility.
	Destination string `json:"destination,omitempty"`

	// MonthSweep searches every remaining day of Date's month instead of
	// the single day.
	MonthSweep bool `json:"isMonthSelection,omitempty"`

	// WeekendOnly restricts a month sweep to Saturdays and Sundays. It is
	// always explicit; a month sweep never implies it.
	WeekendOnly bool `json:"weekendOnly,omitempty"`

	// Adults and Children are party-size fields, pass-through only.
	Adults   int `json:"adults,omitempty"`
	Children int `json:"children,omitempty"`
}

// airportCodeRegex matches IATA airport codes (3 or more uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3,}$`)

// Validate checks the query is well formed. Returns a wrapped
// ErrInvalidRequest error on failure.
func (q *SearchQuery) Validate() error {
	if q.Departure == "" {
		return fmt.Errorf("%w: departure is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(q.Departure) {
		return fmt.Errorf("%w: departure must be an IATA airport code, got %q", ErrInvalidRequest, q.Departure)
	}
	if q.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidRequest)
	}
	if q.Adults < 0 {
		return fmt.Errorf("%w: adults must be non-negative", ErrInvalidRequest)
	}
	if q.Children < 0 {
		return fmt.Errorf("%w: children must be non-negative", ErrInvalidRequest)
	}
	return nil
}

// Day returns the query date truncated to midnight UTC.
func (q *SearchQuery) Day() time.Time {
	return time.Date(q.Date.Year(), q.Date.Month(), q.Date.Day(), 0, 0, 0, 0, time.UTC)
}

// SearchResult is the aggregated outcome of a day-trip search.
type SearchResult struct {
	// Trips contains the discovered day trips.
	Trips []DayTrip `json:"routes"`

	// Metadata describes how the search executed.
	Metadata SearchMetadata `json:"metadata"`
}

// SearchMetadata contains execution details for a search.
type SearchMetadata struct {
	// DaysSearched is the number of calendar days evaluated.
	DaysSearched int `json:"days_searched"`

	// DaysFailed is the number of days skipped due to provider failures.
	DaysFailed int `json:"days_failed"`

	// CacheHit indicates every evaluated day was served from the store.
	CacheHit bool `json:"cache_hit"`

	// SearchTimeMs is the total search duration in milliseconds.
	SearchTimeMs int64 `json:"search_time_ms"`
}
