package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/daytrip/day-trip-flight-finder/internal/domain"
)

// utcLayouts are tried in order for provider UTC timestamps.
var utcLayouts = []string{
	"2006-01-02 15:04Z07:00",
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

// naiveLayouts are tried for local timestamps that carry no offset. Such
// values are read as UTC wall-clock: no timezone arithmetic is applied.
// Display-only; matching never reads these fields.
var naiveLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// LegNormalizer converts raw provider legs into Flight records, resolving
// both endpoint airports through the directory.
type LegNormalizer struct {
	directory *AirportDirectory
}

// NewLegNormalizer creates a normalizer over the given directory.
func NewLegNormalizer(directory *AirportDirectory) *LegNormalizer {
	return &LegNormalizer{directory: directory}
}

// Normalize builds a Flight from a raw leg travelling depCode -> arrCode on
// the given search date. Both airports are resolved concurrently; if either
// resolution fails the leg is unusable and the error is returned so the
// caller can drop it (resolution is not retried within a query).
func (n *LegNormalizer) Normalize(ctx context.Context, leg domain.RawLeg, depCode, arrCode string, searchDate time.Time) (domain.Flight, error) {
	type resolution struct {
		airport domain.Airport
		err     error
	}

	depCh := make(chan resolution, 1)
	arrCh := make(chan resolution, 1)
	go func() {
		a, err := n.directory.Resolve(ctx, depCode)
		depCh <- resolution{a, err}
	}()
	go func() {
		a, err := n.directory.Resolve(ctx, arrCode)
		arrCh <- resolution{a, err}
	}()

	dep := <-depCh
	arr := <-arrCh
	if dep.err != nil {
		return domain.Flight{}, dep.err
	}
	if arr.err != nil {
		return domain.Flight{}, arr.err
	}

	depUTC, err := parseProviderUTC(leg.Departure.ScheduledUTC)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("departure time of %s: %w", leg.Number, err)
	}
	arrUTC, err := parseProviderUTC(leg.Arrival.ScheduledUTC)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("arrival time of %s: %w", leg.Number, err)
	}

	return domain.Flight{
		Date:               searchDate,
		DepartureAirportID: dep.airport.ID,
		DepartureAirport:   dep.airport,
		ArrivalAirportID:   arr.airport.ID,
		ArrivalAirport:     arr.airport,
		DepartureGMTTime:   depUTC,
		DepartureLocalTime: parseProviderLocal(leg.Departure.ScheduledLocal, depUTC),
		ArrivalGMTTime:     arrUTC,
		ArrivalLocalTime:   parseProviderLocal(leg.Arrival.ScheduledLocal, arrUTC),
		Airline:            leg.AirlineName,
		FlightNumber:       leg.Number,
	}, nil
}

// parseProviderUTC parses an authoritative UTC timestamp.
func parseProviderUTC(value string) (time.Time, error) {
	for _, layout := range utcLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse UTC timestamp %q", value)
}

// parseProviderLocal parses an advisory local timestamp, falling back to
// the UTC instant when the value is missing or unparseable.
func parseProviderLocal(value string, fallback time.Time) time.Time {
	if value == "" {
		return fallback
	}
	for _, layout := range utcLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}
	return fallback
}
