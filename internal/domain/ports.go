package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=domain

// RawMovement is one endpoint of a raw provider leg. AirportIATA is empty on
// the side the schedule board was queried for (the provider omits it).
type RawMovement struct {
	// AirportIATA is the IATA code of the counterpart airport, if reported.
	AirportIATA string

	// ScheduledUTC is the scheduled time in UTC, as a provider string.
	ScheduledUTC string

	// ScheduledLocal is the scheduled local wall-clock time, as a provider
	// string. Advisory only.
	ScheduledLocal string
}

// RawLeg is one scheduled flight segment as reported by the provider.
type RawLeg struct {
	// Number is the flight number (e.g., "FR 1234").
	Number string

	// AirlineName is the operating airline's display name.
	AirlineName string

	// AirlineIATA is the operating airline's IATA code.
	AirlineIATA string

	// Departure describes the departure side of the leg.
	Departure RawMovement

	// Arrival describes the arrival side of the leg.
	Arrival RawMovement
}

// ScheduleResult holds both directions of a schedule-board response.
// A provider failure collapses to the zero value ("no data").
type ScheduleResult struct {
	Departures []RawLeg
	Arrivals   []RawLeg
}

// ScheduleProvider fetches scheduled legs for an airport and local-time
// window from the external flight-data provider.
type ScheduleProvider interface {
	// FetchLegs issues one request for the given airport and window. The
	// window bounds are local datetimes in "2006-01-02T15:04" form.
	FetchLegs(ctx context.Context, airportCode, startLocal, endLocal string) (ScheduleResult, error)
}

// AirportLookup resolves an airport code to metadata via the external
// airport-metadata provider.
type AirportLookup interface {
	Lookup(ctx context.Context, code string) (AirportMetadata, error)
}

// AirportRepository is the persistent store for Airport records.
type AirportRepository interface {
	// FindByCode returns the airport with the given IATA code, or a
	// wrapped ErrNotFound.
	FindByCode(ctx context.Context, code string) (Airport, error)

	// Create inserts a new airport, assigning its ID. A concurrent insert
	// of the same code yields a wrapped ErrDuplicateKey.
	Create(ctx context.Context, airport *Airport) error
}

// FlightRepository is the persistent store for Flight records.
type FlightRepository interface {
	// FindDeparting returns flights departing the given airport on the
	// given search date, with both airports populated.
	FindDeparting(ctx context.Context, airportCode string, date time.Time) ([]Flight, error)

	// FindArriving returns flights arriving at the given airport on the
	// given search date, with both airports populated.
	FindArriving(ctx context.Context, airportCode string, date time.Time) ([]Flight, error)

	// Create inserts a new flight, assigning its ID.
	Create(ctx context.Context, flight *Flight) error

	// CountForDate returns the number of stored flights touching the given
	// airport (in either direction) on the given search date.
	CountForDate(ctx context.Context, airportCode string, date time.Time) (int64, error)
}

// LegNotifier publishes a best-effort telemetry event for each leg the
// system discovers. Implementations must not block and must swallow
// failures; this is not a correctness dependency.
type LegNotifier interface {
	LegDiscovered(flight Flight)
}
