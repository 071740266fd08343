package domain

import (
	"strings"
	"time"
)

// Flight is one scheduled flight leg as persisted after a provider fetch.
// Records are created once by the normalizer and never mutated.
//
// The GMT (UTC) timestamps are authoritative for all duration and ordering
// math. The local timestamps are advisory, display-only values: the provider
// reports them as naive wall-clock strings and they are stored without real
// timezone arithmetic.
type Flight struct {
	// ID is the store-assigned identifier.
	ID uint `gorm:"column:id;primaryKey;autoIncrement" json:"-"`

	// Date is the search date this record belongs to, truncated to a UTC
	// calendar day. It is not necessarily the local departure date.
	Date time.Time `gorm:"column:date;not null;index" json:"date"`

	// DepartureAirportID references the departure Airport row.
	DepartureAirportID uint `gorm:"column:departure_airport_id;not null;index" json:"-"`

	// DepartureAirport is the resolved departure airport.
	DepartureAirport Airport `gorm:"foreignKey:DepartureAirportID" json:"departureAirport"`

	// ArrivalAirportID references the arrival Airport row.
	ArrivalAirportID uint `gorm:"column:arrival_airport_id;not null;index" json:"-"`

	// ArrivalAirport is the resolved arrival airport.
	ArrivalAirport Airport `gorm:"foreignKey:ArrivalAirportID" json:"arrivalAirport"`

	// DepartureGMTTime is the scheduled departure time in UTC.
	DepartureGMTTime time.Time `gorm:"column:departure_gmt_time;not null" json:"departureGMTTime"`

	// DepartureLocalTime is the scheduled departure time as reported locally.
	DepartureLocalTime time.Time `gorm:"column:departure_local_time" json:"departureLocalTime"`

	// ArrivalGMTTime is the scheduled arrival time in UTC.
	ArrivalGMTTime time.Time `gorm:"column:arrival_gmt_time;not null" json:"arrivalGMTTime"`

	// ArrivalLocalTime is the scheduled arrival time as reported locally.
	ArrivalLocalTime time.Time `gorm:"column:arrival_local_time" json:"arrivalLocalTime"`

	// Airline is the operating airline's display name.
	Airline string `gorm:"column:airline;type:text" json:"airline"`

	// FlightNumber is the airline's flight number (e.g., "FR 1234").
	FlightNumber string `gorm:"column:flight_number;type:text;not null" json:"flightNumber"`
}

// TableName overrides the gorm table name.
func (Flight) TableName() string {
	return "flight"
}

// Slug returns the external correlation id for this leg:
// departure code + flight number + search date, with spaces stripped.
func (f *Flight) Slug() string {
	number := strings.ReplaceAll(f.FlightNumber, " ", "")
	return f.DepartureAirport.Code + number + f.Date.UTC().Format("2006-01-02")
}

// DayTrip pairs an outbound leg with a same-day return leg. It is computed
// on demand and never persisted.
type DayTrip struct {
	// Departure is the outbound leg from the home airport.
	Departure Flight `json:"departure"`

	// Return is the leg back to the home airport.
	Return Flight `json:"return"`
}

// GroundTime returns the time spent at the destination: the gap between the
// outbound arrival and the return departure, both in UTC.
func (t *DayTrip) GroundTime() time.Duration {
	return t.Return.DepartureGMTTime.Sub(t.Departure.ArrivalGMTTime)
}

// SameUTCDay reports whether two instants fall on the same UTC calendar day.
// This is a date-component comparison, not a 24-hour window: 23:50 and 00:10
// the next day are different days even though they are 20 minutes apart.
func SameUTCDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
