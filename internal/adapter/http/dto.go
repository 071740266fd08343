package http

import (
	"time"

	"github.com/daytrip/day-trip-flight-finder/internal/domain"
)

// AirportDTO is the API representation of an airport.
type AirportDTO struct {
	Code     string `json:"code" example:"BHX"`
	Name     string `json:"name" example:"Birmingham Airport"`
	City     string `json:"city" example:"Birmingham"`
	Country  string `json:"country" example:"United Kingdom"`
	Timezone string `json:"timezone" example:"Europe/London"`
}

// FlightDTO is the API representation of one flight leg.
type FlightDTO struct {
	// Slug is the external correlation id for this leg.
	Slug string `json:"slug" example:"BHXFR12342025-03-23"`

	// Date is the search date the leg belongs to, as YYYY-MM-DD.
	Date string `json:"date" example:"2025-03-23"`

	DepartureAirport AirportDTO `json:"departureAirport"`
	ArrivalAirport   AirportDTO `json:"arrivalAirport"`

	// GMT times are authoritative; local times are display-only.
	DepartureGMTTime   time.Time `json:"departureGMTTime"`
	DepartureLocalTime time.Time `json:"departureLocalTime"`
	ArrivalGMTTime     time.Time `json:"arrivalGMTTime"`
	ArrivalLocalTime   time.Time `json:"arrivalLocalTime"`

	Airline      string `json:"airline" example:"Ryanair"`
	FlightNumber string `json:"flightNumber" example:"FR 1234"`
}

// DayTripDTO pairs an outbound leg with its same-day return.
type DayTripDTO struct {
	Departure FlightDTO `json:"departure"`
	Return    FlightDTO `json:"return"`

	// GroundTimeMinutes is the time at the destination between legs.
	GroundTimeMinutes int64 `json:"groundTimeMinutes" example:"390"`
}

func toAirportDTO(a domain.Airport) AirportDTO {
	return AirportDTO{
		Code:     a.Code,
		Name:     a.Name,
		City:     a.City,
		Country:  a.Country,
		Timezone: a.Timezone,
	}
}

func toFlightDTO(f domain.Flight) FlightDTO {
	return FlightDTO{
		Slug:               f.Slug(),
		Date:               f.Date.UTC().Format("2006-01-02"),
		DepartureAirport:   toAirportDTO(f.DepartureAirport),
		ArrivalAirport:     toAirportDTO(f.ArrivalAirport),
		DepartureGMTTime:   f.DepartureGMTTime,
		DepartureLocalTime: f.DepartureLocalTime,
		ArrivalGMTTime:     f.ArrivalGMTTime,
		ArrivalLocalTime:   f.ArrivalLocalTime,
		Airline:            f.Airline,
		FlightNumber:       f.FlightNumber,
	}
}

// toDayTripDTOs converts matched trips to their API shape. The result is
// never nil so the routes array always serializes.
func toDayTripDTOs(trips []domain.DayTrip) []DayTripDTO {
	out := make([]DayTripDTO, 0, len(trips))
	for _, trip := range trips {
		out = append(out, DayTripDTO{
			Departure:         toFlightDTO(trip.Departure),
			Return:            toFlightDTO(trip.Return),
			GroundTimeMinutes: int64(trip.GroundTime().Minutes()),
		})
	}
	return out
}
