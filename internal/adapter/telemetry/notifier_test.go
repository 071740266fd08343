package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/daytrip/day-trip-flight-finder/internal/domain"
)

func TestNewLegEvent(t *testing.T) {
	flight := domain.Flight{
		Date:             time.Date(2025, 3, 23, 0, 0, 0, 0, time.UTC),
		DepartureAirport: domain.Airport{Code: "BHX"},
		ArrivalAirport:   domain.Airport{Code: "CDG"},
		DepartureGMTTime: time.Date(2025, 3, 23, 6, 0, 0, 0, time.UTC),
		ArrivalGMTTime:   time.Date(2025, 3, 23, 8, 5, 0, 0, time.UTC),
		Airline:          "Ryanair",
		FlightNumber:     "FR 1234",
	}

	event := newLegEvent(flight)

	assert.Equal(t, "BHXFR12342025-03-23", event.Slug)
	assert.Equal(t, "2025-03-23", event.Date)
	assert.Equal(t, "BHX", event.DepartureAirport)
	assert.Equal(t, "CDG", event.ArrivalAirport)
	assert.Equal(t, "FR 1234", event.FlightNumber)
}

func TestNopNotifierDiscards(t *testing.T) {
	var n NopNotifier
	assert.NotPanics(t, func() {
		n.LegDiscovered(domain.Flight{FlightNumber: "FR 1234"})
	})
}
