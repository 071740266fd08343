// Package usecase contains the application logic for the day-trip finder:
// the matching engine, airport resolution, leg normalization, and the
// search orchestrator that ties them together.
package usecase

import (
	"time"

	"github.com/daytrip/day-trip-flight-finder/internal/domain"
)

// MatchDayTrips pairs outbound legs with same-day return legs.
//
// A pair (o, r) is admitted iff:
//   - r departs from o's arrival airport and lands back at o's departure
//     airport (exact code match, not just the same city),
//   - both UTC departure times fall on the same UTC calendar day,
//   - r's UTC departure is at least minGround after o's UTC arrival. The
//     comparison is on the raw difference, so 5h59m59.999s fails a 6h
//     threshold while exactly 6h passes.
//
// Output order is deterministic: outbound legs in input order, and for each
// outbound the admitted returns in input order. The scan is O(len(outbound)
// * len(inbound)), which is fine at single-airport daily volumes.
//
// The matcher performs no I/O and never panics; empty inputs yield an empty
// result.
func MatchDayTrips(outbound, inbound []domain.Flight, minGround time.Duration) []domain.DayTrip {
	trips := []domain.DayTrip{}

	for _, dep := range outbound {
		for _, ret := range inbound {
			if ret.DepartureAirport.Code != dep.ArrivalAirport.Code {
				continue
			}
			if ret.ArrivalAirport.Code != dep.DepartureAirport.Code {
				continue
			}
			if !domain.SameUTCDay(dep.DepartureGMTTime, ret.DepartureGMTTime) {
				continue
			}
			// A return departing before the outbound arrives yields a
			// negative gap and can never reach the threshold.
			if ret.DepartureGMTTime.Sub(dep.ArrivalGMTTime) < minGround {
				continue
			}
			trips = append(trips, domain.DayTrip{Departure: dep, Return: ret})
		}
	}

	return trips
}
