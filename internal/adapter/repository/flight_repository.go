package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/daytrip/day-trip-flight-finder/internal/domain"
)

// FlightRepository is the gorm-backed store for Flight records. Date filters
// always receive UTC-midnight values; the store never re-truncates.
type FlightRepository struct {
	db *gorm.DB
}

// NewFlightRepository creates a flight repository over the given db.
func NewFlightRepository(db *gorm.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

var _ domain.FlightRepository = (*FlightRepository)(nil)

// FindDeparting returns flights departing the given airport on the given
// search date, ordered by departure time, with both airports populated.
func (r *FlightRepository) FindDeparting(ctx context.Context, airportCode string, date time.Time) ([]domain.Flight, error) {
	var flights []domain.Flight
	err := r.db.WithContext(ctx).
		Joins("JOIN airport AS dep ON dep.id = flight.departure_airport_id").
		Where("dep.code = ? AND flight.date = ?", airportCode, date).
		Preload("DepartureAirport").
		Preload("ArrivalAirport").
		Order("flight.departure_gmt_time").
		Find(&flights).Error
	if err != nil {
		return nil, mapStoreError(err)
	}
	return flights, nil
}

// FindArriving returns flights arriving at the given airport on the given
// search date, ordered by departure time, with both airports populated.
func (r *FlightRepository) FindArriving(ctx context.Context, airportCode string, date time.Time) ([]domain.Flight, error) {
	var flights []domain.Flight
	err := r.db.WithContext(ctx).
		Joins("JOIN airport AS arr ON arr.id = flight.arrival_airport_id").
		Where("arr.code = ? AND flight.date = ?", airportCode, date).
		Preload("DepartureAirport").
		Preload("ArrivalAirport").
		Order("flight.departure_gmt_time").
		Find(&flights).Error
	if err != nil {
		return nil, mapStoreError(err)
	}
	return flights, nil
}

// Create inserts a new flight, assigning its ID.
func (r *FlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	// Omit the associations: both airports already exist and must not be
	// re-inserted or updated alongside the flight.
	return mapStoreError(r.db.WithContext(ctx).
		Omit("DepartureAirport", "ArrivalAirport").
		Create(flight).Error)
}

// CountForDate returns the number of stored flights touching the given
// airport in either direction on the given search date. A non-zero count
// marks the (airport, date) pair as already fetched.
func (r *FlightRepository) CountForDate(ctx context.Context, airportCode string, date time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Flight{}).
		Joins("JOIN airport AS dep ON dep.id = flight.departure_airport_id").
		Joins("JOIN airport AS arr ON arr.id = flight.arrival_airport_id").
		Where("flight.date = ? AND (dep.code = ? OR arr.code = ?)", date, airportCode, airportCode).
		Count(&count).Error
	if err != nil {
		return 0, mapStoreError(err)
	}
	return count, nil
}
