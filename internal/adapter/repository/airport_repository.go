package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/daytrip/day-trip-flight-finder/internal/domain"
)

// AirportRepository is the gorm-backed store for Airport records.
type AirportRepository struct {
	db *gorm.DB
}

// NewAirportRepository creates an airport repository over the given db.
func NewAirportRepository(db *gorm.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

var _ domain.AirportRepository = (*AirportRepository)(nil)

// FindByCode returns the airport with the given IATA code, or a wrapped
// domain.ErrNotFound.
func (r *AirportRepository) FindByCode(ctx context.Context, code string) (domain.Airport, error) {
	var airport domain.Airport
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&airport).Error
	if err != nil {
		return domain.Airport{}, mapStoreError(err)
	}
	return airport, nil
}

// Create inserts a new airport, assigning its ID. A concurrent insert of the
// same code yields a wrapped domain.ErrDuplicateKey.
func (r *AirportRepository) Create(ctx context.Context, airport *domain.Airport) error {
	return mapStoreError(r.db.WithContext(ctx).Create(airport).Error)
}
