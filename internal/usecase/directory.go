package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/daytrip/day-trip-flight-finder/internal/domain"
)

// AirportDirectory resolves airport codes to metadata. Resolution is a
// three-tier read-through: in-memory cache, persistent store, external
// lookup. The store and cache grow monotonically; records are never updated
// or deleted.
//
// The directory is process-wide: it is created at startup and shared by all
// queries, so the cache is guarded for concurrent access.
type AirportDirectory struct {
	airports domain.AirportRepository
	lookup   domain.AirportLookup
	log      zerolog.Logger

	mu    sync.RWMutex
	cache map[string]domain.Airport
}

// NewAirportDirectory creates a directory over the given store and external
// lookup.
func NewAirportDirectory(airports domain.AirportRepository, lookup domain.AirportLookup, log zerolog.Logger) *AirportDirectory {
	return &AirportDirectory{
		airports: airports,
		lookup:   lookup,
		log:      log.With().Str("component", "airport_directory").Logger(),
		cache:    make(map[string]domain.Airport),
	}
}

// Resolve returns the airport for the given IATA code, short-circuiting on
// the first tier that knows it. A code neither stored nor known to the
// external provider fails with a wrapped domain.ErrAirportNotFound; callers
// drop the affected leg rather than aborting the query.
func (d *AirportDirectory) Resolve(ctx context.Context, code string) (domain.Airport, error) {
	d.mu.RLock()
	cached, ok := d.cache[code]
	d.mu.RUnlock()
	if ok {
		return cached, nil
	}

	stored, err := d.airports.FindByCode(ctx, code)
	if err == nil {
		d.put(stored)
		return stored, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Airport{}, fmt.Errorf("%w: find airport %s: %v", domain.ErrPersistence, code, err)
	}

	meta, err := d.lookup.Lookup(ctx, code)
	if err != nil {
		return domain.Airport{}, fmt.Errorf("%w: %s: %v", domain.ErrAirportNotFound, code, err)
	}

	airport := domain.Airport{
		Code:     meta.Code,
		Name:     meta.Name,
		City:     meta.City,
		Country:  meta.Country,
		Timezone: meta.Timezone,
	}

	if err := d.airports.Create(ctx, &airport); err != nil {
		if !errors.Is(err, domain.ErrDuplicateKey) {
			return domain.Airport{}, fmt.Errorf("%w: create airport %s: %v", domain.ErrPersistence, code, err)
		}
		// A concurrent resolution inserted the same code first; the
		// existing record wins.
		existing, findErr := d.airports.FindByCode(ctx, code)
		if findErr != nil {
			return domain.Airport{}, fmt.Errorf("%w: re-read airport %s: %v", domain.ErrPersistence, code, findErr)
		}
		d.put(existing)
		return existing, nil
	}

	d.log.Info().Str("code", airport.Code).Str("name", airport.Name).Msg("Airport created")
	d.put(airport)
	return airport, nil
}

func (d *AirportDirectory) put(airport domain.Airport) {
	d.mu.Lock()
	d.cache[airport.Code] = airport
	d.mu.Unlock()
}
