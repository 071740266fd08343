package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/daytrip/day-trip-flight-finder/internal/domain"
	"github.com/daytrip/day-trip-flight-finder/internal/infrastructure/logger"
)

func newDirectory(t *testing.T) (*AirportDirectory, *domain.MockAirportRepository, *domain.MockAirportLookup) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := domain.NewMockAirportRepository(ctrl)
	lookup := domain.NewMockAirportLookup(ctrl)
	return NewAirportDirectory(repo, lookup, logger.Nop().Logger), repo, lookup
}

func TestAirportDirectory_StoreHitPopulatesCache(t *testing.T) {
	dir, repo, _ := newDirectory(t)
	ctx := context.Background()

	stored := domain.Airport{ID: 7, Code: "BHX", Name: "Birmingham Airport", City: "Birmingham", Country: "United Kingdom", Timezone: "Europe/London"}

	// The store is consulted exactly once; the second resolution must be
	// served from the in-memory cache with no further calls.
	repo.EXPECT().FindByCode(ctx, "BHX").Return(stored, nil).Times(1)

	first, err := dir.Resolve(ctx, "BHX")
	require.NoError(t, err)

	second, err := dir.Resolve(ctx, "BHX")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "BHX", second.Code)
	assert.Equal(t, "Europe/London", second.Timezone)
}

func TestAirportDirectory_MissFetchesAndPersists(t *testing.T) {
	dir, repo, lookup := newDirectory(t)
	ctx := context.Background()

	repo.EXPECT().FindByCode(ctx, "CDG").Return(domain.Airport{}, domain.ErrNotFound)
	lookup.EXPECT().Lookup(ctx, "CDG").Return(domain.AirportMetadata{
		Code: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France", Timezone: "Europe/Paris",
	}, nil)
	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.Airport) error {
		a.ID = 42
		return nil
	})

	airport, err := dir.Resolve(ctx, "CDG")
	require.NoError(t, err)
	assert.Equal(t, uint(42), airport.ID)
	assert.Equal(t, "Paris", airport.City)

	// Second resolution is a cache hit: no external call, no store call.
	again, err := dir.Resolve(ctx, "CDG")
	require.NoError(t, err)
	assert.Equal(t, airport, again)
}

func TestAirportDirectory_ConcurrentInsertLosesGracefully(t *testing.T) {
	dir, repo, lookup := newDirectory(t)
	ctx := context.Background()

	winner := domain.Airport{ID: 9, Code: "AMS", Name: "Amsterdam Schiphol"}

	gomock.InOrder(
		repo.EXPECT().FindByCode(ctx, "AMS").Return(domain.Airport{}, domain.ErrNotFound),
		lookup.EXPECT().Lookup(ctx, "AMS").Return(domain.AirportMetadata{Code: "AMS", Name: "Amsterdam Schiphol"}, nil),
		repo.EXPECT().Create(ctx, gomock.Any()).Return(fmt.Errorf("%w: airport.code", domain.ErrDuplicateKey)),
		repo.EXPECT().FindByCode(ctx, "AMS").Return(winner, nil),
	)

	airport, err := dir.Resolve(ctx, "AMS")
	require.NoError(t, err)
	assert.Equal(t, winner, airport)
}

func TestAirportDirectory_LookupFailure(t *testing.T) {
	dir, repo, lookup := newDirectory(t)
	ctx := context.Background()

	repo.EXPECT().FindByCode(ctx, "XYZ").Return(domain.Airport{}, domain.ErrNotFound)
	lookup.EXPECT().Lookup(ctx, "XYZ").Return(domain.AirportMetadata{}, errors.New("status 404"))

	_, err := dir.Resolve(ctx, "XYZ")
	require.Error(t, err)
	assert.True(t, domain.IsAirportNotFound(err))
}

func TestAirportDirectory_StoreFailureIsPersistenceError(t *testing.T) {
	dir, repo, _ := newDirectory(t)
	ctx := context.Background()

	repo.EXPECT().FindByCode(ctx, "BHX").Return(domain.Airport{}, errors.New("connection refused"))

	_, err := dir.Resolve(ctx, "BHX")
	require.Error(t, err)
	assert.True(t, domain.IsPersistence(err))
}

func TestAirportDirectory_CreateFailureIsPersistenceError(t *testing.T) {
	dir, repo, lookup := newDirectory(t)
	ctx := context.Background()

	repo.EXPECT().FindByCode(ctx, "CDG").Return(domain.Airport{}, domain.ErrNotFound)
	lookup.EXPECT().Lookup(ctx, "CDG").Return(domain.AirportMetadata{Code: "CDG"}, nil)
	repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("disk full"))

	_, err := dir.Resolve(ctx, "CDG")
	require.Error(t, err)
	assert.True(t, domain.IsPersistence(err))
	assert.False(t, domain.IsAirportNotFound(err))
}
