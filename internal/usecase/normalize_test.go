package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/daytrip/day-trip-flight-finder/internal/domain"
	"github.com/daytrip/day-trip-flight-finder/internal/infrastructure/logger"
)

func newNormalizer(t *testing.T) (*LegNormalizer, *domain.MockAirportRepository, *domain.MockAirportLookup) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := domain.NewMockAirportRepository(ctrl)
	lookup := domain.NewMockAirportLookup(ctrl)
	dir := NewAirportDirectory(repo, lookup, logger.Nop().Logger)
	return NewLegNormalizer(dir), repo, lookup
}

func rawLeg(number, utcDep, localDep, utcArr, localArr string) domain.RawLeg {
	return domain.RawLeg{
		Number:      number,
		AirlineName: "Ryanair",
		AirlineIATA: "FR",
		Departure:   domain.RawMovement{ScheduledUTC: utcDep, ScheduledLocal: localDep},
		Arrival:     domain.RawMovement{ScheduledUTC: utcArr, ScheduledLocal: localArr},
	}
}

func TestLegNormalizer_BuildsFlight(t *testing.T) {
	norm, repo, _ := newNormalizer(t)
	ctx := context.Background()

	repo.EXPECT().FindByCode(ctx, "BHX").Return(domain.Airport{ID: 1, Code: "BHX", Timezone: "Europe/London"}, nil)
	repo.EXPECT().FindByCode(ctx, "CDG").Return(domain.Airport{ID: 2, Code: "CDG", Timezone: "Europe/Paris"}, nil)

	leg := rawLeg("FR 100", "2025-03-23 06:00Z", "2025-03-23 06:00+00:00", "2025-03-23 08:05Z", "2025-03-23 09:05+01:00")
	flight, err := norm.Normalize(ctx, leg, "BHX", "CDG", day)
	require.NoError(t, err)

	assert.Equal(t, uint(1), flight.DepartureAirportID)
	assert.Equal(t, uint(2), flight.ArrivalAirportID)
	assert.Equal(t, "CDG", flight.ArrivalAirport.Code)
	assert.Equal(t, day, flight.Date)
	assert.Equal(t, "Ryanair", flight.Airline)
	assert.Equal(t, "FR 100", flight.FlightNumber)

	assert.Equal(t, time.Date(2025, 3, 23, 6, 0, 0, 0, time.UTC), flight.DepartureGMTTime)
	assert.Equal(t, time.Date(2025, 3, 23, 8, 5, 0, 0, time.UTC), flight.ArrivalGMTTime)
	// Local arrival keeps its +01:00 wall clock.
	assert.Equal(t, 9, flight.ArrivalLocalTime.Hour())
}

func TestLegNormalizer_NaiveLocalTimeReadAsUTC(t *testing.T) {
	norm, repo, _ := newNormalizer(t)
	ctx := context.Background()

	repo.EXPECT().FindByCode(ctx, "BHX").Return(domain.Airport{ID: 1, Code: "BHX"}, nil)
	repo.EXPECT().FindByCode(ctx, "CDG").Return(domain.Airport{ID: 2, Code: "CDG"}, nil)

	// No offset on the local stamps; they are carried as UTC wall clock.
	leg := rawLeg("FR 100", "2025-03-23 06:00Z", "2025-03-23 06:00", "2025-03-23 08:05Z", "2025-03-23 09:05")
	flight, err := norm.Normalize(ctx, leg, "BHX", "CDG", day)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 23, 9, 5, 0, 0, time.UTC), flight.ArrivalLocalTime)
}

func TestLegNormalizer_MissingLocalFallsBackToUTC(t *testing.T) {
	norm, repo, _ := newNormalizer(t)
	ctx := context.Background()

	repo.EXPECT().FindByCode(ctx, "BHX").Return(domain.Airport{ID: 1, Code: "BHX"}, nil)
	repo.EXPECT().FindByCode(ctx, "CDG").Return(domain.Airport{ID: 2, Code: "CDG"}, nil)

	leg := rawLeg("FR 100", "2025-03-23 06:00Z", "", "2025-03-23 08:05Z", "")
	flight, err := norm.Normalize(ctx, leg, "BHX", "CDG", day)
	require.NoError(t, err)

	assert.Equal(t, flight.DepartureGMTTime, flight.DepartureLocalTime)
	assert.Equal(t, flight.ArrivalGMTTime, flight.ArrivalLocalTime)
}

func TestLegNormalizer_UnparseableUTCFails(t *testing.T) {
	norm, repo, _ := newNormalizer(t)
	ctx := context.Background()

	repo.EXPECT().FindByCode(ctx, "BHX").Return(domain.Airport{ID: 1, Code: "BHX"}, nil)
	repo.EXPECT().FindByCode(ctx, "CDG").Return(domain.Airport{ID: 2, Code: "CDG"}, nil)

	leg := rawLeg("FR 100", "not-a-time", "", "2025-03-23 08:05Z", "")
	_, err := norm.Normalize(ctx, leg, "BHX", "CDG", day)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FR 100")
}

func TestLegNormalizer_UnresolvableAirportFails(t *testing.T) {
	norm, repo, lookup := newNormalizer(t)
	ctx := context.Background()

	repo.EXPECT().FindByCode(ctx, "BHX").Return(domain.Airport{ID: 1, Code: "BHX"}, nil).AnyTimes()
	repo.EXPECT().FindByCode(ctx, "ZZZ").Return(domain.Airport{}, domain.ErrNotFound).AnyTimes()
	lookup.EXPECT().Lookup(ctx, "ZZZ").Return(domain.AirportMetadata{}, errors.New("status 404")).AnyTimes()

	leg := rawLeg("FR 100", "2025-03-23 06:00Z", "", "2025-03-23 08:05Z", "")
	_, err := norm.Normalize(ctx, leg, "BHX", "ZZZ", day)
	require.Error(t, err)
	assert.True(t, domain.IsAirportNotFound(err))
}
