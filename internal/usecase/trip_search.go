package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/daytrip/day-trip-flight-finder/internal/config"
	"github.com/daytrip/day-trip-flight-finder/internal/domain"
	"github.com/daytrip/day-trip-flight-finder/internal/infrastructure/metrics"
	"github.com/daytrip/day-trip-flight-finder/internal/infrastructure/timeutil"
)

// TripSearchUseCase finds same-day round trips from a departure airport.
type TripSearchUseCase interface {
	// Search runs a day-trip search for the given query. Single-day queries
	// fail on the first unrecoverable error; month sweeps isolate failures
	// per day and report them in the result metadata.
	Search(ctx context.Context, query domain.SearchQuery) (domain.SearchResult, error)
}

type tripSearchUseCase struct {
	provider   domain.ScheduleProvider
	flights    domain.FlightRepository
	directory  *AirportDirectory
	normalizer *LegNormalizer
	notifier   domain.LegNotifier
	cfg        config.SearchConfig
	clock      timeutil.Clock
	metrics    *metrics.Metrics
	log        zerolog.Logger
}

// NewTripSearchUseCase creates the search orchestrator.
func NewTripSearchUseCase(
	provider domain.ScheduleProvider,
	flights domain.FlightRepository,
	directory *AirportDirectory,
	normalizer *LegNormalizer,
	notifier domain.LegNotifier,
	cfg config.SearchConfig,
	clock timeutil.Clock,
	m *metrics.Metrics,
	log zerolog.Logger,
) TripSearchUseCase {
	return &tripSearchUseCase{
		provider:   provider,
		flights:    flights,
		directory:  directory,
		normalizer: normalizer,
		notifier:   notifier,
		cfg:        cfg,
		clock:      clock,
		metrics:    m,
		log:        log.With().Str("component", "trip_search").Logger(),
	}
}

// dayOutcome is the result of searching one calendar day.
type dayOutcome struct {
	trips    []domain.DayTrip
	cacheHit bool
	err      error
}

func (u *tripSearchUseCase) Search(ctx context.Context, query domain.SearchQuery) (domain.SearchResult, error) {
	start := time.Now()

	if err := query.Validate(); err != nil {
		return domain.SearchResult{}, err
	}

	// Total budget for the query, covering every provider call it fans out
	// to. A hung upstream cannot stall the request past this.
	ctx, cancel := context.WithTimeout(ctx, u.cfg.QueryTimeout)
	defer cancel()

	// Resolving the home airport up front turns an unknown code into a
	// clean failure before any schedule fetch is attempted.
	if _, err := u.directory.Resolve(ctx, query.Departure); err != nil {
		return domain.SearchResult{}, err
	}

	var (
		result domain.SearchResult
		err    error
	)
	if query.MonthSweep {
		result, err = u.searchMonth(ctx, query)
	} else {
		result, err = u.searchSingleDay(ctx, query)
	}
	if err != nil {
		return domain.SearchResult{}, err
	}

	result.Metadata.SearchTimeMs = time.Since(start).Milliseconds()

	u.log.Info().
		Str("departure", query.Departure).
		Time("date", query.Day()).
		Bool("month_sweep", query.MonthSweep).
		Int("days_searched", result.Metadata.DaysSearched).
		Int("days_failed", result.Metadata.DaysFailed).
		Bool("cache_hit", result.Metadata.CacheHit).
		Int("trips", len(result.Trips)).
		Int64("duration_ms", result.Metadata.SearchTimeMs).
		Msg("Search completed")

	return result, nil
}

func (u *tripSearchUseCase) searchSingleDay(ctx context.Context, query domain.SearchQuery) (domain.SearchResult, error) {
	outcome := u.searchDay(ctx, query.Departure, query.Day())
	if outcome.err != nil {
		return domain.SearchResult{}, outcome.err
	}

	return domain.SearchResult{
		Trips: outcome.trips,
		Metadata: domain.SearchMetadata{
			DaysSearched: 1,
			CacheHit:     outcome.cacheHit,
		},
	}, nil
}

// searchMonth sweeps the remaining days of the query month in fixed-size
// concurrent batches, pausing between batches to stay under provider rate
// limits. A day that fails contributes zero trips; the sweep continues.
func (u *tripSearchUseCase) searchMonth(ctx context.Context, query domain.SearchQuery) (domain.SearchResult, error) {
	days := timeutil.RemainingDaysOfMonth(query.Day(), u.clock.Now())
	if query.WeekendOnly {
		days = timeutil.WeekendDays(days)
	}
	if len(days) == 0 {
		return domain.SearchResult{Trips: []domain.DayTrip{}}, nil
	}

	outcomes := make([]dayOutcome, len(days))

sweep:
	for batch := 0; batch < len(days); batch += u.cfg.BatchSize {
		if batch > 0 && u.cfg.BatchDelay > 0 {
			select {
			case <-ctx.Done():
				break sweep
			case <-time.After(u.cfg.BatchDelay):
			}
		}

		end := min(batch+u.cfg.BatchSize, len(days))
		var wg sync.WaitGroup
		for i := batch; i < end; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				outcomes[idx] = u.searchDay(ctx, query.Departure, days[idx])
			}(i)
		}
		wg.Wait()
	}

	result := domain.SearchResult{
		Trips:    []domain.DayTrip{},
		Metadata: domain.SearchMetadata{DaysSearched: len(days), CacheHit: true},
	}
	for i, outcome := range outcomes {
		// A nil trips slice means the day failed or its batch never ran
		// before the deadline; successful days always carry a non-nil slice.
		if outcome.trips == nil {
			result.Metadata.DaysFailed++
			result.Metadata.CacheHit = false
			if outcome.err != nil {
				u.log.Warn().Err(outcome.err).Time("date", days[i]).Msg("Sweep day failed")
			}
			continue
		}
		if !outcome.cacheHit {
			result.Metadata.CacheHit = false
		}
		result.Trips = append(result.Trips, outcome.trips...)
	}
	return result, nil
}

// searchDay evaluates one calendar day: serve it from the store when any
// flight row exists for the airport and date, otherwise fetch both schedule
// windows, normalize, persist, and match.
func (u *tripSearchUseCase) searchDay(ctx context.Context, departure string, day time.Time) dayOutcome {
	count, err := u.flights.CountForDate(ctx, departure, day)
	if err != nil {
		return dayOutcome{err: fmt.Errorf("%w: count flights for %s: %v", domain.ErrPersistence, day.Format("2006-01-02"), err)}
	}

	if count > 0 {
		u.metrics.CacheHits.Inc()
		outbound, err := u.flights.FindDeparting(ctx, departure, day)
		if err != nil {
			return dayOutcome{err: fmt.Errorf("%w: load departures: %v", domain.ErrPersistence, err)}
		}
		inbound, err := u.flights.FindArriving(ctx, departure, day)
		if err != nil {
			return dayOutcome{err: fmt.Errorf("%w: load arrivals: %v", domain.ErrPersistence, err)}
		}
		trips := MatchDayTrips(outbound, inbound, u.cfg.MinGroundTime)
		u.metrics.DayTripsFound.Add(float64(len(trips)))
		return dayOutcome{trips: trips, cacheHit: true}
	}

	u.metrics.CacheMisses.Inc()

	outBoard, retBoard, err := u.fetchWindows(ctx, departure, day)
	if err != nil {
		return dayOutcome{err: err}
	}

	outbound, err := u.ingestLegs(ctx, outBoard.Departures, departure, day, outboundDirection)
	if err != nil {
		return dayOutcome{err: err}
	}
	inbound, err := u.ingestLegs(ctx, retBoard.Arrivals, departure, day, returnDirection)
	if err != nil {
		return dayOutcome{err: err}
	}

	trips := MatchDayTrips(outbound, inbound, u.cfg.MinGroundTime)
	u.metrics.DayTripsFound.Add(float64(len(trips)))
	return dayOutcome{trips: trips}
}

// fetchWindows issues both schedule-board requests for one day concurrently:
// the daytime outbound window on the day itself, and the return window
// spilling into the following day's early hours.
func (u *tripSearchUseCase) fetchWindows(ctx context.Context, departure string, day time.Time) (domain.ScheduleResult, domain.ScheduleResult, error) {
	nextDay := day.AddDate(0, 0, 1)

	type fetchResult struct {
		board domain.ScheduleResult
		err   error
	}
	outCh := make(chan fetchResult, 1)
	retCh := make(chan fetchResult, 1)

	go func() {
		board, err := u.provider.FetchLegs(ctx, departure,
			windowBound(day, u.cfg.OutboundWindowStart),
			windowBound(day, u.cfg.OutboundWindowEnd))
		outCh <- fetchResult{board, err}
	}()
	go func() {
		board, err := u.provider.FetchLegs(ctx, departure,
			windowBound(day, u.cfg.ReturnWindowStart),
			windowBound(nextDay, u.cfg.ReturnWindowEnd))
		retCh <- fetchResult{board, err}
	}()

	out := <-outCh
	ret := <-retCh
	if out.err != nil {
		return domain.ScheduleResult{}, domain.ScheduleResult{}, out.err
	}
	if ret.err != nil {
		return domain.ScheduleResult{}, domain.ScheduleResult{}, ret.err
	}
	return out.board, ret.board, nil
}

type legDirection int

const (
	// outboundDirection legs depart the home airport; the counterpart code
	// is on the arrival side.
	outboundDirection legDirection = iota

	// returnDirection legs arrive at the home airport; the counterpart code
	// is on the departure side.
	returnDirection
)

// ingestLegs normalizes and persists one board of raw legs. Legs missing
// their counterpart airport or failing resolution are dropped; any store
// failure, during resolution or on write, is fatal for the day.
func (u *tripSearchUseCase) ingestLegs(ctx context.Context, legs []domain.RawLeg, homeAirport string, day time.Time, direction legDirection) ([]domain.Flight, error) {
	flights := make([]domain.Flight, 0, len(legs))

	for _, leg := range legs {
		var depCode, arrCode string
		switch direction {
		case outboundDirection:
			depCode, arrCode = homeAirport, leg.Arrival.AirportIATA
		case returnDirection:
			depCode, arrCode = leg.Departure.AirportIATA, homeAirport
		}
		if depCode == "" || arrCode == "" {
			u.metrics.LegsDropped.WithLabelValues("missing_airport").Inc()
			continue
		}

		flight, err := u.normalizer.Normalize(ctx, leg, depCode, arrCode, day)
		if err != nil {
			// A store failure during airport resolution is not a bad leg;
			// silently dropping it would report fewer trips as a success.
			if errors.Is(err, domain.ErrPersistence) {
				return nil, err
			}
			u.metrics.LegsDropped.WithLabelValues("normalize_failed").Inc()
			u.log.Debug().Err(err).Str("flight_number", leg.Number).Msg("Leg dropped")
			continue
		}

		if err := u.flights.Create(ctx, &flight); err != nil {
			return nil, fmt.Errorf("%w: store flight %s: %v", domain.ErrPersistence, flight.FlightNumber, err)
		}

		u.metrics.LegsNormalized.Inc()
		u.notifier.LegDiscovered(flight)
		flights = append(flights, flight)
	}

	return flights, nil
}

// windowBound formats a local window bound for the provider API.
func windowBound(day time.Time, hhmm string) string {
	return day.Format("2006-01-02") + "T" + hhmm
}
