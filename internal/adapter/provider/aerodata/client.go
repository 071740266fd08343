// Package aerodata implements the schedule provider port against the
// AeroDataBox flight-schedules API behind the RapidAPI gateway.
package aerodata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/daytrip/day-trip-flight-finder/internal/config"
	"github.com/daytrip/day-trip-flight-finder/internal/domain"
	"github.com/daytrip/day-trip-flight-finder/internal/infrastructure/gate"
	"github.com/daytrip/day-trip-flight-finder/internal/infrastructure/metrics"
	"github.com/daytrip/day-trip-flight-finder/internal/infrastructure/retry"
)

// Client calls the schedule-board endpoint. Requests rotate through the
// credential pool and pass through the admission gate, so the system-wide
// in-flight cap holds no matter how many searches fan out at once.
type Client struct {
	httpClient *http.Client
	baseURL    string
	host       string
	keys       []string
	keyCursor  atomic.Uint64
	gate       *gate.Gate
	retryCfg   retry.Config
	metrics    *metrics.Metrics
	log        zerolog.Logger
}

// NewClient creates a schedule provider client from the given settings.
func NewClient(cfg config.ProviderConfig, g *gate.Gate, m *metrics.Metrics, log zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:    cfg.ScheduleBaseURL,
		host:       cfg.ScheduleHost,
		keys:       cfg.APIKeys,
		gate:       g,
		retryCfg:   retry.ProviderConfig.WithRetryIf(retry.SkipPermanent),
		metrics:    m,
		log:        log.With().Str("component", "aerodata_client").Logger(),
	}
}

var _ domain.ScheduleProvider = (*Client)(nil)

// FetchLegs fetches the schedule board for an airport and local-time window.
// The call waits its turn at the admission gate, retries transient upstream
// failures, and reports anything unrecoverable as a wrapped
// domain.ErrProviderUnavailable.
func (c *Client) FetchLegs(ctx context.Context, airportCode, startLocal, endLocal string) (domain.ScheduleResult, error) {
	if err := c.gate.Acquire(ctx); err != nil {
		return domain.ScheduleResult{}, fmt.Errorf("%w: admission: %v", domain.ErrProviderUnavailable, err)
	}
	defer c.gate.Release()

	board, err := retry.DoWithResult(ctx, func() (boardResponse, error) {
		return c.fetchBoard(ctx, airportCode, startLocal, endLocal)
	}, c.retryCfg)
	if err != nil {
		c.log.Warn().Err(err).Str("airport", airportCode).Str("window_start", startLocal).Msg("Schedule fetch failed")
		return domain.ScheduleResult{}, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}

	return toScheduleResult(board), nil
}

func (c *Client) fetchBoard(ctx context.Context, airportCode, startLocal, endLocal string) (boardResponse, error) {
	start := time.Now()

	endpoint := fmt.Sprintf("%s/flights/airports/iata/%s/%s/%s",
		c.baseURL, url.PathEscape(airportCode), url.PathEscape(startLocal), url.PathEscape(endLocal))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return boardResponse{}, retry.NewPermanent(err)
	}

	q := req.URL.Query()
	q.Set("withLeg", "true")
	q.Set("direction", "Both")
	q.Set("withCancelled", "false")
	q.Set("withCodeshared", "false")
	q.Set("withCargo", "false")
	q.Set("withPrivate", "false")
	q.Set("withLocation", "false")
	req.URL.RawQuery = q.Encode()

	req.Header.Set("x-rapidapi-key", c.nextKey())
	req.Header.Set("x-rapidapi-host", c.host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("network_error", start)
		return boardResponse{}, fmt.Errorf("schedule request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNoContent:
		// The provider reports an empty window this way.
		c.observe("empty", start)
		return boardResponse{}, nil
	case resp.StatusCode >= 500:
		io.Copy(io.Discard, resp.Body)
		c.observe("upstream_error", start)
		return boardResponse{}, fmt.Errorf("schedule request: status %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		io.Copy(io.Discard, resp.Body)
		c.observe("client_error", start)
		return boardResponse{}, retry.NewPermanent(fmt.Errorf("schedule request: status %d", resp.StatusCode))
	}

	var board boardResponse
	if err := json.NewDecoder(resp.Body).Decode(&board); err != nil {
		c.observe("decode_error", start)
		return boardResponse{}, fmt.Errorf("decode schedule response: %w", err)
	}

	c.observe("success", start)
	return board, nil
}

// nextKey returns the next credential from the pool, round-robin.
func (c *Client) nextKey() string {
	if len(c.keys) == 0 {
		return ""
	}
	n := c.keyCursor.Add(1)
	return c.keys[(n-1)%uint64(len(c.keys))]
}

func (c *Client) observe(outcome string, start time.Time) {
	c.metrics.ProviderRequests.WithLabelValues(outcome).Inc()
	c.metrics.ProviderLatency.Observe(time.Since(start).Seconds())
}

func toScheduleResult(board boardResponse) domain.ScheduleResult {
	return domain.ScheduleResult{
		Departures: toRawLegs(board.Departures),
		Arrivals:   toRawLegs(board.Arrivals),
	}
}

func toRawLegs(legs []boardLeg) []domain.RawLeg {
	out := make([]domain.RawLeg, 0, len(legs))
	for _, l := range legs {
		out = append(out, domain.RawLeg{
			Number:      l.Number,
			AirlineName: l.Airline.Name,
			AirlineIATA: l.Airline.IATA,
			Departure: domain.RawMovement{
				AirportIATA:    l.Departure.Airport.IATA,
				ScheduledUTC:   l.Departure.ScheduledTime.UTC,
				ScheduledLocal: l.Departure.ScheduledTime.Local,
			},
			Arrival: domain.RawMovement{
				AirportIATA:    l.Arrival.Airport.IATA,
				ScheduledUTC:   l.Arrival.ScheduledTime.UTC,
				ScheduledLocal: l.Arrival.ScheduledTime.Local,
			},
		})
	}
	return out
}
