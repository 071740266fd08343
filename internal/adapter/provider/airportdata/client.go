// Package airportdata implements the airport lookup port against the IATA
// airports API behind the RapidAPI gateway.
package airportdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/daytrip/day-trip-flight-finder/internal/config"
	"github.com/daytrip/day-trip-flight-finder/internal/domain"
)

// airportResponse is the provider's airport-detail payload.
type airportResponse struct {
	Code     string `json:"code"`
	ICAO     string `json:"icao"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	TimeZone string `json:"time_zone"`
}

// Client resolves IATA codes to airport metadata. Lookups are rare (each
// airport is resolved once and then served from the store), so the client
// carries no credential pool or admission control.
type Client struct {
	httpClient *http.Client
	baseURL    string
	host       string
	apiKey     string
	log        zerolog.Logger
}

// NewClient creates an airport-metadata client from the given settings.
func NewClient(cfg config.ProviderConfig, log zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:    cfg.AirportBaseURL,
		host:       cfg.AirportHost,
		apiKey:     cfg.AirportAPIKey,
		log:        log.With().Str("component", "airportdata_client").Logger(),
	}
}

var _ domain.AirportLookup = (*Client)(nil)

// Lookup fetches metadata for the given IATA code. An unknown code yields a
// wrapped domain.ErrAirportNotFound.
func (c *Client) Lookup(ctx context.Context, code string) (domain.AirportMetadata, error) {
	endpoint := fmt.Sprintf("%s/airports/%s/", c.baseURL, url.PathEscape(code))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.AirportMetadata{}, fmt.Errorf("build airport request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.host)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.AirportMetadata{}, fmt.Errorf("airport request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return domain.AirportMetadata{}, fmt.Errorf("%w: %s", domain.ErrAirportNotFound, code)
	case resp.StatusCode != http.StatusOK:
		io.Copy(io.Discard, resp.Body)
		return domain.AirportMetadata{}, fmt.Errorf("airport request: status %d", resp.StatusCode)
	}

	var payload airportResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.AirportMetadata{}, fmt.Errorf("decode airport response: %w", err)
	}

	c.log.Debug().Str("code", code).Dur("duration", time.Since(start)).Msg("Airport lookup completed")

	return domain.AirportMetadata{
		Code:     payload.Code,
		ICAO:     payload.ICAO,
		Name:     payload.Name,
		City:     payload.City,
		Country:  payload.Country,
		Timezone: payload.TimeZone,
	}, nil
}
