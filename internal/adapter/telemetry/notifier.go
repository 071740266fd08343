// Package telemetry publishes discovery events for downstream analytics.
// Publishing is fire-and-forget: a search never fails or blocks because the
// message bus is down.
package telemetry

import (
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"

	"github.com/daytrip/day-trip-flight-finder/internal/config"
	"github.com/daytrip/day-trip-flight-finder/internal/domain"
	"github.com/daytrip/day-trip-flight-finder/internal/infrastructure/metrics"
)

// legEvent is the wire payload for a discovered leg.
type legEvent struct {
	Slug             string    `json:"slug"`
	Date             string    `json:"date"`
	DepartureAirport string    `json:"departureAirport"`
	ArrivalAirport   string    `json:"arrivalAirport"`
	DepartureGMT     time.Time `json:"departureGMT"`
	ArrivalGMT       time.Time `json:"arrivalGMT"`
	Airline          string    `json:"airline"`
	FlightNumber     string    `json:"flightNumber"`
}

func newLegEvent(flight domain.Flight) legEvent {
	return legEvent{
		Slug:             flight.Slug(),
		Date:             flight.Date.UTC().Format("2006-01-02"),
		DepartureAirport: flight.DepartureAirport.Code,
		ArrivalAirport:   flight.ArrivalAirport.Code,
		DepartureGMT:     flight.DepartureGMTTime,
		ArrivalGMT:       flight.ArrivalGMTTime,
		Airline:          flight.Airline,
		FlightNumber:     flight.FlightNumber,
	}
}

// NATSNotifier publishes leg-discovery events to a NATS subject.
type NATSNotifier struct {
	conn    *nats.Conn
	subject string
	metrics *metrics.Metrics
	log     zerolog.Logger
}

// NewNATSNotifier connects to NATS and returns a notifier publishing on the
// configured subject. The connection reconnects in the background.
func NewNATSNotifier(cfg config.TelemetryConfig, m *metrics.Metrics, log zerolog.Logger) (*NATSNotifier, error) {
	conn, err := nats.Connect(cfg.NATSURL,
		nats.Name("day-trip-finder"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, err
	}

	return &NATSNotifier{
		conn:    conn,
		subject: cfg.Subject,
		metrics: m,
		log:     log.With().Str("component", "telemetry").Logger(),
	}, nil
}

var _ domain.LegNotifier = (*NATSNotifier)(nil)

// LegDiscovered publishes the leg event. Failures are counted and logged at
// debug level, never surfaced.
func (n *NATSNotifier) LegDiscovered(flight domain.Flight) {
	payload, err := json.Marshal(newLegEvent(flight))
	if err != nil {
		n.metrics.TelemetryErrors.Inc()
		return
	}

	if err := n.conn.Publish(n.subject, payload); err != nil {
		n.metrics.TelemetryErrors.Inc()
		n.log.Debug().Err(err).Str("flight_number", flight.FlightNumber).Msg("Telemetry publish failed")
	}
}

// Close drains the connection, flushing buffered events.
func (n *NATSNotifier) Close() {
	if err := n.conn.Drain(); err != nil {
		n.log.Debug().Err(err).Msg("Telemetry drain failed")
	}
}

// NopNotifier discards all events. Used when telemetry is not configured.
type NopNotifier struct{}

var _ domain.LegNotifier = NopNotifier{}

// LegDiscovered does nothing.
func (NopNotifier) LegDiscovered(domain.Flight) {}
