// Package metrics exposes prometheus instrumentation for the day-trip
// finder. Counters and histograms are registered once at startup via the
// default registry and served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics for the service.
type Metrics struct {
	// ProviderRequests counts schedule-provider HTTP requests by outcome.
	ProviderRequests *prometheus.CounterVec

	// ProviderLatency observes schedule-provider request durations.
	ProviderLatency prometheus.Histogram

	// CacheHits counts search days served entirely from the store.
	CacheHits prometheus.Counter

	// CacheMisses counts search days that required a provider fetch.
	CacheMisses prometheus.Counter

	// LegsNormalized counts raw legs successfully converted to flights.
	LegsNormalized prometheus.Counter

	// LegsDropped counts raw legs discarded, by reason.
	LegsDropped *prometheus.CounterVec

	// DayTripsFound counts matched day-trip pairs.
	DayTripsFound prometheus.Counter

	// TelemetryErrors counts failed best-effort telemetry publishes.
	TelemetryErrors prometheus.Counter
}

// New creates and registers the service metrics under the given namespace.
func New(namespace string) *Metrics {
	return &Metrics{
		ProviderRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_requests_total",
			Help:      "Schedule provider requests by outcome",
		}, []string{"outcome"}),
		ProviderLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_request_duration_seconds",
			Help:      "Schedule provider request duration",
			Buckets:   prometheus.DefBuckets,
		}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Search days served from the flight store",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Search days that required a provider fetch",
		}),
		LegsNormalized: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "legs_normalized_total",
			Help:      "Raw provider legs converted to flight records",
		}),
		LegsDropped: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "legs_dropped_total",
			Help:      "Raw provider legs discarded, by reason",
		}, []string{"reason"}),
		DayTripsFound: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "day_trips_found_total",
			Help:      "Matched day-trip pairs",
		}),
		TelemetryErrors: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "telemetry_errors_total",
			Help:      "Failed best-effort telemetry publishes",
		}),
	}
}
