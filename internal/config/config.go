// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Provider  ProviderConfig
	Search    SearchConfig
	Telemetry TelemetryConfig
	Logging   LoggingConfig
	App       AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"120s"`
}

// DatabaseConfig holds the persistent store settings.
type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"daytrip"`
	Password string `env:"DB_PASSWORD" envDefault:""`
	Name     string `env:"DB_NAME" envDefault:"daytrip"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// DSN builds the postgres connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// ProviderConfig holds settings for the external flight-data and
// airport-metadata providers.
type ProviderConfig struct {
	// ScheduleBaseURL is the base URL of the schedule provider.
	ScheduleBaseURL string `env:"SCHEDULE_API_BASE_URL" envDefault:"https://aerodatabox.p.rapidapi.com"`

	// ScheduleHost is the API host header expected by the provider gateway.
	ScheduleHost string `env:"SCHEDULE_API_HOST" envDefault:"aerodatabox.p.rapidapi.com"`

	// APIKeys is the pool of interchangeable provider credentials,
	// comma-separated. Requests rotate through the pool to spread load
	// across per-key quotas.
	APIKeys []string `env:"SCHEDULE_API_KEYS" envSeparator:","`

	// AirportBaseURL is the base URL of the airport-metadata provider.
	AirportBaseURL string `env:"AIRPORT_API_BASE_URL" envDefault:"https://iata-airports.p.rapidapi.com"`

	// AirportHost is the API host header for the airport-metadata provider.
	AirportHost string `env:"AIRPORT_API_HOST" envDefault:"iata-airports.p.rapidapi.com"`

	// AirportAPIKey is the credential for the airport-metadata provider.
	AirportAPIKey string `env:"AIRPORT_API_KEY"`

	// MaxConcurrent caps in-flight schedule requests system-wide.
	MaxConcurrent int `env:"PROVIDER_MAX_CONCURRENT" envDefault:"4"`

	// RequestTimeout bounds a single provider HTTP call.
	RequestTimeout time.Duration `env:"PROVIDER_REQUEST_TIMEOUT" envDefault:"15s"`
}

// SearchConfig holds the day-trip search policy. The window bounds encode
// "day trip" semantics: leave after dawn, return before the next day's
// early hours.
type SearchConfig struct {
	// OutboundWindowStart is the local start of the daytime outbound window.
	OutboundWindowStart string `env:"OUTBOUND_WINDOW_START" envDefault:"05:50"`

	// OutboundWindowEnd is the local end of the daytime outbound window.
	OutboundWindowEnd string `env:"OUTBOUND_WINDOW_END" envDefault:"17:30"`

	// ReturnWindowStart is the local start of the evening return window.
	ReturnWindowStart string `env:"RETURN_WINDOW_START" envDefault:"13:00"`

	// ReturnWindowEnd is the local end of the return window, on the
	// following calendar day.
	ReturnWindowEnd string `env:"RETURN_WINDOW_END" envDefault:"01:00"`

	// MinGroundTime is the minimum time at the destination for a pairing
	// to count as a day trip.
	MinGroundTime time.Duration `env:"MIN_GROUND_TIME" envDefault:"6h"`

	// BatchSize is how many days of a month sweep run concurrently.
	BatchSize int `env:"SWEEP_BATCH_SIZE" envDefault:"3"`

	// BatchDelay is the pause between month-sweep batches, to avoid
	// bursting the provider rate limit.
	BatchDelay time.Duration `env:"SWEEP_BATCH_DELAY" envDefault:"1s"`

	// QueryTimeout is the total budget for one search request, so a hung
	// external call cannot stall a query indefinitely.
	QueryTimeout time.Duration `env:"SEARCH_QUERY_TIMEOUT" envDefault:"90s"`
}

// TelemetryConfig holds the optional analytics notifier settings.
// Telemetry is disabled when NATSURL is empty.
type TelemetryConfig struct {
	NATSURL string `env:"TELEMETRY_NATS_URL"`
	Subject string `env:"TELEMETRY_SUBJECT" envDefault:"daytrip.legs.discovered"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// windowPattern matches HH:MM window bounds.
var windowPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if cfg.Provider.MaxConcurrent < 1 {
		return fmt.Errorf("PROVIDER_MAX_CONCURRENT must be at least 1, got %d", cfg.Provider.MaxConcurrent)
	}
	if cfg.Provider.RequestTimeout <= 0 {
		return fmt.Errorf("PROVIDER_REQUEST_TIMEOUT must be positive")
	}
	for i, key := range cfg.Provider.APIKeys {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("SCHEDULE_API_KEYS entry %d is empty", i)
		}
	}

	for name, value := range map[string]string{
		"OUTBOUND_WINDOW_START": cfg.Search.OutboundWindowStart,
		"OUTBOUND_WINDOW_END":   cfg.Search.OutboundWindowEnd,
		"RETURN_WINDOW_START":   cfg.Search.ReturnWindowStart,
		"RETURN_WINDOW_END":     cfg.Search.ReturnWindowEnd,
	} {
		if !windowPattern.MatchString(value) {
			return fmt.Errorf("%s must be in HH:MM form, got %q", name, value)
		}
	}

	if cfg.Search.MinGroundTime <= 0 {
		return fmt.Errorf("MIN_GROUND_TIME must be positive")
	}
	if cfg.Search.BatchSize < 1 {
		return fmt.Errorf("SWEEP_BATCH_SIZE must be at least 1, got %d", cfg.Search.BatchSize)
	}
	if cfg.Search.BatchDelay < 0 {
		return fmt.Errorf("SWEEP_BATCH_DELAY must be non-negative")
	}
	if cfg.Search.QueryTimeout <= 0 {
		return fmt.Errorf("SEARCH_QUERY_TIMEOUT must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
