// Package main is the entry point for the day-trip flight finder service.
//
//	@title						Day Trip Flight Finder API
//	@version					1.0.0
//	@description				Finds same-day round-trip flight pairs from a home airport, backed by a flight-schedule provider and a persistent flight store.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/daytrip/day-trip-flight-finder/issues
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	// Import generated docs for swagger
	_ "github.com/daytrip/day-trip-flight-finder/docs"

	daytriphttp "github.com/daytrip/day-trip-flight-finder/internal/adapter/http"
	"github.com/daytrip/day-trip-flight-finder/internal/adapter/http/middleware"
	"github.com/daytrip/day-trip-flight-finder/internal/adapter/provider/aerodata"
	"github.com/daytrip/day-trip-flight-finder/internal/adapter/provider/airportdata"
	"github.com/daytrip/day-trip-flight-finder/internal/adapter/repository"
	"github.com/daytrip/day-trip-flight-finder/internal/adapter/telemetry"
	"github.com/daytrip/day-trip-flight-finder/internal/config"
	"github.com/daytrip/day-trip-flight-finder/internal/domain"
	"github.com/daytrip/day-trip-flight-finder/internal/infrastructure/gate"
	"github.com/daytrip/day-trip-flight-finder/internal/infrastructure/logger"
	"github.com/daytrip/day-trip-flight-finder/internal/infrastructure/metrics"
	"github.com/daytrip/day-trip-flight-finder/internal/infrastructure/timeutil"
	"github.com/daytrip/day-trip-flight-finder/internal/usecase"
)

const (
	metricsNamespace = "daytrip"
	shutdownTimeout  = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "day-trip-finder",
	})
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	db, err := repository.Open(cfg.Database, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}

	m := metrics.New(metricsNamespace)

	admission := gate.New(cfg.Provider.MaxConcurrent)
	defer admission.Close()

	notifier := buildNotifier(cfg, m, log)

	airports := repository.NewAirportRepository(db)
	flights := repository.NewFlightRepository(db)
	directory := usecase.NewAirportDirectory(airports, airportdata.NewClient(cfg.Provider, log.Logger), log.Logger)
	normalizer := usecase.NewLegNormalizer(directory)
	schedule := aerodata.NewClient(cfg.Provider, admission, m, log.Logger)

	searchUC := usecase.NewTripSearchUseCase(
		schedule, flights, directory, normalizer, notifier,
		cfg.Search, timeutil.NewRealClock(), m, log.Logger,
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)
	daytriphttp.RegisterRoutes(e, daytriphttp.NewDayTripHandler(searchUC, log.Logger))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, notifier, log)
}

// buildNotifier connects the telemetry notifier, falling back to a no-op
// when NATS is unconfigured or unreachable.
func buildNotifier(cfg *config.Config, m *metrics.Metrics, log *logger.Logger) domain.LegNotifier {
	if cfg.Telemetry.NATSURL == "" {
		log.Info().Msg("Telemetry disabled")
		return telemetry.NopNotifier{}
	}

	notifier, err := telemetry.NewNATSNotifier(cfg.Telemetry, m, log.Logger)
	if err != nil {
		log.Warn().Err(err).Msg("Telemetry unavailable, continuing without it")
		return telemetry.NopNotifier{}
	}

	log.Info().Str("subject", cfg.Telemetry.Subject).Msg("Telemetry connected")
	return notifier
}

// gracefulShutdown stops the server and drains telemetry on interrupt.
func gracefulShutdown(e *echo.Echo, notifier domain.LegNotifier, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	if n, ok := notifier.(*telemetry.NATSNotifier); ok {
		n.Close()
	}

	log.Info().Msg("Server stopped")
}
