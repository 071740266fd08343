package http

import (
	"context"
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/daytrip/day-trip-flight-finder/internal/adapter/http/response"
	"github.com/daytrip/day-trip-flight-finder/internal/domain"
	"github.com/daytrip/day-trip-flight-finder/internal/usecase"
)

// DayTripHandler handles HTTP requests for day-trip search endpoints.
type DayTripHandler struct {
	useCase usecase.TripSearchUseCase
	log     zerolog.Logger
}

// NewDayTripHandler creates a new DayTripHandler with the given use case.
func NewDayTripHandler(uc usecase.TripSearchUseCase, log zerolog.Logger) *DayTripHandler {
	return &DayTripHandler{
		useCase: uc,
		log:     log.With().Str("component", "http_handler").Logger(),
	}
}

// SearchDayTrips handles GET /api/v1/day-trips
//
// @Summary Search for same-day round trips
// @Description Finds outbound/return flight pairs departing and returning on the same UTC day with enough time at the destination
// @Tags day-trips
// @Produce json
// @Param departure query string true "IATA code of the home airport" example(BHX)
// @Param date query string true "Search day (ISO-8601 datetime or YYYY-MM-DD)" example(2025-03-23)
// @Param destination query string false "Optional destination filter"
// @Param isMonthSelection query boolean false "Search every remaining day of the month"
// @Param weekendOnly query boolean false "Restrict a month sweep to weekends"
// @Param adults query integer false "Adult travellers"
// @Param children query integer false "Child travellers"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope "Invalid parameters"
// @Failure 503 {object} response.Envelope "Provider unavailable"
// @Failure 504 {object} response.Envelope "Request timed out"
// @Router /api/v1/day-trips [get]
func (h *DayTripHandler) SearchDayTrips(c echo.Context) error {
	var req SearchDayTripsRequest
	if err := c.Bind(&req); err != nil {
		return response.ValidationErrorWithMessage(c, "failed to parse query parameters")
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.Search(c.Request().Context(), req.ToDomainQuery())
	if err != nil {
		return h.handleError(c, err)
	}

	routes := toDayTripDTOs(result.Trips)
	message := ""
	if len(routes) == 0 {
		message = "no day trips found"
	} else {
		message = fmt.Sprintf("found %d day trips", len(routes))
	}
	return response.SearchResults(c, routes, message)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *DayTripHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to HTTP responses. Anything unclassified is
// logged with full detail and reported generically.
func (h *DayTripHandler) handleError(c echo.Context, err error) error {
	switch {
	case domain.IsInvalidRequest(err):
		return response.ValidationErrorWithMessage(c, err.Error())
	case domain.IsAirportNotFound(err):
		return response.ValidationError(c, map[string]string{
			"departure": "unknown departure airport",
		})
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case domain.IsProviderUnavailable(err):
		return response.ServiceUnavailable(c)
	default:
		h.log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("Search failed")
		return response.InternalServerError(c)
	}
}

// Health handles GET /health
// Simple health check endpoint.
func (h *DayTripHandler) Health(c echo.Context) error {
	return response.Health(c)
}
