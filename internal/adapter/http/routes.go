package http

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes registers all day-trip API routes, the health check, the
// prometheus scrape endpoint, and the swagger UI.
func RegisterRoutes(e *echo.Echo, h *DayTripHandler) {
	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")
	api.GET("/day-trips", h.SearchDayTrips)
}
