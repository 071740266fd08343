// Package response provides standardized HTTP response builders for the
// day-trip finder API. It centralizes response formatting so every endpoint
// speaks the same envelope.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the API response envelope. Routes is present on success (an
// empty search yields an empty array, not null); Error and Details are
// present on failure.
type Envelope struct {
	// Success indicates whether the request was successful.
	Success bool `json:"success"`

	// Routes contains the discovered day trips (for successful responses).
	Routes interface{} `json:"routes,omitempty"`

	// Message is an optional human-readable summary.
	Message string `json:"message,omitempty"`

	// Error is a human-readable error message (for failed responses).
	Error string `json:"error,omitempty"`

	// Details contains field-specific error details (for validation errors).
	Details map[string]string `json:"details,omitempty"`
}

// Error messages used in API responses. Internal failures are always
// reported with the generic message; the real error is only logged.
const (
	MsgInvalidParameters   = "Invalid parameters"
	MsgInternalError       = "Internal server error"
	MsgTimeout             = "Request timed out"
	MsgProviderUnavailable = "Flight data provider is currently unavailable"
)

// SearchResults writes a 200 OK response carrying the discovered routes.
func SearchResults(c echo.Context, routes interface{}, message string) error {
	return c.JSON(http.StatusOK, &Envelope{
		Success: true,
		Routes:  routes,
		Message: message,
	})
}

// Health writes a 200 OK health-check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
