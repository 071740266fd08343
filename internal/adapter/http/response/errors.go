// Package response provides standardized HTTP response builders for the
// day-trip finder API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ValidationError writes a 400 Bad Request response with field details.
func ValidationError(c echo.Context, details map[string]string) error {
	return c.JSON(http.StatusBadRequest, &Envelope{
		Success: false,
		Error:   MsgInvalidParameters,
		Details: details,
	})
}

// ValidationErrorWithMessage writes a 400 Bad Request response with a single
// unstructured detail.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &Envelope{
		Success: false,
		Error:   MsgInvalidParameters,
		Details: map[string]string{"message": message},
	})
}

// ServiceUnavailable writes a 503 Service Unavailable response.
func ServiceUnavailable(c echo.Context) error {
	return c.JSON(http.StatusServiceUnavailable, &Envelope{
		Success: false,
		Error:   MsgProviderUnavailable,
	})
}

// GatewayTimeout writes a 504 Gateway Timeout response.
func GatewayTimeout(c echo.Context) error {
	return c.JSON(http.StatusGatewayTimeout, &Envelope{
		Success: false,
		Error:   MsgTimeout,
	})
}

// InternalServerError writes a 500 Internal Server Error response. The
// message is always generic; internal detail stays in the logs.
func InternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, &Envelope{
		Success: false,
		Error:   MsgInternalError,
	})
}
