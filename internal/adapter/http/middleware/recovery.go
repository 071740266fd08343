package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/daytrip/day-trip-flight-finder/internal/adapter/http/response"
)

// RecoveryConfig controls what the recovery middleware logs on panic.
type RecoveryConfig struct {
	// DisablePrintStack drops the stack trace from the panic log line.
	DisablePrintStack bool
}

// DefaultRecoveryConfig logs panics with their full stack trace.
func DefaultRecoveryConfig() RecoveryConfig {
	return RecoveryConfig{}
}

// Recover returns middleware that turns a handler panic into a logged 500
// response, keeping the server alive for subsequent searches.
func Recover(log zerolog.Logger) echo.MiddlewareFunc {
	return RecoverWithConfig(log, DefaultRecoveryConfig())
}

// RecoverWithConfig is Recover with explicit logging configuration.
func RecoverWithConfig(log zerolog.Logger, config RecoveryConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					var panicMsg string
					if err, ok := r.(error); ok {
						panicMsg = err.Error()
					} else {
						panicMsg = fmt.Sprintf("%v", r)
					}

					event := log.Error().
						Str("request_id", GetRequestID(c)).
						Str("panic", panicMsg)
					if !config.DisablePrintStack {
						event = event.Str("stack", string(debug.Stack()))
					}
					event.Msg("Panic recovered")

					// The panic value never reaches the client.
					if !c.Response().Committed {
						c.JSON(http.StatusInternalServerError, &response.Envelope{
							Success: false,
							Error:   response.MsgInternalError,
						})
					}
				}
			}()

			return next(c)
		}
	}
}
