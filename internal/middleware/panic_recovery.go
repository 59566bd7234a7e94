package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"fintrack/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts a panicking handler into a SYSTEM_001 response so a
// single crashing request cannot take the whole server down. The panic value
// and stack land in the structured log under the request's trace ID; the
// client sees only the generic internal-error body.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				// net/http uses this sentinel to abort the connection;
				// suppressing it would hide a deliberate abort
				if r == http.ErrAbortHandler {
					panic(r)
				}

				traceID := GetTraceID(c)
				slog.Error("request handler panicked",
					"trace_id", traceID,
					"panic", r,
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"stack", string(debug.Stack()),
				)

				response := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				err = c.JSON(http.StatusInternalServerError, response)
			}()

			return next(c)
		}
	}
}
