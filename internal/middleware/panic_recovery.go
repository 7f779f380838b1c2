package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"finsight/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts handler panics into SYSTEM_001 responses instead of
// dropping the connection. The stack stays server-side.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = respondToPanic(c, r)
				}
			}()
			return next(c)
		}
	}
}

func respondToPanic(c echo.Context, cause any) error {
	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	slog.Error("panic recovered",
		"trace_id", traceID,
		"panic", fmt.Sprint(cause),
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"stack", string(debug.Stack()),
	)

	response := errors.NewErrorResponse(errors.SystemInternalError, traceID)
	return c.JSON(http.StatusInternalServerError, response)
}
