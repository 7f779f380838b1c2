package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the caller-supplied trace ID and is echoed back
	// on every response so one dashboard load correlates across panels
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is the echo context key the error responders read
	TraceIDContextKey = "trace_id"
)

type traceIDKey struct{}

// Tracing assigns every request a trace ID: the caller's X-Trace-ID when
// present, a fresh UUID otherwise. The ID lands in the echo context for the
// error responders, in the request context for pipeline logging, and in the
// response header for the client.
func Tracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			ctx := context.WithValue(c.Request().Context(), traceIDKey{}, traceID)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(TraceIDHeader, traceID)

			return next(c)
		}
	}
}

// GetTraceID extracts the trace ID from the Echo context.
// Returns empty string if not found
func GetTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// TraceIDFromContext reads the trace ID off a request context, for log
// statements below the handler layer.
func TraceIDFromContext(ctx context.Context) string {
	traceID, ok := ctx.Value(traceIDKey{}).(string)
	if !ok {
		return ""
	}
	return traceID
}
