package handlers

import (
	"net/http"

	"finsight/internal/errors"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For client, upstream, and configuration errors
//    Use cases:
//    - Missing configuration: SendError(c, errors.ConfigMissingGeminiKey)
//    - Upstream aggregator failures: SendError(c, errors.UpstreamBadStatus)
//    - Schema drift: SendError(c, errors.ValidationSchemaDrift)
//
// 2. SendPipelineError - For errors bubbling out of a service pipeline.
//    Resolves the registered code from the error chain and falls back to
//    SendSystemError for untyped errors.
//
// 3. SendSystemError - For unexpected internal errors (500 responses)
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use the helpers instead
//    - Direct c.JSON() for errors - Use the helper functions
//    - return err without wrapping - Use SendPipelineError to keep codes stable

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
// Used for backward compatibility in tests
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendPipelineError resolves the registered code from a service error chain.
// Untyped errors degrade to a generic system error so internals never leak.
func SendPipelineError(c echo.Context, err error) error {
	code := errors.CodeOf(err)
	if !errors.IsValidErrorCode(code) {
		return SendSystemError(c, err)
	}
	return SendError(c, code)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
