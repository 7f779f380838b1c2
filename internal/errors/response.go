package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse represents the standardized API error response structure
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse creates a standardized error response with the given error code and trace ID
// Optional details can be added using functional options
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationError creates a validation error response with field-specific error details
// fieldErrors is a map of field names to their error messages
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}

	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(ValidationGeneral),
			Message: GetErrorMessage(ValidationGeneral),
			Details: details,
			TraceID: traceID,
		},
	}
}

// WrapSystemError wraps an internal error with a generic system error message
// This prevents exposure of internal implementation details to clients
// The internal error is returned separately for server-side logging
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(SystemInternalError),
			Message: GetErrorMessage(SystemInternalError),
			Details: []string{},
			TraceID: traceID,
		},
	}
	return response, err
}

// WrapUpstreamError wraps an aggregator transport failure, keeping a short
// body excerpt as detail so the failure stage is diagnosable from the response
func WrapUpstreamError(status int, bodyExcerpt, traceID string) *ErrorResponse {
	return NewErrorResponse(UpstreamBadStatus, traceID,
		WithDetails(fmt.Sprintf("status %d: %s", status, bodyExcerpt)))
}

// ToJSON serializes the error response to JSON bytes
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// GetHTTPStatus returns the appropriate HTTP status code for the error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	// 400 Bad Request - malformed client input
	case ValidationRequiredField, ValidationInvalidFormat:
		return http.StatusBadRequest

	// 404 Not Found - nothing cached yet
	case AdvisorNoPlanCached:
		return http.StatusNotFound

	// 412 Precondition Failed - user-fixable configuration gaps
	case ConfigMissingMCPEndpoint, ConfigMissingProfileKey, ConfigMissingGeminiKey:
		return http.StatusPreconditionFailed

	// 422 Unprocessable Entity - upstream payloads we refuse to coerce
	case ValidationGeneral, ValidationSchemaDrift:
		return http.StatusUnprocessableEntity

	// 429 Too Many Requests - rate limiting
	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	// 502 Bad Gateway - the aggregator misbehaved
	case UpstreamBadStatus, UpstreamToolRejected,
		DecodeNoJSONObject, DecodeEnvelopeParse, DecodeInvalidRPC, DecodePayloadParse:
		return http.StatusBadGateway

	// 503 Service Unavailable
	case UpstreamUnreachable, SystemServiceUnavailable, EnrichCircuitOpen:
		return http.StatusServiceUnavailable

	// 504 Gateway Timeout
	case UpstreamTimeout:
		return http.StatusGatewayTimeout

	// 500 Internal Server Error - everything else
	case SystemInternalError, SystemUnexpectedError,
		AdvisorGenerationFailed, AdvisorInvalidOutput,
		EnrichBatchFailed, EnrichQuoteFailed:
		return http.StatusInternalServerError

	default:
		// Unknown error codes default to 500
		return http.StatusInternalServerError
	}
}

// GetHTTPStatus returns the HTTP status code for the error response
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

// IsClientError returns true if the error is a 4xx client error
func (er *ErrorResponse) IsClientError() bool {
	status := er.GetHTTPStatus()
	return status >= 400 && status < 500
}

// IsServerError returns true if the error is a 5xx server error
func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= 500
}

// String returns a string representation of the error response
func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
