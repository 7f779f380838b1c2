package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

// TestNewErrorResponse_BasicUsage tests creating a basic error response
func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(UpstreamUnreachable, s.traceID)

	s.NotNil(response)
	s.Equal("UPSTREAM_001", response.Error.Code)
	s.Equal("Could not reach the data aggregator", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

// TestNewErrorResponse_WithDetails tests creating error response with details
func (s *ResponseTestSuite) TestNewErrorResponse_WithDetails() {
	details := []string{"stage: envelope parse", "offset 17"}
	response := NewErrorResponse(DecodeEnvelopeParse, s.traceID, WithDetails(details...))

	s.NotNil(response)
	s.Equal("DECODE_002", response.Error.Code)
	s.Equal(details, response.Error.Details)
}

// TestNewErrorResponse_WithCustomMessage tests overriding the default message
func (s *ResponseTestSuite) TestNewErrorResponse_WithCustomMessage() {
	customMessage := "stock record failed schema validation"
	response := NewErrorResponse(ValidationSchemaDrift, s.traceID, WithMessage(customMessage))

	s.NotNil(response)
	s.Equal("VALIDATION_004", response.Error.Code)
	s.Equal(customMessage, response.Error.Message)
}

// TestNewValidationError tests building a response from field errors
func (s *ResponseTestSuite) TestNewValidationError() {
	fieldErrors := map[string]string{
		"isin": "isin must be a 12-character ISIN",
	}
	response := NewValidationError(fieldErrors, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Len(response.Error.Details, 1)
	s.Contains(response.Error.Details[0], "isin")
}

// TestWrapSystemError tests that internals never leak into the response
func (s *ResponseTestSuite) TestWrapSystemError() {
	internal := errors.New("pgx: connection refused on 10.0.0.3")
	response, logged := WrapSystemError(internal, s.traceID)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "pgx")
	s.Equal(internal, logged)
}

// TestWrapUpstreamError tests the aggregator transport failure wrapper
func (s *ResponseTestSuite) TestWrapUpstreamError() {
	response := WrapUpstreamError(503, "upstream maintenance window", s.traceID)

	s.Equal("UPSTREAM_002", response.Error.Code)
	s.Require().Len(response.Error.Details, 1)
	s.Contains(response.Error.Details[0], "status 503")
	s.Contains(response.Error.Details[0], "maintenance")
}

// TestGetHTTPStatus tests the code-to-status mapping
func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationRequiredField, http.StatusBadRequest},
		{AdvisorNoPlanCached, http.StatusNotFound},
		{ConfigMissingMCPEndpoint, http.StatusPreconditionFailed},
		{ConfigMissingProfileKey, http.StatusPreconditionFailed},
		{ConfigMissingGeminiKey, http.StatusPreconditionFailed},
		{ValidationSchemaDrift, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{UpstreamBadStatus, http.StatusBadGateway},
		{DecodeNoJSONObject, http.StatusBadGateway},
		{DecodePayloadParse, http.StatusBadGateway},
		{UpstreamUnreachable, http.StatusServiceUnavailable},
		{EnrichCircuitOpen, http.StatusServiceUnavailable},
		{UpstreamTimeout, http.StatusGatewayTimeout},
		{AdvisorGenerationFailed, http.StatusInternalServerError},
		{ErrorCode("UNKNOWN"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

// TestToJSON tests serializing the response shape
func (s *ResponseTestSuite) TestToJSON() {
	response := NewErrorResponse(ConfigMissingGeminiKey, s.traceID)

	raw, err := response.ToJSON()
	s.Require().NoError(err)

	var decoded map[string]map[string]any
	s.Require().NoError(json.Unmarshal(raw, &decoded))
	s.Equal("CONFIG_003", decoded["error"]["code"])
	s.Equal(s.traceID, decoded["error"]["trace_id"])
}

// TestAppError_CodeOf tests code extraction across wrapped chains
func (s *ResponseTestSuite) TestAppError_CodeOf() {
	base := New(UpstreamTimeout)
	wrapped := fmt.Errorf("calling fetch_net_worth: %w", base)

	s.Equal(UpstreamTimeout, CodeOf(wrapped))
	s.Equal(SystemInternalError, CodeOf(errors.New("plain")))
	s.Equal(SystemInternalError, CodeOf(nil))
}

// TestAppError_Is tests matching AppErrors by code
func (s *ResponseTestSuite) TestAppError_Is() {
	err := Wrap(ValidationSchemaDrift, errors.New("missing txns member"))

	s.True(errors.Is(err, New(ValidationSchemaDrift)))
	s.False(errors.Is(err, New(ValidationGeneral)))
	s.Contains(err.Error(), "VALIDATION_004")
	s.Contains(err.Error(), "missing txns member")
}
