package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Upstream transport error codes (UPSTREAM_*)
const (
	UpstreamUnreachable  ErrorCode = "UPSTREAM_001"
	UpstreamBadStatus    ErrorCode = "UPSTREAM_002"
	UpstreamToolRejected ErrorCode = "UPSTREAM_003"
	UpstreamTimeout      ErrorCode = "UPSTREAM_004"
)

// Wire decode error codes (DECODE_*), one per decoder stage
const (
	DecodeNoJSONObject  ErrorCode = "DECODE_001"
	DecodeEnvelopeParse ErrorCode = "DECODE_002"
	DecodeInvalidRPC    ErrorCode = "DECODE_003"
	DecodePayloadParse  ErrorCode = "DECODE_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationSchemaDrift   ErrorCode = "VALIDATION_004"
)

// Enrichment error codes (ENRICH_*)
const (
	EnrichBatchFailed ErrorCode = "ENRICH_001"
	EnrichQuoteFailed ErrorCode = "ENRICH_002"
	EnrichCircuitOpen ErrorCode = "ENRICH_003"
)

// Configuration error codes (CONFIG_*), user-actionable and distinct from
// generic failures so the UI can render a "configure this" affordance
const (
	ConfigMissingMCPEndpoint ErrorCode = "CONFIG_001"
	ConfigMissingProfileKey  ErrorCode = "CONFIG_002"
	ConfigMissingGeminiKey   ErrorCode = "CONFIG_003"
)

// Advisor error codes (ADVISOR_*)
const (
	AdvisorGenerationFailed ErrorCode = "ADVISOR_001"
	AdvisorInvalidOutput    ErrorCode = "ADVISOR_002"
	AdvisorNoPlanCached     ErrorCode = "ADVISOR_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Upstream errors
	UpstreamUnreachable:  "Could not reach the data aggregator",
	UpstreamBadStatus:    "The data aggregator returned an unexpected status",
	UpstreamToolRejected: "The data aggregator rejected the tool call",
	UpstreamTimeout:      "The data aggregator took too long to respond",

	// Decode errors
	DecodeNoJSONObject:  "No JSON object found in the aggregator response",
	DecodeEnvelopeParse: "The aggregator response envelope is not valid JSON",
	DecodeInvalidRPC:    "The aggregator response is not a valid RPC envelope",
	DecodePayloadParse:  "The aggregator payload is not valid JSON",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationSchemaDrift:   "The aggregator payload no longer matches the expected schema",

	// Enrichment errors
	EnrichBatchFailed: "Every security lookup in the batch failed",
	EnrichQuoteFailed: "Live price lookup failed",
	EnrichCircuitOpen: "Price lookups are temporarily suspended",

	// Configuration errors
	ConfigMissingMCPEndpoint: "MCP_ENDPOINT is not configured",
	ConfigMissingProfileKey:  "STOCK_API_KEY is not configured; add it to enable security lookups",
	ConfigMissingGeminiKey:   "GEMINI_API_KEY is not configured; add it to enable AI planning",

	// Advisor errors
	AdvisorGenerationFailed: "The AI advisor could not produce an answer",
	AdvisorInvalidOutput:    "The AI advisor returned a malformed answer",
	AdvisorNoPlanCached:     "No financial plan has been generated yet",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemUnexpectedError:    "An unexpected error occurred",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

// IsConfigurationError reports whether the code names a missing-configuration
// condition the user can fix themselves
func IsConfigurationError(code ErrorCode) bool {
	switch code {
	case ConfigMissingMCPEndpoint, ConfigMissingProfileKey, ConfigMissingGeminiKey:
		return true
	}
	return false
}
