package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Transcript failure kinds. Every failure leaving the orchestrator carries
// exactly one of these.
const (
	// ErrCodeInvalidRequest indicates the request failed local validation.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeTranscriptsDisabled indicates captions are turned off by the uploader.
	ErrCodeTranscriptsDisabled ErrorCode = "TRANSCRIPTS_DISABLED"
	// ErrCodeNoTranscriptFound indicates no transcript exists in any language.
	ErrCodeNoTranscriptFound ErrorCode = "NO_TRANSCRIPT_FOUND"
	// ErrCodeProviderUnavailable indicates a retrieval-layer fault (network, parsing).
	ErrCodeProviderUnavailable ErrorCode = "PROVIDER_UNAVAILABLE"
	// ErrCodeTimeout indicates the provider call exceeded its time bound.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeUnknown is the catch-all for unclassified faults.
	ErrCodeUnknown ErrorCode = "UNKNOWN"
)

// Transport errors
const (
	// ErrCodeNotFound indicates the requested route or resource does not exist.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeMethodNotAllowed indicates the HTTP method is not supported.
	ErrCodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeProviderUnavailable: true,
	ErrCodeTimeout:             true,
	ErrCodeInternal:            false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}

// Kind returns the short taxonomy name for a transcript failure code,
// e.g. "NoTranscriptFound". Unrecognized codes map to "Unknown".
func (c ErrorCode) Kind() string {
	switch c {
	case ErrCodeInvalidRequest:
		return "InvalidRequest"
	case ErrCodeTranscriptsDisabled:
		return "TranscriptsDisabled"
	case ErrCodeNoTranscriptFound:
		return "NoTranscriptFound"
	case ErrCodeProviderUnavailable:
		return "ProviderUnavailable"
	case ErrCodeTimeout:
		return "Timeout"
	default:
		return "Unknown"
	}
}
