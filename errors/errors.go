package errors

import (
	"fmt"
	"net/http"
)

// Messages exposed to callers for the fixed failure kinds.
const (
	MsgMissingVideoID      = "Missing video_id parameter"
	MsgTranscriptsDisabled = "Transcripts are disabled for this video"
	MsgNoTranscriptFound   = "No transcript found for this video"
	MsgTimeout             = "Request timeout"
	MsgCanceled            = "Request canceled"
	MsgUnknownError        = "Unknown error"

	retrievalPrefix  = "Could not retrieve transcript: "
	unexpectedPrefix = "Unexpected error: "
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message, safe to show to end users.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// --- Transcript failure constructors ---

// InvalidRequest creates an AppError for a request rejected by local validation.
func InvalidRequest(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidRequest, Message: message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// MissingVideoID is the InvalidRequest returned when no video id was supplied.
func MissingVideoID() *AppError {
	return InvalidRequest(MsgMissingVideoID).WithDetail("field", "video_id")
}

// TranscriptsDisabled creates an AppError for a video whose captions are turned off.
func TranscriptsDisabled() *AppError {
	return &AppError{
		Code: ErrCodeTranscriptsDisabled, Message: MsgTranscriptsDisabled,
		HTTPStatus: http.StatusNotFound,
	}
}

// NoTranscriptFound creates an AppError for a video without any transcript.
func NoTranscriptFound() *AppError {
	return &AppError{
		Code: ErrCodeNoTranscriptFound, Message: MsgNoTranscriptFound,
		HTTPStatus: http.StatusNotFound,
	}
}

// ProviderUnavailable creates an AppError for a retrieval-layer fault.
// The message carries the underlying detail.
func ProviderUnavailable(detail string) *AppError {
	return &AppError{
		Code: ErrCodeProviderUnavailable, Message: retrievalPrefix + detail,
		HTTPStatus: http.StatusInternalServerError, Retryable: true,
	}
}

// Timeout creates a new AppError for a provider call that exceeded its bound.
func Timeout(operation string) *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Message: MsgTimeout,
		HTTPStatus: http.StatusGatewayTimeout, Retryable: true,
		Details: map[string]any{"operation": operation},
	}
}

// Unknown creates an AppError for an unclassified fault. The message is used
// verbatim; an empty message becomes "Unknown error".
func Unknown(message string) *AppError {
	if message == "" {
		message = MsgUnknownError
	}
	return &AppError{
		Code: ErrCodeUnknown, Message: message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// Unexpected wraps an unclassified cause into an Unknown error.
func Unexpected(cause error) *AppError {
	return Unknown(unexpectedPrefix + cause.Error()).WithCause(cause)
}

// Canceled creates the Unknown error reported when the caller abandoned the request.
func Canceled() *AppError {
	return Unknown(MsgCanceled)
}

// --- Transport constructors ---

// NotFound creates a new AppError for a route or resource that does not exist.
func NotFound(message string) *AppError {
	if message == "" {
		message = "Not found"
	}
	return &AppError{
		Code: ErrCodeNotFound, Message: message,
		HTTPStatus: http.StatusNotFound,
	}
}

// MethodNotAllowed creates a new AppError for an unsupported HTTP method.
func MethodNotAllowed(method string) *AppError {
	return &AppError{
		Code: ErrCodeMethodNotAllowed, Message: fmt.Sprintf("Method %s not allowed", method),
		HTTPStatus: http.StatusMethodNotAllowed,
	}
}

// Internal creates a new AppError for an internal server error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "Internal server error",
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}

// FromMessage rebuilds a transcript failure from a caller-facing message. It
// is the inverse of the constructors above and is used when a failure crosses
// a process boundary as plain text.
func FromMessage(message string) *AppError {
	switch {
	case message == MsgMissingVideoID:
		return MissingVideoID()
	case message == MsgTranscriptsDisabled:
		return TranscriptsDisabled()
	case message == MsgNoTranscriptFound:
		return NoTranscriptFound()
	case message == MsgTimeout:
		return Timeout("transcript")
	case len(message) > len(retrievalPrefix) && message[:len(retrievalPrefix)] == retrievalPrefix:
		return ProviderUnavailable(message[len(retrievalPrefix):])
	default:
		return Unknown(message)
	}
}
