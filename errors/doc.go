// Package errors defines the failure taxonomy shared by every transport:
// InvalidRequest, TranscriptsDisabled, NoTranscriptFound, ProviderUnavailable,
// Timeout and Unknown, each with a fixed HTTP status and a message that is safe
// to expose to end users.
package errors
