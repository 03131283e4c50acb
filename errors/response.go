package errors

import (
	stderrors "errors"
)

// ErrorResponse is the failure envelope returned to every caller.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ToResponse converts an AppError to the failure envelope.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{Success: false, Error: e.Message}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HTTPStatus returns the status code for err: the AppError's status when
// err is one, 500 otherwise.
func HTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok && appErr.HTTPStatus != 0 {
		return appErr.HTTPStatus
	}
	return 500
}

// IsRetryable reports whether err is an AppError marked retryable: a backend
// fault or a timeout rather than an answer about the video.
func IsRetryable(err error) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Retryable
}
