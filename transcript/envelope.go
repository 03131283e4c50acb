package transcript

import (
	"net/http"

	"github.com/kbukum/wonderwords/errors"
)

// Envelope is the uniform response body: the Result fields flattened next to
// success on success, {success:false,error} on failure.
type Envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	*Result
}

// Succeed wraps a result.
func Succeed(r *Result) Envelope {
	return Envelope{Success: true, Result: r}
}

// Fail wraps a failure. Errors that are not AppErrors are classified as
// Unknown so that no raw detail of an unexpected type reaches the caller
// unshaped.
func Fail(err error) Envelope {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		appErr = errors.Unexpected(err)
	}
	return Envelope{Success: false, Error: appErr.ToResponse().Error}
}

// StatusCode returns the HTTP status for an outcome: 200 for nil, the
// failure's status otherwise.
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return errors.HTTPStatus(err)
}

// Err rebuilds the classified failure carried by a failed envelope.
func (e Envelope) Err() error {
	if e.Success {
		return nil
	}
	return KindFromMessage(e.Error)
}
