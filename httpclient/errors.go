package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
)

// Kind classifies a failed request.
type Kind string

const (
	KindTimeout    Kind = "timeout"
	KindCanceled   Kind = "canceled"
	KindConnection Kind = "connection"
	KindBlocked    Kind = "blocked"
	KindNotFound   Kind = "not_found"
	KindRateLimit  Kind = "rate_limit"

	// KindRejected is any other 4xx, or a request that could not be built.
	KindRejected Kind = "rejected"
	KindServer   Kind = "server"
	KindTooLarge Kind = "too_large"
)

// Error is a classified request failure.
type Error struct {
	Kind Kind

	// StatusCode is 0 when no response was received.
	StatusCode int

	// URL is the request URL without its query.
	URL string

	Err error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("GET %s: %s", e.URL, e.Kind)
	if e.StatusCode > 0 {
		msg += fmt.Sprintf(" (HTTP %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Retryable reports whether the same request might succeed later.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case KindTimeout, KindConnection, KindRateLimit, KindServer:
		return true
	default:
		return false
	}
}

// statusError classifies a non-2xx status. It returns nil for 2xx.
func statusError(target string, status int) *Error {
	var kind Kind
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = KindBlocked
	case status == http.StatusNotFound:
		kind = KindNotFound
	case status == http.StatusTooManyRequests:
		kind = KindRateLimit
	case status >= 400 && status < 500:
		kind = KindRejected
	default:
		kind = KindServer
	}
	return &Error{Kind: kind, StatusCode: status, URL: target}
}

// transportError classifies a failure before a status was received, or
// while reading the body. The context takes precedence over err.
func transportError(ctx context.Context, target string, err error) *Error {
	switch {
	case errors.Is(ctx.Err(), context.Canceled):
		return &Error{Kind: KindCanceled, URL: target, Err: ctx.Err()}
	case ctx.Err() != nil:
		return &Error{Kind: KindTimeout, URL: target, Err: ctx.Err()}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: KindTimeout, URL: target, Err: unwrapURLError(err)}
	}
	return &Error{Kind: KindConnection, URL: target, Err: unwrapURLError(err)}
}

// unwrapURLError drops the *url.Error layer, whose message repeats the full
// request URL including its query.
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func IsTimeout(err error) bool    { return Is(err, KindTimeout) }
func IsConnection(err error) bool { return Is(err, KindConnection) }
func IsBlocked(err error) bool    { return Is(err, KindBlocked) }
func IsNotFound(err error) bool   { return Is(err, KindNotFound) }
func IsRateLimit(err error) bool  { return Is(err, KindRateLimit) }
func IsTooLarge(err error) bool   { return Is(err, KindTooLarge) }

// IsRetryable reports whether err is an *Error that might succeed later.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable()
}
