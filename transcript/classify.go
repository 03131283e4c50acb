package transcript

import (
	"context"
	stderrors "errors"

	"github.com/kbukum/wonderwords/errors"
)

// Classify maps a provider error onto the failure taxonomy. ctx is the
// context the provider ran under: its expiry wins over whatever the provider
// returned while unwinding.
func Classify(ctx context.Context, err error) *errors.AppError {
	if err == nil {
		return nil
	}

	switch ctx.Err() {
	case context.DeadlineExceeded:
		return errors.Timeout("transcript").WithCause(err)
	case context.Canceled:
		return errors.Canceled().WithCause(err)
	}

	if appErr, ok := errors.AsAppError(err); ok {
		return appErr
	}

	var retrieval *RetrievalError
	switch {
	case stderrors.Is(err, ErrTranscriptsDisabled):
		return errors.TranscriptsDisabled().WithCause(err)
	case stderrors.Is(err, ErrNoTranscriptFound):
		return errors.NoTranscriptFound().WithCause(err)
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.Timeout("transcript").WithCause(err)
	case stderrors.Is(err, context.Canceled):
		return errors.Canceled().WithCause(err)
	case stderrors.As(err, &retrieval):
		return errors.ProviderUnavailable(retrieval.Error()).WithCause(err)
	default:
		return errors.Unexpected(err)
	}
}

// KindFromMessage rebuilds a classified failure from its caller-facing
// message, keeping its code and status across a process boundary.
func KindFromMessage(message string) *errors.AppError {
	return errors.FromMessage(message)
}
