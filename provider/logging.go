package provider

import (
	"context"
	"time"

	"github.com/kbukum/wonderwords/errors"
	"github.com/kbukum/wonderwords/logger"
)

// WithLogging logs every Execute call with the provider name, duration,
// input/output fields and error code. Client-side failures (4xx) log at warn,
// everything else that fails at error.
func WithLogging[I, O any](log *logger.Logger) Middleware[I, O] {
	return func(inner RequestResponse[I, O]) RequestResponse[I, O] {
		return &loggingRR[I, O]{inner: inner, log: log}
	}
}

type loggingRR[I, O any] struct {
	inner RequestResponse[I, O]
	log   *logger.Logger
}

func (l *loggingRR[I, O]) Name() string                         { return l.inner.Name() }
func (l *loggingRR[I, O]) IsAvailable(ctx context.Context) bool { return l.inner.IsAvailable(ctx) }

func (l *loggingRR[I, O]) Execute(ctx context.Context, input I) (O, error) {
	start := time.Now()
	output, err := l.inner.Execute(ctx, input)

	fields := logger.Fields(
		logger.FieldProvider, l.inner.Name(),
		logger.FieldDuration, time.Since(start).Milliseconds(),
	)
	for k, v := range fieldsOf(input) {
		fields[k] = v
	}

	log := l.log.WithContext(ctx)
	if err != nil {
		fields[logger.FieldCode] = errorCode(err)
		fields[logger.FieldError] = err.Error()
		if errors.HTTPStatus(err) < 500 {
			log.Warn("provider execute rejected", fields)
		} else {
			log.Error("provider execute failed", fields)
		}
		return output, err
	}

	for k, v := range fieldsOf(output) {
		fields[k] = v
	}
	log.Info("provider execute ok", fields)
	return output, nil
}
