package provider

import (
	"context"
	"time"

	"github.com/kbukum/wonderwords/observability"
)

// WithMetrics records one resolution per Execute call, labelled with the
// provider name and, on failure, the error code.
func WithMetrics[I, O any](metrics *observability.Metrics) Middleware[I, O] {
	return func(inner RequestResponse[I, O]) RequestResponse[I, O] {
		return &metricsRR[I, O]{inner: inner, metrics: metrics}
	}
}

type metricsRR[I, O any] struct {
	inner   RequestResponse[I, O]
	metrics *observability.Metrics
}

func (m *metricsRR[I, O]) Name() string                         { return m.inner.Name() }
func (m *metricsRR[I, O]) IsAvailable(ctx context.Context) bool { return m.inner.IsAvailable(ctx) }

func (m *metricsRR[I, O]) Execute(ctx context.Context, input I) (O, error) {
	start := time.Now()
	output, err := m.inner.Execute(ctx, input)

	code := ""
	if err != nil {
		code = errorCode(err)
	}
	m.metrics.RecordResolve(ctx, m.inner.Name(), code, time.Since(start))
	return output, err
}
