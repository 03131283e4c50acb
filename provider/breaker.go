package provider

import (
	"context"

	"github.com/kbukum/wonderwords/errors"
	"github.com/kbukum/wonderwords/resilience"
)

// WithCircuitBreaker guards a provider with cb. While the circuit is open the
// provider reports itself unavailable, so a PrioritySelector skips it. Close
// is forwarded to the inner provider.
func WithCircuitBreaker[I, O any](cb *resilience.CircuitBreaker) Middleware[I, O] {
	return func(inner RequestResponse[I, O]) RequestResponse[I, O] {
		return &breakerRR[I, O]{inner: inner, cb: cb}
	}
}

type breakerRR[I, O any] struct {
	inner RequestResponse[I, O]
	cb    *resilience.CircuitBreaker
}

func (b *breakerRR[I, O]) Name() string { return b.inner.Name() }

func (b *breakerRR[I, O]) IsAvailable(ctx context.Context) bool {
	return b.cb.Ready() && b.inner.IsAvailable(ctx)
}

func (b *breakerRR[I, O]) Execute(ctx context.Context, input I) (O, error) {
	if !b.cb.Allow() {
		var zero O
		return zero, errors.ProviderUnavailable(b.inner.Name() + " backend unavailable").WithCause(resilience.ErrCircuitOpen)
	}
	output, err := b.inner.Execute(ctx, input)
	b.cb.Record(err)
	return output, err
}

func (b *breakerRR[I, O]) Close(ctx context.Context) error {
	if c, ok := b.inner.(Closeable); ok {
		return c.Close(ctx)
	}
	return nil
}
