package provider

import (
	"context"

	"github.com/kbukum/wonderwords/errors"
)

// Dispatcher is a RequestResponse that asks a Manager for a provider on every
// call and runs it through the given middlewares. With a PrioritySelector
// this gives "first available backend wins" per request.
type Dispatcher[I, O any] struct {
	name    string
	manager *Manager[RequestResponse[I, O]]
	wrap    Middleware[I, O]
}

var _ RequestResponse[string, string] = (*Dispatcher[string, string])(nil)

// NewDispatcher creates a Dispatcher. Middlewares wrap the selected provider,
// first outermost.
func NewDispatcher[I, O any](name string, manager *Manager[RequestResponse[I, O]], middlewares ...Middleware[I, O]) *Dispatcher[I, O] {
	return &Dispatcher[I, O]{name: name, manager: manager, wrap: Chain(middlewares...)}
}

func (d *Dispatcher[I, O]) Name() string { return d.name }

// IsAvailable reports whether the manager can currently select a provider.
func (d *Dispatcher[I, O]) IsAvailable(ctx context.Context) bool {
	_, err := d.manager.Get(ctx)
	return err == nil
}

// Execute selects a provider and runs input through it. When no provider
// can be selected the error is a ProviderUnavailable AppError.
func (d *Dispatcher[I, O]) Execute(ctx context.Context, input I) (O, error) {
	p, err := d.manager.Get(ctx)
	if err != nil {
		var zero O
		return zero, errors.ProviderUnavailable("no backend available").WithCause(err)
	}
	return d.wrap(p).Execute(ctx, input)
}
