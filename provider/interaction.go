package provider

import "context"

// RequestResponse is a provider that takes one input and returns one output:
// an HTTP lookup, a subprocess run, an in-process resolution.
type RequestResponse[I, O any] interface {
	Provider
	Execute(ctx context.Context, input I) (O, error)
}
