package provider

import "context"

// Provider is the base interface all providers must implement.
type Provider interface {
	// Name returns the provider's unique name.
	Name() string
	// IsAvailable reports whether the provider can handle requests now.
	IsAvailable(ctx context.Context) bool
}

// Factory creates a provider instance. Factories close over their typed
// configuration.
type Factory[T Provider] func() (T, error)

// Fielder is implemented by inputs and outputs that contribute structured
// fields to provider logs and spans.
type Fielder interface {
	Fields() map[string]any
}
