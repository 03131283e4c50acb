// Package provider is a small generic framework for swappable backends.
//
// A backend is a RequestResponse[I, O]: it has a name, reports whether it can
// serve requests right now, and executes one input into one output. Backends
// are registered as factories in a Registry and brought up by a Manager, which
// picks one per request through a Selector.
//
// Middleware wraps a backend without changing its type. Use Chain to compose:
//
//	wrapped := provider.Chain(
//	    provider.WithLogging[In, Out](log),
//	    provider.WithMetrics[In, Out](metrics),
//	    provider.WithTracing[In, Out]("transcriptd"),
//	)(raw)
//
// Usage:
//
//	reg := provider.NewRegistry[Resolver]()
//	mgr := provider.NewManager(reg, &provider.PrioritySelector[Resolver]{Priority: []string{"youtube"}}, log)
//	mgr.Register("youtube", factory)
//	_ = mgr.Initialize("youtube")
//	p, err := mgr.Get(ctx)
package provider
