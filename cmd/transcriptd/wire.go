package main

import (
	"context"
	"strings"

	"github.com/kbukum/wonderwords/api"
	"github.com/kbukum/wonderwords/component"
	"github.com/kbukum/wonderwords/errors"
	"github.com/kbukum/wonderwords/logger"
	"github.com/kbukum/wonderwords/observability"
	"github.com/kbukum/wonderwords/provider"
	"github.com/kbukum/wonderwords/resilience"
	"github.com/kbukum/wonderwords/server"
	"github.com/kbukum/wonderwords/server/endpoint"
	"github.com/kbukum/wonderwords/server/middleware"
	"github.com/kbukum/wonderwords/subprocess"
	"github.com/kbukum/wonderwords/transcript"
	"github.com/kbukum/wonderwords/youtube"
)

// newBackends registers a factory per backend and initializes the
// configured ones. Selection is by priority, first available wins.
func newBackends(cfg *Config, log *logger.Logger) (*provider.Manager[transcript.Resolver], error) {
	m := provider.NewManager(
		provider.NewRegistry[transcript.Resolver](),
		&provider.PrioritySelector[transcript.Resolver]{Priority: cfg.Transcript.Backends},
		log.WithComponent("provider"),
	)

	m.Register(backendYouTube, func() (transcript.Resolver, error) {
		src, err := youtube.New(cfg.YouTube, log)
		if err != nil {
			return nil, err
		}
		return guard(cfg, backendYouTube, transcript.NewService(backendYouTube, src, cfg.Transcript, log), log), nil
	})
	m.Register(backendSubprocess, func() (transcript.Resolver, error) {
		a, err := subprocess.New(cfg.Subprocess, log)
		if err != nil {
			return nil, err
		}
		return guard(cfg, backendSubprocess, a, log), nil
	})

	for _, name := range cfg.Transcript.Backends {
		if err := m.Initialize(name); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// guard puts a circuit breaker in front of a backend when enabled. Only
// retryable failures count, so "no transcript" answers never open it.
func guard(cfg *Config, name string, r transcript.Resolver, log *logger.Logger) transcript.Resolver {
	if !cfg.Breaker.Enabled {
		return r
	}
	bc := cfg.Breaker
	bc.Name = name
	bc.IsFailure = errors.IsRetryable
	bc.OnStateChange = func(name string, from, to resilience.State) {
		log.Warn("circuit breaker state changed", logger.Fields(
			logger.FieldProvider, name,
			"from", from.String(),
			"to", to.String(),
		))
	}
	return provider.WithCircuitBreaker[transcript.Request, *transcript.Result](resilience.NewCircuitBreaker(bc))(r)
}

// newResolver wraps the backends in tracing, metrics and logging.
func newResolver(cfg *Config, backends *provider.Manager[transcript.Resolver], metrics *observability.Metrics, log *logger.Logger) transcript.Resolver {
	return provider.NewDispatcher(cfg.Name, backends,
		provider.WithTracing[transcript.Request, *transcript.Result](cfg.Name),
		provider.WithMetrics[transcript.Request, *transcript.Result](metrics),
		provider.WithLogging[transcript.Request, *transcript.Result](log),
	)
}

// newHTTPServer mounts every HTTP binding of the resolver on one server.
func newHTTPServer(cfg *Config, resolver transcript.Resolver, metrics *observability.Metrics, health endpoint.HealthChecker, log *logger.Logger) *server.Server {
	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware()
	srv.Use(middleware.InFlight(metrics))

	h := api.NewHandler(resolver, api.Info{
		Service: cfg.Name,
		Method:  strings.Join(cfg.Transcript.Backends, ","),
	}, log)
	h.RegisterRoutes(srv.GinEngine())
	srv.Handle("/api/transcript", h.Function())
	if cfg.MCP.Enabled {
		srv.Handle(cfg.MCP.Path, api.MCPHandler(h.NewMCPServer(cfg.Name)))
	}
	srv.RegisterDefaultEndpoints(cfg.Name, health)
	return srv
}

// backendComponent ties the backends to the application lifecycle: it
// reports whether any backend is selectable and closes them on shutdown.
type backendComponent struct {
	backends *provider.Manager[transcript.Resolver]
	resolver transcript.Resolver
}

var (
	_ component.Component   = (*backendComponent)(nil)
	_ component.Describable = (*backendComponent)(nil)
)

func (b *backendComponent) Name() string { return "transcript-backends" }

func (b *backendComponent) Start(context.Context) error { return nil }

func (b *backendComponent) Stop(ctx context.Context) error {
	return b.backends.Close(ctx)
}

func (b *backendComponent) Health(ctx context.Context) component.Health {
	h := component.Health{Name: b.Name(), Status: component.StatusHealthy}
	if !b.resolver.IsAvailable(ctx) {
		h.Status = component.StatusUnhealthy
		h.Message = "no backend available"
	}
	return h
}

func (b *backendComponent) Describe() component.Description {
	return component.Description{Type: "provider", Details: strings.Join(b.backends.Available(), ",")}
}
