// Command transcriptd serves transcripts over HTTP: the gin route
// /transcript/{video_id}, the function endpoint /api/transcript, the MCP
// tool at /mcp and the health endpoints.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kbukum/wonderwords/bootstrap"
	"github.com/kbukum/wonderwords/config"
	"github.com/kbukum/wonderwords/logger"
	"github.com/kbukum/wonderwords/observability"
	"github.com/kbukum/wonderwords/server"
	"github.com/kbukum/wonderwords/version"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "transcriptd:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg Config
	if err := config.LoadConfig("transcriptd", &cfg); err != nil {
		return err
	}
	if cfg.Version == "" {
		cfg.Version = version.Get().Version
	}

	app, err := bootstrap.NewApp(&cfg)
	if err != nil {
		return err
	}
	if err := wire(app); err != nil {
		return err
	}
	return app.Run(ctx)
}

// wire registers components in start order: telemetry, backends, server.
// They stop in reverse.
func wire(app *bootstrap.App[*Config]) error {
	cfg := app.Cfg

	telemetry := observability.NewTelemetry(cfg.Observability, observability.Identity{
		ServiceName:    cfg.Name,
		ServiceVersion: cfg.Version,
		Environment:    cfg.Environment,
	})
	if err := app.RegisterComponent(telemetry); err != nil {
		return err
	}

	metrics, err := observability.NewGlobalMetrics()
	if err != nil {
		return err
	}

	backends, err := newBackends(cfg, app.Logger)
	if err != nil {
		return err
	}
	resolver := newResolver(cfg, backends, metrics, app.Logger)
	if err := app.RegisterComponent(&backendComponent{backends: backends, resolver: resolver}); err != nil {
		return err
	}
	app.OnReady(func(ctx context.Context) error {
		fields := logger.Fields("backends", cfg.Transcript.Backends)
		if !resolver.IsAvailable(ctx) {
			app.Logger.Warn("no transcript backend is available yet", fields)
			return nil
		}
		app.Logger.Info("serving transcripts", fields)
		return nil
	})

	srv := newHTTPServer(cfg, resolver, metrics, app.Components.HealthAll, app.Logger)
	return app.RegisterComponent(server.NewComponent(srv))
}
