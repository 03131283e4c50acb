package observability

import (
	"context"
	"errors"
	"fmt"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kbukum/wonderwords/component"
)

var _ component.Component = (*Telemetry)(nil)

// Telemetry owns the exporters installed for the process and flushes them
// on Stop. It is registered as the first component so it stops last.
type Telemetry struct {
	cfg    Config
	id     Identity
	tracer *sdktrace.TracerProvider
	meter  *sdkmetric.MeterProvider
}

// NewTelemetry creates the component; exporters are installed by Start.
func NewTelemetry(cfg Config, id Identity) *Telemetry {
	cfg.ApplyDefaults()
	return &Telemetry{cfg: cfg, id: id}
}

func (t *Telemetry) Name() string { return "telemetry" }

// Start installs the OTLP tracer and meter providers when enabled.
func (t *Telemetry) Start(ctx context.Context) error {
	if !t.cfg.Enabled {
		return nil
	}
	tp, err := InitTracer(ctx, t.cfg, t.id)
	if err != nil {
		return err
	}
	mp, err := InitMeter(ctx, t.cfg, t.id)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return err
	}
	t.tracer, t.meter = tp, mp
	return nil
}

// Stop flushes and shuts down the exporters.
func (t *Telemetry) Stop(ctx context.Context) error {
	var errs []error
	if t.tracer != nil {
		if err := t.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if t.meter != nil {
		if err := t.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (t *Telemetry) Health(_ context.Context) component.Health {
	h := component.Health{Name: t.Name(), Status: component.StatusHealthy}
	if !t.cfg.Enabled {
		h.Message = "export disabled"
	}
	return h
}

func (t *Telemetry) Describe() component.Description {
	if !t.cfg.Enabled {
		return component.Description{Type: "telemetry", Details: "disabled"}
	}
	return component.Description{Type: "telemetry", Details: fmt.Sprintf("otlp http %s sample=%.2f", t.cfg.Endpoint, t.cfg.SampleRate)}
}
