package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// InitMeter installs a periodic OTLP/HTTP meter provider as the global one.
func InitMeter(ctx context.Context, cfg Config, id Identity) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(id)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(cfg.MetricInterval))),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

// Metrics holds the instruments recorded by the transcript service.
type Metrics struct {
	resolveTotal    metric.Int64Counter
	resolveDuration metric.Float64Histogram
	errorTotal      metric.Int64Counter
	httpInFlight    metric.Int64UpDownCounter
}

// NewMetrics creates the instruments on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	resolveTotal, err := meter.Int64Counter("transcript_requests_total",
		metric.WithDescription("Transcript resolutions by provider and outcome"))
	if err != nil {
		return nil, fmt.Errorf("creating transcript_requests_total: %w", err)
	}
	resolveDuration, err := meter.Float64Histogram("transcript_request_duration_seconds",
		metric.WithDescription("Duration of transcript resolutions"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("creating transcript_request_duration_seconds: %w", err)
	}
	errorTotal, err := meter.Int64Counter("transcript_errors_total",
		metric.WithDescription("Failed transcript resolutions by error code"))
	if err != nil {
		return nil, fmt.Errorf("creating transcript_errors_total: %w", err)
	}
	httpInFlight, err := meter.Int64UpDownCounter("http_requests_in_flight",
		metric.WithDescription("HTTP requests currently being served"))
	if err != nil {
		return nil, fmt.Errorf("creating http_requests_in_flight: %w", err)
	}
	return &Metrics{
		resolveTotal:    resolveTotal,
		resolveDuration: resolveDuration,
		errorTotal:      errorTotal,
		httpInFlight:    httpInFlight,
	}, nil
}

// NewGlobalMetrics creates the instruments on the global meter provider.
func NewGlobalMetrics() (*Metrics, error) {
	return NewMetrics(otel.Meter(tracerName))
}

// RecordResolve records one resolution. code is empty on success.
func (m *Metrics) RecordResolve(ctx context.Context, provider, code string, d time.Duration) {
	outcome := "ok"
	if code != "" {
		outcome = "error"
		m.errorTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String("provider", provider),
			attribute.String("code", code),
		))
	}
	m.resolveTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("outcome", outcome),
	))
	m.resolveDuration.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.String("provider", provider)))
}

// HTTPStart and HTTPEnd bracket one served HTTP request.
func (m *Metrics) HTTPStart(ctx context.Context) { m.httpInFlight.Add(ctx, 1) }
func (m *Metrics) HTTPEnd(ctx context.Context)   { m.httpInFlight.Add(ctx, -1) }
