package provider_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	apperrors "github.com/kbukum/wonderwords/errors"
	"github.com/kbukum/wonderwords/logger"
	"github.com/kbukum/wonderwords/observability"
	"github.com/kbukum/wonderwords/provider"
)

type echoProvider struct {
	name string
}

func (p *echoProvider) Name() string                       { return p.name }
func (p *echoProvider) IsAvailable(_ context.Context) bool { return true }
func (p *echoProvider) Execute(_ context.Context, input string) (string, error) {
	return "echo:" + input, nil
}

type failingProvider struct {
	err error
}

func (p *failingProvider) Name() string                       { return "fail" }
func (p *failingProvider) IsAvailable(_ context.Context) bool { return true }
func (p *failingProvider) Execute(_ context.Context, _ string) (string, error) {
	return "", p.err
}

func bufferLogger(buf *bytes.Buffer) *logger.Logger {
	return logger.New(&logger.Config{Level: "debug", Format: "json", Writer: buf}, "test")
}

func testMetrics(t *testing.T) *observability.Metrics {
	t.Helper()
	metrics, err := observability.NewMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}
	return metrics
}

func TestChain_Empty(t *testing.T) {
	wrapped := provider.Chain[string, string]()(&echoProvider{name: "test"})
	if wrapped.Name() != "test" {
		t.Fatalf("expected 'test', got %q", wrapped.Name())
	}
	result, err := wrapped.Execute(context.Background(), "hello")
	if err != nil || result != "echo:hello" {
		t.Fatalf("expected echo:hello, got %q, err %v", result, err)
	}
}

func TestChain_Order(t *testing.T) {
	var order []string

	mw := func(tag string) provider.Middleware[string, string] {
		return func(inner provider.RequestResponse[string, string]) provider.RequestResponse[string, string] {
			return &orderTracker[string, string]{inner: inner, tag: tag, order: &order}
		}
	}

	wrapped := provider.Chain(mw("A"), mw("B"), mw("C"))(&echoProvider{name: "test"})
	if _, err := wrapped.Execute(context.Background(), "x"); err != nil {
		t.Fatal(err)
	}

	want := []string{"A:before", "B:before", "C:before", "C:after", "B:after", "A:after"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Errorf("expected %v, got %v", want, order)
	}
}

type orderTracker[I, O any] struct {
	inner provider.RequestResponse[I, O]
	tag   string
	order *[]string
}

func (o *orderTracker[I, O]) Name() string                         { return o.inner.Name() }
func (o *orderTracker[I, O]) IsAvailable(ctx context.Context) bool { return o.inner.IsAvailable(ctx) }
func (o *orderTracker[I, O]) Execute(ctx context.Context, input I) (O, error) {
	*o.order = append(*o.order, o.tag+":before")
	result, err := o.inner.Execute(ctx, input)
	*o.order = append(*o.order, o.tag+":after")
	return result, err
}

func TestWithLogging_Success(t *testing.T) {
	var buf bytes.Buffer
	wrapped := provider.WithLogging[string, string](bufferLogger(&buf))(&echoProvider{name: "log-test"})

	result, err := wrapped.Execute(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "echo:hello" {
		t.Fatalf("expected echo:hello, got %q", result)
	}
	out := buf.String()
	if !strings.Contains(out, `"provider":"log-test"`) {
		t.Errorf("expected provider field in log, got %s", out)
	}
	if !strings.Contains(out, `"level":"info"`) {
		t.Errorf("expected info level, got %s", out)
	}
}

func TestWithLogging_ClientErrorLogsWarn(t *testing.T) {
	var buf bytes.Buffer
	p := &failingProvider{err: apperrors.NoTranscriptFound()}
	wrapped := provider.WithLogging[string, string](bufferLogger(&buf))(p)

	if _, err := wrapped.Execute(context.Background(), "hello"); err == nil {
		t.Fatal("expected error")
	}
	out := buf.String()
	if !strings.Contains(out, `"level":"warn"`) {
		t.Errorf("expected warn level, got %s", out)
	}
	if !strings.Contains(out, `"code":"NO_TRANSCRIPT_FOUND"`) {
		t.Errorf("expected error code in log, got %s", out)
	}
}

func TestWithLogging_ServerErrorLogsError(t *testing.T) {
	var buf bytes.Buffer
	p := &failingProvider{err: errors.New("intentional failure")}
	wrapped := provider.WithLogging[string, string](bufferLogger(&buf))(p)

	if _, err := wrapped.Execute(context.Background(), "hello"); err == nil {
		t.Fatal("expected error")
	}
	out := buf.String()
	if !strings.Contains(out, `"level":"error"`) {
		t.Errorf("expected error level, got %s", out)
	}
	if !strings.Contains(out, `"code":"UNKNOWN"`) {
		t.Errorf("expected UNKNOWN code for foreign error, got %s", out)
	}
}

func TestWithLogging_DelegatesIsAvailable(t *testing.T) {
	wrapped := provider.WithLogging[string, string](logger.NewNop())(&echoProvider{name: "avail-test"})
	if !wrapped.IsAvailable(context.Background()) {
		t.Fatal("expected IsAvailable to delegate to inner provider")
	}
}

func TestWithTracing_RecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	wrapped := provider.WithTracing[string, string]("my-service")(&echoProvider{name: "trace-test"})
	if _, err := wrapped.Execute(context.Background(), "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Name() != "my-service.trace-test" {
		t.Errorf("expected span name my-service.trace-test, got %q", spans[0].Name())
	}
}

func TestWithTracing_Error(t *testing.T) {
	wrapped := provider.WithTracing[string, string]("my-service")(&failingProvider{err: errors.New("boom")})
	if _, err := wrapped.Execute(context.Background(), "hello"); err == nil {
		t.Fatal("expected error")
	}
}

func TestWithMetrics_PassesThrough(t *testing.T) {
	wrapped := provider.WithMetrics[string, string](testMetrics(t))(&echoProvider{name: "metrics-test"})

	result, err := wrapped.Execute(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "echo:hello" {
		t.Fatalf("expected echo:hello, got %q", result)
	}
	if !wrapped.IsAvailable(context.Background()) {
		t.Fatal("expected IsAvailable to delegate to inner provider")
	}
}

func TestWithMetrics_Error(t *testing.T) {
	wrapped := provider.WithMetrics[string, string](testMetrics(t))(&failingProvider{err: apperrors.Timeout("fetch")})
	_, err := wrapped.Execute(context.Background(), "hello")
	if !apperrors.IsAppError(err) {
		t.Fatalf("expected AppError to pass through, got %v", err)
	}
}

func TestChain_AllMiddlewares(t *testing.T) {
	wrapped := provider.Chain(
		provider.WithLogging[string, string](logger.NewNop()),
		provider.WithMetrics[string, string](testMetrics(t)),
		provider.WithTracing[string, string]("test-svc"),
	)(&echoProvider{name: "full-stack"})

	result, err := wrapped.Execute(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "echo:hello" {
		t.Fatalf("expected echo:hello, got %q", result)
	}
	if wrapped.Name() != "full-stack" {
		t.Fatalf("expected name 'full-stack', got %q", wrapped.Name())
	}
}
