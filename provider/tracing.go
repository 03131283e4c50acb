package provider

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/kbukum/wonderwords/observability"
)

// WithTracing wraps each Execute call in a span named
// "{serviceName}.{providerName}". Input and output fields become span
// attributes.
func WithTracing[I, O any](serviceName string) Middleware[I, O] {
	return func(inner RequestResponse[I, O]) RequestResponse[I, O] {
		return &tracingRR[I, O]{inner: inner, serviceName: serviceName}
	}
}

type tracingRR[I, O any] struct {
	inner       RequestResponse[I, O]
	serviceName string
}

func (t *tracingRR[I, O]) Name() string                         { return t.inner.Name() }
func (t *tracingRR[I, O]) IsAvailable(ctx context.Context) bool { return t.inner.IsAvailable(ctx) }

func (t *tracingRR[I, O]) Execute(ctx context.Context, input I) (O, error) {
	ctx, span := observability.StartSpan(ctx, t.serviceName+"."+t.inner.Name())
	defer span.End()

	observability.SetSpanAttributes(ctx,
		attribute.String(observability.AttrServiceName, t.serviceName),
		attribute.String(observability.AttrProvider, t.inner.Name()),
	)
	observability.SetSpanAttributes(ctx, toAttributes(fieldsOf(input))...)

	output, err := t.inner.Execute(ctx, input)
	if err != nil {
		observability.SetSpanAttributes(ctx, attribute.String(observability.AttrErrorCode, errorCode(err)))
		observability.SetSpanError(ctx, err)
		return output, err
	}
	observability.SetSpanAttributes(ctx, toAttributes(fieldsOf(output))...)
	return output, nil
}

func toAttributes(fields map[string]any) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(fields))
	for k, v := range fields {
		switch val := v.(type) {
		case string:
			attrs = append(attrs, attribute.String(k, val))
		case int:
			attrs = append(attrs, attribute.Int(k, val))
		case []string:
			attrs = append(attrs, attribute.StringSlice(k, val))
		default:
			attrs = append(attrs, attribute.String(k, fmt.Sprint(val)))
		}
	}
	return attrs
}
