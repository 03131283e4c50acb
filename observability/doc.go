// Package observability wires OpenTelemetry tracing and metrics.
//
// Export is optional. When disabled the global noop providers are used, so
// StartSpan and Metrics can be called unconditionally.
package observability
