package component

import "context"

// HealthStatus represents the health state of a component.
type HealthStatus string

const (
	StatusHealthy   HealthStatus = "healthy"
	StatusUnhealthy HealthStatus = "unhealthy"
	StatusDegraded  HealthStatus = "degraded"
)

// Health holds health information for a component.
type Health struct {
	Name    string       `json:"name"`
	Status  HealthStatus `json:"status"`
	Message string       `json:"message,omitempty"`
}

// Component is a lifecycle-managed part of a service: the HTTP server,
// the transcript backend, the telemetry exporters.
type Component interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Health(ctx context.Context) Health
}

// Description is what a component reports about itself at startup.
type Description struct {
	Type    string // "server", "provider", "telemetry"
	Details string // one line, e.g. "0.0.0.0:8080 h2c"
}

// Describable is optionally implemented by components that want a line in
// the startup log.
type Describable interface {
	Describe() Description
}

// Route is one registered HTTP route.
type Route struct {
	Method string
	Path   string
}

// RouteProvider is optionally implemented by server components.
type RouteProvider interface {
	Routes() []Route
}
