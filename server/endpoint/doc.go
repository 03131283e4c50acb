// Package endpoint holds the gin handlers every service exposes next to its
// own routes: component health, readiness and liveness probes, and build
// metadata.
package endpoint
