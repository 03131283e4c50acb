// Package server provides the HTTP server for wonderwords services: a Gin
// engine behind a ServeMux, served over HTTP/1.1 and h2c.
//
// Middleware (server/middleware) wraps the mux, so it applies to gin routes
// and to any http.Handler mounted with Handle:
//
//   - Recovery: panic to 500 failure envelope
//   - RequestID: X-Request-Id generation and propagation into the logger
//   - CORS: wildcard or allow-listed origins, OPTIONS preflight
//   - RequestLogger: method, path, status and duration per request
//   - InFlight: in-flight request gauge
//
// Endpoints (server/endpoint): /health, /info, /version, /livez, /readyz.
package server
