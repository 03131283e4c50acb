package middleware

import "net/http"

// Middleware wraps an http.Handler. The server applies one chain around its
// root mux, so gin routes and mounted handlers (function endpoint, MCP) see
// the same stack.
type Middleware func(http.Handler) http.Handler

// Chain composes middlewares, first outermost.
func Chain(middlewares ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}
