package middleware

import (
	"net/http"

	"github.com/kbukum/wonderwords/observability"
)

// InFlight tracks the number of requests currently being served.
func InFlight(metrics *observability.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			metrics.HTTPStart(r.Context())
			defer metrics.HTTPEnd(r.Context())
			next.ServeHTTP(w, r)
		})
	}
}
