package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/kbukum/wonderwords/logger"
)

// RequestLogger returns middleware that logs every request with method,
// path, status code, and duration. Probe endpoints log at debug.
func RequestLogger(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r)

			fields := logger.Fields(
				"method", r.Method,
				"path", r.URL.Path,
				logger.FieldStatus, sw.status,
				logger.FieldDuration, time.Since(start).Milliseconds(),
			)
			if q := r.URL.Query().Get("video_id"); q != "" {
				fields[logger.FieldVideoID] = q
			}

			reqLog := log.WithContext(r.Context())
			switch {
			case isProbeEndpoint(r.URL.Path):
				reqLog.Debug("request completed", fields)
			case sw.status >= 500:
				reqLog.Error("request completed", fields)
			case sw.status >= 400:
				reqLog.Warn("request completed", fields)
			default:
				reqLog.Info("request completed", fields)
			}
		})
	}
}

var probePaths = []string{"/health", "/livez", "/readyz", "/info", "/version"}

func isProbeEndpoint(path string) bool {
	path = strings.TrimPrefix(path, "/api")
	for _, p := range probePaths {
		if path == p {
			return true
		}
	}
	return false
}

// statusWriter records the response status. Flush and Unwrap keep the
// MCP event stream working through it.
type statusWriter struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w, status: http.StatusOK}
}

func (sw *statusWriter) WriteHeader(code int) {
	if !sw.wrote {
		sw.status, sw.wrote = code, true
	}
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	sw.wrote = true
	return sw.ResponseWriter.Write(b)
}

func (sw *statusWriter) Flush() {
	if f, ok := sw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (sw *statusWriter) Unwrap() http.ResponseWriter { return sw.ResponseWriter }
