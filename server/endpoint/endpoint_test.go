package endpoint

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/wonderwords/component"
)

func serve(t *testing.T, h gin.HandlerFunc) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", h)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return rr.Code, body
}

func checker(statuses ...component.HealthStatus) HealthChecker {
	return func(context.Context) []component.Health {
		out := make([]component.Health, len(statuses))
		for i, s := range statuses {
			out[i] = component.Health{Name: string(s), Status: s}
		}
		return out
	}
}

func TestHealthAndReadiness(t *testing.T) {
	tests := []struct {
		name       string
		checker    HealthChecker
		code       int
		health     string
		readiness  string
		components int
	}{
		{"no checker", nil, http.StatusOK, "healthy", "ready", 0},
		{"all healthy", checker(component.StatusHealthy, component.StatusHealthy), http.StatusOK, "healthy", "ready", 2},
		{"degraded", checker(component.StatusHealthy, component.StatusDegraded), http.StatusOK, "degraded", "ready", 2},
		{"unhealthy", checker(component.StatusDegraded, component.StatusUnhealthy), http.StatusServiceUnavailable, "unhealthy", "not_ready", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := serve(t, Health("transcriptd", tt.checker))
			if code != tt.code || body["status"] != tt.health {
				t.Errorf("health: got %d %v", code, body["status"])
			}
			components, _ := body["components"].([]any)
			if len(components) != tt.components {
				t.Errorf("expected %d components, got %v", tt.components, body["components"])
			}

			code, body = serve(t, Readiness("transcriptd", tt.checker))
			if code != tt.code || body["status"] != tt.readiness {
				t.Errorf("readiness: got %d %v", code, body["status"])
			}
			if _, ok := body["components"]; ok {
				t.Error("readiness should not list components")
			}
		})
	}
}

func TestLiveness(t *testing.T) {
	code, body := serve(t, Liveness("transcriptd"))
	if code != http.StatusOK || body["status"] != "alive" || body["service"] != "transcriptd" {
		t.Errorf("unexpected liveness %d %v", code, body)
	}
}

func TestInfo(t *testing.T) {
	code, body := serve(t, Info("transcriptd"))
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	for _, key := range []string{"service", "version", "uptime", "go_version"} {
		if _, ok := body[key]; !ok {
			t.Errorf("missing %q in %v", key, body)
		}
	}
	if body["version"] != "dev" {
		t.Errorf("expected dev version, got %v", body["version"])
	}
}
