package endpoint

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/wonderwords/component"
)

// HealthChecker returns the health of every registered component.
type HealthChecker func(ctx context.Context) []component.Health

type probeBody struct {
	Status     string             `json:"status"`
	Service    string             `json:"service"`
	Timestamp  string             `json:"timestamp"`
	Components []component.Health `json:"components,omitempty"`
}

func now() string { return time.Now().UTC().Format(time.RFC3339) }

func check(ctx context.Context, checker HealthChecker) (component.HealthStatus, []component.Health) {
	if checker == nil {
		return component.StatusHealthy, nil
	}
	components := checker(ctx)
	return component.Overall(components), components
}

// Health reports the overall status with every component. Any unhealthy
// component makes it a 503; degraded still answers 200.
func Health(service string, checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, components := check(c.Request.Context(), checker)
		code := http.StatusOK
		if status == component.StatusUnhealthy {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, probeBody{Status: string(status), Service: service, Timestamp: now(), Components: components})
	}
}

// Readiness answers "ready", or "not_ready" with a 503 while any component
// is unhealthy.
func Readiness(service string, checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := probeBody{Status: "ready", Service: service, Timestamp: now()}
		code := http.StatusOK
		if status, _ := check(c.Request.Context(), checker); status == component.StatusUnhealthy {
			body.Status, code = "not_ready", http.StatusServiceUnavailable
		}
		c.JSON(code, body)
	}
}

// Liveness answers 200 as long as the process serves HTTP.
func Liveness(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, probeBody{Status: "alive", Service: service, Timestamp: now()})
	}
}
