package endpoint

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/wonderwords/version"
)

var started = time.Now()

type infoBody struct {
	Service string `json:"service"`
	version.Info
	Uptime string `json:"uptime"`
}

// Info reports the build metadata with the service name and uptime.
func Info(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, infoBody{
			Service: service,
			Info:    version.Get(),
			Uptime:  time.Since(started).Round(time.Second).String(),
		})
	}
}

// Version reports the build metadata alone.
func Version() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, version.Get())
	}
}
