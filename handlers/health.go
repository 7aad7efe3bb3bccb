package handlers

import (
	"context"
	"net/http"
	"time"

	"ndis_connect/types"

	"cloud.google.com/go/logging"
	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 5 * time.Second

// HealthCheck probes one backend dependency.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// HealthHandler runs every check and reports 503 if any of them fails
func HealthHandler(logger types.Logger, checks ...HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		code := http.StatusOK
		results := make(map[string]string, len(checks))
		for _, check := range checks {
			if err := check.Check(ctx); err != nil {
				logger.Log(logging.Entry{
					Severity: logging.Warning,
					Payload:  "Health check failed",
					Labels:   map[string]string{"check": check.Name, "error": err.Error()},
				})
				results[check.Name] = err.Error()
				code = http.StatusServiceUnavailable
				continue
			}
			results[check.Name] = "ok"
		}

		c.JSON(code, gin.H{
			"status": http.StatusText(code),
			"checks": results,
		})
	}
}
