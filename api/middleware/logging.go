// ABOUTME: Request logging middleware for the fragment endpoints
// ABOUTME: Logs method, path, status and timing through the injected Logger

package middleware

import (
	"time"

	"cs-embed-api/core/interfaces"

	"github.com/gin-gonic/gin"
)

// slowRequestThreshold flags requests that most likely waited on a cold
// upstream fetch.
const slowRequestThreshold = 5 * time.Second

// RequestLogging logs one line per request with structured fields.
func RequestLogging(logger interfaces.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		duration := time.Since(start)
		fields := map[string]interface{}{
			"method":      c.Request.Method,
			"path":        path,
			"status":      c.Writer.Status(),
			"duration_ms": duration.Milliseconds(),
			"client_ip":   c.ClientIP(),
		}
		if query != "" {
			fields["query"] = query
		}

		logger.Info("request completed", fields)

		if duration > slowRequestThreshold {
			logger.Warn("slow request", map[string]interface{}{
				"path":     path,
				"duration": duration.String(),
			})
		}
	}
}
