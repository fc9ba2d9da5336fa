package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stayhub-app/stayhub/internal/infrastructure/metrics"
)

// Metrics records a counter sample for every handled request.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
