package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/coderelay/coderelay/pkg/metrics"
)

// requestLogger logs one structured line per request and records request
// metrics. The route template, not the raw path, is the metric label to
// keep cardinality bounded.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		elapsed := time.Since(start)
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.HTTPRequests.WithLabelValues(
			c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPDuration.WithLabelValues(
			c.Request.Method, route).Observe(elapsed.Seconds())

		s.logger.Info("Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", elapsed.Milliseconds(),
			"client_ip", c.ClientIP())
	}
}
