package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestMiddleware records request count and latency per matched route.
// Unmatched routes are grouped under "unmatched" to keep label cardinality bounded.
func RequestMiddleware(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start).Seconds())
	}
}
