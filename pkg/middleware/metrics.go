package middleware

import (
	"strconv"

	"github.com/bookclub/bookclub-api/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records a counter per method/route/status. Uses the route template
// (e.g. /api/v1/books/:id), not the raw path, to keep cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
