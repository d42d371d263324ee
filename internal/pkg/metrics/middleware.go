package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// PrometheusMiddleware records request count and latency per matched route
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		RecordRequest(c.Request.Method+" "+route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
