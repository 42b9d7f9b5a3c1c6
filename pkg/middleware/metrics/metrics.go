package metrics

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/classforge/timetable-optimizer/internal/service"
)

// Middleware returns a gin.HandlerFunc that records request duration and
// count against the provided metrics service.
func Middleware(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, status, duration)
	}
}
