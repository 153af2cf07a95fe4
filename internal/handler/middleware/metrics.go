package middleware

import (
	"time"

	"scrap-market/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records one observation per request, labelled by the matched
// route template so that path parameters do not explode cardinality.
func Metrics(service string, recorder metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		recorder.RecordHTTPRequest(service, c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
