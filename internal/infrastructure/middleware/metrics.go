package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/trip-report-backend/internal/infrastructure/observability"
)

const unmatchedRoute = "unmatched"

// Metrics records request latency by route template so that path
// parameters do not explode label cardinality.
func Metrics(metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		metrics.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
