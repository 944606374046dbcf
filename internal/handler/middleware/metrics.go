package middleware

import (
	"time"

	"dryclean-api/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics labels by route template so ids in the path do not explode cardinality.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveHTTP(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
