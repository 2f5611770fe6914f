package middlewares

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LoggingMiddleware logs information about incoming requests and tags each
// one with a request id.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := uuid.New().String()
		c.Header("X-Request-ID", requestID)

		// Process the request
		c.Next()

		// Log method, path, status and the duration taken
		log.Printf("Request %s: %s %s | Status: %d | Duration: %v",
			requestID, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
