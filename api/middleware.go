package api

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// RequestIDMiddleware assigns each request a UUID, exposed both to
// handlers and in the X-Request-ID response header. An incoming
// X-Request-ID header is honored so callers can correlate retries.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// RequestID returns the request ID assigned by RequestIDMiddleware, or
// an empty string when the middleware is not installed.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// RequestLoggingMiddleware logs each request with its method, path,
// status, duration and request ID.
func RequestLoggingMiddleware(logger *slog.Logger) gin.HandlerFunc {
	logger = logger.With("component", "api")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", RequestID(c),
		)
	}
}
