package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/martijn/inkwell/pkg/logger"
)

const (
	RequestIDContextKey = "request_id"
	RequestIDHeaderKey  = "X-Request-ID"
)

// RequestIDMiddleware assigns each request an ID, echoes it in the
// response header and logs the request with it. A well-formed ID sent
// by the client is reused.
func RequestIDMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startedAt := time.Now()

		requestID := c.GetHeader(RequestIDHeaderKey)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDContextKey, requestID)
		c.Writer.Header().Set(RequestIDHeaderKey, requestID)

		c.Next()

		log.InfoFields("request completed", logger.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(startedAt).String(),
		})
	}
}

// RequestID returns the request ID from context, or an empty string.
func RequestID(c *gin.Context) string {
	value, ok := c.Get(RequestIDContextKey)
	if !ok {
		return ""
	}
	requestID, ok := value.(string)
	if !ok {
		return ""
	}
	return requestID
}
