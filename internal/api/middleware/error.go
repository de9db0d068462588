package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/inkwell/internal/api/dto"
	"github.com/martijn/inkwell/pkg/logger"
)

// ErrorHandlerMiddleware turns panics and unhandled gin errors into a
// uniform 500 response
func ErrorHandlerMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.ErrorFields("panic while handling request", logger.Fields{
					"method": c.Request.Method,
					"path":   c.Request.URL.Path,
					"panic":  err,
				})
				c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
					Error:   "Internal Server Error",
					Message: "An unexpected error occurred",
					Code:    http.StatusInternalServerError,
				})
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			log.ErrorFields("unhandled request error", logger.Fields{
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
				"error":  err.Error(),
			})
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:   "Internal Server Error",
				Message: err.Error(),
				Code:    http.StatusInternalServerError,
			})
		}
	}
}
