package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/martijn/inkwell/internal/api/dto"
	"github.com/martijn/inkwell/internal/core/domain"
	"github.com/martijn/inkwell/internal/core/service"
)

const (
	AuthHeaderKey  = "Authorization"
	UserContextKey = "currentUser"
)

// AuthMiddleware validates the bearer token and resolves the current
// user, so handlers receive the requester identity explicitly instead
// of re-reading ambient auth state.
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   "Unauthorized",
				Message: "Missing authorization header",
				Code:    http.StatusUnauthorized,
			})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   "Unauthorized",
				Message: "Invalid authorization header format. Expected 'Bearer <token>'",
				Code:    http.StatusUnauthorized,
			})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   "Unauthorized",
				Message: "Invalid or expired token",
				Code:    http.StatusUnauthorized,
			})
			c.Abort()
			return
		}

		// A token may outlive its user (admin deletion); treat that as
		// an invalid credential too.
		user, err := authService.ResolveUser(c.Request.Context(), claims)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   "Unauthorized",
				Message: "Unknown token subject",
				Code:    http.StatusUnauthorized,
			})
			c.Abort()
			return
		}

		c.Set(UserContextKey, user)

		c.Next()
	}
}

// CurrentUser retrieves the resolved user from context
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	value, exists := c.Get(UserContextKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*domain.User)
	return user, ok
}
