package middleware

import (
	"strings"

	"failfund/response"
	"failfund/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and stores the principal on the
// request context for ownership checks downstream.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userInfo, err := services.ParseToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("userID", userInfo.UserID)
		c.Set("userEmail", userInfo.Email)
		c.Next()
	}
}

// PrincipalID returns the authenticated user id attached by AuthMiddleware.
func PrincipalID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
