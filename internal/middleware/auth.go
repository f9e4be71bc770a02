package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"linkly-be/internal/jwt"
)

// ContextUserID is the Gin context key holding the authenticated user's id
const ContextUserID = "user_id"

// AuthMiddleware validates the Authorization bearer token and stores the
// caller's user id in the context. Missing or invalid tokens get a 401.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Missing or malformed authorization header",
			})
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid or expired token",
			})
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Next()
	}
}

// UserID returns the authenticated user's id from the context
func UserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
