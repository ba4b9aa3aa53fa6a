package middleware

import (
	"net/http"
	"strings"

	"portfolio/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// ContextAdminID is the gin context key holding the authenticated admin ID.
const ContextAdminID = "admin_id"

// JWTAuth gates administrative routes. It extracts the bearer token from the
// Authorization header, validates it and stores the admin ID in the context.
// It has no side effects of its own: on any failure the request is aborted
// with 401 before reaching the handler.
func JWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			abortUnauthorized(c, "MISSING_TOKEN", "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			abortUnauthorized(c, "MISSING_TOKEN", "Invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			abortUnauthorized(c, "MISSING_TOKEN", "Empty token")
			return
		}

		adminID, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
			return
		}

		c.Set(ContextAdminID, adminID)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
