package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rgopal/chitfund/internal/auth"
	"github.com/rgopal/chitfund/internal/models"
)

const (
	// UserIDKey is the context key for the authenticated user ID.
	UserIDKey = "user_id"
	// RoleKey is the context key for the authenticated user's role.
	RoleKey = "role"
)

// GetUserID extracts the authenticated user ID from the request context.
// Returns empty string if not set.
func GetUserID(c *gin.Context) string {
	userID, _ := c.Get(UserIDKey)
	s, _ := userID.(string)
	return s
}

// GetRole extracts the authenticated role from the request context.
func GetRole(c *gin.Context) models.UserRole {
	role, _ := c.Get(RoleKey)
	r, _ := role.(models.UserRole)
	return r
}

// RequireAuth validates the Bearer session token and stores the user ID and
// role on the request context.
func RequireAuth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": auth.ErrMissingToken.Error()})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": auth.ErrInvalidToken.Error()})
			return
		}

		claims, err := jwtManager.Validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole allows only the listed roles past. Must run after RequireAuth.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := GetRole(c)
		for _, r := range roles {
			if got == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "insufficient role"})
	}
}
