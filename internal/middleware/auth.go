package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aarya-club/backend/internal/auth"
)

const (
	// ContextUsername is the key for the authenticated username in gin context.
	ContextUsername = "username"
	// ContextRole is the key for the authenticated role in gin context.
	ContextRole = "user_role"
)

// TokenValidator validates a bearer token string into claims.
type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

// Authenticate resolves an Authorization bearer token into request context
// claims. It never aborts: a missing, malformed, or expired token leaves the
// request anonymous and the access policy decides whether that is acceptable.
func Authenticate(jwtService TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}
		claims, err := jwtService.Validate(parts[1])
		if err != nil {
			c.Next()
			return
		}
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}
