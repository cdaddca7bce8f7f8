package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aarya-club/backend/internal/models"
	"github.com/aarya-club/backend/pkg/response"
)

// Requirement is what a matched route demands from the request.
type Requirement int

const (
	// Public routes need no principal.
	Public Requirement = iota
	// Authenticated routes need any valid principal.
	Authenticated
	// WithRole routes need a principal holding the rule's role.
	WithRole
)

// Rule maps (methods, path pattern) to a requirement. A pattern ending in
// "/**" matches the base path and everything under it; otherwise it must
// match exactly. Empty Methods matches every method.
type Rule struct {
	Methods []string
	Pattern string
	Require Requirement
	Role    string
}

func (r Rule) matches(method, path string) bool {
	if len(r.Methods) > 0 {
		ok := false
		for _, m := range r.Methods {
			if m == method {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if base, found := strings.CutSuffix(r.Pattern, "/**"); found {
		return base == "" || path == base || strings.HasPrefix(path, base+"/")
	}
	return path == r.Pattern
}

// AccessPolicy enforces an ordered rule list before any handler runs. Rules
// are evaluated top to bottom and the first match wins; a request matching no
// rule requires authentication (default deny).
func AccessPolicy(rules []Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		require := Authenticated
		role := ""
		for _, r := range rules {
			if r.matches(c.Request.Method, c.Request.URL.Path) {
				require = r.Require
				role = r.Role
				break
			}
		}

		switch require {
		case Public:
			c.Next()
		case Authenticated:
			if _, ok := c.Get(ContextUsername); !ok {
				response.Unauthorized(c, "authentication required")
				c.Abort()
				return
			}
			c.Next()
		case WithRole:
			roleVal, ok := c.Get(ContextRole)
			if !ok {
				response.Unauthorized(c, "authentication required")
				c.Abort()
				return
			}
			if got, _ := roleVal.(string); got != role {
				response.Forbidden(c, "insufficient permissions")
				c.Abort()
				return
			}
			c.Next()
		}
	}
}

// DefaultPolicy is the access rule set for the API: CORS preflight and auth
// endpoints are open, reads on events and members are public, writes need
// the ADMIN role, and everything else needs a valid principal.
func DefaultPolicy() []Rule {
	writes := []string{http.MethodPost, http.MethodPut, http.MethodDelete}
	return []Rule{
		{Methods: []string{http.MethodOptions}, Pattern: "/**", Require: Public},
		{Pattern: "/api/auth/**", Require: Public},
		{Methods: []string{http.MethodGet}, Pattern: "/api/events/**", Require: Public},
		{Methods: []string{http.MethodGet}, Pattern: "/api/members/**", Require: Public},
		{Methods: writes, Pattern: "/api/events/**", Require: WithRole, Role: models.RoleAdmin},
		{Methods: writes, Pattern: "/api/members/**", Require: WithRole, Role: models.RoleAdmin},
		{Methods: []string{http.MethodGet}, Pattern: "/health", Require: Public},
	}
}
