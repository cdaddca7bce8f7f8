package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aarya-club/backend/internal/auth"
	"github.com/aarya-club/backend/internal/models"
)

// claimsOf runs a request through Authenticate and captures what ended up in
// the gin context.
func claimsOf(t *testing.T, jwtService *auth.JWTService, authHeader string) (username, role string, authenticated bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Authenticate(jwtService))
	router.GET("/probe", func(c *gin.Context) {
		if v, ok := c.Get(ContextUsername); ok {
			authenticated = true
			username, _ = v.(string)
		}
		if v, ok := c.Get(ContextRole); ok {
			role, _ = v.(string)
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, "authenticate must never abort")
	return username, role, authenticated
}

func TestAuthenticateValidToken(t *testing.T) {
	jwtService := auth.NewJWTService("s", 1)
	token, err := jwtService.Generate("alice", models.RoleAdmin)
	require.NoError(t, err)

	username, role, authenticated := claimsOf(t, jwtService, "Bearer "+token)
	assert.True(t, authenticated)
	assert.Equal(t, "alice", username)
	assert.Equal(t, models.RoleAdmin, role)
}

func TestAuthenticateAnonymous(t *testing.T) {
	jwtService := auth.NewJWTService("s", 1)

	for name, header := range map[string]string{
		"no header":     "",
		"not bearer":    "Basic abc123",
		"malformed":     "Bearer",
		"garbage token": "Bearer not.a.token",
		"wrong secret":  "Bearer " + mustToken(t, auth.NewJWTService("other", 1)),
		"expired":       "Bearer " + mustToken(t, auth.NewJWTService("s", -1)),
	} {
		t.Run(name, func(t *testing.T) {
			_, _, authenticated := claimsOf(t, jwtService, header)
			assert.False(t, authenticated)
		})
	}
}

func mustToken(t *testing.T, svc *auth.JWTService) string {
	t.Helper()
	token, err := svc.Generate("alice", models.RoleAdmin)
	require.NoError(t, err)
	return token
}
