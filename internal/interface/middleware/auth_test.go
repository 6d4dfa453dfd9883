package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/peopledesk/pkg/helpers"
)

func setupAuthRouter(jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Auth(jwt), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString(CtxUserIDKey),
			"email":   c.GetString(CtxUserEmailKey),
		})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	jwt := helpers.NewJWTManager("middleware-test-secret", time.Hour)
	r := setupAuthRouter(jwt)

	token, _, err := jwt.GenerateToken("user-7", "dana@example.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-7")
	assert.Contains(t, w.Body.String(), "dana@example.com")
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	jwt := helpers.NewJWTManager("middleware-test-secret", time.Hour)
	r := setupAuthRouter(jwt)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareBadToken(t *testing.T) {
	jwt := helpers.NewJWTManager("middleware-test-secret", time.Hour)
	r := setupAuthRouter(jwt)

	for _, header := range []string{
		"Bearer garbage.token.here",
		"Basic dXNlcjpwYXNz",
		"Bearer",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthMiddlewareForeignSignature(t *testing.T) {
	jwt := helpers.NewJWTManager("middleware-test-secret", time.Hour)
	r := setupAuthRouter(jwt)

	other := helpers.NewJWTManager("some-other-secret", time.Hour)
	token, _, err := other.GenerateToken("user-7", "dana@example.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
