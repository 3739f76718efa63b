package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renalworks/dialysis-api/pkg/auth"
)

func newAuthRouter(t *testing.T, tokens auth.TokenService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewAuthMiddleware(tokens).Authenticate())
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c), "email": UserEmail(c)})
	})
	return r
}

func TestAuthenticateValidToken(t *testing.T) {
	tokens := auth.NewJWTService("test-secret", time.Hour)
	token, err := tokens.Generate(42, "thandi@clinic.test")
	require.NoError(t, err)

	r := newAuthRouter(t, tokens)
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
	assert.Contains(t, w.Body.String(), "thandi@clinic.test")
}

func TestAuthenticateXAuthTokenFallback(t *testing.T) {
	tokens := auth.NewJWTService("test-secret", time.Hour)
	token, err := tokens.Generate(7, "sam@clinic.test")
	require.NoError(t, err)

	r := newAuthRouter(t, tokens)
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("x-auth-token", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestAuthenticateRejects(t *testing.T) {
	tokens := auth.NewJWTService("test-secret", time.Hour)
	expired, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.MapClaims{
		"user_id": 1,
		"email":   "old@clinic.test",
		"iat":     time.Now().Add(-2 * time.Hour).Unix(),
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	wrongKey, err := auth.NewJWTService("other-secret", time.Hour).Generate(1, "x@clinic.test")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		value  string
	}{
		{"missing header", "", ""},
		{"literal null", "Authorization", "Bearer null"},
		{"literal undefined", "Authorization", "Bearer undefined"},
		{"malformed header", "Authorization", "Token abc"},
		{"garbage token", "Authorization", "Bearer not.a.jwt"},
		{"expired token", "Authorization", "Bearer " + expired},
		{"wrong signing key", "Authorization", "Bearer " + wrongKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAuthRouter(t, tokens)
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
