package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/renalworks/dialysis-api/pkg/auth"
	"github.com/renalworks/dialysis-api/pkg/errors"
)

const (
	contextUserID    = "userID"
	contextUserEmail = "userEmail"
)

type AuthMiddleware struct {
	tokens auth.TokenService
}

func NewAuthMiddleware(tokens auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate verifies the bearer token and sets the caller identity in
// the request context. The legacy frontend sometimes sends the literal
// strings "null" or "undefined"; those are rejected like a missing token.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" || token == "null" || token == "undefined" {
			abortUnauthorized(c, errors.Unauthorized("authorization token required"))
			return
		}

		claims, err := m.tokens.Validate(token)
		if err != nil {
			abortUnauthorized(c, errors.Unauthorized("invalid or expired token"))
			return
		}

		c.Set(contextUserID, claims.UserID)
		c.Set(contextUserEmail, claims.Email)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err *errors.AppError) {
	c.AbortWithStatusJSON(err.StatusCode(), gin.H{"error": err.Message})
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	// Older clients send the raw token in x-auth-token.
	return strings.TrimSpace(c.GetHeader("x-auth-token"))
}

// UserID returns the authenticated caller id set by Authenticate.
func UserID(c *gin.Context) int64 {
	id, _ := c.Get(contextUserID)
	userID, _ := id.(int64)
	return userID
}

// UserEmail returns the authenticated caller email set by Authenticate.
func UserEmail(c *gin.Context) string {
	email, _ := c.Get(contextUserEmail)
	userEmail, _ := email.(string)
	return userEmail
}
