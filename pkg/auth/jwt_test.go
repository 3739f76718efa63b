package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.Generate(42, "nurse@clinic.example")
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "nurse@clinic.example", claims.Email)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", time.Hour).Generate(1, "a@b.com")
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", time.Hour).Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	token, err := (&jwtService{secret: []byte("s"), expiry: -time.Minute}).Generate(1, "a@b.com")
	require.NoError(t, err)

	_, err = NewJWTService("s", time.Hour).Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := NewJWTService("s", time.Hour).Validate("not-a-jwt")
	assert.Error(t, err)
}
