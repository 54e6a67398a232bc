package server

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/role-taxonomy/internal/config"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: "jwt-test-secret", ExpirationHours: 1})
}

func TestGenerateAndValidateAdminToken(t *testing.T) {
	service := testJWTService()

	token, err := service.GenerateAdminToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "admin", claims.GetSubject())
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := testJWTService().GenerateAdminToken()
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "different-secret", ExpirationHours: 1})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	expired := NewJWTService(&config.JWTConfig{Secret: "jwt-test-secret", ExpirationHours: -1})
	token, err := expired.GenerateAdminToken()
	require.NoError(t, err)

	_, err = testJWTService().ValidateToken(token)
	assert.ErrorContains(t, err, "expired")
}

func TestValidateTokenRejectsNonAdminSubject(t *testing.T) {
	service := testJWTService()

	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-42",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims.RegisteredClaims).
		SignedString([]byte("jwt-test-secret"))
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorContains(t, err, "subject")
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	service := testJWTService()

	_, err := service.ValidateToken("")
	assert.Error(t, err)

	_, err = service.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestAsTokenValidator(t *testing.T) {
	service := testJWTService()
	token, err := service.GenerateAdminToken()
	require.NoError(t, err)

	validator := service.AsTokenValidator()
	subject, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject.GetSubject())
}
