package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waitlist-simple/apperrors"
	"github.com/waitlist-simple/dto"
	"github.com/waitlist-simple/models"
)

func testUser() models.User {
	return models.User{
		ID:       "6a1f9c0e-0000-0000-0000-000000000001",
		Email:    "dev@example.com",
		Username: "dev",
		UserType: models.UserTypeDeveloper,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, expiresAt, err := GenerateToken(testUser())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "6a1f9c0e-0000-0000-0000-000000000001", claims.ID)
	assert.Equal(t, "dev@example.com", claims.Email)
	assert.Equal(t, "dev", claims.Username)
	assert.Equal(t, "developer", claims.UserType)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, _, err := GenerateToken(testUser())
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "a-different-secret")
	_, err = ValidateToken(token)
	require.Error(t, err)
	assert.Equal(t, "Invalid or expired token", err.Error())
	assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthorized))
}

func TestValidateToken_Expired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := dto.TokenClaims{
		ID:       "u1",
		Email:    "dev@example.com",
		UserType: "developer",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-3 * time.Hour)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ValidateToken(tokenString)
	require.Error(t, err)

	// Expiry and bad signature are indistinguishable to the caller
	assert.Equal(t, "Invalid or expired token", err.Error())
}

func TestValidateToken_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ValidateToken("not-a-jwt")
	require.Error(t, err)
	assert.Equal(t, "Invalid or expired token", err.Error())
}

func TestValidateToken_WrongSigningMethod(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	// alg=none tokens must be rejected
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString)
	assert.Error(t, err)
}
