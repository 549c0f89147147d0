package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestNewService(t *testing.T) {
	secretKey := "test-secret-key"
	service := NewService(secretKey)

	assert.NotNil(t, service)
	assert.Equal(t, []byte(secretKey), service.secretKey)
}

func TestGenerateAndValidateToken_RoundTrip(t *testing.T) {
	service := NewService("test-secret-key")
	userID := "user-123"
	role := "user"

	token, err := service.GenerateToken(userID, role)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, role, claims.Role)
	assert.Equal(t, userID, claims.Subject)
}

func TestValidateToken_AdminRole(t *testing.T) {
	service := NewService("test-secret-key")

	token, err := service.GenerateToken("admin-1", "admin")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateToken_Malformed(t *testing.T) {
	service := NewService("test-secret-key")

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)

	_, err = service.ValidateToken("")
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service1 := NewService("secret-key-1")
	service2 := NewService("secret-key-2")

	token, err := service1.GenerateToken("user-123", "user")
	assert.NoError(t, err)

	_, err = service2.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	secret := "test-secret-key"
	service := NewService(secret)

	// Sign a token with the same key and an expiry in the past.
	past := time.Now().Add(-time.Hour)
	claims := &Claims{
		UserID: "user-123",
		Role:   "user",
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "user-123",
			IssuedAt:  gojwt.NewNumericDate(past.Add(-tokenTTL)),
			ExpiresAt: gojwt.NewNumericDate(past),
		},
	}
	expired, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)

	_, err = service.ValidateToken(expired)
	assert.Error(t, err)
}

func TestValidateToken_WrongSigningMethod(t *testing.T) {
	service := NewService("test-secret-key")

	// alg=none tokens must never validate.
	unsigned, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{
		"user_id": "user-123",
		"role":    "admin",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = service.ValidateToken(unsigned)
	assert.Error(t, err)
}

func TestGenerateToken_ExpirySet(t *testing.T) {
	service := NewService("test-secret-key")

	token, err := service.GenerateToken("user-123", "user")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims.ExpiresAt)
	assert.True(t, time.Now().Before(claims.ExpiresAt.Time))
	assert.WithinDuration(t, time.Now().Add(tokenTTL), claims.ExpiresAt.Time, time.Minute)
}
