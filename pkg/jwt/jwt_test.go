package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	token, err := manager.GenerateToken(42, 7, "alice@example.com", "Alice")
	require.NoError(t, err)

	claims, err := manager.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, uint(7), claims.TenantID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
	assert.NotEmpty(t, claims.ID)
}

func TestTokensCarryUniqueID(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	first, err := manager.GenerateToken(1, 1, "a@example.com", "A")
	require.NoError(t, err)
	second, err := manager.GenerateToken(1, 1, "a@example.com", "A")
	require.NoError(t, err)

	firstClaims, err := manager.VerifyToken(first)
	require.NoError(t, err)
	secondClaims, err := manager.VerifyToken(second)
	require.NoError(t, err)

	// jti作为吊销键，必须逐token唯一
	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute)

	token, err := manager.GenerateToken(1, 1, "a@example.com", "A")
	require.NoError(t, err)

	_, err = manager.VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-one", time.Hour).GenerateToken(1, 1, "a@example.com", "A")
	require.NoError(t, err)

	_, err = NewJWTManager("secret-two", time.Hour).VerifyToken(token)
	assert.Error(t, err)
}
