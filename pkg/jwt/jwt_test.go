package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewManager("test-secret", 1)
	userID := uuid.NewString()

	token, err := manager.GenerateToken(userID, "exampleuser", "business", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "exampleuser", claims.Username)
	assert.Equal(t, "business", claims.Role)
	assert.True(t, claims.Staff)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", 1).GenerateToken(uuid.NewString(), "user", "customer", false)
	require.NoError(t, err)

	_, err = NewManager("secret-b", 1).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	manager := NewManager("test-secret", -1)

	token, err := manager.GenerateToken(uuid.NewString(), "user", "customer", false)
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := NewManager("test-secret", 1).ValidateToken("not.a.token")
	assert.Error(t, err)
}
