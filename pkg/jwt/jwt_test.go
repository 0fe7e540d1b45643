package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	util := NewJWTUtil("test-secret", time.Hour)

	token, err := util.GenerateToken("user-1", "driver@voltflow.app")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := util.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "driver@voltflow.app", claims.Email)
	assert.Equal(t, "voltflow-backend", claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := NewJWTUtil("secret-a", time.Hour).GenerateToken("user-1", "driver@voltflow.app")
	require.NoError(t, err)

	_, err = NewJWTUtil("secret-b", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := NewJWTUtil("test-secret", -time.Minute).GenerateToken("user-1", "driver@voltflow.app")
	require.NoError(t, err)

	_, err = NewJWTUtil("test-secret", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}
