package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParseJWT(t *testing.T) {
	token, err := SignJWT("secret", "user-1", "client", 60)
	require.NoError(t, err)

	claims, err := ParseJWT("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "client", claims.Role)
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := SignJWT("secret", "user-1", "client", 60)
	require.NoError(t, err)

	_, err = ParseJWT("other", token)
	assert.Error(t, err)
}

func TestParseJWTGarbage(t *testing.T) {
	_, err := ParseJWT("secret", "not-a-token")
	assert.Error(t, err)
}
