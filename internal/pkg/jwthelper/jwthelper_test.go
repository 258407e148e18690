package jwthelper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	key := []byte("test-signing-key")

	token, claims, err := GenerateToken(key, 4, "test-agent/1.0")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, claims.ID)

	parsed, err := ParseToken(key, token)
	require.NoError(t, err)
	assert.Equal(t, uint(4), parsed.UserID)
	assert.Equal(t, "test-agent/1.0", parsed.UserAgent)
	assert.Equal(t, claims.ID, parsed.ID)
}

func TestParseToken_WrongKey(t *testing.T) {
	token, _, err := GenerateToken([]byte("right-key"), 4, "")
	require.NoError(t, err)

	_, err = ParseToken([]byte("wrong-key"), token)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken([]byte("test-signing-key"), "not.a.token")
	assert.Error(t, err)
}
