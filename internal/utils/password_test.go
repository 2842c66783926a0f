package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "password1", hash)

	assert.True(t, CheckPasswordHash("password1", hash))
	assert.False(t, CheckPasswordHash("password2", hash))
	assert.False(t, CheckPasswordHash("password1", "not-a-bcrypt-hash"))
}
