package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "pw1", hash)

	assert.True(t, VerifyPassword("pw1", hash))
	assert.False(t, VerifyPassword("pw2", hash))
	assert.False(t, VerifyPassword("", hash))
}

func TestHashPasswordIsSalted(t *testing.T) {
	h1, err := HashPassword("pw1")
	require.NoError(t, err)
	h2, err := HashPassword("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
