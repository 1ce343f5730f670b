package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, VerifyPassword("admin123", hash))
	assert.False(t, VerifyPassword("admin124", hash))
	assert.False(t, VerifyPassword("", hash))
	assert.True(t, IsBcryptHash(hash))
}

func TestIsBcryptHash(t *testing.T) {
	assert.False(t, IsBcryptHash("admin123"))
	assert.False(t, IsBcryptHash(""))
	assert.True(t, IsBcryptHash("$2a$10$abcdefghijklmnopqrstuv"))
	assert.True(t, IsBcryptHash("$2b$12$abcdefghijklmnopqrstuv"))
}
