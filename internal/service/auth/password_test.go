package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, hasher.Compare(hash, "secret123"))
	assert.Error(t, hasher.Compare(hash, "wrong-password"))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("secret123")
	require.NoError(t, err)
	second, err := hasher.Hash("secret123")
	require.NoError(t, err)

	// Same password, different salt, different hash; both verify.
	assert.NotEqual(t, first, second)
	assert.NoError(t, hasher.Compare(first, "secret123"))
	assert.NoError(t, hasher.Compare(second, "secret123"))
}

func TestBcryptHasher_CompareRejectsNonHash(t *testing.T) {
	hasher := NewBcryptHasher()

	// A stored sentinel or corrupt value is never a valid bcrypt hash.
	assert.Error(t, hasher.Compare("admin", "admin"))
}
