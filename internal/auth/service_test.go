package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/RiskyOsDev/ariesrobot/internal/auth"
)

func TestGenerateKey(t *testing.T) {
	rawKey, hash, err := auth.GenerateKey(bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(rawKey, auth.KeyPrefix))
	// 32 bytes -> 43 base64url characters without padding
	assert.Len(t, rawKey, len(auth.KeyPrefix)+43)

	// Verify bcrypt hash is valid
	err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(rawKey))
	assert.NoError(t, err)
}

func TestGenerateKey_Unique(t *testing.T) {
	k1, _, err := auth.GenerateKey(bcrypt.MinCost)
	require.NoError(t, err)
	k2, _, err := auth.GenerateKey(bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, k1, k2)
}

func TestVerify(t *testing.T) {
	rawKey, hash, err := auth.GenerateKey(bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, auth.Verify(hash, rawKey))
	assert.ErrorIs(t, auth.Verify(hash, rawKey+"x"), auth.ErrInvalidKey)
	assert.ErrorIs(t, auth.Verify(hash, ""), auth.ErrInvalidKey)
}
