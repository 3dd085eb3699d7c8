package auth

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryTokenService_Generate(t *testing.T) {
	svc := NewRecoveryTokenService()

	plaintext, hash, err := svc.Generate()
	require.NoError(t, err)

	// 32 random bytes, hex encoded.
	raw, err := hex.DecodeString(plaintext)
	require.NoError(t, err)
	assert.Len(t, raw, recoveryTokenBytes)

	assert.NotEqual(t, plaintext, hash)
	assert.Equal(t, svc.Hash(plaintext), hash)
}

func TestRecoveryTokenService_TokensAreUnique(t *testing.T) {
	svc := NewRecoveryTokenService()

	first, _, err := svc.Generate()
	require.NoError(t, err)
	second, _, err := svc.Generate()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestRecoveryTokenService_HashIsDeterministic(t *testing.T) {
	svc := NewRecoveryTokenService()

	assert.Equal(t, svc.Hash("abc"), svc.Hash("abc"))
	assert.NotEqual(t, svc.Hash("abc"), svc.Hash("abd"))
}
