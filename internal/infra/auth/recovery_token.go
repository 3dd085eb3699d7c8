package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"sapzurro/internal/domain/service"
	"sapzurro/internal/errors"
)

// recoveryTokenBytes yields 256 bits of entropy per token.
const recoveryTokenBytes = 32

// recoveryTokenService issues single-use password recovery tokens. SHA-256 is
// enough here: the token is random, short-lived and single-use, not a password.
type recoveryTokenService struct{}

// NewRecoveryTokenService is the constructor for recoveryTokenService.
func NewRecoveryTokenService() service.RecoveryTokenService {
	return &recoveryTokenService{}
}

// Generate returns a fresh hex-encoded random token and its SHA-256 hex hash.
func (s *recoveryTokenService) Generate() (string, string, error) {
	raw := make([]byte, recoveryTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", "", errors.Wrap(err, "failed to read random bytes for recovery token")
	}

	plaintext := hex.EncodeToString(raw)

	return plaintext, s.Hash(plaintext), nil
}

// Hash computes the SHA-256 hex digest of a plaintext token.
func (s *recoveryTokenService) Hash(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))

	return hex.EncodeToString(sum[:])
}
