package service

// RecoveryTokenService generates and hashes single-use password recovery
// tokens. Only the hash is ever persisted; the plaintext travels in the
// recovery link.
type RecoveryTokenService interface {
	// Generate returns a fresh random token and its one-way hash.
	Generate() (plaintext string, hash string, err error)

	// Hash computes the one-way hash of a plaintext token for comparison
	// against the stored value.
	Hash(plaintext string) string
}
