package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sapzurro/config"
)

func newTestJWTService(t *testing.T, secret string, ttl time.Duration) *jwtService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{
		Auth: &config.AuthConfig{JWTSecret: secret, TokenTTL: ttl},
	})
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", time.Hour)
	credentialID := uuid.New()

	token, err := svc.GenerateToken(credentialID, "maria", "usuario")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, credentialID, claims.CredentialID)
	assert.Equal(t, "maria", claims.LoginName)
	assert.Equal(t, "usuario", claims.ProfileName)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", -time.Minute)

	token, err := svc.GenerateToken(uuid.New(), "maria", "usuario")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	signer := newTestJWTService(t, "secret-a", time.Hour)
	verifier := newTestJWTService(t, "secret-b", time.Hour)

	token, err := signer.GenerateToken(uuid.New(), "maria", "usuario")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_TokenDuration(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", 90*time.Minute)
	assert.Equal(t, 90*time.Minute, svc.TokenDuration())
}
