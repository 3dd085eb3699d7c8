package repository

import (
	"context"
	"errors"
	"time"

	"sapzurro/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCredentialNotFound is returned when a credential is not found.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository defines the standard operations for credential
// persistence. It is the Credential Store of the authentication subsystem.
type CredentialRepository interface {
	// FindByID retrieves a credential by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Credential, error)

	// FindByLoginName retrieves a credential by its globally unique login name.
	FindByLoginName(ctx context.Context, loginName string) (*entity.Credential, error)

	// FindByPersonID retrieves the credential bound to a person, if any.
	FindByPersonID(ctx context.Context, personID uuid.UUID) (*entity.Credential, error)

	// Create persists a new credential.
	Create(ctx context.Context, credential *entity.Credential) error

	// UpdateStatus moves a credential to a new account status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AccountStatus) error

	// SetResetToken stores the one-way hash and expiry of a freshly issued
	// recovery token, superseding any previous one.
	SetResetToken(ctx context.Context, id uuid.UUID, tokenHash string, expiresAt time.Time) error

	// ClearResetToken removes any stored recovery token fields.
	ClearResetToken(ctx context.Context, id uuid.UUID) error

	// UpdatePasswordHash replaces the password hash and clears any reset token
	// in the same write: a used or superseded token must not remain valid.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, newHash string) error
}
