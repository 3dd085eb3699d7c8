package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential represents one login identity bound to exactly one Person.
// The plaintext reset token is never stored, only its SHA-256 hash; at most one
// non-expired reset token is live at a time.
type Credential struct {
	ID                  uuid.UUID     // Unique identifier for this credential record.
	PersonID            uuid.UUID     // The Person this login belongs to.
	ProfileID           uuid.UUID     // Role reference (administrador/usuario/aliado).
	LoginName           string        // Globally unique login name ("usuario").
	PasswordHash        string        // bcrypt hash of the password.
	Provider            AuthProvider  // Where the secret lives; only "local" issues passwords.
	Status              AccountStatus // pending / active / disabled.
	ResetTokenHash      *string       // SHA-256 hex of the outstanding recovery token, if any.
	ResetTokenExpiresAt *time.Time    // Expiry of the outstanding recovery token, if any.
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// HasLiveResetToken reports whether a reset token is set and not yet expired at
// the given instant.
func (c *Credential) HasLiveResetToken(now time.Time) bool {
	return c.ResetTokenHash != nil && c.ResetTokenExpiresAt != nil && now.Before(*c.ResetTokenExpiresAt)
}
