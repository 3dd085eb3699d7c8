package entity

import (
	"time"

	"github.com/google/uuid"
)

// Well-known profile names seeded with the schema. Profiles are read-mostly
// reference data; the name decides the authorization tier.
const (
	ProfileAdministrator = "administrador"
	ProfileUser          = "usuario"
	ProfileAlly          = "aliado"
)

// Profile is a named role a Credential references.
type Profile struct {
	ID          uuid.UUID
	Name        string // Unique role name.
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
