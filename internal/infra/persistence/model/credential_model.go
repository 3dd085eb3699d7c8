package model

import (
	"time"

	"github.com/google/uuid"
)

// CredentialModel mirrors the 'credenciales' table. Each row binds one login
// name to one person. The reset token is stored hashed, never in plaintext.
type CredentialModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PersonID            uuid.UUID  `gorm:"column:persona_id;type:uuid;not null;unique"`
	ProfileID           uuid.UUID  `gorm:"column:perfil_id;type:uuid;not null"`
	LoginName           string     `gorm:"column:usuario;type:varchar(100);unique;not null"`
	PasswordHash        string     `gorm:"column:contrasena_hash;type:varchar(255);not null"`
	Provider            string     `gorm:"column:proveedor;type:varchar(20);not null;default:local"`
	Status              string     `gorm:"column:estado;type:varchar(20);not null;default:activo"`
	ResetTokenHash      *string    `gorm:"column:token_recuperacion_hash;type:char(64)"`
	ResetTokenExpiresAt *time.Time `gorm:"column:token_recuperacion_expira"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Profile *ProfileModel `gorm:"foreignKey:ProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credenciales"
}
