// Package model holds the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// PersonModel mirrors the 'personas' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type PersonModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	GivenNames     string    `gorm:"column:nombres;type:varchar(100);not null"`
	FamilyNames    string    `gorm:"column:apellidos;type:varchar(100);not null"`
	DocumentType   string    `gorm:"column:tipo_documento;type:varchar(20)"`
	DocumentNumber string    `gorm:"column:numero_documento;type:varchar(30)"`
	Email          string    `gorm:"column:correo;type:varchar(255);not null"`
	Phone          string    `gorm:"column:telefono;type:varchar(30)"`
	Address        string    `gorm:"column:direccion;type:varchar(255)"`
	BusinessName   string    `gorm:"column:nombre_negocio;type:varchar(150)"`
	BusinessType   string    `gorm:"column:tipo_negocio;type:varchar(100)"`
	BusinessDesc   string    `gorm:"column:descripcion_negocio;type:text"`
	Status         string    `gorm:"column:estado;type:varchar(20);not null;default:activo"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Credential *CredentialModel `gorm:"foreignKey:PersonID"`
}

// TableName explicitly sets the table name for GORM.
func (PersonModel) TableName() string {
	return "personas"
}
