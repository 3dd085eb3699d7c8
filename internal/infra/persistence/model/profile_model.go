package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'perfiles' table. Rows are seeded with the schema.
type ProfileModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"column:nombre;type:varchar(50);unique;not null"`
	Description string    `gorm:"column:descripcion;type:varchar(255)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "perfiles"
}
