package model

import (
	"time"

	"github.com/google/uuid"
)

// AccommodationModel mirrors the 'alojamientos' table.
type AccommodationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"column:nombre;type:varchar(150);not null"`
	Description string    `gorm:"column:descripcion;type:text"`
	Address     string    `gorm:"column:direccion;type:varchar(255)"`
	Phone       string    `gorm:"column:telefono;type:varchar(30)"`
	Email       string    `gorm:"column:correo;type:varchar(255)"`
	Capacity    int       `gorm:"column:capacidad"`
	Status      string    `gorm:"column:estado;type:varchar(20);not null;default:activo"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccommodationModel) TableName() string {
	return "alojamientos"
}

// ActivityTypeModel mirrors the 'tipos_actividad' table.
type ActivityTypeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"column:nombre;type:varchar(100);unique;not null"`
	Description string    `gorm:"column:descripcion;type:varchar(255)"`
	Status      string    `gorm:"column:estado;type:varchar(20);not null;default:activo"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivityTypeModel) TableName() string {
	return "tipos_actividad"
}

// ActivityModel mirrors the 'actividades' table.
type ActivityModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ActivityTypeID  uuid.UUID `gorm:"column:tipo_actividad_id;type:uuid;not null"`
	Name            string    `gorm:"column:nombre;type:varchar(150);not null"`
	Description     string    `gorm:"column:descripcion;type:text"`
	DurationMinutes int       `gorm:"column:duracion_minutos"`
	Price           float64   `gorm:"column:precio;type:numeric(12,2)"`
	Status          string    `gorm:"column:estado;type:varchar(20);not null;default:activo"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	ActivityType *ActivityTypeModel `gorm:"foreignKey:ActivityTypeID"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "actividades"
}

// TourRouteModel mirrors the 'rutas' table.
type TourRouteModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name            string    `gorm:"column:nombre;type:varchar(150);not null"`
	Description     string    `gorm:"column:descripcion;type:text"`
	DurationMinutes int       `gorm:"column:duracion_minutos"`
	Difficulty      string    `gorm:"column:dificultad;type:varchar(20)"`
	Status          string    `gorm:"column:estado;type:varchar(20);not null;default:activo"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (TourRouteModel) TableName() string {
	return "rutas"
}
