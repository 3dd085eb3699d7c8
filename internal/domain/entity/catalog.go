package entity

import (
	"time"

	"github.com/google/uuid"
)

// Accommodation is a lodging option presented on the site (hotels, hostels,
// cabins). Deactivated rows stay in the table so bookings keep their references.
type Accommodation struct {
	ID          uuid.UUID
	Name        string
	Description string
	Address     string
	Phone       string
	Email       string
	Capacity    int // Guests the place can host.
	Status      RecordStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ActivityType classifies activities (diving, hiking, gastronomy...).
type ActivityType struct {
	ID          uuid.UUID
	Name        string
	Description string
	Status      RecordStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Activity is a bookable activity offered in town.
type Activity struct {
	ID              uuid.UUID
	ActivityTypeID  uuid.UUID
	Name            string
	Description     string
	DurationMinutes int
	Price           float64 // COP.
	Status          RecordStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TourRoute is a walking or boat route promoted by the site. These are catalog
// descriptions, not geometry.
type TourRoute struct {
	ID              uuid.UUID
	Name            string
	Description     string
	DurationMinutes int
	Difficulty      string // baja / media / alta.
	Status          RecordStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
