// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and
// the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"sapzurro/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPersonNotFound is a domain-specific error returned when a person is not found.
var ErrPersonNotFound = errors.New("person not found")

// PersonRepository defines the standard operations for person persistence.
type PersonRepository interface {
	// FindByID retrieves a single person by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Person, error)

	// FindByEmail retrieves the active person with the given contact email.
	// Email is unique across active persons only.
	FindByEmail(ctx context.Context, email string) (*entity.Person, error)

	// Create persists a new person.
	Create(ctx context.Context, person *entity.Person) error

	// Update modifies an existing person.
	Update(ctx context.Context, person *entity.Person) error
}
