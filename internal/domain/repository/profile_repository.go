package repository

import (
	"context"
	"errors"

	"sapzurro/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository reads the role reference data.
type ProfileRepository interface {
	// FindByID retrieves a profile by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindByName retrieves a profile by its unique name.
	FindByName(ctx context.Context, name string) (*entity.Profile, error)

	// List returns all profiles.
	List(ctx context.Context) ([]*entity.Profile, error)
}
