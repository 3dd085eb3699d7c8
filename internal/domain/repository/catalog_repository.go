package repository

import (
	"context"
	"errors"

	"sapzurro/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrAccommodationNotFound is returned when an accommodation is not found.
	ErrAccommodationNotFound = errors.New("accommodation not found")
	// ErrActivityNotFound is returned when an activity is not found.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrActivityTypeNotFound is returned when an activity type is not found.
	ErrActivityTypeNotFound = errors.New("activity type not found")
	// ErrTourRouteNotFound is returned when a tour route is not found.
	ErrTourRouteNotFound = errors.New("tour route not found")
)

// AccommodationRepository persists lodging catalog rows.
type AccommodationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Accommodation, error)
	// List returns catalog rows; onlyActive restricts to non-deactivated ones.
	List(ctx context.Context, onlyActive bool) ([]*entity.Accommodation, error)
	Create(ctx context.Context, accommodation *entity.Accommodation) error
	Update(ctx context.Context, accommodation *entity.Accommodation) error
	// UpdateStatus soft-deactivates or restores a row.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RecordStatus) error
}

// ActivityRepository persists activities and their types.
type ActivityRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error)
	List(ctx context.Context, onlyActive bool) ([]*entity.Activity, error)
	Create(ctx context.Context, activity *entity.Activity) error
	Update(ctx context.Context, activity *entity.Activity) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RecordStatus) error

	FindTypeByID(ctx context.Context, id uuid.UUID) (*entity.ActivityType, error)
	ListTypes(ctx context.Context, onlyActive bool) ([]*entity.ActivityType, error)
	CreateType(ctx context.Context, activityType *entity.ActivityType) error
	UpdateType(ctx context.Context, activityType *entity.ActivityType) error
	UpdateTypeStatus(ctx context.Context, id uuid.UUID, status entity.RecordStatus) error
}

// TourRouteRepository persists tour route catalog rows.
type TourRouteRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TourRoute, error)
	List(ctx context.Context, onlyActive bool) ([]*entity.TourRoute, error)
	Create(ctx context.Context, route *entity.TourRoute) error
	Update(ctx context.Context, route *entity.TourRoute) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RecordStatus) error
}
