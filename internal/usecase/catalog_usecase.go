package usecase

import (
	"context"

	"sapzurro/internal/domain/entity"

	"github.com/google/uuid"
)

// AccommodationInput carries the writable fields of a lodging option.
type AccommodationInput struct {
	Name        string
	Description string
	Address     string
	Phone       string
	Email       string
	Capacity    int
}

// ActivityInput carries the writable fields of an activity.
type ActivityInput struct {
	ActivityTypeID  uuid.UUID
	Name            string
	Description     string
	DurationMinutes int
	Price           float64
}

// ActivityTypeInput carries the writable fields of an activity type.
type ActivityTypeInput struct {
	Name        string
	Description string
}

// TourRouteInput carries the writable fields of a tour route.
type TourRouteInput struct {
	Name            string
	Description     string
	DurationMinutes int
	Difficulty      string
}

// CatalogUsecase groups the tourism catalog operations. Reads are public;
// writes are gated to administrators at the delivery layer. Deletion is always
// a soft status flip.
type CatalogUsecase interface {
	ListAccommodations(ctx context.Context, includeInactive bool) ([]*entity.Accommodation, error)
	GetAccommodation(ctx context.Context, id uuid.UUID) (*entity.Accommodation, error)
	CreateAccommodation(ctx context.Context, input AccommodationInput) (*entity.Accommodation, error)
	UpdateAccommodation(ctx context.Context, id uuid.UUID, input AccommodationInput) (*entity.Accommodation, error)
	DeactivateAccommodation(ctx context.Context, id uuid.UUID) error

	ListActivities(ctx context.Context, includeInactive bool) ([]*entity.Activity, error)
	GetActivity(ctx context.Context, id uuid.UUID) (*entity.Activity, error)
	CreateActivity(ctx context.Context, input ActivityInput) (*entity.Activity, error)
	UpdateActivity(ctx context.Context, id uuid.UUID, input ActivityInput) (*entity.Activity, error)
	DeactivateActivity(ctx context.Context, id uuid.UUID) error

	ListActivityTypes(ctx context.Context, includeInactive bool) ([]*entity.ActivityType, error)
	CreateActivityType(ctx context.Context, input ActivityTypeInput) (*entity.ActivityType, error)
	UpdateActivityType(ctx context.Context, id uuid.UUID, input ActivityTypeInput) (*entity.ActivityType, error)
	DeactivateActivityType(ctx context.Context, id uuid.UUID) error

	ListTourRoutes(ctx context.Context, includeInactive bool) ([]*entity.TourRoute, error)
	GetTourRoute(ctx context.Context, id uuid.UUID) (*entity.TourRoute, error)
	CreateTourRoute(ctx context.Context, input TourRouteInput) (*entity.TourRoute, error)
	UpdateTourRoute(ctx context.Context, id uuid.UUID, input TourRouteInput) (*entity.TourRoute, error)
	DeactivateTourRoute(ctx context.Context, id uuid.UUID) error

	ListProfiles(ctx context.Context) ([]*entity.Profile, error)
}
