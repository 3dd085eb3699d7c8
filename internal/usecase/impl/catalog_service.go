package impl

import (
	"context"
	"log/slog"

	deliverycontext "sapzurro/internal/delivery/context"
	"sapzurro/internal/domain/entity"
	domainerrors "sapzurro/internal/domain/errors"
	"sapzurro/internal/domain/repository"
	"sapzurro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface. Catalog writes are
// single-row operations, so they go straight to the repositories without an
// explicit transaction.
type catalogService struct {
	accommodationRepo repository.AccommodationRepository
	activityRepo      repository.ActivityRepository
	tourRouteRepo     repository.TourRouteRepository
	profileRepo       repository.ProfileRepository
	logger            *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	AccommodationRepo repository.AccommodationRepository
	ActivityRepo      repository.ActivityRepository
	TourRouteRepo     repository.TourRouteRepository
	ProfileRepo       repository.ProfileRepository
	Logger            *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		accommodationRepo: params.AccommodationRepo,
		activityRepo:      params.ActivityRepo,
		tourRouteRepo:     params.TourRouteRepo,
		profileRepo:       params.ProfileRepo,
		logger:            params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Accommodations ---

func (srv *catalogService) ListAccommodations(ctx context.Context, includeInactive bool) ([]*entity.Accommodation, error) {
	return srv.accommodationRepo.List(ctx, !includeInactive)
}

func (srv *catalogService) GetAccommodation(ctx context.Context, id uuid.UUID) (*entity.Accommodation, error) {
	accommodation, err := srv.accommodationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccommodationNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, err
	}

	return accommodation, nil
}

func (srv *catalogService) CreateAccommodation(ctx context.Context, input usecase.AccommodationInput) (*entity.Accommodation, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("accommodation name is required")
	}

	accommodation := &entity.Accommodation{
		Name:        input.Name,
		Description: input.Description,
		Address:     input.Address,
		Phone:       input.Phone,
		Email:       input.Email,
		Capacity:    input.Capacity,
		Status:      entity.RecordStatusActive,
	}

	if err := srv.accommodationRepo.Create(ctx, accommodation); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Accommodation created", slog.Any("id", accommodation.ID))

	return accommodation, nil
}

func (srv *catalogService) UpdateAccommodation(ctx context.Context, id uuid.UUID, input usecase.AccommodationInput) (*entity.Accommodation, error) {
	accommodation, err := srv.GetAccommodation(ctx, id)
	if err != nil {
		return nil, err
	}

	accommodation.Name = input.Name
	accommodation.Description = input.Description
	accommodation.Address = input.Address
	accommodation.Phone = input.Phone
	accommodation.Email = input.Email
	accommodation.Capacity = input.Capacity

	if err := srv.accommodationRepo.Update(ctx, accommodation); err != nil {
		return nil, err
	}

	return accommodation, nil
}

func (srv *catalogService) DeactivateAccommodation(ctx context.Context, id uuid.UUID) error {
	if err := srv.accommodationRepo.UpdateStatus(ctx, id, entity.RecordStatusInactive); err != nil {
		if errors.Is(err, repository.ErrAccommodationNotFound) {
			return domainerrors.ErrNotFound
		}

		return err
	}

	srv.log(ctx).Info("Accommodation deactivated", slog.Any("id", id))

	return nil
}

// --- Activities ---

func (srv *catalogService) ListActivities(ctx context.Context, includeInactive bool) ([]*entity.Activity, error) {
	return srv.activityRepo.List(ctx, !includeInactive)
}

func (srv *catalogService) GetActivity(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	activity, err := srv.activityRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, err
	}

	return activity, nil
}

func (srv *catalogService) CreateActivity(ctx context.Context, input usecase.ActivityInput) (*entity.Activity, error) {
	if input.Name == "" || input.ActivityTypeID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("activity name and type are required")
	}

	// The referenced type must exist and be active.
	activityType, err := srv.activityRepo.FindTypeByID(ctx, input.ActivityTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrActivityTypeNotFound) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown activity type")
		}

		return nil, err
	}
	if !activityType.Status.IsActive() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("activity type is inactive")
	}

	activity := &entity.Activity{
		ActivityTypeID:  input.ActivityTypeID,
		Name:            input.Name,
		Description:     input.Description,
		DurationMinutes: input.DurationMinutes,
		Price:           input.Price,
		Status:          entity.RecordStatusActive,
	}

	if err := srv.activityRepo.Create(ctx, activity); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Activity created", slog.Any("id", activity.ID))

	return activity, nil
}

func (srv *catalogService) UpdateActivity(ctx context.Context, id uuid.UUID, input usecase.ActivityInput) (*entity.Activity, error) {
	activity, err := srv.GetActivity(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ActivityTypeID != uuid.Nil && input.ActivityTypeID != activity.ActivityTypeID {
		if _, err := srv.activityRepo.FindTypeByID(ctx, input.ActivityTypeID); err != nil {
			if errors.Is(err, repository.ErrActivityTypeNotFound) {
				return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown activity type")
			}

			return nil, err
		}
		activity.ActivityTypeID = input.ActivityTypeID
	}

	activity.Name = input.Name
	activity.Description = input.Description
	activity.DurationMinutes = input.DurationMinutes
	activity.Price = input.Price

	if err := srv.activityRepo.Update(ctx, activity); err != nil {
		return nil, err
	}

	return activity, nil
}

func (srv *catalogService) DeactivateActivity(ctx context.Context, id uuid.UUID) error {
	if err := srv.activityRepo.UpdateStatus(ctx, id, entity.RecordStatusInactive); err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return domainerrors.ErrNotFound
		}

		return err
	}

	srv.log(ctx).Info("Activity deactivated", slog.Any("id", id))

	return nil
}

// --- Activity types ---

func (srv *catalogService) ListActivityTypes(ctx context.Context, includeInactive bool) ([]*entity.ActivityType, error) {
	return srv.activityRepo.ListTypes(ctx, !includeInactive)
}

func (srv *catalogService) CreateActivityType(ctx context.Context, input usecase.ActivityTypeInput) (*entity.ActivityType, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("activity type name is required")
	}

	activityType := &entity.ActivityType{
		Name:        input.Name,
		Description: input.Description,
		Status:      entity.RecordStatusActive,
	}

	if err := srv.activityRepo.CreateType(ctx, activityType); err != nil {
		return nil, err
	}

	return activityType, nil
}

func (srv *catalogService) UpdateActivityType(ctx context.Context, id uuid.UUID, input usecase.ActivityTypeInput) (*entity.ActivityType, error) {
	activityType, err := srv.activityRepo.FindTypeByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrActivityTypeNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, err
	}

	activityType.Name = input.Name
	activityType.Description = input.Description

	if err := srv.activityRepo.UpdateType(ctx, activityType); err != nil {
		return nil, err
	}

	return activityType, nil
}

func (srv *catalogService) DeactivateActivityType(ctx context.Context, id uuid.UUID) error {
	if err := srv.activityRepo.UpdateTypeStatus(ctx, id, entity.RecordStatusInactive); err != nil {
		if errors.Is(err, repository.ErrActivityTypeNotFound) {
			return domainerrors.ErrNotFound
		}

		return err
	}

	return nil
}

// --- Tour routes ---

func (srv *catalogService) ListTourRoutes(ctx context.Context, includeInactive bool) ([]*entity.TourRoute, error) {
	return srv.tourRouteRepo.List(ctx, !includeInactive)
}

func (srv *catalogService) GetTourRoute(ctx context.Context, id uuid.UUID) (*entity.TourRoute, error) {
	route, err := srv.tourRouteRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTourRouteNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, err
	}

	return route, nil
}

func (srv *catalogService) CreateTourRoute(ctx context.Context, input usecase.TourRouteInput) (*entity.TourRoute, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("tour route name is required")
	}

	route := &entity.TourRoute{
		Name:            input.Name,
		Description:     input.Description,
		DurationMinutes: input.DurationMinutes,
		Difficulty:      input.Difficulty,
		Status:          entity.RecordStatusActive,
	}

	if err := srv.tourRouteRepo.Create(ctx, route); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Tour route created", slog.Any("id", route.ID))

	return route, nil
}

func (srv *catalogService) UpdateTourRoute(ctx context.Context, id uuid.UUID, input usecase.TourRouteInput) (*entity.TourRoute, error) {
	route, err := srv.GetTourRoute(ctx, id)
	if err != nil {
		return nil, err
	}

	route.Name = input.Name
	route.Description = input.Description
	route.DurationMinutes = input.DurationMinutes
	route.Difficulty = input.Difficulty

	if err := srv.tourRouteRepo.Update(ctx, route); err != nil {
		return nil, err
	}

	return route, nil
}

func (srv *catalogService) DeactivateTourRoute(ctx context.Context, id uuid.UUID) error {
	if err := srv.tourRouteRepo.UpdateStatus(ctx, id, entity.RecordStatusInactive); err != nil {
		if errors.Is(err, repository.ErrTourRouteNotFound) {
			return domainerrors.ErrNotFound
		}

		return err
	}

	srv.log(ctx).Info("Tour route deactivated", slog.Any("id", id))

	return nil
}

// --- Profiles ---

func (srv *catalogService) ListProfiles(ctx context.Context) ([]*entity.Profile, error) {
	return srv.profileRepo.List(ctx)
}
