package postgres

import (
	"context"

	"sapzurro/internal/domain/entity"
	domainerrors "sapzurro/internal/domain/errors"
	"sapzurro/internal/domain/repository"
	"sapzurro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// activityRepository implements the domain's ActivityRepository interface using
// GORM. It covers both activities and their type catalog.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (repo *activityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	var activityM model.ActivityModel
	if err := repo.db.WithContext(ctx).First(&activityM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityNotFound
		}

		return nil, errors.Wrap(err, "failed to find activity by id")
	}

	return toActivityDomain(&activityM), nil
}

func (repo *activityRepository) List(ctx context.Context, onlyActive bool) ([]*entity.Activity, error) {
	query := repo.db.WithContext(ctx).Order("nombre")
	if onlyActive {
		query = query.Where("estado = ?", string(entity.RecordStatusActive))
	}

	var activityMs []model.ActivityModel
	if err := query.Find(&activityMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	activities := make([]*entity.Activity, 0, len(activityMs))
	for i := range activityMs {
		activities = append(activities, toActivityDomain(&activityMs[i]))
	}

	return activities, nil
}

func (repo *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	activityM := fromActivityDomain(activity)

	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrActivityTypeNotFound
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity")
	}

	activity.ID = activityM.ID
	activity.CreatedAt = activityM.CreatedAt
	activity.UpdatedAt = activityM.UpdatedAt

	return nil
}

func (repo *activityRepository) Update(ctx context.Context, activity *entity.Activity) error {
	activityM := fromActivityDomain(activity)

	if err := repo.db.WithContext(ctx).Save(activityM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrActivityTypeNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update activity")
	}

	activity.UpdatedAt = activityM.UpdatedAt

	return nil
}

func (repo *activityRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RecordStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ActivityModel{}).
		Where("id = ?", id).
		Update("estado", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update activity status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrActivityNotFound
	}

	return nil
}

func (repo *activityRepository) FindTypeByID(ctx context.Context, id uuid.UUID) (*entity.ActivityType, error) {
	var typeM model.ActivityTypeModel
	if err := repo.db.WithContext(ctx).First(&typeM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to find activity type by id")
	}

	return toActivityTypeDomain(&typeM), nil
}

func (repo *activityRepository) ListTypes(ctx context.Context, onlyActive bool) ([]*entity.ActivityType, error) {
	query := repo.db.WithContext(ctx).Order("nombre")
	if onlyActive {
		query = query.Where("estado = ?", string(entity.RecordStatusActive))
	}

	var typeMs []model.ActivityTypeModel
	if err := query.Find(&typeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list activity types")
	}

	types := make([]*entity.ActivityType, 0, len(typeMs))
	for i := range typeMs {
		types = append(types, toActivityTypeDomain(&typeMs[i]))
	}

	return types, nil
}

func (repo *activityRepository) CreateType(ctx context.Context, activityType *entity.ActivityType) error {
	typeM := fromActivityTypeDomain(activityType)

	if err := repo.db.WithContext(ctx).Create(typeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("activity type name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity type")
	}

	activityType.ID = typeM.ID
	activityType.CreatedAt = typeM.CreatedAt
	activityType.UpdatedAt = typeM.UpdatedAt

	return nil
}

func (repo *activityRepository) UpdateType(ctx context.Context, activityType *entity.ActivityType) error {
	typeM := fromActivityTypeDomain(activityType)

	if err := repo.db.WithContext(ctx).Save(typeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("activity type name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update activity type")
	}

	activityType.UpdatedAt = typeM.UpdatedAt

	return nil
}

func (repo *activityRepository) UpdateTypeStatus(ctx context.Context, id uuid.UUID, status entity.RecordStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ActivityTypeModel{}).
		Where("id = ?", id).
		Update("estado", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update activity type status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrActivityTypeNotFound
	}

	return nil
}

func toActivityDomain(data *model.ActivityModel) *entity.Activity {
	if data == nil {
		return nil
	}

	return &entity.Activity{
		ID:              data.ID,
		ActivityTypeID:  data.ActivityTypeID,
		Name:            data.Name,
		Description:     data.Description,
		DurationMinutes: data.DurationMinutes,
		Price:           data.Price,
		Status:          entity.RecordStatus(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromActivityDomain(data *entity.Activity) *model.ActivityModel {
	if data == nil {
		return nil
	}

	status := data.Status
	if status == "" {
		status = entity.RecordStatusActive
	}

	return &model.ActivityModel{
		ID:              data.ID,
		ActivityTypeID:  data.ActivityTypeID,
		Name:            data.Name,
		Description:     data.Description,
		DurationMinutes: data.DurationMinutes,
		Price:           data.Price,
		Status:          string(status),
	}
}

func toActivityTypeDomain(data *model.ActivityTypeModel) *entity.ActivityType {
	if data == nil {
		return nil
	}

	return &entity.ActivityType{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Status:      entity.RecordStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromActivityTypeDomain(data *entity.ActivityType) *model.ActivityTypeModel {
	if data == nil {
		return nil
	}

	status := data.Status
	if status == "" {
		status = entity.RecordStatusActive
	}

	return &model.ActivityTypeModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Status:      string(status),
	}
}
