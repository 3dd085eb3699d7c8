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

// accommodationRepository implements the domain's AccommodationRepository interface using GORM.
type accommodationRepository struct {
	db *gorm.DB
}

// NewAccommodationRepository is the constructor for accommodationRepository.
func NewAccommodationRepository(db *gorm.DB) repository.AccommodationRepository {
	return &accommodationRepository{db: db}
}

func (repo *accommodationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Accommodation, error) {
	var accommodationM model.AccommodationModel
	if err := repo.db.WithContext(ctx).First(&accommodationM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccommodationNotFound
		}

		return nil, errors.Wrap(err, "failed to find accommodation by id")
	}

	return toAccommodationDomain(&accommodationM), nil
}

func (repo *accommodationRepository) List(ctx context.Context, onlyActive bool) ([]*entity.Accommodation, error) {
	query := repo.db.WithContext(ctx).Order("nombre")
	if onlyActive {
		query = query.Where("estado = ?", string(entity.RecordStatusActive))
	}

	var accommodationMs []model.AccommodationModel
	if err := query.Find(&accommodationMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accommodations")
	}

	accommodations := make([]*entity.Accommodation, 0, len(accommodationMs))
	for i := range accommodationMs {
		accommodations = append(accommodations, toAccommodationDomain(&accommodationMs[i]))
	}

	return accommodations, nil
}

func (repo *accommodationRepository) Create(ctx context.Context, accommodation *entity.Accommodation) error {
	accommodationM := fromAccommodationDomain(accommodation)

	if err := repo.db.WithContext(ctx).Create(accommodationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create accommodation")
	}

	accommodation.ID = accommodationM.ID
	accommodation.CreatedAt = accommodationM.CreatedAt
	accommodation.UpdatedAt = accommodationM.UpdatedAt

	return nil
}

func (repo *accommodationRepository) Update(ctx context.Context, accommodation *entity.Accommodation) error {
	accommodationM := fromAccommodationDomain(accommodation)

	if err := repo.db.WithContext(ctx).Save(accommodationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update accommodation")
	}

	accommodation.UpdatedAt = accommodationM.UpdatedAt

	return nil
}

func (repo *accommodationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RecordStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccommodationModel{}).
		Where("id = ?", id).
		Update("estado", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update accommodation status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccommodationNotFound
	}

	return nil
}

func toAccommodationDomain(data *model.AccommodationModel) *entity.Accommodation {
	if data == nil {
		return nil
	}

	return &entity.Accommodation{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Address:     data.Address,
		Phone:       data.Phone,
		Email:       data.Email,
		Capacity:    data.Capacity,
		Status:      entity.RecordStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromAccommodationDomain(data *entity.Accommodation) *model.AccommodationModel {
	if data == nil {
		return nil
	}

	status := data.Status
	if status == "" {
		status = entity.RecordStatusActive
	}

	return &model.AccommodationModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Address:     data.Address,
		Phone:       data.Phone,
		Email:       data.Email,
		Capacity:    data.Capacity,
		Status:      string(status),
	}
}
