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

// tourRouteRepository implements the domain's TourRouteRepository interface using GORM.
type tourRouteRepository struct {
	db *gorm.DB
}

// NewTourRouteRepository is the constructor for tourRouteRepository.
func NewTourRouteRepository(db *gorm.DB) repository.TourRouteRepository {
	return &tourRouteRepository{db: db}
}

func (repo *tourRouteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TourRoute, error) {
	var routeM model.TourRouteModel
	if err := repo.db.WithContext(ctx).First(&routeM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTourRouteNotFound
		}

		return nil, errors.Wrap(err, "failed to find tour route by id")
	}

	return toTourRouteDomain(&routeM), nil
}

func (repo *tourRouteRepository) List(ctx context.Context, onlyActive bool) ([]*entity.TourRoute, error) {
	query := repo.db.WithContext(ctx).Order("nombre")
	if onlyActive {
		query = query.Where("estado = ?", string(entity.RecordStatusActive))
	}

	var routeMs []model.TourRouteModel
	if err := query.Find(&routeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tour routes")
	}

	routes := make([]*entity.TourRoute, 0, len(routeMs))
	for i := range routeMs {
		routes = append(routes, toTourRouteDomain(&routeMs[i]))
	}

	return routes, nil
}

func (repo *tourRouteRepository) Create(ctx context.Context, route *entity.TourRoute) error {
	routeM := fromTourRouteDomain(route)

	if err := repo.db.WithContext(ctx).Create(routeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tour route")
	}

	route.ID = routeM.ID
	route.CreatedAt = routeM.CreatedAt
	route.UpdatedAt = routeM.UpdatedAt

	return nil
}

func (repo *tourRouteRepository) Update(ctx context.Context, route *entity.TourRoute) error {
	routeM := fromTourRouteDomain(route)

	if err := repo.db.WithContext(ctx).Save(routeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update tour route")
	}

	route.UpdatedAt = routeM.UpdatedAt

	return nil
}

func (repo *tourRouteRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RecordStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TourRouteModel{}).
		Where("id = ?", id).
		Update("estado", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update tour route status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTourRouteNotFound
	}

	return nil
}

func toTourRouteDomain(data *model.TourRouteModel) *entity.TourRoute {
	if data == nil {
		return nil
	}

	return &entity.TourRoute{
		ID:              data.ID,
		Name:            data.Name,
		Description:     data.Description,
		DurationMinutes: data.DurationMinutes,
		Difficulty:      data.Difficulty,
		Status:          entity.RecordStatus(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromTourRouteDomain(data *entity.TourRoute) *model.TourRouteModel {
	if data == nil {
		return nil
	}

	status := data.Status
	if status == "" {
		status = entity.RecordStatusActive
	}

	return &model.TourRouteModel{
		ID:              data.ID,
		Name:            data.Name,
		Description:     data.Description,
		DurationMinutes: data.DurationMinutes,
		Difficulty:      data.Difficulty,
		Status:          string(status),
	}
}
