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

// personRepository implements the domain's PersonRepository interface using GORM.
type personRepository struct {
	db *gorm.DB
}

// NewPersonRepository is the constructor for personRepository.
func NewPersonRepository(db *gorm.DB) repository.PersonRepository {
	return &personRepository{db: db}
}

// FindByID retrieves a single person by their unique ID.
func (repo *personRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Person, error) {
	var personM model.PersonModel
	if err := repo.db.WithContext(ctx).First(&personM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPersonNotFound
		}

		return nil, errors.Wrap(err, "failed to find person by id")
	}

	return toPersonDomain(&personM), nil
}

// FindByEmail retrieves the active person with the given contact email.
// The email column is only unique among active rows.
func (repo *personRepository) FindByEmail(ctx context.Context, email string) (*entity.Person, error) {
	var personM model.PersonModel
	err := repo.db.WithContext(ctx).
		Where("correo = ? AND estado = ?", email, string(entity.RecordStatusActive)).
		First(&personM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPersonNotFound
		}

		return nil, errors.Wrap(err, "failed to find person by email")
	}

	return toPersonDomain(&personM), nil
}

// Create persists a new person.
func (repo *personRepository) Create(ctx context.Context, person *entity.Person) error {
	personM := fromPersonDomain(person)

	if err := repo.db.WithContext(ctx).Create(personM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailInUse
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required person fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create person")
	}

	person.ID = personM.ID
	person.CreatedAt = personM.CreatedAt
	person.UpdatedAt = personM.UpdatedAt

	return nil
}

// Update modifies an existing person.
func (repo *personRepository) Update(ctx context.Context, person *entity.Person) error {
	personM := fromPersonDomain(person)

	if err := repo.db.WithContext(ctx).Save(personM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailInUse
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update person")
	}

	person.UpdatedAt = personM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toPersonDomain converts a GORM PersonModel to a domain Person entity.
func toPersonDomain(data *model.PersonModel) *entity.Person {
	if data == nil {
		return nil
	}

	return &entity.Person{
		ID:             data.ID,
		GivenNames:     data.GivenNames,
		FamilyNames:    data.FamilyNames,
		DocumentType:   data.DocumentType,
		DocumentNumber: data.DocumentNumber,
		Email:          data.Email,
		Phone:          data.Phone,
		Address:        data.Address,
		BusinessName:   data.BusinessName,
		BusinessType:   data.BusinessType,
		BusinessDesc:   data.BusinessDesc,
		Status:         entity.RecordStatus(data.Status),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromPersonDomain converts a domain Person entity to a GORM PersonModel.
func fromPersonDomain(data *entity.Person) *model.PersonModel {
	if data == nil {
		return nil
	}

	status := data.Status
	if status == "" {
		status = entity.RecordStatusActive
	}

	return &model.PersonModel{
		ID:             data.ID,
		GivenNames:     data.GivenNames,
		FamilyNames:    data.FamilyNames,
		DocumentType:   data.DocumentType,
		DocumentNumber: data.DocumentNumber,
		Email:          data.Email,
		Phone:          data.Phone,
		Address:        data.Address,
		BusinessName:   data.BusinessName,
		BusinessType:   data.BusinessType,
		BusinessDesc:   data.BusinessDesc,
		Status:         string(status),
	}
}
