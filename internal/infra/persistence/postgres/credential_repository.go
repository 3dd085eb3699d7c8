package postgres

import (
	"context"
	"time"

	"sapzurro/internal/domain/entity"
	domainerrors "sapzurro/internal/domain/errors"
	"sapzurro/internal/domain/repository"
	"sapzurro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// credentialRepository implements the domain's CredentialRepository interface using GORM.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// FindByID retrieves a credential by its unique ID.
func (repo *credentialRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Credential, error) {
	var credentialM model.CredentialModel
	if err := repo.db.WithContext(ctx).First(&credentialM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by id")
	}

	return toCredentialDomain(&credentialM), nil
}

// FindByLoginName retrieves a credential by its globally unique login name.
func (repo *credentialRepository) FindByLoginName(ctx context.Context, loginName string) (*entity.Credential, error) {
	var credentialM model.CredentialModel
	if err := repo.db.WithContext(ctx).First(&credentialM, "usuario = ?", loginName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by login name")
	}

	return toCredentialDomain(&credentialM), nil
}

// FindByPersonID retrieves the credential bound to a person, if any.
func (repo *credentialRepository) FindByPersonID(ctx context.Context, personID uuid.UUID) (*entity.Credential, error) {
	var credentialM model.CredentialModel
	if err := repo.db.WithContext(ctx).First(&credentialM, "persona_id = ?", personID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by person id")
	}

	return toCredentialDomain(&credentialM), nil
}

// Create persists a new credential.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	credentialM := fromCredentialDomain(credential)

	if err := repo.db.WithContext(ctx).Create(credentialM).Error; err != nil {
		if isUniqueViolationOn(err, "usuario") {
			return domainerrors.ErrLoginNameTaken
		}
		if isUniqueConstraintViolation(err) {
			// The only other unique constraint is persona_id.
			return domainerrors.ErrConflict.WrapMessage("person already has a credential")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid person or profile reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	credential.ID = credentialM.ID
	credential.CreatedAt = credentialM.CreatedAt
	credential.UpdatedAt = credentialM.UpdatedAt

	return nil
}

// UpdateStatus moves a credential to a new account status.
func (repo *credentialRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AccountStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("id = ?", id).
		Update("estado", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update credential status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

// SetResetToken stores the hash and expiry of a freshly issued recovery token,
// superseding any previous one.
func (repo *credentialRepository) SetResetToken(ctx context.Context, id uuid.UUID, tokenHash string, expiresAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"token_recuperacion_hash":   tokenHash,
			"token_recuperacion_expira": expiresAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to store reset token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

// ClearResetToken removes any stored recovery token fields.
func (repo *credentialRepository) ClearResetToken(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"token_recuperacion_hash":   nil,
			"token_recuperacion_expira": nil,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to clear reset token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

// UpdatePasswordHash replaces the password hash and clears the reset token in
// the same statement so a used token cannot survive the password change.
func (repo *credentialRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, newHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"contrasena_hash":           newHash,
			"token_recuperacion_hash":   nil,
			"token_recuperacion_expira": nil,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password hash")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCredentialDomain converts a GORM CredentialModel to a domain Credential entity.
func toCredentialDomain(data *model.CredentialModel) *entity.Credential {
	if data == nil {
		return nil
	}

	return &entity.Credential{
		ID:                  data.ID,
		PersonID:            data.PersonID,
		ProfileID:           data.ProfileID,
		LoginName:           data.LoginName,
		PasswordHash:        data.PasswordHash,
		Provider:            entity.AuthProvider(data.Provider),
		Status:              entity.AccountStatus(data.Status),
		ResetTokenHash:      data.ResetTokenHash,
		ResetTokenExpiresAt: data.ResetTokenExpiresAt,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromCredentialDomain converts a domain Credential entity to a GORM CredentialModel.
func fromCredentialDomain(data *entity.Credential) *model.CredentialModel {
	if data == nil {
		return nil
	}

	provider := data.Provider
	if provider == "" {
		provider = entity.AuthProviderLocal
	}

	return &model.CredentialModel{
		ID:                  data.ID,
		PersonID:            data.PersonID,
		ProfileID:           data.ProfileID,
		LoginName:           data.LoginName,
		PasswordHash:        data.PasswordHash,
		Provider:            string(provider),
		Status:              string(data.Status),
		ResetTokenHash:      data.ResetTokenHash,
		ResetTokenExpiresAt: data.ResetTokenExpiresAt,
	}
}
