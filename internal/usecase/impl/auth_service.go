// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"sapzurro/config"
	deliverycontext "sapzurro/internal/delivery/context"
	"sapzurro/internal/domain/entity"
	domainerrors "sapzurro/internal/domain/errors"
	"sapzurro/internal/domain/repository"
	"sapzurro/internal/domain/service"
	"sapzurro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager       repository.TransactionManager
	personRepo      repository.PersonRepository
	credentialRepo  repository.CredentialRepository
	profileRepo     repository.ProfileRepository
	hasher          service.PasswordHasher
	tokenService    service.TokenService
	recoveryTokens  service.RecoveryTokenService
	mailer          service.RecoveryMailer
	recoveryBaseURL string
	recoveryTTL     time.Duration
	logger          *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	PersonRepo     repository.PersonRepository
	CredentialRepo repository.CredentialRepository
	ProfileRepo    repository.ProfileRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	RecoveryTokens service.RecoveryTokenService
	Mailer         service.RecoveryMailer
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	recoveryBaseURL := ""
	recoveryTTL := time.Hour
	if params.Config != nil && params.Config.Recovery != nil {
		recoveryBaseURL = params.Config.Recovery.BaseURL
		if params.Config.Recovery.TokenTTL > 0 {
			recoveryTTL = params.Config.Recovery.TokenTTL
		}
	}

	return &authService{
		txManager:       params.TxManager,
		personRepo:      params.PersonRepo,
		credentialRepo:  params.CredentialRepo,
		profileRepo:     params.ProfileRepo,
		hasher:          params.Hasher,
		tokenService:    params.TokenService,
		recoveryTokens:  params.RecoveryTokens,
		mailer:          params.Mailer,
		recoveryBaseURL: recoveryBaseURL,
		recoveryTTL:     recoveryTTL,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// registrationPlan captures what differs between visitor and ally registration.
type registrationPlan struct {
	input       usecase.RegisterInput
	profileName string
	status      entity.AccountStatus
	decorate    func(*entity.Person)
	issueToken  bool
}

// Register creates a visitor account. The credential is active immediately and
// a session token is returned.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return srv.executeRegistration(ctx, registrationPlan{
		input:       normalizeRegisterInput(input),
		profileName: entity.ProfileUser,
		status:      entity.AccountStatusActive,
		issueToken:  true,
	})
}

// RegisterAlly creates an ally account. The credential starts pending and no
// token is issued until an administrator approves it.
func (srv *authService) RegisterAlly(ctx context.Context, input usecase.RegisterAllyInput) (*usecase.RegisterOutput, error) {
	businessName := strings.TrimSpace(input.BusinessName)
	businessType := strings.TrimSpace(input.BusinessType)
	businessDesc := strings.TrimSpace(input.BusinessDesc)

	if businessName == "" || businessType == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("business name and type are required for ally registration")
	}

	// Allies always get the "aliado" profile; a caller-supplied profile id is ignored.
	input.ProfileID = nil

	return srv.executeRegistration(ctx, registrationPlan{
		input:       normalizeRegisterInput(input.RegisterInput),
		profileName: entity.ProfileAlly,
		status:      entity.AccountStatusPending,
		decorate: func(person *entity.Person) {
			person.BusinessName = businessName
			person.BusinessType = businessType
			person.BusinessDesc = businessDesc
		},
	})
}

func (srv *authService) executeRegistration(ctx context.Context, plan registrationPlan) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration",
		slog.String("profile", plan.profileName),
		slog.String("loginName", plan.input.LoginName),
	)

	if err := validateRegisterInput(plan.input); err != nil {
		return nil, err
	}

	// bcrypt is CPU-bound; hash before opening the transaction.
	passwordHash, err := srv.hasher.Hash(plan.input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	var (
		person     *entity.Person
		credential *entity.Credential
		profile    *entity.Profile
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		personRepo := repoFactory.PersonRepo()
		credentialRepo := repoFactory.CredentialRepo()
		profileRepo := repoFactory.ProfileRepo()

		var txErr error
		profile, txErr = resolveRegistrationProfile(ctx, plan, profileRepo)
		if txErr != nil {
			return txErr
		}

		person, txErr = srv.resolveRegistrationPerson(ctx, plan, personRepo, credentialRepo)
		if txErr != nil {
			return txErr
		}

		if _, txErr = credentialRepo.FindByLoginName(ctx, plan.input.LoginName); txErr == nil {
			return domainerrors.ErrLoginNameTaken
		} else if !errors.Is(txErr, repository.ErrCredentialNotFound) {
			return errors.Wrap(txErr, "failed to check login name availability")
		}

		credential = &entity.Credential{
			PersonID:     person.ID,
			ProfileID:    profile.ID,
			LoginName:    plan.input.LoginName,
			PasswordHash: passwordHash,
			Provider:     entity.AuthProviderLocal,
			Status:       plan.status,
		}

		return credentialRepo.Create(ctx, credential)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed",
			slog.String("profile", plan.profileName),
			slog.String("loginName", plan.input.LoginName),
			slog.Any("error", err),
		)

		return nil, err
	}

	output := &usecase.RegisterOutput{
		User: buildPublicUser(person, credential, profile.Name),
	}

	if plan.issueToken {
		token, err := srv.tokenService.GenerateToken(credential.ID, credential.LoginName, profile.Name)
		if err != nil {
			srv.log(ctx).Error("Failed to generate session token after registration", slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to generate session token")
		}
		output.Token = token
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("credentialID", credential.ID))

	return output, nil
}

// resolveRegistrationProfile honors an explicitly requested profile id and
// falls back to the plan's default profile name otherwise.
func resolveRegistrationProfile(
	ctx context.Context,
	plan registrationPlan,
	profileRepo repository.ProfileRepository,
) (*entity.Profile, error) {
	if plan.input.ProfileID != nil {
		profile, err := profileRepo.FindByID(ctx, *plan.input.ProfileID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown profile")
			}

			return nil, errors.Wrap(err, "failed to resolve requested profile")
		}

		return profile, nil
	}

	profile, err := profileRepo.FindByName(ctx, plan.profileName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve registration profile")
	}

	return profile, nil
}

// resolveRegistrationPerson reuses a credential-less person row matching the
// email, otherwise creates a fresh one. A person who already has a credential
// means the email is taken.
func (srv *authService) resolveRegistrationPerson(
	ctx context.Context,
	plan registrationPlan,
	personRepo repository.PersonRepository,
	credentialRepo repository.CredentialRepository,
) (*entity.Person, error) {
	existing, err := personRepo.FindByEmail(ctx, plan.input.Email)
	if err != nil && !errors.Is(err, repository.ErrPersonNotFound) {
		return nil, errors.Wrap(err, "failed to look up person by email")
	}

	if existing != nil {
		if _, err := credentialRepo.FindByPersonID(ctx, existing.ID); err == nil {
			return nil, domainerrors.ErrEmailInUse
		} else if !errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, errors.Wrap(err, "failed to check existing credential")
		}

		applyRegistrationFields(existing, plan)
		if err := personRepo.Update(ctx, existing); err != nil {
			return nil, errors.Wrap(err, "failed to update existing person during registration")
		}

		return existing, nil
	}

	person := &entity.Person{Status: entity.RecordStatusActive}
	applyRegistrationFields(person, plan)
	if err := personRepo.Create(ctx, person); err != nil {
		return nil, errors.Wrap(err, "failed to create person during registration")
	}

	return person, nil
}

func applyRegistrationFields(person *entity.Person, plan registrationPlan) {
	person.GivenNames = plan.input.GivenNames
	person.FamilyNames = plan.input.FamilyNames
	person.Email = plan.input.Email
	person.Phone = plan.input.Phone
	person.Address = plan.input.Address
	person.DocumentType = plan.input.DocumentType
	person.DocumentNumber = plan.input.DocumentNumber
	if plan.decorate != nil {
		plan.decorate(person)
	}
}

// Login resolves the identifier, checks the password and issues a session token.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	identifier := strings.TrimSpace(input.Identifier)
	srv.log(ctx).Debug("Starting login", slog.String("identifier", identifier))

	credential, err := srv.resolveLoginCredential(ctx, identifier)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("identifier", identifier), slog.Any("error", err))

		return nil, err
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("identifier", identifier), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !credential.Status.CanLogin() {
		srv.log(ctx).Warn("Login rejected for inactive account", slog.Any("credentialID", credential.ID))

		return nil, domainerrors.ErrInactiveAccount
	}

	user, profileName, err := srv.loadPublicUser(ctx, credential)
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.GenerateToken(credential.ID, credential.LoginName, profileName)
	if err != nil {
		srv.log(ctx).Error("Failed to generate session token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("credentialID", credential.ID))

	return &usecase.LoginOutput{User: user, Token: token}, nil
}

// resolveLoginCredential maps an identifier to a credential. Emails go through
// the person table; anything else is treated as a login name. Unknown
// identifiers collapse into the generic invalid-credentials error.
func (srv *authService) resolveLoginCredential(ctx context.Context, identifier string) (*entity.Credential, error) {
	if identifier == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if strings.Contains(identifier, "@") {
		person, err := srv.personRepo.FindByEmail(ctx, strings.ToLower(identifier))
		if err != nil {
			if errors.Is(err, repository.ErrPersonNotFound) {
				return nil, domainerrors.ErrInvalidCredentials
			}

			return nil, errors.Wrap(err, "failed to resolve login email")
		}

		credential, err := srv.credentialRepo.FindByPersonID(ctx, person.ID)
		if err != nil {
			if errors.Is(err, repository.ErrCredentialNotFound) {
				return nil, domainerrors.ErrInvalidCredentials
			}

			return nil, errors.Wrap(err, "failed to resolve credential for person")
		}

		return credential, nil
	}

	credential, err := srv.credentialRepo.FindByLoginName(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to resolve credential by login name")
	}

	return credential, nil
}

// ForgotPassword issues a recovery token and mails the reset link. It returns
// nil for unknown emails so the endpoint cannot be used to enumerate accounts.
func (srv *authService) ForgotPassword(ctx context.Context, input usecase.ForgotPasswordInput) error {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Info("Password recovery requested")

	person, err := srv.personRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			srv.log(ctx).Debug("Password recovery for unknown email, ignoring")

			return nil
		}

		return errors.Wrap(err, "failed to look up person for password recovery")
	}

	credential, err := srv.credentialRepo.FindByPersonID(ctx, person.ID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			srv.log(ctx).Debug("Password recovery for person without credential, ignoring")

			return nil
		}

		return errors.Wrap(err, "failed to look up credential for password recovery")
	}

	plaintext, tokenHash, err := srv.recoveryTokens.Generate()
	if err != nil {
		return errors.Wrap(err, "failed to generate recovery token")
	}

	expiresAt := time.Now().Add(srv.recoveryTTL)
	if err := srv.credentialRepo.SetResetToken(ctx, credential.ID, tokenHash, expiresAt); err != nil {
		return errors.Wrap(err, "failed to store recovery token")
	}

	link := fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		strings.TrimRight(srv.recoveryBaseURL, "/"),
		url.QueryEscape(plaintext),
		url.QueryEscape(email),
	)

	// Mail delivery is best-effort: the token is already persisted and the
	// response must not reveal delivery problems.
	if err := srv.mailer.SendRecoveryEmail(ctx, email, link, person.GivenNames); err != nil {
		srv.log(ctx).Error("Failed to send recovery email", slog.Any("error", err))
	}

	return nil
}

// ResetPassword validates the recovery token and replaces the password. A used
// or superseded token never works twice.
func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	person, err := srv.personRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return domainerrors.ErrInvalidResetToken
		}

		return errors.Wrap(err, "failed to look up person for password reset")
	}

	credential, err := srv.credentialRepo.FindByPersonID(ctx, person.ID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return domainerrors.ErrInvalidResetToken
		}

		return errors.Wrap(err, "failed to look up credential for password reset")
	}

	if credential.ResetTokenHash == nil || *credential.ResetTokenHash != srv.recoveryTokens.Hash(input.Token) {
		srv.log(ctx).Warn("Password reset with invalid token", slog.Any("credentialID", credential.ID))

		return domainerrors.ErrInvalidResetToken
	}

	if !credential.HasLiveResetToken(time.Now()) {
		// Expired tokens are cleared so retries report them as invalid.
		if err := srv.credentialRepo.ClearResetToken(ctx, credential.ID); err != nil {
			srv.log(ctx).Error("Failed to clear expired recovery token", slog.Any("error", err))
		}

		return domainerrors.ErrExpiredResetToken
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash new password", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed
	}

	if err := srv.credentialRepo.UpdatePasswordHash(ctx, credential.ID, newHash); err != nil {
		return errors.Wrap(err, "failed to update password hash")
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("credentialID", credential.ID))

	return nil
}

// GetProfile returns the public payload for an authenticated credential.
func (srv *authService) GetProfile(ctx context.Context, credentialID uuid.UUID) (*usecase.PublicUser, error) {
	credential, err := srv.credentialRepo.FindByID(ctx, credentialID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load credential")
	}

	user, _, err := srv.loadPublicUser(ctx, credential)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// ApproveAlly activates a pending ally credential.
func (srv *authService) ApproveAlly(ctx context.Context, credentialID uuid.UUID) error {
	return srv.changeStatus(ctx, credentialID, entity.AccountStatusActive)
}

// Deactivate disables a credential. Rows are never deleted.
func (srv *authService) Deactivate(ctx context.Context, credentialID uuid.UUID) error {
	return srv.changeStatus(ctx, credentialID, entity.AccountStatusDisabled)
}

// Reactivate re-enables a disabled credential.
func (srv *authService) Reactivate(ctx context.Context, credentialID uuid.UUID) error {
	return srv.changeStatus(ctx, credentialID, entity.AccountStatusActive)
}

// changeStatus applies an account status transition after validating it against
// the state machine.
func (srv *authService) changeStatus(ctx context.Context, credentialID uuid.UUID, target entity.AccountStatus) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credentialRepo := repoFactory.CredentialRepo()

		credential, err := credentialRepo.FindByID(ctx, credentialID)
		if err != nil {
			if errors.Is(err, repository.ErrCredentialNotFound) {
				return domainerrors.ErrNotFound
			}

			return errors.Wrap(err, "failed to load credential for status change")
		}

		if credential.Status == target {
			return domainerrors.ErrInvalidStatusChange
		}
		if !credential.Status.CanTransitionTo(target) {
			return domainerrors.ErrInvalidStatusChange
		}

		return credentialRepo.UpdateStatus(ctx, credentialID, target)
	})
	if err != nil {
		srv.log(ctx).Warn("Account status change rejected",
			slog.Any("credentialID", credentialID),
			slog.String("target", string(target)),
			slog.Any("error", err),
		)

		return err
	}

	srv.log(ctx).Info("Account status changed",
		slog.Any("credentialID", credentialID),
		slog.String("target", string(target)),
	)

	return nil
}

// loadPublicUser assembles the client-safe payload for a credential.
func (srv *authService) loadPublicUser(ctx context.Context, credential *entity.Credential) (*usecase.PublicUser, string, error) {
	person, err := srv.personRepo.FindByID(ctx, credential.PersonID)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to load person for credential")
	}

	profile, err := srv.profileRepo.FindByID(ctx, credential.ProfileID)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to load profile for credential")
	}

	return buildPublicUser(person, credential, profile.Name), profile.Name, nil
}

func buildPublicUser(person *entity.Person, credential *entity.Credential, profileName string) *usecase.PublicUser {
	return &usecase.PublicUser{
		CredentialID: credential.ID,
		LoginName:    credential.LoginName,
		ProfileName:  profileName,
		GivenNames:   person.GivenNames,
		FamilyNames:  person.FamilyNames,
		Email:        person.Email,
		Status:       string(credential.Status),
	}
}

func normalizeRegisterInput(input usecase.RegisterInput) usecase.RegisterInput {
	input.LoginName = strings.TrimSpace(input.LoginName)
	input.GivenNames = strings.TrimSpace(input.GivenNames)
	input.FamilyNames = strings.TrimSpace(input.FamilyNames)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)
	input.Address = strings.TrimSpace(input.Address)
	input.DocumentType = strings.TrimSpace(input.DocumentType)
	input.DocumentNumber = strings.TrimSpace(input.DocumentNumber)

	return input
}

func validateRegisterInput(input usecase.RegisterInput) error {
	if input.LoginName == "" || input.Password == "" || input.Email == "" ||
		input.GivenNames == "" || input.FamilyNames == "" {
		return domainerrors.ErrValidationFailed
	}

	at := strings.Index(input.Email, "@")
	if at <= 0 || at == len(input.Email)-1 || !strings.Contains(input.Email[at:], ".") {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed email address")
	}

	return nil
}
