// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new visitor account.
// Fields arrive already normalized by the delivery layer.
type RegisterInput struct {
	LoginName      string
	Password       string
	GivenNames     string
	FamilyNames    string
	Email          string
	Phone          string
	Address        string
	DocumentType   string
	DocumentNumber string

	// ProfileID optionally selects the role profile; nil falls back to the
	// standard "usuario" profile.
	ProfileID *uuid.UUID
}

// RegisterAllyInput defines the data required to register an ally (local
// business) account. Ally accounts start pending until an administrator
// approves them.
type RegisterAllyInput struct {
	RegisterInput

	BusinessName string
	BusinessType string
	BusinessDesc string
}

// LoginInput defines the data required to log in. Identifier is either the
// login name or the contact email.
type LoginInput struct {
	Identifier string
	Password   string
}

// ForgotPasswordInput starts the password recovery flow.
type ForgotPasswordInput struct {
	Email string
}

// ResetPasswordInput completes the password recovery flow.
type ResetPasswordInput struct {
	Token       string
	Email       string
	NewPassword string
}

// --- Output DTOs ---

// PublicUser is the account payload safe to return to clients. It never
// carries the password hash or reset token material.
type PublicUser struct {
	CredentialID uuid.UUID `json:"id_usuario"`
	LoginName    string    `json:"usuario"`
	ProfileName  string    `json:"perfil"`
	GivenNames   string    `json:"nombres"`
	FamilyNames  string    `json:"apellidos"`
	Email        string    `json:"correo"`
	Status       string    `json:"estado"`
}

// RegisterOutput returns the newly created account and its session token.
// Token is empty for ally registrations, which must wait for approval.
type RegisterOutput struct {
	User  *PublicUser
	Token string
}

// LoginOutput returns the account payload and a fresh session token.
type LoginOutput struct {
	User  *PublicUser
	Token string
}

// AuthUsecase defines the interface for account and session business
// operations. This is the contract the delivery layer depends on.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	RegisterAlly(ctx context.Context, input RegisterAllyInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// ForgotPassword never reveals whether the email exists; failures other
	// than storage errors are swallowed.
	ForgotPassword(ctx context.Context, input ForgotPasswordInput) error
	ResetPassword(ctx context.Context, input ResetPasswordInput) error

	// GetProfile returns the public payload for an authenticated credential.
	GetProfile(ctx context.Context, credentialID uuid.UUID) (*PublicUser, error)

	// Administrator-only account lifecycle operations.
	ApproveAlly(ctx context.Context, credentialID uuid.UUID) error
	Deactivate(ctx context.Context, credentialID uuid.UUID) error
	Reactivate(ctx context.Context, credentialID uuid.UUID) error
}
