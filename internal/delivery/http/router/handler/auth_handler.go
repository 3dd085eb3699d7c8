// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"sapzurro/internal/delivery/http/response"
	"sapzurro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for account and session handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

// registerRequest accepts both the Spanish field names used by the web client
// and their legacy English aliases.
type registerRequest struct {
	Usuario         string     `json:"usuario"`
	Contrasena      string     `json:"contrasena"`
	Password        string     `json:"password"`
	Nombres         string     `json:"nombres"`
	Apellidos       string     `json:"apellidos"`
	Correo          string     `json:"correo"`
	Telefono        string     `json:"telefono"`
	Direccion       string     `json:"direccion"`
	TipoDocumento   string     `json:"tipo_documento"`
	NumeroDocumento string     `json:"numero_documento"`
	IDPerfil        *uuid.UUID `json:"id_perfil"`
}

// password resolves the contrasena/password alias pair.
func (r *registerRequest) password() string {
	if r.Contrasena != "" {
		return r.Contrasena
	}

	return r.Password
}

func (r *registerRequest) toInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		LoginName:      r.Usuario,
		Password:       r.password(),
		GivenNames:     r.Nombres,
		FamilyNames:    r.Apellidos,
		Email:          r.Correo,
		Phone:          r.Telefono,
		Address:        r.Direccion,
		DocumentType:   r.TipoDocumento,
		DocumentNumber: r.NumeroDocumento,
		ProfileID:      r.IDPerfil,
	}
}

type registerAllyRequest struct {
	registerRequest

	NombreNegocio      string `json:"nombre_negocio"`
	TipoNegocio        string `json:"tipo_negocio"`
	DescripcionNegocio string `json:"descripcion_negocio"`
}

type loginRequest struct {
	Usuario    string `json:"usuario"`
	Correo     string `json:"correo"`
	Contrasena string `json:"contrasena"`
	Password   string `json:"password"`
}

// identifier prefers the email when both aliases are present.
func (r *loginRequest) identifier() string {
	if r.Correo != "" {
		return r.Correo
	}

	return r.Usuario
}

func (r *loginRequest) password() string {
	if r.Contrasena != "" {
		return r.Contrasena
	}

	return r.Password
}

type forgotPasswordRequest struct {
	Correo string `json:"correo"`
}

type resetPasswordRequest struct {
	Token      string `json:"token"`
	Correo     string `json:"correo"`
	Contrasena string `json:"contrasena"`
	Password   string `json:"password"`
}

func (r *resetPasswordRequest) password() string {
	if r.Contrasena != "" {
		return r.Contrasena
	}

	return r.Password
}

// Register handles visitor account registration.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Datos de registro no válidos")
	}

	output, err := h.uc.Register(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"user":  output.User,
		"token": output.Token,
	}, "Registro exitoso")
}

// RegisterAlly handles ally (local business) account registration. The account
// stays pending until an administrator approves it, so no token is returned.
func (h *AuthHandler) RegisterAlly(c echo.Context) error {
	var req registerAllyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Datos de registro no válidos")
	}

	input := usecase.RegisterAllyInput{
		RegisterInput: req.toInput(),
		BusinessName:  req.NombreNegocio,
		BusinessType:  req.TipoNegocio,
		BusinessDesc:  req.DescripcionNegocio,
	}

	// Confirmation only: the account stays pending, so neither a token nor the
	// user payload is returned.
	if _, err := h.uc.RegisterAlly(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil,
		"Registro recibido, tu cuenta será revisada por un administrador")
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Datos de inicio de sesión no válidos")
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Identifier: req.identifier(),
		Password:   req.password(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user":  output.User,
		"token": output.Token,
	}, "Inicio de sesión exitoso")
}

// ForgotPassword starts password recovery. The response never reveals whether
// the email is registered.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Solicitud no válida")
	}

	if err := h.uc.ForgotPassword(c.Request().Context(), usecase.ForgotPasswordInput{Email: req.Correo}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil,
		"Si el correo está registrado recibirás un enlace de recuperación")
}

// ResetPassword completes password recovery with a mailed token.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Solicitud no válida")
	}

	err := h.uc.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{
		Token:       req.Token,
		Email:       req.Correo,
		NewPassword: req.password(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Contraseña actualizada correctamente")
}

// GetProfile returns the authenticated account's public payload.
func (h *AuthHandler) GetProfile(c echo.Context) error {
	credentialID, err := authenticatedCredentialID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetProfile(c.Request().Context(), credentialID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}
