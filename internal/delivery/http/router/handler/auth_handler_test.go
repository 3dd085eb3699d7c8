package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpmiddleware "sapzurro/internal/delivery/http/middleware"
	"sapzurro/internal/delivery/http/response"
	domainerrors "sapzurro/internal/domain/errors"
	"sapzurro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthUsecase records inputs and returns canned outputs.
type fakeAuthUsecase struct {
	registerInput  usecase.RegisterInput
	allyInput      usecase.RegisterAllyInput
	loginInput     usecase.LoginInput
	forgotInput    usecase.ForgotPasswordInput
	resetInput     usecase.ResetPasswordInput
	profileRequest uuid.UUID

	registerErr error
	loginErr    error
}

func (f *fakeAuthUsecase) Register(_ context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	f.registerInput = input
	if f.registerErr != nil {
		return nil, f.registerErr
	}

	return &usecase.RegisterOutput{
		User:  &usecase.PublicUser{CredentialID: uuid.New(), LoginName: input.LoginName},
		Token: "token-123",
	}, nil
}

func (f *fakeAuthUsecase) RegisterAlly(_ context.Context, input usecase.RegisterAllyInput) (*usecase.RegisterOutput, error) {
	f.allyInput = input

	return &usecase.RegisterOutput{
		User: &usecase.PublicUser{CredentialID: uuid.New(), LoginName: input.LoginName, Status: "pendiente"},
	}, nil
}

func (f *fakeAuthUsecase) Login(_ context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	f.loginInput = input
	if f.loginErr != nil {
		return nil, f.loginErr
	}

	return &usecase.LoginOutput{
		User:  &usecase.PublicUser{CredentialID: uuid.New(), LoginName: input.Identifier},
		Token: "token-123",
	}, nil
}

func (f *fakeAuthUsecase) ForgotPassword(_ context.Context, input usecase.ForgotPasswordInput) error {
	f.forgotInput = input

	return nil
}

func (f *fakeAuthUsecase) ResetPassword(_ context.Context, input usecase.ResetPasswordInput) error {
	f.resetInput = input

	return nil
}

func (f *fakeAuthUsecase) GetProfile(_ context.Context, credentialID uuid.UUID) (*usecase.PublicUser, error) {
	f.profileRequest = credentialID

	return &usecase.PublicUser{CredentialID: credentialID, LoginName: "mperez"}, nil
}

func (f *fakeAuthUsecase) ApproveAlly(context.Context, uuid.UUID) error { return nil }
func (f *fakeAuthUsecase) Deactivate(context.Context, uuid.UUID) error { return nil }
func (f *fakeAuthUsecase) Reactivate(context.Context, uuid.UUID) error { return nil }

func newAuthTestServer(uc usecase.AuthUsecase) *echo.Echo {
	e := echo.New()
	errorMiddleware := httpmiddleware.NewErrorMiddleware(newDiscardLogger())
	e.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	h := NewAuthHandler(uc, newDiscardLogger())
	e.POST("/auth/register", h.Register)
	e.POST("/auth/register-aliado", h.RegisterAlly)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/forgot-password", h.ForgotPassword)
	e.POST("/auth/reset-password", h.ResetPassword)

	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestAuthHandler_Register(t *testing.T) {
	uc := &fakeAuthUsecase{}
	e := newAuthTestServer(uc)

	rec := postJSON(e, "/auth/register", `{
		"usuario": "mperez",
		"contrasena": "secreto123",
		"nombres": "Maria",
		"apellidos": "Perez",
		"correo": "maria@example.com"
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Registro exitoso", resp.Message)

	assert.Equal(t, "mperez", uc.registerInput.LoginName)
	assert.Equal(t, "secreto123", uc.registerInput.Password)
	assert.Equal(t, "maria@example.com", uc.registerInput.Email)
}

func TestAuthHandler_RegisterAcceptsPasswordAlias(t *testing.T) {
	uc := &fakeAuthUsecase{}
	e := newAuthTestServer(uc)

	rec := postJSON(e, "/auth/register", `{
		"usuario": "mperez",
		"password": "secreto123",
		"nombres": "Maria",
		"apellidos": "Perez",
		"correo": "maria@example.com"
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "secreto123", uc.registerInput.Password)
}

func TestAuthHandler_RegisterErrorEnvelope(t *testing.T) {
	uc := &fakeAuthUsecase{registerErr: domainerrors.ErrEmailInUse}
	e := newAuthTestServer(uc)

	rec := postJSON(e, "/auth/register", `{
		"usuario": "mperez",
		"contrasena": "secreto123",
		"nombres": "Maria",
		"apellidos": "Perez",
		"correo": "maria@example.com"
	}`)

	assert.Equal(t, http.StatusConflict, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "EMAIL_IN_USE", resp.Error.Code)
}

func TestAuthHandler_RegisterAlly(t *testing.T) {
	uc := &fakeAuthUsecase{}
	e := newAuthTestServer(uc)

	rec := postJSON(e, "/auth/register-aliado", `{
		"usuario": "posada-azul",
		"contrasena": "secreto123",
		"nombres": "Jorge",
		"apellidos": "Rios",
		"correo": "jorge@example.com",
		"nombre_negocio": "Posada Azul",
		"tipo_negocio": "alojamiento"
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Posada Azul", uc.allyInput.BusinessName)
	assert.Equal(t, "alojamiento", uc.allyInput.BusinessType)

	// Confirmation message only: no token and no user payload for pending allies.
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
	assert.Nil(t, resp.Data)
}

func TestAuthHandler_RegisterWithProfileID(t *testing.T) {
	uc := &fakeAuthUsecase{}
	e := newAuthTestServer(uc)

	profileID := uuid.New()
	rec := postJSON(e, "/auth/register", `{
		"usuario": "mperez",
		"contrasena": "secreto123",
		"nombres": "Maria",
		"apellidos": "Perez",
		"correo": "maria@example.com",
		"id_perfil": "`+profileID.String()+`"
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.registerInput.ProfileID)
	assert.Equal(t, profileID, *uc.registerInput.ProfileID)
}

func TestAuthHandler_RegisterWithoutProfileID(t *testing.T) {
	uc := &fakeAuthUsecase{}
	e := newAuthTestServer(uc)

	rec := postJSON(e, "/auth/register", `{
		"usuario": "mperez",
		"contrasena": "secreto123",
		"nombres": "Maria",
		"apellidos": "Perez",
		"correo": "maria@example.com"
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, uc.registerInput.ProfileID)
}

func TestAuthHandler_LoginPrefersEmailIdentifier(t *testing.T) {
	uc := &fakeAuthUsecase{}
	e := newAuthTestServer(uc)

	rec := postJSON(e, "/auth/login", `{
		"usuario": "mperez",
		"correo": "maria@example.com",
		"password": "secreto123"
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "maria@example.com", uc.loginInput.Identifier)
	assert.Equal(t, "secreto123", uc.loginInput.Password)
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	uc := &fakeAuthUsecase{loginErr: domainerrors.ErrInvalidCredentials}
	e := newAuthTestServer(uc)

	rec := postJSON(e, "/auth/login", `{"usuario": "mperez", "contrasena": "mala"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", resp.Error.Code)
}

func TestAuthHandler_ForgotPasswordAlwaysOK(t *testing.T) {
	uc := &fakeAuthUsecase{}
	e := newAuthTestServer(uc)

	rec := postJSON(e, "/auth/forgot-password", `{"correo": "nadie@example.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "Si el correo está registrado")
	assert.Equal(t, "nadie@example.com", uc.forgotInput.Email)
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	uc := &fakeAuthUsecase{}
	e := newAuthTestServer(uc)

	rec := postJSON(e, "/auth/reset-password", `{
		"token": "abc123",
		"correo": "maria@example.com",
		"contrasena": "nueva456"
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc123", uc.resetInput.Token)
	assert.Equal(t, "maria@example.com", uc.resetInput.Email)
	assert.Equal(t, "nueva456", uc.resetInput.NewPassword)
}

func TestAuthHandler_GetProfileReadsCredentialFromContext(t *testing.T) {
	uc := &fakeAuthUsecase{}
	h := NewAuthHandler(uc, newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/perfil", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	credentialID := uuid.New()
	c.Set(httpmiddleware.ContextKeyCredentialID, credentialID)

	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, credentialID, uc.profileRequest)
}

func TestAuthHandler_GetProfileWithoutClaims(t *testing.T) {
	uc := &fakeAuthUsecase{}
	h := NewAuthHandler(uc, newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/perfil", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.GetProfile(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
