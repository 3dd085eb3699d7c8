package handler

import (
	"log/slog"
	"net/http"

	httpmiddleware "sapzurro/internal/delivery/http/middleware"
	"sapzurro/internal/delivery/http/response"
	domainerrors "sapzurro/internal/domain/errors"
	"sapzurro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler exposes the administrator-only account lifecycle endpoints.
type AccountHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{uc: uc, logger: logger}
}

// Approve activates a pending ally account.
func (h *AccountHandler) Approve(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.ApproveAlly(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cuenta aprobada")
}

// Deactivate disables an account. Accounts are never deleted.
func (h *AccountHandler) Deactivate(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Deactivate(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cuenta desactivada")
}

// Reactivate re-enables a disabled account.
func (h *AccountHandler) Reactivate(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Reactivate(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cuenta reactivada")
}

// pathUUID parses a UUID path parameter or fails with a validation error.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("malformed id parameter")
	}

	return id, nil
}

// authenticatedCredentialID reads the credential id stored by the auth middleware.
func authenticatedCredentialID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(httpmiddleware.ContextKeyCredentialID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrInvalidCredentials
	}

	return id, nil
}
