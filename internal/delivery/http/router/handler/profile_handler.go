package handler

import (
	"log/slog"
	"net/http"

	"sapzurro/internal/delivery/http/response"
	"sapzurro/internal/domain/entity"
	"sapzurro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler serves the role reference data.
type ProfileHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

type profileView struct {
	ID          uuid.UUID `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
}

func toProfileView(p *entity.Profile) profileView {
	return profileView{
		ID:          p.ID,
		Nombre:      p.Name,
		Descripcion: p.Description,
	}
}

// List returns all role profiles.
func (h *ProfileHandler) List(c echo.Context) error {
	profiles, err := h.uc.ListProfiles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]profileView, 0, len(profiles))
	for _, p := range profiles {
		views = append(views, toProfileView(p))
	}

	return response.Success(c, http.StatusOK, views, "")
}
