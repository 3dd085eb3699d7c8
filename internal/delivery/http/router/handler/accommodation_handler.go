package handler

import (
	"log/slog"
	"net/http"
	"time"

	"sapzurro/internal/delivery/http/response"
	"sapzurro/internal/domain/entity"
	"sapzurro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccommodationHandler serves the lodging catalog endpoints.
type AccommodationHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewAccommodationHandler is the constructor for AccommodationHandler, injected by Fx.
func NewAccommodationHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *AccommodationHandler {
	return &AccommodationHandler{uc: uc, logger: logger}
}

type accommodationRequest struct {
	Nombre      string `json:"nombre" validate:"required"`
	Descripcion string `json:"descripcion"`
	Direccion   string `json:"direccion"`
	Telefono    string `json:"telefono"`
	Correo      string `json:"correo" validate:"omitempty,email"`
	Capacidad   int    `json:"capacidad" validate:"gte=0"`
}

func (r *accommodationRequest) toInput() usecase.AccommodationInput {
	return usecase.AccommodationInput{
		Name:        r.Nombre,
		Description: r.Descripcion,
		Address:     r.Direccion,
		Phone:       r.Telefono,
		Email:       r.Correo,
		Capacity:    r.Capacidad,
	}
}

type accommodationView struct {
	ID          uuid.UUID `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	Direccion   string    `json:"direccion"`
	Telefono    string    `json:"telefono"`
	Correo      string    `json:"correo"`
	Capacidad   int       `json:"capacidad"`
	Estado      string    `json:"estado"`
	CreadoEn    time.Time `json:"creado_en"`
}

func toAccommodationView(a *entity.Accommodation) accommodationView {
	return accommodationView{
		ID:          a.ID,
		Nombre:      a.Name,
		Descripcion: a.Description,
		Direccion:   a.Address,
		Telefono:    a.Phone,
		Correo:      a.Email,
		Capacidad:   a.Capacity,
		Estado:      string(a.Status),
		CreadoEn:    a.CreatedAt,
	}
}

// List returns the lodging catalog. Inactive rows are hidden unless requested.
func (h *AccommodationHandler) List(c echo.Context) error {
	includeInactive := c.QueryParam("incluir_inactivos") == "true"

	accommodations, err := h.uc.ListAccommodations(c.Request().Context(), includeInactive)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]accommodationView, 0, len(accommodations))
	for _, a := range accommodations {
		views = append(views, toAccommodationView(a))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// Get returns a single lodging option.
func (h *AccommodationHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	accommodation, err := h.uc.GetAccommodation(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccommodationView(accommodation), "")
}

// Create adds a lodging option (administrators only).
func (h *AccommodationHandler) Create(c echo.Context) error {
	var req accommodationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Datos de alojamiento no válidos")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err.Error())
	}

	accommodation, err := h.uc.CreateAccommodation(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccommodationView(accommodation), "Alojamiento creado")
}

// Update modifies a lodging option (administrators only).
func (h *AccommodationHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req accommodationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Datos de alojamiento no válidos")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err.Error())
	}

	accommodation, err := h.uc.UpdateAccommodation(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccommodationView(accommodation), "Alojamiento actualizado")
}

// Delete soft-deactivates a lodging option (administrators only).
func (h *AccommodationHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeactivateAccommodation(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Alojamiento desactivado")
}
