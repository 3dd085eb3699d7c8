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

// TourRouteHandler serves the tour route catalog endpoints.
type TourRouteHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewTourRouteHandler is the constructor for TourRouteHandler, injected by Fx.
func NewTourRouteHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *TourRouteHandler {
	return &TourRouteHandler{uc: uc, logger: logger}
}

type tourRouteRequest struct {
	Nombre          string `json:"nombre" validate:"required"`
	Descripcion     string `json:"descripcion"`
	DuracionMinutos int    `json:"duracion_minutos" validate:"gte=0"`
	Dificultad      string `json:"dificultad" validate:"omitempty,oneof=baja media alta"`
}

func (r *tourRouteRequest) toInput() usecase.TourRouteInput {
	return usecase.TourRouteInput{
		Name:            r.Nombre,
		Description:     r.Descripcion,
		DurationMinutes: r.DuracionMinutos,
		Difficulty:      r.Dificultad,
	}
}

type tourRouteView struct {
	ID              uuid.UUID `json:"id"`
	Nombre          string    `json:"nombre"`
	Descripcion     string    `json:"descripcion"`
	DuracionMinutos int       `json:"duracion_minutos"`
	Dificultad      string    `json:"dificultad"`
	Estado          string    `json:"estado"`
	CreadoEn        time.Time `json:"creado_en"`
}

func toTourRouteView(r *entity.TourRoute) tourRouteView {
	return tourRouteView{
		ID:              r.ID,
		Nombre:          r.Name,
		Descripcion:     r.Description,
		DuracionMinutos: r.DurationMinutes,
		Dificultad:      r.Difficulty,
		Estado:          string(r.Status),
		CreadoEn:        r.CreatedAt,
	}
}

// List returns the tour route catalog.
func (h *TourRouteHandler) List(c echo.Context) error {
	includeInactive := c.QueryParam("incluir_inactivos") == "true"

	routes, err := h.uc.ListTourRoutes(c.Request().Context(), includeInactive)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]tourRouteView, 0, len(routes))
	for _, r := range routes {
		views = append(views, toTourRouteView(r))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// Get returns a single tour route.
func (h *TourRouteHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	route, err := h.uc.GetTourRoute(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTourRouteView(route), "")
}

// Create adds a tour route (administrators only).
func (h *TourRouteHandler) Create(c echo.Context) error {
	var req tourRouteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Datos de ruta no válidos")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err.Error())
	}

	route, err := h.uc.CreateTourRoute(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTourRouteView(route), "Ruta creada")
}

// Update modifies a tour route (administrators only).
func (h *TourRouteHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req tourRouteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Datos de ruta no válidos")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err.Error())
	}

	route, err := h.uc.UpdateTourRoute(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTourRouteView(route), "Ruta actualizada")
}

// Delete soft-deactivates a tour route (administrators only).
func (h *TourRouteHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeactivateTourRoute(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Ruta desactivada")
}
