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

// ActivityHandler serves the activity and activity type catalog endpoints.
type ActivityHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewActivityHandler is the constructor for ActivityHandler, injected by Fx.
func NewActivityHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{uc: uc, logger: logger}
}

type activityRequest struct {
	TipoActividadID uuid.UUID `json:"tipo_actividad_id" validate:"required"`
	Nombre          string    `json:"nombre" validate:"required"`
	Descripcion     string    `json:"descripcion"`
	DuracionMinutos int       `json:"duracion_minutos" validate:"gte=0"`
	Precio          float64   `json:"precio" validate:"gte=0"`
}

func (r *activityRequest) toInput() usecase.ActivityInput {
	return usecase.ActivityInput{
		ActivityTypeID:  r.TipoActividadID,
		Name:            r.Nombre,
		Description:     r.Descripcion,
		DurationMinutes: r.DuracionMinutos,
		Price:           r.Precio,
	}
}

type activityView struct {
	ID              uuid.UUID `json:"id"`
	TipoActividadID uuid.UUID `json:"tipo_actividad_id"`
	Nombre          string    `json:"nombre"`
	Descripcion     string    `json:"descripcion"`
	DuracionMinutos int       `json:"duracion_minutos"`
	Precio          float64   `json:"precio"`
	Estado          string    `json:"estado"`
	CreadoEn        time.Time `json:"creado_en"`
}

func toActivityView(a *entity.Activity) activityView {
	return activityView{
		ID:              a.ID,
		TipoActividadID: a.ActivityTypeID,
		Nombre:          a.Name,
		Descripcion:     a.Description,
		DuracionMinutos: a.DurationMinutes,
		Precio:          a.Price,
		Estado:          string(a.Status),
		CreadoEn:        a.CreatedAt,
	}
}

type activityTypeRequest struct {
	Nombre      string `json:"nombre" validate:"required"`
	Descripcion string `json:"descripcion"`
}

type activityTypeView struct {
	ID          uuid.UUID `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	Estado      string    `json:"estado"`
}

func toActivityTypeView(t *entity.ActivityType) activityTypeView {
	return activityTypeView{
		ID:          t.ID,
		Nombre:      t.Name,
		Descripcion: t.Description,
		Estado:      string(t.Status),
	}
}

// List returns the activity catalog.
func (h *ActivityHandler) List(c echo.Context) error {
	includeInactive := c.QueryParam("incluir_inactivos") == "true"

	activities, err := h.uc.ListActivities(c.Request().Context(), includeInactive)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]activityView, 0, len(activities))
	for _, a := range activities {
		views = append(views, toActivityView(a))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// Get returns a single activity.
func (h *ActivityHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	activity, err := h.uc.GetActivity(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toActivityView(activity), "")
}

// Create adds an activity (administrators only).
func (h *ActivityHandler) Create(c echo.Context) error {
	var req activityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Datos de actividad no válidos")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err.Error())
	}

	activity, err := h.uc.CreateActivity(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toActivityView(activity), "Actividad creada")
}

// Update modifies an activity (administrators only).
func (h *ActivityHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req activityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Datos de actividad no válidos")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err.Error())
	}

	activity, err := h.uc.UpdateActivity(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toActivityView(activity), "Actividad actualizada")
}

// Delete soft-deactivates an activity (administrators only).
func (h *ActivityHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeactivateActivity(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Actividad desactivada")
}

// ListTypes returns the activity type catalog.
func (h *ActivityHandler) ListTypes(c echo.Context) error {
	includeInactive := c.QueryParam("incluir_inactivos") == "true"

	types, err := h.uc.ListActivityTypes(c.Request().Context(), includeInactive)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]activityTypeView, 0, len(types))
	for _, t := range types {
		views = append(views, toActivityTypeView(t))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// CreateType adds an activity type (administrators only).
func (h *ActivityHandler) CreateType(c echo.Context) error {
	var req activityTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Datos de tipo de actividad no válidos")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err.Error())
	}

	activityType, err := h.uc.CreateActivityType(c.Request().Context(), usecase.ActivityTypeInput{
		Name:        req.Nombre,
		Description: req.Descripcion,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toActivityTypeView(activityType), "Tipo de actividad creado")
}

// UpdateType modifies an activity type (administrators only).
func (h *ActivityHandler) UpdateType(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req activityTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Datos de tipo de actividad no válidos")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err.Error())
	}

	activityType, err := h.uc.UpdateActivityType(c.Request().Context(), id, usecase.ActivityTypeInput{
		Name:        req.Nombre,
		Description: req.Descripcion,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toActivityTypeView(activityType), "Tipo de actividad actualizado")
}

// DeleteType soft-deactivates an activity type (administrators only).
func (h *ActivityHandler) DeleteType(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeactivateActivityType(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Tipo de actividad desactivado")
}
