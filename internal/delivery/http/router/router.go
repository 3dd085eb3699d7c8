// Package router contains routing setup for the HTTP delivery.
package router

import (
	"sapzurro/internal/delivery/http/middleware"
	"sapzurro/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler          *handler.AuthHandler
	AccountHandler       *handler.AccountHandler
	AccommodationHandler *handler.AccommodationHandler
	ActivityHandler      *handler.ActivityHandler
	TourRouteHandler     *handler.TourRouteHandler
	ProfileHandler       *handler.ProfileHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.params.AuthMiddleware.Authenticate
	adminOnly := r.params.AuthMiddleware.RequireAdmin()

	e.GET("/health", handler.HealthCheck)

	// Account and session routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/register-aliado", r.params.AuthHandler.RegisterAlly)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/forgot-password", r.params.AuthHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.params.AuthHandler.ResetPassword)
		authGroup.GET("/perfil", r.params.AuthHandler.GetProfile, authenticate)
	}

	// Administrator-only account lifecycle routes
	userGroup := e.Group("/usuarios", authenticate, adminOnly)
	{
		userGroup.PUT("/:id/aprobar", r.params.AccountHandler.Approve)
		userGroup.PUT("/:id/desactivar", r.params.AccountHandler.Deactivate)
		userGroup.PUT("/:id/reactivar", r.params.AccountHandler.Reactivate)
	}

	// Catalog routes: reads are public, writes are admin-gated
	accommodationGroup := e.Group("/alojamientos")
	{
		accommodationGroup.GET("", r.params.AccommodationHandler.List)
		accommodationGroup.GET("/:id", r.params.AccommodationHandler.Get)
		accommodationGroup.POST("", r.params.AccommodationHandler.Create, authenticate, adminOnly)
		accommodationGroup.PUT("/:id", r.params.AccommodationHandler.Update, authenticate, adminOnly)
		accommodationGroup.DELETE("/:id", r.params.AccommodationHandler.Delete, authenticate, adminOnly)
	}

	activityGroup := e.Group("/actividades")
	{
		activityGroup.GET("", r.params.ActivityHandler.List)
		activityGroup.GET("/:id", r.params.ActivityHandler.Get)
		activityGroup.POST("", r.params.ActivityHandler.Create, authenticate, adminOnly)
		activityGroup.PUT("/:id", r.params.ActivityHandler.Update, authenticate, adminOnly)
		activityGroup.DELETE("/:id", r.params.ActivityHandler.Delete, authenticate, adminOnly)
	}

	activityTypeGroup := e.Group("/tipos-actividad")
	{
		activityTypeGroup.GET("", r.params.ActivityHandler.ListTypes)
		activityTypeGroup.POST("", r.params.ActivityHandler.CreateType, authenticate, adminOnly)
		activityTypeGroup.PUT("/:id", r.params.ActivityHandler.UpdateType, authenticate, adminOnly)
		activityTypeGroup.DELETE("/:id", r.params.ActivityHandler.DeleteType, authenticate, adminOnly)
	}

	routeGroup := e.Group("/rutas")
	{
		routeGroup.GET("", r.params.TourRouteHandler.List)
		routeGroup.GET("/:id", r.params.TourRouteHandler.Get)
		routeGroup.POST("", r.params.TourRouteHandler.Create, authenticate, adminOnly)
		routeGroup.PUT("/:id", r.params.TourRouteHandler.Update, authenticate, adminOnly)
		routeGroup.DELETE("/:id", r.params.TourRouteHandler.Delete, authenticate, adminOnly)
	}

	e.GET("/perfiles", r.params.ProfileHandler.List)
}
