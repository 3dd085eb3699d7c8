package middleware

import (
	"strings"

	"sapzurro/internal/delivery/http/response"
	"sapzurro/internal/domain/entity"
	"sapzurro/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Echo context keys populated by Authenticate.
const (
	ContextKeyCredentialID = "credentialID"
	ContextKeyLoginName    = "loginName"
	ContextKeyProfile      = "profile"
)

// AuthMiddleware provides middleware for session token authentication and
// profile-based authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer token and stores its claims on the echo
// context for handlers downstream.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "INVALID_CREDENTIALS", "Falta el encabezado de autorización")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_CREDENTIALS", "El token debe usar el esquema Bearer")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_CREDENTIALS", "Sesión no válida o expirada")
		}

		c.Set(ContextKeyCredentialID, claims.CredentialID)
		c.Set(ContextKeyLoginName, claims.LoginName)
		c.Set(ContextKeyProfile, claims.ProfileName)

		return next(c)
	}
}

// RequireProfile is a middleware factory that checks the authenticated
// credential's profile. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireProfile(profileName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			profile, ok := c.Get(ContextKeyProfile).(string)
			if !ok || profile != profileName {
				return response.Forbidden(c, "FORBIDDEN", "No tienes permisos para esta operación")
			}

			return next(c)
		}
	}
}

// RequireAdmin gates a route to the administrator profile.
func (m *AuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return m.RequireProfile(entity.ProfileAdministrator)
}
