package middleware

import (
	"strings"

	"visitadoras/internal/delivery/api/response"
	"visitadoras/internal/domain/entity"
	"visitadoras/internal/domain/repository"
	"visitadoras/internal/domain/service"
	"visitadoras/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	contextKeyProfileID = "profileID"
	contextKeyRole      = "role"
)

// AuthMiddleware validates access tokens and gates routes by role.
type AuthMiddleware struct {
	tokenSvc    service.TokenService
	profileRepo repository.ProfileRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, profileRepo repository.ProfileRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, profileRepo: profileRepo}
}

// Authenticate requires a valid Bearer access token of an active profile and stores its identity on the context.
// The role comes from the stored profile so deactivation and role changes apply before the token expires.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Falta el encabezado de autorización")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "El token debe ser de tipo Bearer")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil || !claims.Role.IsValid() {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token inválido o expirado")
		}

		profile, err := m.profileRepo.FindByID(c.Request().Context(), claims.ProfileID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return response.Unauthorized(c, "ACCOUNT_INACTIVE", "La cuenta está desactivada")
			}

			return errors.Wrap(err, "failed to load authenticated profile")
		}
		if !profile.Active {
			return response.Unauthorized(c, "ACCOUNT_INACTIVE", "La cuenta está desactivada")
		}

		SetIdentity(c, profile.ID, profile.Role)

		return next(c)
	}
}

// RequireRole rejects requests whose role differs from role.
// It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			current, ok := GetRole(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permiso denegado")
			}

			if current != role {
				return response.Forbidden(c, "FORBIDDEN", "Permiso denegado: se requiere el rol "+role.String())
			}

			return next(c)
		}
	}
}

// SetIdentity stores the authenticated profile on the request context.
func SetIdentity(c echo.Context, profileID uuid.UUID, role entity.Role) {
	c.Set(contextKeyProfileID, profileID)
	c.Set(contextKeyRole, role)
}

// GetProfileID returns the authenticated profile.
func GetProfileID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(contextKeyProfileID).(uuid.UUID)

	return id, ok && id != uuid.Nil
}

// GetRole returns the role of the authenticated profile.
func GetRole(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(contextKeyRole).(entity.Role)

	return role, ok
}

// GetRequester bundles the identity handed to role-aware usecases.
func GetRequester(c echo.Context) (usecase.Requester, bool) {
	profileID, ok := GetProfileID(c)
	if !ok {
		return usecase.Requester{}, false
	}

	role, ok := GetRole(c)
	if !ok {
		return usecase.Requester{}, false
	}

	return usecase.Requester{ProfileID: profileID, Role: role}, true
}
