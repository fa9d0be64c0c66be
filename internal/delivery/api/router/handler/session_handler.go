package handler

import (
	"log/slog"
	"net/http"

	"visitadoras/internal/delivery/api/middleware"
	"visitadoras/internal/delivery/api/response"
	"visitadoras/internal/domain/entity"
	"visitadoras/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler serves login, token refresh and logout.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	DeviceInfo string `json:"device_info"`
}

// RefreshRequest is the body of the refresh and logout endpoints.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// TokenResponse is returned by login and refresh.
type TokenResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Session      *entity.Session `json:"session"`
}

// Login exchanges credentials for a token pair.
func (h *SessionHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de inicio de sesión inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	deviceInfo := req.DeviceInfo
	if deviceInfo == "" {
		deviceInfo = c.Request().UserAgent()
	}

	out, err := h.sessionUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:      req.Email,
		Password:   req.Password,
		DeviceInfo: deviceInfo,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTokenResponse(out))
}

// Refresh rotates a refresh token.
func (h *SessionHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Token inválido")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.sessionUC.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTokenResponse(out))
}

// Logout revokes one refresh token.
func (h *SessionHandler) Logout(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Token inválido")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.sessionUC.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Sesión cerrada"})
}

// LogoutAll revokes every refresh token of the caller.
func (h *SessionHandler) LogoutAll(c echo.Context) error {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		return invalidSession(c)
	}

	if err := h.sessionUC.LogoutAll(c.Request().Context(), profileID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Sesiones cerradas"})
}

// Current resolves the caller's profile and role.
func (h *SessionHandler) Current(c echo.Context) error {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		return invalidSession(c)
	}

	session, err := h.sessionUC.Current(c.Request().Context(), profileID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

func toTokenResponse(out *usecase.LoginOutput) TokenResponse {
	return TokenResponse{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		Session:      out.Session,
	}
}
