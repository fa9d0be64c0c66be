package handler

import (
	"log/slog"
	"net/http"

	"visitadoras/internal/delivery/api/middleware"
	"visitadoras/internal/delivery/api/response"
	"visitadoras/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler registers the phones that receive push notifications.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// UpdateFCMTokenRequest represents the request body for updating FCM token
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

// RegisterDevice handles device registration
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		return invalidSession(c)
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de dispositivo inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	deviceInfo := &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), profileID, deviceInfo)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// GetDevices lists the caller's devices
func (h *DeviceHandler) GetDevices(c echo.Context) error {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		return invalidSession(c)
	}

	devices, err := h.deviceUC.GetDevices(c.Request().Context(), profileID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// UpdateFCMToken handles updating FCM token for a device
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		return invalidSession(c)
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de dispositivo inválido")
	}

	var req UpdateFCMTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Token FCM inválido")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), profileID, deviceID, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Token actualizado"})
}

// DeactivateDevice handles deactivating a device
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		return invalidSession(c)
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de dispositivo inválido")
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), profileID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Dispositivo desactivado"})
}
