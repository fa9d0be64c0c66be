package usecase

import (
	"context"

	"visitadoras/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or reactivates an existing one
	RegisterDevice(ctx context.Context, profileID uuid.UUID, deviceInfo *DeviceInfo) (*entity.Device, error)

	// UpdateFCMToken updates the FCM token for a specific device
	UpdateFCMToken(ctx context.Context, profileID uuid.UUID, deviceID uuid.UUID, fcmToken string) error

	// GetDevices retrieves the devices of a profile
	GetDevices(ctx context.Context, profileID uuid.UUID) ([]*entity.Device, error)

	// DeactivateDevice deactivates a device (soft delete)
	DeactivateDevice(ctx context.Context, profileID, deviceID uuid.UUID) error
}
