package repository

import (
	"context"

	"visitadoras/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device, or reactivates the existing (profile, device_id) pair.
	CreateDevice(ctx context.Context, device *entity.Device) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindDevicesByProfile retrieves all devices of a profile (including inactive).
	FindDevicesByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.Device, error)

	// FindActiveDevicesByProfiles retrieves the active devices of several profiles.
	FindActiveDevicesByProfiles(ctx context.Context, profileIDs []uuid.UUID) ([]*entity.Device, error)

	// FindActiveDevicesByRole retrieves the active devices of every active profile holding a role.
	FindActiveDevicesByRole(ctx context.Context, role entity.Role) ([]*entity.Device, error)

	// UpdateFCMToken updates the FCM token for a specific device.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// DeactivateDevice marks a device inactive.
	DeactivateDevice(ctx context.Context, id uuid.UUID) error

	// DeactivateByTokens marks every device holding one of the tokens inactive.
	DeactivateByTokens(ctx context.Context, tokens []string) error
}
