package impl

import (
	"context"
	"time"

	"visitadoras/internal/domain/entity"
	domainerrors "visitadoras/internal/domain/errors"
	"visitadoras/internal/domain/repository"
	"visitadoras/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers a new device or refreshes the token of a known one
func (s *deviceService) RegisterDevice(ctx context.Context, profileID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.Device, error) {
	devices, err := s.deviceRepo.FindDevicesByProfile(ctx, profileID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by profile")
	}

	// Look for existing device with same device_id
	for _, device := range devices {
		if device.DeviceID != deviceInfo.DeviceID {
			continue
		}

		if device.IsActive {
			if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, deviceInfo.FCMToken); err != nil {
				return nil, errors.Wrap(err, "failed to update FCM token")
			}

			updated, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
			if err != nil {
				return nil, errors.Wrap(err, "failed to find device by ID")
			}

			return updated, nil
		}
	}

	now := time.Now()
	device := &entity.Device{
		ID:        uuid.New(),
		ProfileID: profileID,
		FCMToken:  deviceInfo.FCMToken,
		DeviceID:  deviceInfo.DeviceID,
		Platform:  deviceInfo.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// CreateDevice reactivates an inactive (profile, device_id) pair.
	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to create device")
	}

	return device, nil
}

// UpdateFCMToken updates the FCM token for a specific device
func (s *deviceService) UpdateFCMToken(ctx context.Context, profileID uuid.UUID, deviceID uuid.UUID, fcmToken string) error {
	if _, err := s.ownedDevice(ctx, profileID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		return errors.Wrap(err, "failed to update FCM token")
	}

	return nil
}

// GetDevices retrieves the devices of a profile
func (s *deviceService) GetDevices(ctx context.Context, profileID uuid.UUID) ([]*entity.Device, error) {
	devices, err := s.deviceRepo.FindDevicesByProfile(ctx, profileID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by profile")
	}

	return devices, nil
}

// DeactivateDevice deactivates a device (soft delete)
func (s *deviceService) DeactivateDevice(ctx context.Context, profileID, deviceID uuid.UUID) error {
	if _, err := s.ownedDevice(ctx, profileID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeactivateDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to deactivate device")
	}

	return nil
}

// ownedDevice loads a device and verifies it belongs to the profile.
func (s *deviceService) ownedDevice(ctx context.Context, profileID, deviceID uuid.UUID) (*entity.Device, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	if device.ProfileID != profileID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "device belongs to another profile")
	}

	return device, nil
}
