package postgres

import (
	"context"

	"visitadoras/internal/domain/entity"
	domainerrors "visitadoras/internal/domain/errors"
	"visitadoras/internal/domain/repository"
	"visitadoras/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice persists a device, refreshing the token of an already known (profile, device_id) pair.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile_id"}, {Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"fcm_token", "platform", "is_active", "updated_at"}),
		}).
		Create(deviceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid profile reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDevicesByProfile retrieves all devices of a profile, including inactive ones.
func (repo *deviceRepository) FindDevicesByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by profile")
	}

	return toDeviceDomains(deviceModels), nil
}

// FindActiveDevicesByProfiles retrieves the active devices of several profiles.
func (repo *deviceRepository) FindActiveDevicesByProfiles(ctx context.Context, profileIDs []uuid.UUID) ([]*entity.Device, error) {
	if len(profileIDs) == 0 {
		return []*entity.Device{}, nil
	}

	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("profile_id IN ? AND is_active = ?", profileIDs, true).
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by profiles")
	}

	return toDeviceDomains(deviceModels), nil
}

// FindActiveDevicesByRole retrieves the active devices of every active profile holding a role.
func (repo *deviceRepository) FindActiveDevicesByRole(ctx context.Context, role entity.Role) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN profiles ON profiles.id = devices.profile_id").
		Where("profiles.role = ? AND profiles.activo = ? AND devices.is_active = ?", string(role), true, true).
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by role")
	}

	return toDeviceDomains(deviceModels), nil
}

// UpdateFCMToken updates the FCM token for a specific device.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", deviceID).
		Updates(map[string]any{"fcm_token": fcmToken, "is_active": true})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update FCM token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateDevice marks a device inactive.
func (repo *deviceRepository) DeactivateDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateByTokens marks every device holding one of the tokens inactive.
func (repo *deviceRepository) DeactivateByTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("fcm_token IN ?", tokens).
		Update("is_active", false).Error; err != nil {
		return errors.Wrap(err, "failed to deactivate devices by token")
	}

	return nil
}

// --- Mapper Functions ---

func toDeviceDomains(deviceModels []*model.DeviceModel) []*entity.Device {
	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices
}

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:        data.ID,
		ProfileID: data.ProfileID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain Device entity to a GORM DeviceModel.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		ID:        data.ID,
		ProfileID: data.ProfileID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
