package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
type DeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_devices_profile_device"`
	FCMToken  string    `gorm:"column:fcm_token;type:varchar(255);not null;index"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_devices_profile_device"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
