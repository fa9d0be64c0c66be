package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel is the GORM-specific struct for the 'profiles' table.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name      string    `gorm:"column:nombre;type:varchar(255);not null"`
	Role      string    `gorm:"type:varchar(20);not null;index"`
	Active    bool      `gorm:"column:activo;not null;default:true"`
	Zone      string    `gorm:"column:zona;type:varchar(255)"`
	Phone     string    `gorm:"column:telefono;type:varchar(50)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
