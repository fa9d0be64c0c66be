package model

import (
	"time"

	"github.com/google/uuid"
)

// PhysicianModel is the GORM-specific struct for the 'medicos' table.
type PhysicianModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name         string     `gorm:"column:nombre;type:varchar(255);not null;index"`
	Clinic       string     `gorm:"column:clinica;type:varchar(255)"`
	Specialty    string     `gorm:"column:especialidad;type:varchar(255)"`
	Municipality string     `gorm:"column:municipio;type:varchar(255)"`
	Address      string     `gorm:"column:direccion;type:text"`
	Phone        string     `gorm:"column:telefono;type:varchar(50)"`
	Notes        string     `gorm:"column:referencia;type:text"`
	Latitude     *float64   `gorm:"column:latitud;type:decimal(10,8)"`
	Longitude    *float64   `gorm:"column:longitud;type:decimal(11,8)"`
	Active       bool       `gorm:"column:activo;not null;default:true;index"`
	CreatedBy    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PhysicianModel) TableName() string {
	return "medicos"
}
