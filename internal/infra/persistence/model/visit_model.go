package model

import (
	"time"

	"github.com/google/uuid"
)

// VisitModel is the GORM-specific struct for the 'visitas' table.
type VisitModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	VisitadoraID      uuid.UUID `gorm:"type:uuid;not null;index:idx_visitas_visitadora_created"`
	PhysicianID       uuid.UUID `gorm:"column:medico_id;type:uuid;not null;index"`
	ClientName        string    `gorm:"column:nombre_cliente;type:varchar(255);not null"`
	Address           string    `gorm:"column:direccion;type:text"`
	EstablishmentType string    `gorm:"column:tipo_establecimiento;type:varchar(255)"`
	Municipality      string    `gorm:"column:municipio;type:varchar(255)"`
	Notes             string    `gorm:"column:observaciones;type:text"`
	Latitude          *float64  `gorm:"column:latitud;type:decimal(10,8)"`
	Longitude         *float64  `gorm:"column:longitud;type:decimal(11,8)"`
	DistanceMeters    *float64  `gorm:"column:distancia_metros"`
	SignatureURL      string    `gorm:"column:firma_url;type:text"`
	CreatedAt         time.Time `gorm:"index:idx_visitas_visitadora_created"`
}

// TableName explicitly sets the table name for GORM.
func (VisitModel) TableName() string {
	return "visitas"
}
