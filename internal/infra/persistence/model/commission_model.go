package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommissionConfigModel is the GORM-specific struct for the 'comisiones_configuracion' table.
type CommissionConfigModel struct {
	PhysicianID        uuid.UUID       `gorm:"column:medico_id;type:uuid;primary_key"`
	USGPercentage      decimal.Decimal `gorm:"column:porcentaje_usg;type:decimal(5,2);not null;default:0"`
	USGBase            decimal.Decimal `gorm:"column:base_usg;type:decimal(12,2);not null;default:0"`
	EspecialPercentage decimal.Decimal `gorm:"column:porcentaje_especial;type:decimal(5,2);not null;default:0"`
	EspecialBase       decimal.Decimal `gorm:"column:base_especial;type:decimal(12,2);not null;default:0"`
	EKGPercentage      decimal.Decimal `gorm:"column:porcentaje_ekg;type:decimal(5,2);not null;default:0"`
	EKGBase            decimal.Decimal `gorm:"column:base_ekg;type:decimal(12,2);not null;default:0"`
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommissionConfigModel) TableName() string {
	return "comisiones_configuracion"
}

// MonthlyCommissionModel is the GORM-specific struct for the 'comisiones_mensuales' table.
// total_comision is a generated column and is read-only here.
type MonthlyCommissionModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	PhysicianID   *uuid.UUID      `gorm:"column:medico_id;type:uuid;index"`
	PhysicianName string          `gorm:"column:nombre_medico;type:varchar(255);not null;index:idx_comisiones_mensuales_medico_periodo"`
	Month         int             `gorm:"column:mes;not null;index:idx_comisiones_mensuales_medico_periodo"`
	Year          int             `gorm:"column:anio;not null;index:idx_comisiones_mensuales_medico_periodo"`
	USG           decimal.Decimal `gorm:"column:comision_usg;type:decimal(12,2);not null;default:0"`
	Especial      decimal.Decimal `gorm:"column:comision_especial;type:decimal(12,2);not null;default:0"`
	EKG           decimal.Decimal `gorm:"column:comision_ekg;type:decimal(12,2);not null;default:0"`
	Total         decimal.Decimal `gorm:"column:total_comision;->;type:decimal(12,2) GENERATED ALWAYS AS (comision_usg + comision_especial + comision_ekg) STORED"`
	Status        string          `gorm:"column:estado;type:varchar(20);not null;default:'pendiente';index"`
	PaidBy        *uuid.UUID      `gorm:"column:visitadora_pagadora_id;type:uuid"`
	RecipientName string          `gorm:"column:nombre_recibe;type:varchar(255)"`
	SignatureURL  string          `gorm:"column:firma_url;type:text"`
	PaidAt        *time.Time      `gorm:"column:fecha_pago"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (MonthlyCommissionModel) TableName() string {
	return "comisiones_mensuales"
}

// ReferralCommissionModel is the GORM-specific struct for the 'comisiones_medicos' table.
type ReferralCommissionModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	PhysicianID   uuid.UUID       `gorm:"column:medico_id;type:uuid;not null;index"`
	VisitadoraID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ReferredAt    time.Time       `gorm:"column:fecha_referencia;not null"`
	PatientName   string          `gorm:"column:paciente_nombre;type:varchar(255);not null"`
	Study         string          `gorm:"column:estudio_realizado;type:varchar(255)"`
	Amount        decimal.Decimal `gorm:"column:monto_comision;type:decimal(12,2);not null"`
	Notes         string          `gorm:"column:observaciones;type:text"`
	Status        string          `gorm:"column:estado;type:varchar(20);not null;default:'pendiente';index"`
	AssignedTo    *uuid.UUID      `gorm:"column:asignada_a;type:uuid;index"`
	PaidBy        *uuid.UUID      `gorm:"column:pagado_por;type:uuid;index"`
	PaidAt        *time.Time      `gorm:"column:fecha_pago"`
	RecipientName string          `gorm:"column:nombre_recibe;type:varchar(255)"`
	SignatureURL  string          `gorm:"column:firma_url;type:text"`
	CreatedAt     time.Time

	Physician *PhysicianModel `gorm:"foreignKey:PhysicianID"`
}

// TableName explicitly sets the table name for GORM.
func (ReferralCommissionModel) TableName() string {
	return "comisiones_medicos"
}

// PaymentRecordModel is the GORM-specific struct for the append-only 'pagos_comisiones' table.
type PaymentRecordModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	VisitadoraID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	CommissionID  uuid.UUID       `gorm:"column:comision_id;type:uuid;not null"`
	Source        string          `gorm:"column:origen;type:varchar(20);not null"`
	PhysicianName string          `gorm:"column:medico_nombre;type:varchar(255);not null"`
	Amount        decimal.Decimal `gorm:"column:monto;type:decimal(12,2);not null"`
	Month         int             `gorm:"column:mes;not null"`
	Year          int             `gorm:"column:anio;not null"`
	PaidAt        time.Time       `gorm:"column:fecha_pago;not null;index"`
	SignatureURL  string          `gorm:"column:firma_url;type:text;not null"`
	RecipientName string          `gorm:"column:nombre_recibe;type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentRecordModel) TableName() string {
	return "pagos_comisiones"
}

// VisitadoraCommissionModel is the GORM-specific struct for the 'comisiones' table.
type VisitadoraCommissionModel struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	VisitadoraID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_comisiones_visitadora_periodo"`
	Month        int              `gorm:"column:mes;not null;uniqueIndex:idx_comisiones_visitadora_periodo"`
	Year         int              `gorm:"column:anio;not null;uniqueIndex:idx_comisiones_visitadora_periodo"`
	VisitCount   int64            `gorm:"column:total_visitas;not null;default:0"`
	Amount       decimal.Decimal  `gorm:"column:monto_comision;type:decimal(12,2);not null"`
	AmountPaid   *decimal.Decimal `gorm:"column:monto_pagado;type:decimal(12,2)"`
	Status       string           `gorm:"column:estado;type:varchar(20);not null;default:'pendiente'"`
	PaidAt       *time.Time       `gorm:"column:fecha_pago"`
	CreatedAt    time.Time

	Visitadora *ProfileModel `gorm:"foreignKey:VisitadoraID"`
}

// TableName explicitly sets the table name for GORM.
func (VisitadoraCommissionModel) TableName() string {
	return "comisiones"
}
