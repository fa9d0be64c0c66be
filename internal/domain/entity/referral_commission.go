package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReferralCommission is the commission for a single patient referral (comisiones_medicos).
// When AssignedTo is nil the commission sits in the general pool and any visitadora may pay it.
type ReferralCommission struct {
	ID            uuid.UUID        `json:"id"`
	PhysicianID   uuid.UUID        `json:"medico_id"`
	PhysicianName string           `json:"nombre_medico,omitempty"`
	VisitadoraID  uuid.UUID        `json:"visitadora_id"`
	ReferredAt    time.Time        `json:"fecha_referencia"`
	PatientName   string           `json:"paciente_nombre"`
	Study         string           `json:"estudio_realizado"`
	Amount        decimal.Decimal  `json:"monto_comision"`
	Notes         string           `json:"observaciones"`
	Status        CommissionStatus `json:"estado"`
	AssignedTo    *uuid.UUID       `json:"asignada_a,omitempty"`
	PaidBy        *uuid.UUID       `json:"pagado_por,omitempty"`
	PaidAt        *time.Time       `json:"fecha_pago,omitempty"`
	RecipientName string           `json:"nombre_recibe,omitempty"`
	SignatureURL  string           `json:"firma_url,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// InPool reports whether the commission is unassigned.
func (r *ReferralCommission) InPool() bool {
	return r.AssignedTo == nil
}

// CanBePaidBy applies the pool/assignment rule for a paying visitadora.
func (r *ReferralCommission) CanBePaidBy(visitadoraID uuid.UUID) bool {
	return r.AssignedTo == nil || *r.AssignedTo == visitadoraID
}

// ReferralCommissionFilter narrows the admin listing.
type ReferralCommissionFilter struct {
	Status       *CommissionStatus
	VisitadoraID *uuid.UUID
	AssignedTo   *uuid.UUID
	OnlyPool     bool
}
