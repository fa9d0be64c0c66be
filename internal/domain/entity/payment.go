package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentSource tells which commission kind a payment settled.
type PaymentSource string

const (
	PaymentSourceMonthly  PaymentSource = "mensual"
	PaymentSourceReferral PaymentSource = "referencia"
)

// PaymentRecord is an append-only audit row of a completed payment (pagos_comisiones).
type PaymentRecord struct {
	ID            uuid.UUID       `json:"id"`
	VisitadoraID  uuid.UUID       `json:"visitadora_id"`
	CommissionID  uuid.UUID       `json:"comision_id"`
	Source        PaymentSource   `json:"origen"`
	PhysicianName string          `json:"medico_nombre"`
	Amount        decimal.Decimal `json:"monto"`
	Period        Period          `json:"periodo"`
	PaidAt        time.Time       `json:"fecha_pago"`
	SignatureURL  string          `json:"firma_url"`
	RecipientName string          `json:"nombre_recibe"`
}

// PaymentFilter narrows the payment audit log.
type PaymentFilter struct {
	VisitadoraID *uuid.UUID
	Period       *Period
}
