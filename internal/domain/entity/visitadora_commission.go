package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VisitadoraCommission is the monthly commission owed to a visitadora (comisiones).
// One row per (visitadora, month, year).
type VisitadoraCommission struct {
	ID           uuid.UUID        `json:"id"`
	VisitadoraID uuid.UUID        `json:"visitadora_id"`
	Visitadora   *Profile         `json:"visitadora,omitempty"`
	Period       Period           `json:"periodo"`
	VisitCount   int64            `json:"total_visitas"`
	Amount       decimal.Decimal  `json:"monto_comision"`
	AmountPaid   *decimal.Decimal `json:"monto_pagado,omitempty"`
	Status       CommissionStatus `json:"estado"`
	PaidAt       *time.Time       `json:"fecha_pago,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

// VisitadoraDetail is the admin view of one visitadora.
type VisitadoraDetail struct {
	Profile     *Profile                `json:"visitadora"`
	Visits      []*Visit                `json:"visitas"`
	Commissions []*VisitadoraCommission `json:"comisiones"`
}

// VisitadoraPayment records how much was paid on a visitadora commission.
type VisitadoraPayment struct {
	Amount decimal.Decimal
	PaidAt time.Time
}
