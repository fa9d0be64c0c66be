package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyCommission aggregates a physician's commissions for one month (comisiones_mensuales).
type MonthlyCommission struct {
	ID            uuid.UUID        `json:"id"`
	PhysicianID   *uuid.UUID       `json:"medico_id,omitempty"`
	PhysicianName string           `json:"nombre_medico"`
	Period        Period           `json:"periodo"`
	Amounts       CategoryAmounts  `json:"montos"`
	Status        CommissionStatus `json:"estado"`
	PaidBy        *uuid.UUID       `json:"visitadora_pagadora_id,omitempty"`
	RecipientName string           `json:"nombre_recibe,omitempty"`
	SignatureURL  string           `json:"firma_url,omitempty"`
	PaidAt        *time.Time       `json:"fecha_pago,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// Total returns usg + especial + ekg.
func (c *MonthlyCommission) Total() decimal.Decimal {
	return c.Amounts.Total()
}

// IsPaid reports whether the commission was already paid.
func (c *MonthlyCommission) IsPaid() bool {
	return c.Status == CommissionPaid
}

// MonthlyCommissionDetail adds the payer's display name to a paid commission.
type MonthlyCommissionDetail struct {
	*MonthlyCommission
	PayerName string `json:"pagado_por,omitempty"`
}

// MonthlyCommissionFilter narrows monthly commission listings.
type MonthlyCommissionFilter struct {
	Period        *Period
	Status        *CommissionStatus
	PhysicianName string // case-insensitive substring
}

// PaymentConfirmation carries what is recorded when a commission is paid.
type PaymentConfirmation struct {
	PayerID       uuid.UUID
	RecipientName string
	SignatureURL  string
	PaidAt        time.Time
}
