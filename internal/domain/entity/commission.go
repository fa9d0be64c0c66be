package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommissionStatus is the payment state shared by every commission kind.
// The only transition is pending -> paid.
type CommissionStatus string

const (
	CommissionPending CommissionStatus = "pendiente"
	CommissionPaid    CommissionStatus = "pagado"
)

// IsValid checks if the status is a known value.
func (s CommissionStatus) IsValid() bool {
	return s == CommissionPending || s == CommissionPaid
}

var hundred = decimal.NewFromInt(100)

// CategoryAmounts holds the three commission categories of a physician.
type CategoryAmounts struct {
	USG      decimal.Decimal `json:"comision_usg"`
	Especial decimal.Decimal `json:"comision_especial"`
	EKG      decimal.Decimal `json:"comision_ekg"` // EKG/PAP/Labs
}

// Total is always derived from the categories; it is never stored independently.
func (a CategoryAmounts) Total() decimal.Decimal {
	return a.USG.Add(a.Especial).Add(a.EKG)
}

// IsPositive reports whether the categories add up to more than zero.
func (a CategoryAmounts) IsPositive() bool {
	return a.Total().IsPositive()
}

// Add sums two sets of category amounts.
func (a CategoryAmounts) Add(other CategoryAmounts) CategoryAmounts {
	return CategoryAmounts{
		USG:      a.USG.Add(other.USG),
		Especial: a.Especial.Add(other.Especial),
		EKG:      a.EKG.Add(other.EKG),
	}
}

// CommissionRule is a percentage applied to a base amount.
type CommissionRule struct {
	Percentage decimal.Decimal `json:"porcentaje"`
	Base       decimal.Decimal `json:"base"`
}

// Amount returns base × percentage / 100 rounded half away from zero to cents.
func (r CommissionRule) Amount() decimal.Decimal {
	if r.Percentage.IsZero() || r.Base.IsZero() {
		return decimal.Zero
	}

	return r.Base.Mul(r.Percentage).Div(hundred).Round(2)
}

// IsValid checks percentage is within [0,100] and base is not negative.
func (r CommissionRule) IsValid() bool {
	return !r.Percentage.IsNegative() && r.Percentage.LessThanOrEqual(hundred) && !r.Base.IsNegative()
}

// CommissionConfig is the per-physician rule set (comisiones_configuracion).
type CommissionConfig struct {
	PhysicianID uuid.UUID      `json:"medico_id"`
	USG         CommissionRule `json:"usg"`
	Especial    CommissionRule `json:"especial"`
	EKG         CommissionRule `json:"ekg"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Amounts applies every rule of the config.
func (c *CommissionConfig) Amounts() CategoryAmounts {
	return CategoryAmounts{
		USG:      c.USG.Amount(),
		Especial: c.Especial.Amount(),
		EKG:      c.EKG.Amount(),
	}
}

// IsValid checks every rule.
func (c *CommissionConfig) IsValid() bool {
	return c.USG.IsValid() && c.Especial.IsValid() && c.EKG.IsValid()
}

// CommissionSummary aggregates a commission list by status.
type CommissionSummary struct {
	TotalPending decimal.Decimal `json:"total_pendiente"`
	TotalPaid    decimal.Decimal `json:"total_pagado"`
	CountPending int             `json:"cantidad_pendiente"`
	CountPaid    int             `json:"cantidad_pagada"`
}

// Total is pending plus paid.
func (s CommissionSummary) Total() decimal.Decimal {
	return s.TotalPending.Add(s.TotalPaid)
}

// SummarizeMonthly folds monthly commissions into a summary.
func SummarizeMonthly(rows []*MonthlyCommission) CommissionSummary {
	summary := CommissionSummary{TotalPending: decimal.Zero, TotalPaid: decimal.Zero}
	for _, row := range rows {
		switch row.Status {
		case CommissionPaid:
			summary.TotalPaid = summary.TotalPaid.Add(row.Total())
			summary.CountPaid++
		default:
			summary.TotalPending = summary.TotalPending.Add(row.Total())
			summary.CountPending++
		}
	}

	return summary
}
