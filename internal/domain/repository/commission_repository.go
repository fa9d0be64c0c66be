package repository

import (
	"context"

	"visitadoras/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for commission persistence.
var (
	ErrCommissionConfigNotFound     = errors.New("commission config not found")
	ErrMonthlyCommissionNotFound    = errors.New("monthly commission not found")
	ErrReferralCommissionNotFound   = errors.New("referral commission not found")
	ErrVisitadoraCommissionNotFound = errors.New("visitadora commission not found")
	ErrReferralCommissionNotPayable = errors.New("referral commission assigned to another visitadora")
)

// CommissionConfigRepository persists per-physician commission rules.
type CommissionConfigRepository interface {
	FindByPhysicianID(ctx context.Context, physicianID uuid.UUID) (*entity.CommissionConfig, error)

	// Upsert writes the single config row of a physician.
	Upsert(ctx context.Context, config *entity.CommissionConfig) error
}

// MonthlyCommissionRepository persists the monthly rollup.
type MonthlyCommissionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MonthlyCommission, error)

	// FindPendingByPhysicianPeriodForUpdate locks and returns the pending (name, month, year) row.
	// Paid rows are never returned. Must run inside a transaction; the period key stays locked
	// until commit even when no row exists yet.
	FindPendingByPhysicianPeriodForUpdate(ctx context.Context, physicianName string, period entity.Period) (*entity.MonthlyCommission, error)

	// UpsertAmounts overwrites the categories of the pending (name, month, year) row, creating it pending if missing.
	UpsertAmounts(ctx context.Context, commission *entity.MonthlyCommission) error

	// AddAmounts sums into the categories of an existing pending row.
	AddAmounts(ctx context.Context, id uuid.UUID, amounts entity.CategoryAmounts) error

	Create(ctx context.Context, commission *entity.MonthlyCommission) error

	// CreateBatch appends every row. There is no merge on (name, month, year).
	CreateBatch(ctx context.Context, commissions []*entity.MonthlyCommission) error

	// List returns rows ordered by status then total descending.
	List(ctx context.Context, filter entity.MonthlyCommissionFilter) ([]*entity.MonthlyCommission, error)

	// MarkPaid transitions a pending row to paid. ErrCommissionNotPending when nothing matched.
	MarkPaid(ctx context.Context, id uuid.UUID, confirmation entity.PaymentConfirmation) error

	// Delete removes a pending row. ErrCommissionNotPending when it is paid.
	Delete(ctx context.Context, id uuid.UUID) error

	DeleteByStatus(ctx context.Context, status entity.CommissionStatus) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// ReferralCommissionRepository persists per-referral commissions.
type ReferralCommissionRepository interface {
	Create(ctx context.Context, commission *entity.ReferralCommission) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ReferralCommission, error)

	// ListAssignedTo returns pending commissions assigned to the visitadora.
	ListAssignedTo(ctx context.Context, visitadoraID uuid.UUID) ([]*entity.ReferralCommission, error)

	// ListPool returns pending commissions with no assignee.
	ListPool(ctx context.Context) ([]*entity.ReferralCommission, error)

	// ListPaidBy returns the visitadora's paid commissions, latest payment first.
	ListPaidBy(ctx context.Context, visitadoraID uuid.UUID, limit int) ([]*entity.ReferralCommission, error)

	List(ctx context.Context, filter entity.ReferralCommissionFilter) ([]*entity.ReferralCommission, error)

	// Assign sets or clears the assignee of a pending commission.
	Assign(ctx context.Context, id uuid.UUID, visitadoraID *uuid.UUID) error

	// MarkPaid pays a pending commission that is unassigned or assigned to the payer.
	MarkPaid(ctx context.Context, id uuid.UUID, confirmation entity.PaymentConfirmation) error

	// Delete removes a pending commission.
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaymentRepository appends to the payment audit log.
type PaymentRepository interface {
	Create(ctx context.Context, record *entity.PaymentRecord) error
	List(ctx context.Context, filter entity.PaymentFilter) ([]*entity.PaymentRecord, error)
}

// VisitadoraCommissionRepository persists commissions owed to visitadoras.
type VisitadoraCommissionRepository interface {
	// Upsert writes the pending (visitadora, month, year) row.
	// Returns ErrCommissionNotPending when the row is already paid.
	Upsert(ctx context.Context, commission *entity.VisitadoraCommission) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.VisitadoraCommission, error)
	List(ctx context.Context, visitadoraID *uuid.UUID) ([]*entity.VisitadoraCommission, error)

	// MarkPaid records the paid amount on a pending row.
	MarkPaid(ctx context.Context, id uuid.UUID, amount entity.VisitadoraPayment) error
}
