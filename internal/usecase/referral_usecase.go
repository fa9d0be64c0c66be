package usecase

import (
	"context"
	"time"

	"visitadoras/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateReferralInput registers the commission of one patient referral.
type CreateReferralInput struct {
	VisitadoraID uuid.UUID
	PhysicianID  uuid.UUID
	ReferredAt   time.Time
	PatientName  string
	Study        string
	Amount       decimal.Decimal
	Notes        string
	AssignedTo   *uuid.UUID
}

// ReferralUsecase handles per-referral commissions and the general pool.
type ReferralUsecase interface {
	Create(ctx context.Context, input *CreateReferralInput) (*entity.ReferralCommission, error)

	// ListAssigned returns pending commissions assigned to me.
	ListAssigned(ctx context.Context, visitadoraID uuid.UUID) ([]*entity.ReferralCommission, error)

	// ListPool returns pending commissions assigned to nobody.
	ListPool(ctx context.Context) ([]*entity.ReferralCommission, error)

	// ListHistory returns my latest paid commissions.
	ListHistory(ctx context.Context, visitadoraID uuid.UUID) ([]*entity.ReferralCommission, error)

	ListAll(ctx context.Context, filter entity.ReferralCommissionFilter) ([]*entity.ReferralCommission, error)

	// Assign hands a pending commission to a visitadora, or back to the pool when visitadoraID is nil.
	Assign(ctx context.Context, actorID, commissionID uuid.UUID, visitadoraID *uuid.UUID) (*entity.ReferralCommission, error)

	MarkPaid(ctx context.Context, input *PayInput) (*entity.PaymentRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
