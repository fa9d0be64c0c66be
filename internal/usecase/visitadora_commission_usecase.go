package usecase

import (
	"context"

	"visitadoras/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterVisitadoraCommissionInput records what a visitadora earned in a month.
type RegisterVisitadoraCommissionInput struct {
	VisitadoraID uuid.UUID
	Period       entity.Period
	Amount       decimal.Decimal
}

// VisitadoraCommissionUsecase manages the commissions owed to visitadoras.
type VisitadoraCommissionUsecase interface {
	Register(ctx context.Context, input *RegisterVisitadoraCommissionInput) (*entity.VisitadoraCommission, error)
	List(ctx context.Context, visitadoraID *uuid.UUID) ([]*entity.VisitadoraCommission, error)
	MarkPaid(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*entity.VisitadoraCommission, error)
}
