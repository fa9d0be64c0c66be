package usecase

import (
	"context"

	"visitadoras/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaveConfigInput is the commission rule form of a physician.
// A nil Period means the current month.
type SaveConfigInput struct {
	USG      entity.CommissionRule
	Especial entity.CommissionRule
	EKG      entity.CommissionRule
	Period   *entity.Period
}

// SaveConfigOutput returns the stored config and the monthly line it produced, if any.
type SaveConfigOutput struct {
	Config  *entity.CommissionConfig
	Amounts entity.CategoryAmounts
	Monthly *entity.MonthlyCommission
}

// AddDirectInput is a flat amount added to the USG category.
type AddDirectInput struct {
	PhysicianID uuid.UUID
	Amount      decimal.Decimal
	Period      *entity.Period
}

// CommissionUsecase covers commission configuration and the monthly rollup.
type CommissionUsecase interface {
	GetConfig(ctx context.Context, physicianID uuid.UUID) (*entity.CommissionConfig, error)
	SaveConfig(ctx context.Context, physicianID uuid.UUID, input *SaveConfigInput) (*SaveConfigOutput, error)
	AddDirect(ctx context.Context, input *AddDirectInput) (*entity.MonthlyCommission, error)

	ListMonthly(ctx context.Context, filter entity.MonthlyCommissionFilter) ([]*entity.MonthlyCommission, error)
	Summary(ctx context.Context, filter entity.MonthlyCommissionFilter) (*entity.CommissionSummary, error)
	GetMonthly(ctx context.Context, id uuid.UUID) (*entity.MonthlyCommissionDetail, error)
	DeleteMonthly(ctx context.Context, id uuid.UUID) error
	DeleteAllPending(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}
