package impl

import (
	"context"
	"log/slog"
	"time"

	"visitadoras/config"
	"visitadoras/internal/domain/entity"
	domainerrors "visitadoras/internal/domain/errors"
	"visitadoras/internal/domain/repository"
	"visitadoras/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type visitadoraCommissionService struct {
	commissionRepo repository.VisitadoraCommissionRepository
	profileRepo    repository.ProfileRepository
	visitRepo      repository.VisitRepository
	loc            *time.Location
	now            func() time.Time
	logger         *slog.Logger
}

// VisitadoraCommissionServiceParams holds dependencies for VisitadoraCommissionService, injected by Fx.
type VisitadoraCommissionServiceParams struct {
	fx.In

	CommissionRepo repository.VisitadoraCommissionRepository
	ProfileRepo    repository.ProfileRepository
	VisitRepo      repository.VisitRepository
	Config         *config.Config
	Logger         *slog.Logger
}

// NewVisitadoraCommissionService is the constructor for visitadoraCommissionService.
func NewVisitadoraCommissionService(params VisitadoraCommissionServiceParams) usecase.VisitadoraCommissionUsecase {
	return &visitadoraCommissionService{
		commissionRepo: params.CommissionRepo,
		profileRepo:    params.ProfileRepo,
		visitRepo:      params.VisitRepo,
		loc:            params.Config.Location(),
		now:            time.Now,
		logger:         params.Logger,
	}
}

// Register writes the month's commission of a visitadora along with their visit count.
// A month that was already paid is closed.
func (srv *visitadoraCommissionService) Register(ctx context.Context, input *usecase.RegisterVisitadoraCommissionInput) (*entity.VisitadoraCommission, error) {
	if !input.Period.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidPeriod, input.Period.String())
	}

	amount := input.Amount.Round(2)
	if amount.IsNegative() {
		return nil, errors.Wrap(domainerrors.ErrAmountMustBePositive, "commission cannot be negative")
	}

	profile, err := srv.profileRepo.FindByID(ctx, input.VisitadoraID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotVisitadora, "visitadora not found")
		}

		return nil, errors.Wrap(err, "failed to find visitadora")
	}
	if profile.Role != entity.RoleVisitadora {
		return nil, errors.Wrap(domainerrors.ErrNotVisitadora, "profile is not a visitadora")
	}

	from, to := input.Period.Bounds(srv.loc)

	visits, err := srv.visitRepo.Count(ctx, entity.VisitFilter{VisitadoraID: &profile.ID, From: &from, To: &to})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count visits of period")
	}

	commission := &entity.VisitadoraCommission{
		VisitadoraID: profile.ID,
		Visitadora:   profile,
		Period:       input.Period,
		VisitCount:   visits,
		Amount:       amount,
		Status:       entity.CommissionPending,
	}

	if err := srv.commissionRepo.Upsert(ctx, commission); err != nil {
		if errors.Is(err, repository.ErrCommissionNotPending) {
			return nil, errors.Wrap(domainerrors.ErrCommissionAlreadyPaid, "visitadora commission already paid")
		}

		return nil, errors.Wrap(err, "failed to upsert visitadora commission")
	}

	srv.logger.InfoContext(ctx, "Visitadora commission registered",
		slog.Any("visitadoraID", profile.ID),
		slog.String("period", input.Period.String()),
		slog.Int64("visits", visits),
	)

	return commission, nil
}

// List returns commissions, newest period first.
func (srv *visitadoraCommissionService) List(ctx context.Context, visitadoraID *uuid.UUID) ([]*entity.VisitadoraCommission, error) {
	rows, err := srv.commissionRepo.List(ctx, visitadoraID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visitadora commissions")
	}

	return rows, nil
}

// MarkPaid records the paid amount on a pending commission.
func (srv *visitadoraCommissionService) MarkPaid(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*entity.VisitadoraCommission, error) {
	amount = amount.Round(2)
	if !amount.IsPositive() {
		return nil, errors.Wrap(domainerrors.ErrAmountMustBePositive, "paid amount must be positive")
	}

	if err := srv.commissionRepo.MarkPaid(ctx, id, entity.VisitadoraPayment{Amount: amount, PaidAt: srv.now()}); err != nil {
		switch {
		case errors.Is(err, repository.ErrVisitadoraCommissionNotFound):
			return nil, errors.Wrap(domainerrors.ErrCommissionNotFound, "visitadora commission not found")
		case errors.Is(err, repository.ErrCommissionNotPending):
			return nil, errors.Wrap(domainerrors.ErrCommissionAlreadyPaid, "visitadora commission already paid")
		default:
			return nil, errors.Wrap(err, "failed to mark visitadora commission paid")
		}
	}

	commission, err := srv.commissionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload visitadora commission")
	}

	return commission, nil
}
