package impl

import (
	"context"
	"log/slog"
	"time"

	"visitadoras/config"
	deliverycontext "visitadoras/internal/delivery/context"
	"visitadoras/internal/domain/entity"
	domainerrors "visitadoras/internal/domain/errors"
	"visitadoras/internal/domain/repository"
	"visitadoras/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type commissionService struct {
	txManager     repository.TransactionManager
	physicianRepo repository.PhysicianRepository
	profileRepo   repository.ProfileRepository
	configRepo    repository.CommissionConfigRepository
	monthlyRepo   repository.MonthlyCommissionRepository
	loc           *time.Location
	now           func() time.Time
	logger        *slog.Logger
}

// CommissionServiceParams holds dependencies for CommissionService, injected by Fx.
type CommissionServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	PhysicianRepo repository.PhysicianRepository
	ProfileRepo   repository.ProfileRepository
	ConfigRepo    repository.CommissionConfigRepository
	MonthlyRepo   repository.MonthlyCommissionRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewCommissionService is the constructor for commissionService.
func NewCommissionService(params CommissionServiceParams) usecase.CommissionUsecase {
	return &commissionService{
		txManager:     params.TxManager,
		physicianRepo: params.PhysicianRepo,
		profileRepo:   params.ProfileRepo,
		configRepo:    params.ConfigRepo,
		monthlyRepo:   params.MonthlyRepo,
		loc:           params.Config.Location(),
		now:           time.Now,
		logger:        params.Logger,
	}
}

func (srv *commissionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetConfig returns the rules of a physician, zero-valued when none were saved.
func (srv *commissionService) GetConfig(ctx context.Context, physicianID uuid.UUID) (*entity.CommissionConfig, error) {
	if _, err := srv.physician(ctx, physicianID); err != nil {
		return nil, err
	}

	cfg, err := srv.configRepo.FindByPhysicianID(ctx, physicianID)
	if err != nil {
		if errors.Is(err, repository.ErrCommissionConfigNotFound) {
			return &entity.CommissionConfig{PhysicianID: physicianID}, nil
		}

		return nil, errors.Wrap(err, "failed to find commission config")
	}

	return cfg, nil
}

// SaveConfig stores the rules and overwrites the physician's line of the period.
func (srv *commissionService) SaveConfig(ctx context.Context, physicianID uuid.UUID, input *usecase.SaveConfigInput) (*usecase.SaveConfigOutput, error) {
	cfg := &entity.CommissionConfig{
		PhysicianID: physicianID,
		USG:         input.USG,
		Especial:    input.Especial,
		EKG:         input.EKG,
	}
	if !cfg.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidCommissionRule, "rule out of range")
	}

	period, err := srv.resolvePeriod(input.Period)
	if err != nil {
		return nil, err
	}

	physician, err := srv.physician(ctx, physicianID)
	if err != nil {
		return nil, err
	}

	output := &usecase.SaveConfigOutput{Config: cfg, Amounts: cfg.Amounts()}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewCommissionConfigRepository().Upsert(ctx, cfg); err != nil {
			return errors.Wrap(err, "failed to upsert commission config")
		}

		if !output.Amounts.IsPositive() {
			return nil
		}

		monthly := &entity.MonthlyCommission{
			PhysicianID:   &physician.ID,
			PhysicianName: physician.Name,
			Period:        period,
			Amounts:       output.Amounts,
			Status:        entity.CommissionPending,
		}
		if err := repoFactory.NewMonthlyCommissionRepository().UpsertAmounts(ctx, monthly); err != nil {
			return errors.Wrap(err, "failed to upsert monthly commission")
		}
		output.Monthly = monthly

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute save config transaction")
	}

	srv.log(ctx).Info("Commission config saved",
		slog.Any("physicianID", physicianID),
		slog.String("period", period.String()),
		slog.String("total", output.Amounts.Total().StringFixed(2)),
	)

	return output, nil
}

// AddDirect sums a flat amount into the USG category of the physician's line.
func (srv *commissionService) AddDirect(ctx context.Context, input *usecase.AddDirectInput) (*entity.MonthlyCommission, error) {
	amount := input.Amount.Round(2)
	if !amount.IsPositive() {
		return nil, errors.Wrap(domainerrors.ErrAmountMustBePositive, "direct commission must be positive")
	}

	period, err := srv.resolvePeriod(input.Period)
	if err != nil {
		return nil, err
	}

	physician, err := srv.physician(ctx, input.PhysicianID)
	if err != nil {
		return nil, err
	}

	addition := entity.CategoryAmounts{USG: amount}

	var result *entity.MonthlyCommission
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		monthlyRepo := repoFactory.NewMonthlyCommissionRepository()

		// Paid lines are closed; a new pending line takes the amount.
		existing, err := monthlyRepo.FindPendingByPhysicianPeriodForUpdate(ctx, physician.Name, period)
		if err != nil && !errors.Is(err, repository.ErrMonthlyCommissionNotFound) {
			return errors.Wrap(err, "failed to lock monthly commission")
		}

		if existing == nil {
			result = &entity.MonthlyCommission{
				PhysicianID:   &physician.ID,
				PhysicianName: physician.Name,
				Period:        period,
				Amounts:       addition,
				Status:        entity.CommissionPending,
			}

			return errors.Wrap(monthlyRepo.Create(ctx, result), "failed to create monthly commission")
		}

		if err := monthlyRepo.AddAmounts(ctx, existing.ID, addition); err != nil {
			if errors.Is(err, repository.ErrCommissionNotPending) {
				return errors.Wrap(domainerrors.ErrCommissionAlreadyPaid, "monthly commission already paid")
			}

			return errors.Wrap(err, "failed to add monthly commission amounts")
		}

		existing.Amounts = existing.Amounts.Add(addition)
		result = existing

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute direct commission transaction")
	}

	return result, nil
}

// ListMonthly returns the rollup ordered by status then total.
func (srv *commissionService) ListMonthly(ctx context.Context, filter entity.MonthlyCommissionFilter) ([]*entity.MonthlyCommission, error) {
	if filter.Period != nil && !filter.Period.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidPeriod, "invalid period filter")
	}

	rows, err := srv.monthlyRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list monthly commissions")
	}

	return rows, nil
}

// Summary aggregates the filtered rollup by status.
func (srv *commissionService) Summary(ctx context.Context, filter entity.MonthlyCommissionFilter) (*entity.CommissionSummary, error) {
	rows, err := srv.ListMonthly(ctx, filter)
	if err != nil {
		return nil, err
	}

	summary := entity.SummarizeMonthly(rows)

	return &summary, nil
}

// GetMonthly returns a line with the payer's name when it was paid.
func (srv *commissionService) GetMonthly(ctx context.Context, id uuid.UUID) (*entity.MonthlyCommissionDetail, error) {
	row, err := srv.monthlyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMonthlyCommissionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCommissionNotFound, "monthly commission not found")
		}

		return nil, errors.Wrap(err, "failed to find monthly commission")
	}

	return withPayerName(ctx, srv.profileRepo, row), nil
}

// DeleteMonthly removes a pending line.
func (srv *commissionService) DeleteMonthly(ctx context.Context, id uuid.UUID) error {
	if err := srv.monthlyRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrMonthlyCommissionNotFound):
			return errors.Wrap(domainerrors.ErrCommissionNotFound, "monthly commission not found")
		case errors.Is(err, repository.ErrCommissionNotPending):
			return errors.Wrap(domainerrors.ErrCommissionAlreadyPaid, "paid commissions cannot be deleted")
		default:
			return errors.Wrap(err, "failed to delete monthly commission")
		}
	}

	return nil
}

// DeleteAllPending removes every pending line.
func (srv *commissionService) DeleteAllPending(ctx context.Context) (int64, error) {
	deleted, err := srv.monthlyRepo.DeleteByStatus(ctx, entity.CommissionPending)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete pending commissions")
	}

	srv.log(ctx).Warn("Pending monthly commissions deleted", slog.Int64("deleted", deleted))

	return deleted, nil
}

// DeleteAll empties the rollup.
func (srv *commissionService) DeleteAll(ctx context.Context) (int64, error) {
	deleted, err := srv.monthlyRepo.DeleteAll(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete monthly commissions")
	}

	srv.log(ctx).Warn("All monthly commissions deleted", slog.Int64("deleted", deleted))

	return deleted, nil
}

func (srv *commissionService) physician(ctx context.Context, id uuid.UUID) (*entity.Physician, error) {
	physician, err := srv.physicianRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPhysicianNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPhysicianNotFound, "physician not found")
		}

		return nil, errors.Wrap(err, "failed to find physician")
	}

	return physician, nil
}

func (srv *commissionService) resolvePeriod(period *entity.Period) (entity.Period, error) {
	if period == nil {
		return entity.PeriodOf(srv.now().In(srv.loc)), nil
	}
	if !period.IsValid() {
		return entity.Period{}, errors.Wrap(domainerrors.ErrInvalidPeriod, period.String())
	}

	return *period, nil
}

// withPayerName resolves the display name of whoever paid a line.
func withPayerName(ctx context.Context, profileRepo repository.ProfileRepository, row *entity.MonthlyCommission) *entity.MonthlyCommissionDetail {
	detail := &entity.MonthlyCommissionDetail{MonthlyCommission: row}
	if row.PaidBy == nil {
		return detail
	}

	if payer, err := profileRepo.FindByID(ctx, *row.PaidBy); err == nil {
		detail.PayerName = payer.Name
	}

	return detail
}

// sumAmounts is the total paid out for a line, rounded to cents.
func sumAmounts(amounts entity.CategoryAmounts) decimal.Decimal {
	return amounts.Total().Round(2)
}
