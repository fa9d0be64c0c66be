package impl

import (
	"context"
	"testing"
	"time"

	"visitadoras/internal/domain/entity"
	domainerrors "visitadoras/internal/domain/errors"
	"visitadoras/internal/domain/repository"
	mockRepo "visitadoras/internal/mocks/repository"
	"visitadoras/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type commissionServiceFixtures struct {
	service       *commissionService
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	physicianRepo *mockRepo.MockPhysicianRepository
	profileRepo   *mockRepo.MockProfileRepository
	configRepo    *mockRepo.MockCommissionConfigRepository
	monthlyRepo   *mockRepo.MockMonthlyCommissionRepository
	physician     *entity.Physician
}

func createTestCommissionService(t *testing.T) commissionServiceFixtures {
	fx := commissionServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		factory:       mockRepo.NewMockRepositoryFactory(t),
		physicianRepo: mockRepo.NewMockPhysicianRepository(t),
		profileRepo:   mockRepo.NewMockProfileRepository(t),
		configRepo:    mockRepo.NewMockCommissionConfigRepository(t),
		monthlyRepo:   mockRepo.NewMockMonthlyCommissionRepository(t),
		physician:     &entity.Physician{ID: uuid.New(), Name: "Dr. Pérez", Active: true},
	}

	fx.service = NewCommissionService(CommissionServiceParams{
		TxManager:     fx.txManager,
		PhysicianRepo: fx.physicianRepo,
		ProfileRepo:   fx.profileRepo,
		ConfigRepo:    fx.configRepo,
		MonthlyRepo:   fx.monthlyRepo,
		Config:        newTestConfig(0),
		Logger:        newDiscardLogger(),
	}).(*commissionService)
	// 1 Aug 03:00 UTC is still July in Guatemala.
	fx.service.now = func() time.Time { return time.Date(2024, time.August, 1, 3, 0, 0, 0, time.UTC) }

	return fx
}

func rule(percentage, base string) entity.CommissionRule {
	return entity.CommissionRule{
		Percentage: decimal.RequireFromString(percentage),
		Base:       decimal.RequireFromString(base),
	}
}

func TestCommissionService_SaveConfig_UpsertsMonthlyLine(t *testing.T) {
	fx := createTestCommissionService(t)

	ctx := context.Background()

	fx.physicianRepo.EXPECT().FindByID(ctx, fx.physician.ID).Return(fx.physician, nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewCommissionConfigRepository().Return(fx.configRepo)
	fx.factory.EXPECT().NewMonthlyCommissionRepository().Return(fx.monthlyRepo)
	fx.configRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.CommissionConfig")).Return(nil)
	fx.monthlyRepo.EXPECT().
		UpsertAmounts(ctx, mock.MatchedBy(func(row *entity.MonthlyCommission) bool {
			return row.PhysicianName == "Dr. Pérez" &&
				*row.PhysicianID == fx.physician.ID &&
				row.Period == entity.Period{Month: 7, Year: 2024} &&
				row.Status == entity.CommissionPending
		})).
		Return(nil)

	output, err := fx.service.SaveConfig(ctx, fx.physician.ID, &usecase.SaveConfigInput{
		USG:      rule("15", "1000"),
		Especial: rule("12.5", "333.33"),
		EKG:      rule("0", "500"),
	})

	require.NoError(t, err)
	assert.Equal(t, "150.00", output.Amounts.USG.StringFixed(2))
	assert.Equal(t, "41.67", output.Amounts.Especial.StringFixed(2))
	assert.True(t, output.Amounts.EKG.IsZero())
	assert.Equal(t, "191.67", output.Monthly.Total().StringFixed(2))
}

func TestCommissionService_SaveConfig_ZeroAmountsSkipMonthlyLine(t *testing.T) {
	fx := createTestCommissionService(t)

	ctx := context.Background()

	fx.physicianRepo.EXPECT().FindByID(ctx, fx.physician.ID).Return(fx.physician, nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewCommissionConfigRepository().Return(fx.configRepo)
	fx.configRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)

	output, err := fx.service.SaveConfig(ctx, fx.physician.ID, &usecase.SaveConfigInput{
		USG: rule("15", "0"),
	})

	require.NoError(t, err)
	assert.Nil(t, output.Monthly)
}

func TestCommissionService_SaveConfig_InvalidRule(t *testing.T) {
	tests := []struct {
		name string
		rule entity.CommissionRule
	}{
		{name: "percentage above 100", rule: rule("100.01", "10")},
		{name: "negative percentage", rule: rule("-1", "10")},
		{name: "negative base", rule: rule("10", "-5")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCommissionService(t)

			_, err := fx.service.SaveConfig(context.Background(), fx.physician.ID, &usecase.SaveConfigInput{USG: tt.rule})

			assert.True(t, errors.Is(err, domainerrors.ErrInvalidCommissionRule))
		})
	}
}

func TestCommissionService_SaveConfig_InvalidPeriod(t *testing.T) {
	fx := createTestCommissionService(t)

	_, err := fx.service.SaveConfig(context.Background(), fx.physician.ID, &usecase.SaveConfigInput{
		USG:    rule("10", "100"),
		Period: &entity.Period{Month: 0, Year: 2024},
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPeriod))
}

func TestCommissionService_GetConfig_DefaultsToZero(t *testing.T) {
	fx := createTestCommissionService(t)

	ctx := context.Background()
	fx.physicianRepo.EXPECT().FindByID(ctx, fx.physician.ID).Return(fx.physician, nil)
	fx.configRepo.EXPECT().FindByPhysicianID(ctx, fx.physician.ID).Return(nil, repository.ErrCommissionConfigNotFound)

	cfg, err := fx.service.GetConfig(ctx, fx.physician.ID)

	require.NoError(t, err)
	assert.Equal(t, fx.physician.ID, cfg.PhysicianID)
	assert.True(t, cfg.Amounts().Total().IsZero())
}

func TestCommissionService_AddDirect_CreatesLine(t *testing.T) {
	fx := createTestCommissionService(t)

	ctx := context.Background()
	period := entity.Period{Month: 7, Year: 2024}

	fx.physicianRepo.EXPECT().FindByID(ctx, fx.physician.ID).Return(fx.physician, nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewMonthlyCommissionRepository().Return(fx.monthlyRepo)
	fx.monthlyRepo.EXPECT().FindPendingByPhysicianPeriodForUpdate(ctx, "Dr. Pérez", period).Return(nil, repository.ErrMonthlyCommissionNotFound)
	fx.monthlyRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.MonthlyCommission")).Return(nil)

	row, err := fx.service.AddDirect(ctx, &usecase.AddDirectInput{PhysicianID: fx.physician.ID, Amount: decimal.NewFromInt(200)})

	require.NoError(t, err)
	assert.Equal(t, "200.00", row.Amounts.USG.StringFixed(2))
	assert.Equal(t, period, row.Period)
}

func TestCommissionService_AddDirect_SumsIntoExistingLine(t *testing.T) {
	fx := createTestCommissionService(t)

	ctx := context.Background()
	period := entity.Period{Month: 3, Year: 2024}
	existing := &entity.MonthlyCommission{
		ID:            uuid.New(),
		PhysicianName: "Dr. Pérez",
		Period:        period,
		Amounts:       entity.CategoryAmounts{USG: decimal.NewFromInt(100), EKG: decimal.NewFromInt(5)},
		Status:        entity.CommissionPending,
	}

	fx.physicianRepo.EXPECT().FindByID(ctx, fx.physician.ID).Return(fx.physician, nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewMonthlyCommissionRepository().Return(fx.monthlyRepo)
	fx.monthlyRepo.EXPECT().FindPendingByPhysicianPeriodForUpdate(ctx, "Dr. Pérez", period).Return(existing, nil)
	fx.monthlyRepo.EXPECT().
		AddAmounts(ctx, existing.ID, mock.MatchedBy(func(amounts entity.CategoryAmounts) bool {
			return amounts.USG.Equal(decimal.RequireFromString("50.5")) && amounts.EKG.IsZero()
		})).
		Return(nil)

	row, err := fx.service.AddDirect(ctx, &usecase.AddDirectInput{
		PhysicianID: fx.physician.ID,
		Amount:      decimal.RequireFromString("50.5"),
		Period:      &period,
	})

	require.NoError(t, err)
	assert.Equal(t, "150.50", row.Amounts.USG.StringFixed(2))
	assert.Equal(t, "155.50", row.Total().StringFixed(2))
}

func TestCommissionService_AddDirect_LinePaidMeanwhile(t *testing.T) {
	fx := createTestCommissionService(t)

	ctx := context.Background()
	period := entity.Period{Month: 3, Year: 2024}
	existing := &entity.MonthlyCommission{ID: uuid.New(), PhysicianName: "Dr. Pérez", Period: period, Status: entity.CommissionPending}

	fx.physicianRepo.EXPECT().FindByID(ctx, fx.physician.ID).Return(fx.physician, nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewMonthlyCommissionRepository().Return(fx.monthlyRepo)
	fx.monthlyRepo.EXPECT().FindPendingByPhysicianPeriodForUpdate(ctx, "Dr. Pérez", period).Return(existing, nil)
	fx.monthlyRepo.EXPECT().AddAmounts(ctx, existing.ID, mock.Anything).Return(repository.ErrCommissionNotPending)

	_, err := fx.service.AddDirect(ctx, &usecase.AddDirectInput{PhysicianID: fx.physician.ID, Amount: decimal.NewFromInt(1), Period: &period})

	assert.True(t, errors.Is(err, domainerrors.ErrCommissionAlreadyPaid))
}

func TestCommissionService_AddDirect_RejectsNonPositive(t *testing.T) {
	fx := createTestCommissionService(t)

	_, err := fx.service.AddDirect(context.Background(), &usecase.AddDirectInput{
		PhysicianID: fx.physician.ID,
		Amount:      decimal.RequireFromString("0.004"),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrAmountMustBePositive))
}

func TestCommissionService_DeleteMonthly_PaidLine(t *testing.T) {
	fx := createTestCommissionService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.monthlyRepo.EXPECT().Delete(ctx, id).Return(repository.ErrCommissionNotPending)

	err := fx.service.DeleteMonthly(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrCommissionAlreadyPaid))
}

func TestCommissionService_GetMonthly_ResolvesPayer(t *testing.T) {
	fx := createTestCommissionService(t)

	ctx := context.Background()
	payer := &entity.Profile{ID: uuid.New(), Name: "Lucía"}
	row := &entity.MonthlyCommission{ID: uuid.New(), Status: entity.CommissionPaid, PaidBy: &payer.ID}

	fx.monthlyRepo.EXPECT().FindByID(ctx, row.ID).Return(row, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, payer.ID).Return(payer, nil)

	detail, err := fx.service.GetMonthly(ctx, row.ID)

	require.NoError(t, err)
	assert.Equal(t, "Lucía", detail.PayerName)
}

func TestCommissionService_Summary(t *testing.T) {
	fx := createTestCommissionService(t)

	ctx := context.Background()
	rows := []*entity.MonthlyCommission{
		{Amounts: entity.CategoryAmounts{USG: decimal.NewFromInt(100)}, Status: entity.CommissionPending},
		{Amounts: entity.CategoryAmounts{EKG: decimal.NewFromInt(40)}, Status: entity.CommissionPaid},
		{Amounts: entity.CategoryAmounts{Especial: decimal.NewFromInt(10)}, Status: entity.CommissionPending},
	}
	fx.monthlyRepo.EXPECT().List(ctx, entity.MonthlyCommissionFilter{}).Return(rows, nil)

	summary, err := fx.service.Summary(ctx, entity.MonthlyCommissionFilter{})

	require.NoError(t, err)
	assert.Equal(t, 2, summary.CountPending)
	assert.Equal(t, 1, summary.CountPaid)
	assert.Equal(t, "110.00", summary.TotalPending.StringFixed(2))
	assert.Equal(t, "150.00", summary.Total().StringFixed(2))
}
