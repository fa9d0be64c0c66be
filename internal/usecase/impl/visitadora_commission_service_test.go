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

type visitadoraCommissionServiceFixtures struct {
	service        *visitadoraCommissionService
	commissionRepo *mockRepo.MockVisitadoraCommissionRepository
	profileRepo    *mockRepo.MockProfileRepository
	visitRepo      *mockRepo.MockVisitRepository
	now            time.Time
}

func createTestVisitadoraCommissionService(t *testing.T) visitadoraCommissionServiceFixtures {
	fx := visitadoraCommissionServiceFixtures{
		commissionRepo: mockRepo.NewMockVisitadoraCommissionRepository(t),
		profileRepo:    mockRepo.NewMockProfileRepository(t),
		visitRepo:      mockRepo.NewMockVisitRepository(t),
		now:            time.Date(2024, time.July, 2, 15, 0, 0, 0, time.UTC),
	}

	fx.service = NewVisitadoraCommissionService(VisitadoraCommissionServiceParams{
		CommissionRepo: fx.commissionRepo,
		ProfileRepo:    fx.profileRepo,
		VisitRepo:      fx.visitRepo,
		Config:         newTestConfig(0),
		Logger:         newDiscardLogger(),
	}).(*visitadoraCommissionService)
	fx.service.now = func() time.Time { return fx.now }

	return fx
}

func TestVisitadoraCommissionService_Register_CountsVisitsOfTheMonth(t *testing.T) {
	fx := createTestVisitadoraCommissionService(t)

	ctx := context.Background()
	loc := guatemala(t)
	profile := &entity.Profile{ID: uuid.New(), Name: "Ana", Role: entity.RoleVisitadora, Active: true}
	period := entity.Period{Month: 6, Year: 2024}
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, loc)

	fx.profileRepo.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	fx.visitRepo.EXPECT().
		Count(ctx, mock.MatchedBy(func(filter entity.VisitFilter) bool {
			return *filter.VisitadoraID == profile.ID &&
				filter.From.Equal(start) &&
				filter.To.Equal(start.AddDate(0, 1, 0))
		})).
		Return(int64(27), nil)
	fx.commissionRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(c *entity.VisitadoraCommission) bool {
			return c.VisitCount == 27 && c.Status == entity.CommissionPending && c.Amount.Equal(decimal.RequireFromString("1250.5"))
		})).
		Return(nil)

	commission, err := fx.service.Register(ctx, &usecase.RegisterVisitadoraCommissionInput{
		VisitadoraID: profile.ID,
		Period:       period,
		Amount:       decimal.RequireFromString("1250.499"),
	})

	require.NoError(t, err)
	assert.Equal(t, "1250.50", commission.Amount.StringFixed(2))
	assert.Equal(t, profile, commission.Visitadora)
}

func TestVisitadoraCommissionService_Register_ZeroAmountIsAllowed(t *testing.T) {
	fx := createTestVisitadoraCommissionService(t)

	ctx := context.Background()
	profile := &entity.Profile{ID: uuid.New(), Role: entity.RoleVisitadora}

	fx.profileRepo.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	fx.visitRepo.EXPECT().Count(ctx, mock.Anything).Return(int64(0), nil)
	fx.commissionRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterVisitadoraCommissionInput{
		VisitadoraID: profile.ID,
		Period:       entity.Period{Month: 1, Year: 2024},
		Amount:       decimal.Zero,
	})

	assert.NoError(t, err)
}

func TestVisitadoraCommissionService_Register_Rejects(t *testing.T) {
	adminID := uuid.New()
	visitadoraID := uuid.New()

	tests := []struct {
		name    string
		input   *usecase.RegisterVisitadoraCommissionInput
		setup   func(fx visitadoraCommissionServiceFixtures)
		wantErr error
	}{
		{
			name:    "invalid period",
			input:   &usecase.RegisterVisitadoraCommissionInput{VisitadoraID: uuid.New(), Period: entity.Period{Month: 13, Year: 2024}},
			wantErr: domainerrors.ErrInvalidPeriod,
		},
		{
			name:    "negative amount",
			input:   &usecase.RegisterVisitadoraCommissionInput{VisitadoraID: uuid.New(), Period: entity.Period{Month: 1, Year: 2024}, Amount: decimal.NewFromInt(-1)},
			wantErr: domainerrors.ErrAmountMustBePositive,
		},
		{
			name:  "admin profile",
			input: &usecase.RegisterVisitadoraCommissionInput{VisitadoraID: adminID, Period: entity.Period{Month: 1, Year: 2024}},
			setup: func(fx visitadoraCommissionServiceFixtures) {
				fx.profileRepo.EXPECT().FindByID(mock.Anything, adminID).Return(&entity.Profile{ID: adminID, Role: entity.RoleAdmin}, nil)
			},
			wantErr: domainerrors.ErrNotVisitadora,
		},
		{
			name:  "unknown profile",
			input: &usecase.RegisterVisitadoraCommissionInput{VisitadoraID: adminID, Period: entity.Period{Month: 1, Year: 2024}},
			setup: func(fx visitadoraCommissionServiceFixtures) {
				fx.profileRepo.EXPECT().FindByID(mock.Anything, adminID).Return(nil, repository.ErrProfileNotFound)
			},
			wantErr: domainerrors.ErrNotVisitadora,
		},
		{
			name:  "month already paid",
			input: &usecase.RegisterVisitadoraCommissionInput{VisitadoraID: visitadoraID, Period: entity.Period{Month: 5, Year: 2024}, Amount: decimal.NewFromInt(900)},
			setup: func(fx visitadoraCommissionServiceFixtures) {
				fx.profileRepo.EXPECT().FindByID(mock.Anything, visitadoraID).Return(&entity.Profile{ID: visitadoraID, Role: entity.RoleVisitadora}, nil)
				fx.visitRepo.EXPECT().Count(mock.Anything, mock.Anything).Return(int64(12), nil)
				fx.commissionRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(repository.ErrCommissionNotPending)
			},
			wantErr: domainerrors.ErrCommissionAlreadyPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestVisitadoraCommissionService(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			_, err := fx.service.Register(context.Background(), tt.input)

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestVisitadoraCommissionService_MarkPaid(t *testing.T) {
	fx := createTestVisitadoraCommissionService(t)

	ctx := context.Background()
	id := uuid.New()
	paid := decimal.RequireFromString("800.00")
	reloaded := &entity.VisitadoraCommission{ID: id, Status: entity.CommissionPaid, AmountPaid: &paid}

	fx.commissionRepo.EXPECT().
		MarkPaid(ctx, id, mock.MatchedBy(func(p entity.VisitadoraPayment) bool {
			return p.Amount.Equal(paid) && p.PaidAt.Equal(fx.now)
		})).
		Return(nil)
	fx.commissionRepo.EXPECT().FindByID(ctx, id).Return(reloaded, nil)

	commission, err := fx.service.MarkPaid(ctx, id, decimal.NewFromInt(800))

	require.NoError(t, err)
	assert.Equal(t, entity.CommissionPaid, commission.Status)
}

func TestVisitadoraCommissionService_MarkPaid_Errors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "not found", repoErr: repository.ErrVisitadoraCommissionNotFound, wantErr: domainerrors.ErrCommissionNotFound},
		{name: "already paid", repoErr: repository.ErrCommissionNotPending, wantErr: domainerrors.ErrCommissionAlreadyPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestVisitadoraCommissionService(t)

			id := uuid.New()
			fx.commissionRepo.EXPECT().MarkPaid(mock.Anything, id, mock.Anything).Return(tt.repoErr)

			_, err := fx.service.MarkPaid(context.Background(), id, decimal.NewFromInt(1))

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestVisitadoraCommissionService_MarkPaid_NonPositive(t *testing.T) {
	fx := createTestVisitadoraCommissionService(t)

	_, err := fx.service.MarkPaid(context.Background(), uuid.New(), decimal.Zero)

	assert.True(t, errors.Is(err, domainerrors.ErrAmountMustBePositive))
}
