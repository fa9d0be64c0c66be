package impl

import (
	"context"
	"testing"
	"time"

	"visitadoras/internal/domain/constants"
	"visitadoras/internal/domain/entity"
	domainerrors "visitadoras/internal/domain/errors"
	"visitadoras/internal/domain/repository"
	mockRepo "visitadoras/internal/mocks/repository"
	mockSvc "visitadoras/internal/mocks/service"
	"visitadoras/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type visitadoraServiceFixtures struct {
	service        *visitadoraService
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	profileRepo    *mockRepo.MockProfileRepository
	authRepo       *mockRepo.MockAuthRepository
	refreshRepo    *mockRepo.MockRefreshTokenRepository
	visitRepo      *mockRepo.MockVisitRepository
	commissionRepo *mockRepo.MockVisitadoraCommissionRepository
	hasher         *mockSvc.MockPasswordHasher
}

func createTestVisitadoraService(t *testing.T) visitadoraServiceFixtures {
	fx := visitadoraServiceFixtures{
		txManager:      mockRepo.NewMockTransactionManager(t),
		factory:        mockRepo.NewMockRepositoryFactory(t),
		profileRepo:    mockRepo.NewMockProfileRepository(t),
		authRepo:       mockRepo.NewMockAuthRepository(t),
		refreshRepo:    mockRepo.NewMockRefreshTokenRepository(t),
		visitRepo:      mockRepo.NewMockVisitRepository(t),
		commissionRepo: mockRepo.NewMockVisitadoraCommissionRepository(t),
		hasher:         mockSvc.NewMockPasswordHasher(t),
	}

	fx.service = NewVisitadoraService(VisitadoraServiceParams{
		TxManager:      fx.txManager,
		ProfileRepo:    fx.profileRepo,
		VisitRepo:      fx.visitRepo,
		CommissionRepo: fx.commissionRepo,
		Hasher:         fx.hasher,
		Config:         newTestConfig(0),
		Logger:         newDiscardLogger(),
	}).(*visitadoraService)

	return fx
}

func TestVisitadoraService_Create_Success(t *testing.T) {
	fx := createTestVisitadoraService(t)

	ctx := context.Background()
	newID := uuid.New()

	fx.hasher.EXPECT().Hash("secreto").Return("hashed", nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewProfileRepository().Return(fx.profileRepo)
	fx.factory.EXPECT().NewAuthRepository().Return(fx.authRepo)
	fx.profileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(_ context.Context, profile *entity.Profile) { profile.ID = newID }).
		Return(nil)
	fx.authRepo.EXPECT().
		CreateAuthentication(ctx, &entity.Authentication{
			ProfileID:      newID,
			Provider:       constants.AuthProviderEmail,
			ProviderUserID: "ana@example.com",
			PasswordHash:   "hashed",
		}).
		Return(nil)

	profile, err := fx.service.Create(ctx, &usecase.CreateVisitadoraInput{
		Email:    " Ana@Example.com ",
		Password: "secreto",
		Name:     " Ana López ",
		Zone:     "Zona 10",
	})

	require.NoError(t, err)
	assert.Equal(t, newID, profile.ID)
	assert.Equal(t, "ana@example.com", profile.Email)
	assert.Equal(t, "Ana López", profile.Name)
	assert.Equal(t, entity.RoleVisitadora, profile.Role)
	assert.True(t, profile.Active)
}

func TestVisitadoraService_Create_DuplicateEmail(t *testing.T) {
	fx := createTestVisitadoraService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewProfileRepository().Return(fx.profileRepo)
	fx.profileRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.Wrap(repository.ErrDuplicateKey, "profiles_email_key"))

	_, err := fx.service.Create(ctx, &usecase.CreateVisitadoraInput{Email: "ana@example.com", Password: "secreto", Name: "Ana"})

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestVisitadoraService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.CreateVisitadoraInput
		wantErr error
	}{
		{
			name:    "short password",
			input:   &usecase.CreateVisitadoraInput{Email: "ana@example.com", Password: "12345", Name: "Ana"},
			wantErr: domainerrors.ErrPasswordStrength,
		},
		{
			name:    "missing name",
			input:   &usecase.CreateVisitadoraInput{Email: "ana@example.com", Password: "secreto", Name: "  "},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "missing email",
			input:   &usecase.CreateVisitadoraInput{Password: "secreto", Name: "Ana"},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestVisitadoraService(t)

			_, err := fx.service.Create(context.Background(), tt.input)

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestVisitadoraService_Deactivate_KeepsHistory(t *testing.T) {
	fx := createTestVisitadoraService(t)

	ctx := context.Background()
	id := uuid.New()

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewProfileRepository().Return(fx.profileRepo)
	fx.factory.EXPECT().NewRefreshTokenRepository().Return(fx.refreshRepo)
	fx.profileRepo.EXPECT().FindByID(ctx, id).Return(&entity.Profile{ID: id, Role: entity.RoleVisitadora, Active: true}, nil)
	fx.profileRepo.EXPECT().SetActive(ctx, id, false).Return(nil)
	fx.refreshRepo.EXPECT().DeleteRefreshTokensByProfileID(ctx, id).Return(nil)

	// visitRepo and commissionRepo carry no expectations: history must be left untouched.
	err := fx.service.Deactivate(ctx, id)

	assert.NoError(t, err)
}

func TestVisitadoraService_Deactivate_RejectsAdmin(t *testing.T) {
	fx := createTestVisitadoraService(t)

	ctx := context.Background()
	id := uuid.New()

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewProfileRepository().Return(fx.profileRepo)
	fx.profileRepo.EXPECT().FindByID(ctx, id).Return(&entity.Profile{ID: id, Role: entity.RoleAdmin, Active: true}, nil)

	err := fx.service.Deactivate(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrNotVisitadora))
}

func TestVisitadoraService_Update(t *testing.T) {
	fx := createTestVisitadoraService(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Profile{ID: id, Name: "Ana", Role: entity.RoleVisitadora, Active: true}

	fx.profileRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	fx.profileRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.Name == "Ana María" && p.Zone == "Mixco" && p.Phone == "5555-1234"
		})).
		Return(nil)

	profile, err := fx.service.Update(ctx, id, &usecase.UpdateVisitadoraInput{Name: "Ana María ", Zone: "Mixco", Phone: " 5555-1234"})

	require.NoError(t, err)
	assert.Equal(t, "Ana María", profile.Name)
}

func TestVisitadoraService_Get_NotFound(t *testing.T) {
	fx := createTestVisitadoraService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.profileRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.Get(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestVisitadoraService_MyStats_CountsTodayInReportZone(t *testing.T) {
	fx := createTestVisitadoraService(t)

	ctx := context.Background()
	id := uuid.New()
	loc := guatemala(t)
	// 02:00 UTC on 11 Jun is still 10 Jun in Guatemala.
	fx.service.now = func() time.Time { return time.Date(2024, time.June, 11, 2, 0, 0, 0, time.UTC) }
	dayStart := time.Date(2024, time.June, 10, 0, 0, 0, 0, loc)

	fx.visitRepo.EXPECT().Count(ctx, entity.VisitFilter{VisitadoraID: &id}).Return(int64(42), nil)
	fx.visitRepo.EXPECT().
		Count(ctx, mock.MatchedBy(func(filter entity.VisitFilter) bool {
			return filter.From != nil && filter.From.Equal(dayStart) && filter.To.Equal(dayStart.AddDate(0, 0, 1))
		})).
		Return(int64(3), nil)

	counters, err := fx.service.MyStats(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, entity.VisitCounters{Total: 42, Today: 3}, *counters)
}
