package impl

import (
	"context"
	"testing"
	"time"

	"visitadoras/internal/domain/constants"
	"visitadoras/internal/domain/entity"
	domainerrors "visitadoras/internal/domain/errors"
	"visitadoras/internal/domain/repository"
	"visitadoras/internal/domain/service"
	mockRepo "visitadoras/internal/mocks/repository"
	mockSvc "visitadoras/internal/mocks/service"
	"visitadoras/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service          *sessionService
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	profileRepo      *mockRepo.MockProfileRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	authRepo         *mockRepo.MockAuthRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	now              time.Time
}

func createTestSessionService(t *testing.T, maxActiveSessions int) sessionServiceFixtures {
	fx := sessionServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
		profileRepo:      mockRepo.NewMockProfileRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		authRepo:         mockRepo.NewMockAuthRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
		now:              time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC),
	}

	fx.service = NewSessionService(SessionServiceParams{
		TxManager:        fx.txManager,
		ProfileRepo:      fx.profileRepo,
		RefreshTokenRepo: fx.refreshTokenRepo,
		Hasher:           fx.hasher,
		TokenService:     fx.tokenService,
		Config:           newTestConfig(maxActiveSessions),
		Logger:           newDiscardLogger(),
	}).(*sessionService)
	fx.service.now = func() time.Time { return fx.now }

	return fx
}

func (fx sessionServiceFixtures) expectLoginAuth(ctx context.Context, email string, auth *entity.Authentication, err error) {
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewAuthRepository().Return(fx.authRepo).Once()
	fx.authRepo.EXPECT().FindAuthentication(ctx, constants.AuthProviderEmail, email).Return(auth, err)
}

func TestSessionService_Login_Success(t *testing.T) {
	fx := createTestSessionService(t, 0)

	ctx := context.Background()
	profile := &entity.Profile{ID: uuid.New(), Email: "ana@example.com", Name: "Ana", Role: entity.RoleVisitadora, Active: true}
	auth := &entity.Authentication{ProfileID: profile.ID, PasswordHash: "hash"}

	fx.expectLoginAuth(ctx, profile.Email, auth, nil)
	fx.hasher.EXPECT().Check("secret", "hash").Return(true)
	fx.profileRepo.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	fx.tokenService.EXPECT().GenerateTokens(profile.ID, entity.RoleVisitadora).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.ProfileID == profile.ID &&
				token.TokenHash == "refresh-hash" &&
				token.DeviceInfo == "android" &&
				token.ExpiresAt.Equal(fx.now.Add(24*time.Hour))
		})).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: profile.Email, Password: "secret", DeviceInfo: "android"})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, entity.RoleVisitadora, output.Session.Role)
	assert.Same(t, profile, output.Session.Profile)
}

func TestSessionService_Login_UnknownEmail(t *testing.T) {
	fx := createTestSessionService(t, 0)

	ctx := context.Background()
	fx.expectLoginAuth(ctx, "nobody@example.com", nil, repository.ErrAuthNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "secret"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestSessionService_Login_WrongPassword(t *testing.T) {
	fx := createTestSessionService(t, 0)

	ctx := context.Background()
	auth := &entity.Authentication{ProfileID: uuid.New(), PasswordHash: "hash"}

	fx.expectLoginAuth(ctx, "ana@example.com", auth, nil)
	fx.hasher.EXPECT().Check("wrong", "hash").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "wrong"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestSessionService_Login_InactiveProfileIsSignedOut(t *testing.T) {
	fx := createTestSessionService(t, 0)

	ctx := context.Background()
	profile := &entity.Profile{ID: uuid.New(), Role: entity.RoleVisitadora, Active: false}
	auth := &entity.Authentication{ProfileID: profile.ID, PasswordHash: "hash"}

	fx.expectLoginAuth(ctx, "ana@example.com", auth, nil)
	fx.hasher.EXPECT().Check("secret", "hash").Return(true)
	fx.profileRepo.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokensByProfileID(ctx, profile.ID).Return(nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "secret"})

	assert.True(t, errors.Is(err, domainerrors.ErrAccountDisabled))
}

func TestSessionService_Login_EvictsOldestSessions(t *testing.T) {
	fx := createTestSessionService(t, 2)

	ctx := context.Background()
	profile := &entity.Profile{ID: uuid.New(), Role: entity.RoleAdmin, Active: true}
	auth := &entity.Authentication{ProfileID: profile.ID, PasswordHash: "hash"}
	oldest := &entity.RefreshToken{ID: uuid.New(), ProfileID: profile.ID}
	newest := &entity.RefreshToken{ID: uuid.New(), ProfileID: profile.ID}

	fx.expectLoginAuth(ctx, "admin@example.com", auth, nil)
	fx.hasher.EXPECT().Check("secret", "hash").Return(true)
	fx.profileRepo.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	fx.tokenService.EXPECT().GenerateTokens(profile.ID, entity.RoleAdmin).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(time.Hour)

	fx.factory.EXPECT().NewRefreshTokenRepository().Return(fx.refreshTokenRepo).Once()
	fx.refreshTokenRepo.EXPECT().FindRefreshTokensByProfileID(ctx, profile.ID).Return([]*entity.RefreshToken{oldest, newest}, nil)
	fx.refreshTokenRepo.EXPECT().DeleteRefreshToken(ctx, oldest.ID).Return(nil).Once()
	fx.refreshTokenRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "admin@example.com", Password: "secret"})

	require.NoError(t, err)
	fx.refreshTokenRepo.AssertNotCalled(t, "DeleteRefreshToken", ctx, newest.ID)
}

func TestSessionService_Refresh_RotatesToken(t *testing.T) {
	fx := createTestSessionService(t, 0)

	ctx := context.Background()
	profile := &entity.Profile{ID: uuid.New(), Role: entity.RoleVisitadora, Active: true}
	stored := &entity.RefreshToken{
		ID:         uuid.New(),
		ProfileID:  profile.ID,
		TokenHash:  "old-hash",
		DeviceInfo: "ios",
		ExpiresAt:  fx.now.Add(time.Hour),
	}

	fx.tokenService.EXPECT().ValidateRefreshToken("old").Return(&service.Claims{ProfileID: profile.ID, Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken("old").Return("old-hash")
	fx.tokenService.EXPECT().HashToken("new").Return("new-hash")
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(time.Hour)
	fx.tokenService.EXPECT().GenerateTokens(profile.ID, entity.RoleVisitadora).Return("access", "new", nil)

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewRefreshTokenRepository().Return(fx.refreshTokenRepo)
	fx.factory.EXPECT().NewProfileRepository().Return(fx.profileRepo)
	fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "old-hash").Return(stored, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	fx.refreshTokenRepo.EXPECT().DeleteRefreshToken(ctx, stored.ID).Return(nil)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.TokenHash == "new-hash" && token.DeviceInfo == "ios"
		})).
		Return(nil)

	output, err := fx.service.Refresh(ctx, "old")

	require.NoError(t, err)
	assert.Equal(t, "new", output.RefreshToken)
	assert.Equal(t, "access", output.AccessToken)
}

func TestSessionService_Refresh_Expired(t *testing.T) {
	fx := createTestSessionService(t, 0)

	ctx := context.Background()
	profileID := uuid.New()
	stored := &entity.RefreshToken{ID: uuid.New(), ProfileID: profileID, ExpiresAt: fx.now.Add(-time.Minute)}

	fx.tokenService.EXPECT().ValidateRefreshToken("old").Return(&service.Claims{ProfileID: profileID}, nil)
	fx.tokenService.EXPECT().HashToken("old").Return("old-hash")

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewRefreshTokenRepository().Return(fx.refreshTokenRepo)
	fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "old-hash").Return(stored, nil)
	fx.refreshTokenRepo.EXPECT().DeleteRefreshToken(ctx, stored.ID).Return(nil)

	_, err := fx.service.Refresh(ctx, "old")

	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenExpired))
}

func TestSessionService_Refresh_InactiveProfile(t *testing.T) {
	fx := createTestSessionService(t, 0)

	ctx := context.Background()
	profile := &entity.Profile{ID: uuid.New(), Role: entity.RoleVisitadora, Active: false}
	stored := &entity.RefreshToken{ID: uuid.New(), ProfileID: profile.ID, ExpiresAt: fx.now.Add(time.Hour)}

	fx.tokenService.EXPECT().ValidateRefreshToken("old").Return(&service.Claims{ProfileID: profile.ID}, nil)
	fx.tokenService.EXPECT().HashToken("old").Return("old-hash")

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewRefreshTokenRepository().Return(fx.refreshTokenRepo)
	fx.factory.EXPECT().NewProfileRepository().Return(fx.profileRepo)
	fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "old-hash").Return(stored, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokensByProfileID(ctx, profile.ID).Return(nil)

	_, err := fx.service.Refresh(ctx, "old")

	assert.True(t, errors.Is(err, domainerrors.ErrAccountDisabled))
}

func TestSessionService_Refresh_SubjectMismatch(t *testing.T) {
	fx := createTestSessionService(t, 0)

	ctx := context.Background()
	stored := &entity.RefreshToken{ID: uuid.New(), ProfileID: uuid.New(), ExpiresAt: fx.now.Add(time.Hour)}

	fx.tokenService.EXPECT().ValidateRefreshToken("old").Return(&service.Claims{ProfileID: uuid.New()}, nil)
	fx.tokenService.EXPECT().HashToken("old").Return("old-hash")

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewRefreshTokenRepository().Return(fx.refreshTokenRepo)
	fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "old-hash").Return(stored, nil)

	_, err := fx.service.Refresh(ctx, "old")

	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestSessionService_Refresh_InvalidSignature(t *testing.T) {
	fx := createTestSessionService(t, 0)

	fx.tokenService.EXPECT().ValidateRefreshToken("garbage").Return(nil, errors.New("token is malformed"))

	_, err := fx.service.Refresh(context.Background(), "garbage")

	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestSessionService_Logout_IgnoresUnknownToken(t *testing.T) {
	fx := createTestSessionService(t, 0)

	ctx := context.Background()
	fx.tokenService.EXPECT().ValidateRefreshToken("old").Return(nil, errors.New("expired"))
	fx.tokenService.EXPECT().HashToken("old").Return("old-hash")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "old-hash").Return(repository.ErrRefreshTokenNotFound)

	assert.NoError(t, fx.service.Logout(ctx, "old"))
}

func TestSessionService_Current_InactiveProfile(t *testing.T) {
	fx := createTestSessionService(t, 0)

	ctx := context.Background()
	profile := &entity.Profile{ID: uuid.New(), Role: entity.RoleVisitadora, Active: false}

	fx.profileRepo.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokensByProfileID(ctx, profile.ID).Return(nil)

	_, err := fx.service.Current(ctx, profile.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrAccountDisabled))
}

func TestSessionService_Current_Active(t *testing.T) {
	fx := createTestSessionService(t, 0)

	ctx := context.Background()
	profile := &entity.Profile{ID: uuid.New(), Role: entity.RoleAdmin, Active: true}

	fx.profileRepo.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)

	session, err := fx.service.Current(ctx, profile.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, session.Role)
}
