// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"visitadoras/config"
	deliverycontext "visitadoras/internal/delivery/context"
	"visitadoras/internal/domain/constants"
	"visitadoras/internal/domain/entity"
	domainerrors "visitadoras/internal/domain/errors"
	"visitadoras/internal/domain/repository"
	"visitadoras/internal/domain/service"
	"visitadoras/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager         repository.TransactionManager
	profileRepo       repository.ProfileRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	maxActiveSessions int
	now               func() time.Time
	logger            *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	ProfileRepo      repository.ProfileRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &sessionService{
		txManager:         params.TxManager,
		profileRepo:       params.ProfileRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		maxActiveSessions: maxActiveSessions,
		now:               time.Now,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login orchestrates the sign-in process.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	authRecord, err := srv.loadLoginAuth(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load login authentication")
	}

	// bcrypt is CPU-bound, keep it outside the transaction.
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	profile, err := srv.profileRepo.FindByID(ctx, authRecord.ProfileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "profile of authentication missing")
		}

		return nil, errors.Wrap(err, "failed to load login profile")
	}

	if !profile.Active {
		return nil, srv.signOutDisabled(ctx, profile.ID)
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(profile.ID, profile.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.persistRefreshToken(ctx, profile.ID, refreshToken, input.DeviceInfo); err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}

	srv.log(ctx).Info("Profile logged in", slog.Any("profileID", profile.ID), slog.Any("role", profile.Role))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Session:      &entity.Session{Profile: profile, Role: profile.Role},
	}, nil
}

func (srv *sessionService) loadLoginAuth(ctx context.Context, email string) (*entity.Authentication, error) {
	var authRecord *entity.Authentication

	// Read credentials from the primary to avoid stale reads on replicas.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		authRecord, findErr = repoFactory.NewAuthRepository().FindAuthentication(ctx, constants.AuthProviderEmail, email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAuthNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(findErr, "failed to find authentication")
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute login auth transaction")
	}

	return authRecord, nil
}

func (srv *sessionService) persistRefreshToken(ctx context.Context, profileID uuid.UUID, refreshToken, deviceInfo string) error {
	if srv.maxActiveSessions <= 0 {
		return srv.storeRefreshToken(ctx, srv.refreshTokenRepo, profileID, refreshToken, deviceInfo)
	}

	// Evict the oldest sessions and insert in one transaction.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		sessions, err := refreshRepo.FindRefreshTokensByProfileID(ctx, profileID)
		if err != nil {
			return errors.Wrap(err, "failed to list active sessions")
		}

		for i := 0; len(sessions)-i >= srv.maxActiveSessions; i++ {
			if err := refreshRepo.DeleteRefreshToken(ctx, sessions[i].ID); err != nil {
				return errors.Wrap(err, "failed to evict oldest session")
			}
		}

		return srv.storeRefreshToken(ctx, refreshRepo, profileID, refreshToken, deviceInfo)
	}); err != nil {
		return errors.Wrap(err, "failed to execute session limit transaction")
	}

	return nil
}

func (srv *sessionService) storeRefreshToken(
	ctx context.Context,
	refreshRepo repository.RefreshTokenRepository,
	profileID uuid.UUID,
	refreshToken, deviceInfo string,
) error {
	record := &entity.RefreshToken{
		ProfileID:  profileID,
		TokenHash:  srv.tokenService.HashToken(refreshToken),
		DeviceInfo: deviceInfo,
		ExpiresAt:  srv.now().Add(srv.tokenService.RefreshTokenDuration()),
	}

	if err := refreshRepo.CreateRefreshToken(ctx, record); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// signOutDisabled revokes every session of a deactivated profile.
func (srv *sessionService) signOutDisabled(ctx context.Context, profileID uuid.UUID) error {
	srv.log(ctx).Warn("Inactive profile signed out", slog.Any("profileID", profileID))

	if err := srv.refreshTokenRepo.DeleteRefreshTokensByProfileID(ctx, profileID); err != nil {
		srv.log(ctx).Error("Failed to revoke sessions of inactive profile", slog.Any("profileID", profileID), slog.Any("error", err))
	}

	return errors.Wrap(domainerrors.ErrAccountDisabled, "profile is inactive")
}

// Refresh rotates the refresh token: the presented one is deleted and a new pair is issued.
func (srv *sessionService) Refresh(ctx context.Context, refreshToken string) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	var (
		output   *usecase.LoginOutput
		disabled bool
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		stored, err := refreshRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken))
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token revoked")
			}

			return errors.Wrap(err, "failed to find refresh token")
		}

		if stored.ProfileID != claims.ProfileID {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token subject mismatch")
		}

		if stored.IsExpired(srv.now()) {
			if err := refreshRepo.DeleteRefreshToken(ctx, stored.ID); err != nil {
				return errors.Wrap(err, "failed to delete expired refresh token")
			}

			return nil
		}

		profile, err := repoFactory.NewProfileRepository().FindByID(ctx, stored.ProfileID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "profile of session missing")
			}

			return errors.Wrap(err, "failed to find profile")
		}

		if !profile.Active {
			disabled = true

			return errors.Wrap(refreshRepo.DeleteRefreshTokensByProfileID(ctx, profile.ID), "failed to revoke sessions")
		}

		accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(profile.ID, profile.Role)
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		if err := refreshRepo.DeleteRefreshToken(ctx, stored.ID); err != nil {
			return errors.Wrap(err, "failed to delete rotated refresh token")
		}

		if err := srv.storeRefreshToken(ctx, refreshRepo, profile.ID, newRefreshToken, stored.DeviceInfo); err != nil {
			return err
		}

		output = &usecase.LoginOutput{
			AccessToken:  accessToken,
			RefreshToken: newRefreshToken,
			Session:      &entity.Session{Profile: profile, Role: profile.Role},
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to refresh session", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh transaction")
	}

	if disabled {
		return nil, errors.Wrap(domainerrors.ErrAccountDisabled, "profile is inactive")
	}

	if output == nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenExpired, "refresh token expired")
	}

	return output, nil
}

// Logout deletes the session behind a refresh token. Unknown tokens are ignored.
func (srv *sessionService) Logout(ctx context.Context, refreshToken string) error {
	if _, err := srv.tokenService.ValidateRefreshToken(refreshToken); err != nil {
		// Even if the token is invalid, we can proceed to delete it from the database.
		srv.log(ctx).Debug("Logout with invalid token", slog.Any("error", err))
	}

	err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken))
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}

	return nil
}

// LogoutAll deletes every session of the profile.
func (srv *sessionService) LogoutAll(ctx context.Context, profileID uuid.UUID) error {
	srv.log(ctx).Info("Logging out from all devices", slog.Any("profileID", profileID))

	if err := srv.refreshTokenRepo.DeleteRefreshTokensByProfileID(ctx, profileID); err != nil {
		return errors.Wrap(err, "failed to delete all refresh tokens")
	}

	return nil
}

// Current reloads the profile behind an access token so deactivation takes effect immediately.
func (srv *sessionService) Current(ctx context.Context, profileID uuid.UUID) (*entity.Session, error) {
	profile, err := srv.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "session profile missing")
		}

		return nil, errors.Wrap(err, "failed to load session profile")
	}

	if !profile.Active {
		return nil, srv.signOutDisabled(ctx, profile.ID)
	}

	return &entity.Session{Profile: profile, Role: profile.Role}, nil
}
