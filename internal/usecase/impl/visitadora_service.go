package impl

import (
	"context"
	"log/slog"
	"strings"
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

// visitadoraService implements the VisitadoraUsecase interface.
type visitadoraService struct {
	txManager         repository.TransactionManager
	profileRepo       repository.ProfileRepository
	visitRepo         repository.VisitRepository
	commissionRepo    repository.VisitadoraCommissionRepository
	hasher            service.PasswordHasher
	minPasswordLength int
	loc               *time.Location
	now               func() time.Time
	logger            *slog.Logger
}

// VisitadoraServiceParams holds dependencies for VisitadoraService, injected by Fx.
type VisitadoraServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ProfileRepo    repository.ProfileRepository
	VisitRepo      repository.VisitRepository
	CommissionRepo repository.VisitadoraCommissionRepository
	Hasher         service.PasswordHasher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewVisitadoraService is the constructor for visitadoraService.
func NewVisitadoraService(params VisitadoraServiceParams) usecase.VisitadoraUsecase {
	minPasswordLength := 0
	if params.Config.Auth != nil {
		minPasswordLength = params.Config.Auth.MinPasswordLength
	}

	return &visitadoraService{
		txManager:         params.TxManager,
		profileRepo:       params.ProfileRepo,
		visitRepo:         params.VisitRepo,
		commissionRepo:    params.CommissionRepo,
		hasher:            params.Hasher,
		minPasswordLength: minPasswordLength,
		loc:               params.Config.Location(),
		now:               time.Now,
		logger:            params.Logger,
	}
}

func (srv *visitadoraService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create opens a visitadora account with its email credential.
func (srv *visitadoraService) Create(ctx context.Context, input *usecase.CreateVisitadoraInput) (*entity.Profile, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	name := strings.TrimSpace(input.Name)
	if email == "" || name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "email and name are required")
	}

	if len(input.Password) < srv.minPasswordLength {
		return nil, errors.Wrap(domainerrors.ErrPasswordStrength, "password too short")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	profile := &entity.Profile{
		Email:  email,
		Name:   name,
		Role:   entity.RoleVisitadora,
		Active: true,
		Zone:   strings.TrimSpace(input.Zone),
		Phone:  strings.TrimSpace(input.Phone),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewProfileRepository().Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create profile")
		}

		auth := &entity.Authentication{
			ProfileID:      profile.ID,
			Provider:       constants.AuthProviderEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		}
		if err := repoFactory.NewAuthRepository().CreateAuthentication(ctx, auth); err != nil {
			return errors.Wrap(err, "failed to create authentication")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, email)
		}

		srv.log(ctx).Error("Failed to create visitadora", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUserCreationFailed, err.Error())
	}

	srv.log(ctx).Info("Visitadora created", slog.Any("profileID", profile.ID))

	return profile, nil
}

// List returns visitadoras ordered by name.
func (srv *visitadoraService) List(ctx context.Context, includeInactive bool) ([]*entity.Profile, error) {
	profiles, err := srv.profileRepo.ListByRole(ctx, entity.RoleVisitadora, includeInactive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visitadoras")
	}

	return profiles, nil
}

// Get returns the profile with its visits and commissions.
func (srv *visitadoraService) Get(ctx context.Context, id uuid.UUID) (*entity.VisitadoraDetail, error) {
	profile, err := srv.findVisitadora(ctx, srv.profileRepo, id)
	if err != nil {
		return nil, err
	}

	visits, err := srv.visitRepo.List(ctx, entity.VisitFilter{VisitadoraID: &id})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visits of visitadora")
	}

	commissions, err := srv.commissionRepo.List(ctx, &id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list commissions of visitadora")
	}

	return &entity.VisitadoraDetail{Profile: profile, Visits: visits, Commissions: commissions}, nil
}

// Update edits name, zone and phone.
func (srv *visitadoraService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateVisitadoraInput) (*entity.Profile, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "name is required")
	}

	profile, err := srv.findVisitadora(ctx, srv.profileRepo, id)
	if err != nil {
		return nil, err
	}

	profile.Name = name
	profile.Zone = strings.TrimSpace(input.Zone)
	profile.Phone = strings.TrimSpace(input.Phone)

	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		return nil, errors.Wrap(domainerrors.ErrUserUpdateFailed, err.Error())
	}

	return profile, nil
}

// Deactivate clears the active flag and signs the visitadora out everywhere.
func (srv *visitadoraService) Deactivate(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		if _, err := srv.findVisitadora(ctx, profileRepo, id); err != nil {
			return err
		}

		if err := profileRepo.SetActive(ctx, id, false); err != nil {
			return errors.Wrap(err, "failed to deactivate profile")
		}

		if err := repoFactory.NewRefreshTokenRepository().DeleteRefreshTokensByProfileID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to revoke sessions")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute deactivation transaction")
	}

	srv.log(ctx).Info("Visitadora deactivated", slog.Any("profileID", id))

	return nil
}

// Dashboard returns visit counters for every active visitadora.
func (srv *visitadoraService) Dashboard(ctx context.Context) ([]*entity.VisitadoraStats, error) {
	profiles, err := srv.profileRepo.ListByRole(ctx, entity.RoleVisitadora, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visitadoras")
	}

	stats := make([]*entity.VisitadoraStats, 0, len(profiles))
	for _, profile := range profiles {
		counters, err := srv.counters(ctx, profile.ID)
		if err != nil {
			return nil, err
		}
		stats = append(stats, &entity.VisitadoraStats{Profile: profile, Counters: *counters})
	}

	return stats, nil
}

// MyStats returns the counters of one visitadora.
func (srv *visitadoraService) MyStats(ctx context.Context, profileID uuid.UUID) (*entity.VisitCounters, error) {
	return srv.counters(ctx, profileID)
}

func (srv *visitadoraService) counters(ctx context.Context, profileID uuid.UUID) (*entity.VisitCounters, error) {
	total, err := srv.visitRepo.Count(ctx, entity.VisitFilter{VisitadoraID: &profileID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count visits")
	}

	today := startOfDay(srv.now().In(srv.loc), srv.loc)
	tomorrow := today.AddDate(0, 0, 1)

	todayCount, err := srv.visitRepo.Count(ctx, entity.VisitFilter{VisitadoraID: &profileID, From: &today, To: &tomorrow})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count today's visits")
	}

	return &entity.VisitCounters{Total: total, Today: todayCount}, nil
}

func (srv *visitadoraService) findVisitadora(ctx context.Context, profileRepo repository.ProfileRepository, id uuid.UUID) (*entity.Profile, error) {
	profile, err := profileRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "visitadora not found")
		}

		return nil, errors.Wrap(err, "failed to find visitadora")
	}

	if profile.Role != entity.RoleVisitadora {
		return nil, errors.Wrap(domainerrors.ErrNotVisitadora, "profile is not a visitadora")
	}

	return profile, nil
}
