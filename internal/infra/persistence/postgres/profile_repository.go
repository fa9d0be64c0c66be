// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"visitadoras/internal/domain/entity"
	domainerrors "visitadoras/internal/domain/errors"
	"visitadoras/internal/domain/repository"
	"visitadoras/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// profileRepository implements the repository.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
// It returns the repository as a domain.ProfileRepository interface, adhering to dependency inversion.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByID retrieves a single profile by its unique ID.
// Reads go to the primary so a deactivation is seen by the very next request.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	return toProfileDomain(&profileM), nil
}

// FindByEmail retrieves a single profile by its email address.
func (repo *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by email")
	}

	return toProfileDomain(&profileM), nil
}

// Create persists a new profile.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrDuplicateKey, "profile email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update modifies the editable fields of a profile.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"nombre":   profile.Name,
			"zona":     profile.Zone,
			"telefono": profile.Phone,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// SetActive flips the soft-delete flag of a profile.
func (repo *profileRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Update("activo", active)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// ListByRole lists profiles holding a role, ordered by name.
func (repo *profileRepository) ListByRole(ctx context.Context, role entity.Role, includeInactive bool) ([]*entity.Profile, error) {
	var profileModels []*model.ProfileModel

	query := repo.db.WithContext(ctx).Where("role = ?", string(role))
	if !includeInactive {
		query = query.Where("activo = ?", true)
	}

	if err := query.Order("nombre ASC").Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list profiles by role")
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:        data.ID,
		Email:     data.Email,
		Name:      data.Name,
		Role:      entity.Role(data.Role),
		Active:    data.Active,
		Zone:      data.Zone,
		Phone:     data.Phone,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:     data.ID,
		Email:  data.Email,
		Name:   data.Name,
		Role:   string(data.Role),
		Active: data.Active,
		Zone:   data.Zone,
		Phone:  data.Phone,
	}
}
