package postgres

import (
	"context"
	"time"

	"visitadoras/internal/domain/entity"
	domainerrors "visitadoras/internal/domain/errors"
	"visitadoras/internal/domain/repository"
	"visitadoras/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// refreshTokenRepository implements the repository.RefreshTokenRepository interface.
type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository is the constructor for refreshTokenRepository.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{
		db: db,
	}
}

// CreateRefreshToken persists a new refresh token, representing a session.
func (repo *refreshTokenRepository) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	tokenM := fromRefreshTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid profile reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create refresh token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindRefreshTokenByHash retrieves a refresh token record by its securely stored hash.
// Expiry is left to the caller.
func (repo *refreshTokenRepository) FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	var tokenM model.RefreshTokenModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("token_hash = ?", tokenHash).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRefreshTokenNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toRefreshTokenDomain(&tokenM), nil
}

// FindRefreshTokensByProfileID retrieves the unexpired sessions of a profile, oldest first.
func (repo *refreshTokenRepository) FindRefreshTokensByProfileID(ctx context.Context, profileID uuid.UUID) ([]*entity.RefreshToken, error) {
	var tokenModels []*model.RefreshTokenModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("profile_id = ? AND expires_at > ?", profileID, time.Now()).
		Order("created_at ASC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	tokens := make([]*entity.RefreshToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toRefreshTokenDomain(tokenM))
	}

	return tokens, nil
}

// DeleteRefreshToken removes a refresh token by its ID, effectively ending a session.
func (repo *refreshTokenRepository) DeleteRefreshToken(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RefreshTokenModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	// If no rows were affected, it means the token was not found.
	if result.RowsAffected == 0 {
		return repository.ErrRefreshTokenNotFound
	}

	return nil
}

// DeleteRefreshTokenByHash deletes a refresh token by its hash, effectively ending a session.
func (repo *refreshTokenRepository) DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error {
	result := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		Delete(&model.RefreshTokenModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	if result.RowsAffected == 0 {
		return repository.ErrRefreshTokenNotFound
	}

	return nil
}

// DeleteRefreshTokensByProfileID removes all refresh tokens of a profile.
func (repo *refreshTokenRepository) DeleteRefreshTokensByProfileID(ctx context.Context, profileID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Delete(&model.RefreshTokenModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// DeleteExpiredRefreshTokens removes all expired refresh tokens.
func (repo *refreshTokenRepository) DeleteExpiredRefreshTokens(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now()).
		Delete(&model.RefreshTokenModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// --- Mapper Functions ---

func toRefreshTokenDomain(data *model.RefreshTokenModel) *entity.RefreshToken {
	if data == nil {
		return nil
	}

	return &entity.RefreshToken{
		ID:         data.ID,
		ProfileID:  data.ProfileID,
		TokenHash:  data.TokenHash,
		DeviceInfo: data.DeviceInfo,
		ExpiresAt:  data.ExpiresAt,
		CreatedAt:  data.CreatedAt,
	}
}

func fromRefreshTokenDomain(data *entity.RefreshToken) *model.RefreshTokenModel {
	if data == nil {
		return nil
	}

	return &model.RefreshTokenModel{
		ID:         data.ID,
		ProfileID:  data.ProfileID,
		TokenHash:  data.TokenHash,
		DeviceInfo: data.DeviceInfo,
		ExpiresAt:  data.ExpiresAt,
	}
}
