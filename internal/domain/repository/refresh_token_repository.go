package repository

import (
	"context"

	"visitadoras/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRefreshTokenNotFound is returned when a refresh token is not found.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the interface for refresh token and session management operations.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a refresh token record by its securely stored hash.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// FindRefreshTokensByProfileID retrieves the active sessions of a profile, oldest first.
	FindRefreshTokensByProfileID(ctx context.Context, profileID uuid.UUID) ([]*entity.RefreshToken, error)

	// DeleteRefreshToken removes a refresh token by its ID, effectively ending a session.
	DeleteRefreshToken(ctx context.Context, id uuid.UUID) error

	// DeleteRefreshTokenByHash deletes a refresh token by its hash, effectively ending a session.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// DeleteRefreshTokensByProfileID removes every session of a profile (forced sign-out).
	DeleteRefreshTokensByProfileID(ctx context.Context, profileID uuid.UUID) error

	// DeleteExpiredRefreshTokens removes all expired refresh tokens.
	DeleteExpiredRefreshTokens(ctx context.Context) error
}
