package service

import (
	"time"

	"visitadoras/internal/domain/entity"

	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims is the validated content of a token.
type Claims struct {
	ProfileID uuid.UUID
	Role      entity.Role // empty on refresh tokens
	Type      string
	ExpiresAt time.Time
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a profile.
	GenerateTokens(profileID uuid.UUID, role entity.Role) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks signature, expiry and type of an access token.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks signature, expiry and type of a refresh token.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// RefreshTokenDuration returns the configured lifetime of refresh tokens.
	RefreshTokenDuration() time.Duration

	// HashToken derives the value persisted for a refresh token.
	HashToken(token string) string
}
