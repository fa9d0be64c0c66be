// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"visitadoras/config"
	"visitadoras/internal/domain/entity"
	"visitadoras/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrInvalidToken is returned for any token that fails parsing, signature, expiry or type checks.
var ErrInvalidToken = errors.New("invalid token")

// tokenClaims is the JWT payload. Role is only set on access tokens.
type tokenClaims struct {
	Role string `json:"role,omitempty"`
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL, refreshTTL := 15*time.Minute, 7*24*time.Hour
	if cfg.Auth != nil {
		if cfg.Auth.AccessTTL > 0 {
			accessTTL = cfg.Auth.AccessTTL
		}
		if cfg.Auth.RefreshTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTTL
		}
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a profile.
func (s *jwtService) GenerateTokens(profileID uuid.UUID, role entity.Role) (string, string, error) {
	accessToken, err := s.sign(profileID, role.String(), service.TokenTypeAccess, s.accessTTL, s.accessSecret)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := s.sign(profileID, "", service.TokenTypeRefresh, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateAccessToken checks signature, expiry and type of an access token.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return s.validate(tokenString, s.accessSecret, service.TokenTypeAccess)
}

// ValidateRefreshToken checks signature, expiry and type of a refresh token.
func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return s.validate(tokenString, s.refreshSecret, service.TokenTypeRefresh)
}

// RefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// HashToken returns the hex SHA-256 of a token, which is what gets stored.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

func (s *jwtService) sign(profileID uuid.UUID, role, tokenType string, ttl time.Duration, secret []byte) (string, error) {
	now := s.now()
	claims := tokenClaims{
		Role: role,
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			// jti keeps two tokens issued within the same second distinct.
			ID:        uuid.NewString(),
			Subject:   profileID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func (s *jwtService) validate(tokenString string, secret []byte, tokenType string) (*service.Claims, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, errors.Wrap(ErrInvalidToken, "failed to parse token")
	}

	if claims.Type != tokenType {
		return nil, errors.Wrapf(ErrInvalidToken, "unexpected token type %q", claims.Type)
	}

	profileID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, "malformed subject")
	}

	result := &service.Claims{
		ProfileID: profileID,
		Role:      entity.Role(claims.Role),
		Type:      claims.Type,
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	return result, nil
}
