// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"visitadoras/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LoginInput defines the data required to sign in.
type LoginInput struct {
	Email      string
	Password   string
	DeviceInfo string
}

// --- Output DTOs ---

// LoginOutput returns the issued token pair together with the resolved session.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Session      *entity.Session
}

// SessionUsecase is the session/role gate.
type SessionUsecase interface {
	// Login verifies credentials and opens a session. Inactive accounts are signed out everywhere.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Refresh rotates a refresh token and re-checks that the account is still active.
	Refresh(ctx context.Context, refreshToken string) (*LoginOutput, error)

	// Logout revokes the session behind one refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// LogoutAll revokes every session of a profile.
	LogoutAll(ctx context.Context, profileID uuid.UUID) error

	// Current restores the session of an authenticated request.
	Current(ctx context.Context, profileID uuid.UUID) (*entity.Session, error)
}
