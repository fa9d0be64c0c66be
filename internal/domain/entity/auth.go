// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Authentication represents a single method of logging in (a credential).
type Authentication struct {
	ID             uuid.UUID // The unique ID for this specific authentication record itself.
	ProfileID      uuid.UUID // Links this authentication method to the Profile it belongs to.
	Provider       string    // The authentication provider; only "email" is issued today.
	ProviderUserID string    // The login identifier at the provider (the email address).
	PasswordHash   string    // Stores the bcrypt-hashed password.
	CreatedAt      time.Time // Timestamp of when this authentication method was created.
}

// RefreshToken represents a long-lived, authorized session.
type RefreshToken struct {
	ID         uuid.UUID // The unique ID for this specific refresh token record.
	ProfileID  uuid.UUID // Links this session to the Profile it belongs to.
	TokenHash  string    // SHA-256 hash of the raw refresh token.
	DeviceInfo string    // Free-form client description supplied at login.
	ExpiresAt  time.Time // The exact time when this refresh token will expire and become invalid.
	CreatedAt  time.Time // Timestamp of when this session was created.
}

// IsExpired reports whether the token is past its expiry at the given instant.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// Session is the resolved identity behind a request.
type Session struct {
	Profile *Profile `json:"profile"`
	Role    Role     `json:"role"`
}
