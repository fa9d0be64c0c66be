package repository

import (
	"context"

	"visitadoras/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the standard operations for profile persistence.
type ProfileRepository interface {
	// FindByID retrieves a single profile by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindByEmail retrieves a single profile by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)

	// Create persists a new profile. A taken email yields ErrDuplicateKey.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update modifies the editable fields (name, zone, phone) of a profile.
	Update(ctx context.Context, profile *entity.Profile) error

	// SetActive flips the soft-delete flag.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	// ListByRole lists profiles of a role ordered by name.
	ListByRole(ctx context.Context, role entity.Role, includeInactive bool) ([]*entity.Profile, error)
}
