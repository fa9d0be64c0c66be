package repository

import (
	"context"

	"visitadoras/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPhysicianNotFound is returned when a physician is not found or was deactivated.
var ErrPhysicianNotFound = errors.New("physician not found")

// PhysicianRepository defines the persistence of the physician directory.
type PhysicianRepository interface {
	Create(ctx context.Context, physician *entity.Physician) error
	Update(ctx context.Context, physician *entity.Physician) error

	// FindByID returns an active physician.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Physician, error)

	// List returns active physicians ordered by name. A non-empty term matches
	// name, clinic, municipality or specialty as a case-insensitive substring.
	List(ctx context.Context, term string) ([]*entity.Physician, error)

	// Search is the name/clinic lookup used while capturing a visit.
	Search(ctx context.Context, term string, limit int) ([]*entity.Physician, error)

	// ListWithLocation returns active physicians that have registered coordinates.
	ListWithLocation(ctx context.Context) ([]*entity.Physician, error)

	// Deactivate soft-deletes a physician.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
