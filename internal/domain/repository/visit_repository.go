package repository

import (
	"context"

	"visitadoras/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrVisitNotFound is returned when a visit is not found.
var ErrVisitNotFound = errors.New("visit not found")

// VisitRepository persists visits. Visits are insert-only.
type VisitRepository interface {
	Create(ctx context.Context, visit *entity.Visit) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error)

	// List returns visits matching the filter, newest first.
	List(ctx context.Context, filter entity.VisitFilter) ([]*entity.Visit, error)

	// Count returns how many visits match the filter.
	Count(ctx context.Context, filter entity.VisitFilter) (int64, error)
}
