package usecase

import (
	"context"
	"time"

	"visitadoras/internal/domain/entity"

	"github.com/google/uuid"
)

// Requester identifies who is calling a use case that depends on role.
type Requester struct {
	ProfileID uuid.UUID
	Role      entity.Role
}

// IsAdmin reports whether the requester holds the admin role.
func (r Requester) IsAdmin() bool {
	return r.Role == entity.RoleAdmin
}

// RecordVisitInput is a visit captured in the field.
type RecordVisitInput struct {
	VisitadoraID uuid.UUID
	PhysicianID  uuid.UUID
	Notes        string
	Latitude     *float64
	Longitude    *float64
	Signature    []byte // PNG
}

// ListVisitsInput narrows the visit history. Dates are calendar days in the report timezone.
type ListVisitsInput struct {
	Scope         entity.VisitScope
	From          *time.Time // inclusive day
	To            *time.Time // inclusive day
	PhysicianName string
	Municipality  string
	VisitadoraID  *uuid.UUID // honoured for admins only
}

// VisitUsecase captures and lists visits.
type VisitUsecase interface {
	Record(ctx context.Context, input *RecordVisitInput) (*entity.Visit, error)
	List(ctx context.Context, requester Requester, input *ListVisitsInput) ([]*entity.Visit, error)
	Get(ctx context.Context, requester Requester, id uuid.UUID) (*entity.Visit, error)
}
