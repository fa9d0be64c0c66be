package usecase

import (
	"context"

	"visitadoras/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateVisitadoraInput is the admin form that opens a visitadora account.
type CreateVisitadoraInput struct {
	Email    string
	Password string
	Name     string
	Zone     string
	Phone    string
}

// UpdateVisitadoraInput carries the editable profile fields.
type UpdateVisitadoraInput struct {
	Name  string
	Zone  string
	Phone string
}

// VisitadoraUsecase is the admin management of visitadora accounts.
type VisitadoraUsecase interface {
	Create(ctx context.Context, input *CreateVisitadoraInput) (*entity.Profile, error)
	List(ctx context.Context, includeInactive bool) ([]*entity.Profile, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.VisitadoraDetail, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateVisitadoraInput) (*entity.Profile, error)

	// Deactivate soft-deletes the account and revokes its sessions. History is kept.
	Deactivate(ctx context.Context, id uuid.UUID) error

	// Dashboard returns total and today's visit counts per active visitadora.
	Dashboard(ctx context.Context) ([]*entity.VisitadoraStats, error)

	// MyStats returns the counters of the signed-in visitadora.
	MyStats(ctx context.Context, profileID uuid.UUID) (*entity.VisitCounters, error)
}
