package usecase

import (
	"context"

	"visitadoras/internal/domain/entity"

	"github.com/google/uuid"
)

// PhysicianInput is the create/update form of the physician directory.
type PhysicianInput struct {
	Name         string
	Clinic       string
	Specialty    string
	Municipality string
	Address      string
	Phone        string
	Notes        string
	Latitude     *float64
	Longitude    *float64
}

// ExportFile is a generated download.
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}

// Content types of generated files.
const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

// PhysicianUsecase manages the physician directory.
type PhysicianUsecase interface {
	Create(ctx context.Context, createdBy uuid.UUID, input *PhysicianInput) (*entity.Physician, error)
	Update(ctx context.Context, id uuid.UUID, input *PhysicianInput) (*entity.Physician, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*entity.Physician, error)
	List(ctx context.Context, search string) ([]*entity.Physician, error)

	// Search is the capture-time lookup. Short terms return nothing.
	Search(ctx context.Context, term string) ([]*entity.Physician, error)

	// Nearby lists physicians within radiusMeters, nearest first. Zero radius uses the configured default.
	Nearby(ctx context.Context, lat, lng, radiusMeters float64) ([]entity.PhysicianDistance, error)

	// Export renders the directory as a workbook named after the requester.
	Export(ctx context.Context, requester Requester, search string) (*ExportFile, error)
}
