package postgres

import (
	"context"
	"strings"

	"visitadoras/internal/domain/entity"
	domainerrors "visitadoras/internal/domain/errors"
	"visitadoras/internal/domain/repository"
	"visitadoras/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// visitRepository implements the repository.VisitRepository interface.
type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository is the constructor for visitRepository.
func NewVisitRepository(db *gorm.DB) repository.VisitRepository {
	return &visitRepository{
		db: db,
	}
}

// Create inserts a visit. Visits are never updated afterwards.
func (repo *visitRepository) Create(ctx context.Context, visit *entity.Visit) error {
	visitM := fromVisitDomain(visit)

	if err := repo.db.WithContext(ctx).Create(visitM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPhysicianNotFound.WrapMessage("invalid physician or visitadora reference")
		}
		if isPermissionDenied(err) {
			return errors.Wrap(repository.ErrPermissionDenied, "visit insert rejected")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create visit")
	}

	visit.ID = visitM.ID
	visit.CreatedAt = visitM.CreatedAt

	return nil
}

// FindByID retrieves a visit by its unique ID.
func (repo *visitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error) {
	var visitM model.VisitModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&visitM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVisitNotFound
		}

		return nil, errors.Wrap(err, "failed to find visit by id")
	}

	return toVisitDomain(&visitM), nil
}

// List returns visits matching the filter, newest first.
func (repo *visitRepository) List(ctx context.Context, filter entity.VisitFilter) ([]*entity.Visit, error) {
	var visitModels []*model.VisitModel

	if err := repo.applyFilter(repo.db.WithContext(ctx), filter).
		Order("created_at DESC").
		Find(&visitModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list visits")
	}

	visits := make([]*entity.Visit, 0, len(visitModels))
	for _, visitM := range visitModels {
		visits = append(visits, toVisitDomain(visitM))
	}

	return visits, nil
}

// Count returns how many visits match the filter.
func (repo *visitRepository) Count(ctx context.Context, filter entity.VisitFilter) (int64, error) {
	var count int64

	if err := repo.applyFilter(repo.db.WithContext(ctx).Model(&model.VisitModel{}), filter).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count visits")
	}

	return count, nil
}

func (repo *visitRepository) applyFilter(query *gorm.DB, filter entity.VisitFilter) *gorm.DB {
	if filter.VisitadoraID != nil {
		query = query.Where("visitadora_id = ?", *filter.VisitadoraID)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at < ?", *filter.To)
	}
	if strings.TrimSpace(filter.PhysicianName) != "" {
		query = query.Where("nombre_cliente ILIKE ?", containsPattern(filter.PhysicianName))
	}
	if strings.TrimSpace(filter.Municipality) != "" {
		query = query.Where("municipio ILIKE ?", containsPattern(filter.Municipality))
	}

	return query
}

// --- Mapper Functions ---

func toVisitDomain(data *model.VisitModel) *entity.Visit {
	if data == nil {
		return nil
	}

	location, _ := entity.NewGeoPoint(data.Latitude, data.Longitude)

	return &entity.Visit{
		ID:                data.ID,
		VisitadoraID:      data.VisitadoraID,
		PhysicianID:       data.PhysicianID,
		ClientName:        data.ClientName,
		Address:           data.Address,
		EstablishmentType: data.EstablishmentType,
		Municipality:      data.Municipality,
		Notes:             data.Notes,
		Location:          location,
		DistanceMeters:    data.DistanceMeters,
		SignatureURL:      data.SignatureURL,
		CreatedAt:         data.CreatedAt,
	}
}

func fromVisitDomain(data *entity.Visit) *model.VisitModel {
	if data == nil {
		return nil
	}

	visitM := &model.VisitModel{
		ID:                data.ID,
		VisitadoraID:      data.VisitadoraID,
		PhysicianID:       data.PhysicianID,
		ClientName:        data.ClientName,
		Address:           data.Address,
		EstablishmentType: data.EstablishmentType,
		Municipality:      data.Municipality,
		Notes:             data.Notes,
		DistanceMeters:    data.DistanceMeters,
		SignatureURL:      data.SignatureURL,
		CreatedAt:         data.CreatedAt,
	}
	if data.Location != nil {
		lat, lng := data.Location.Latitude, data.Location.Longitude
		visitM.Latitude = &lat
		visitM.Longitude = &lng
	}

	return visitM
}
