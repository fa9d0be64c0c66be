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

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching term as a literal substring.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(term)) + "%"
}

// physicianRepository implements the repository.PhysicianRepository interface.
type physicianRepository struct {
	db *gorm.DB
}

// NewPhysicianRepository is the constructor for physicianRepository.
func NewPhysicianRepository(db *gorm.DB) repository.PhysicianRepository {
	return &physicianRepository{
		db: db,
	}
}

// Create persists a new physician.
func (repo *physicianRepository) Create(ctx context.Context, physician *entity.Physician) error {
	physicianM := fromPhysicianDomain(physician)

	if err := repo.db.WithContext(ctx).Create(physicianM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required physician information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create physician")
	}

	physician.ID = physicianM.ID
	physician.Active = physicianM.Active
	physician.CreatedAt = physicianM.CreatedAt
	physician.UpdatedAt = physicianM.UpdatedAt

	return nil
}

// Update overwrites the editable fields of an active physician.
func (repo *physicianRepository) Update(ctx context.Context, physician *entity.Physician) error {
	physicianM := fromPhysicianDomain(physician)

	result := repo.db.WithContext(ctx).
		Model(&model.PhysicianModel{}).
		Where("id = ? AND activo = ?", physician.ID, true).
		Updates(map[string]any{
			"nombre":       physicianM.Name,
			"clinica":      physicianM.Clinic,
			"especialidad": physicianM.Specialty,
			"municipio":    physicianM.Municipality,
			"direccion":    physicianM.Address,
			"telefono":     physicianM.Phone,
			"referencia":   physicianM.Notes,
			"latitud":      physicianM.Latitude,
			"longitud":     physicianM.Longitude,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update physician")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPhysicianNotFound
	}

	return nil
}

// FindByID returns an active physician.
func (repo *physicianRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Physician, error) {
	var physicianM model.PhysicianModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND activo = ?", id, true).
		First(&physicianM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPhysicianNotFound
		}

		return nil, errors.Wrap(err, "failed to find physician by id")
	}

	return toPhysicianDomain(&physicianM), nil
}

// List returns active physicians ordered by name, optionally filtered by a free-text term.
func (repo *physicianRepository) List(ctx context.Context, term string) ([]*entity.Physician, error) {
	var physicianModels []*model.PhysicianModel

	query := repo.db.WithContext(ctx).Where("activo = ?", true)
	if strings.TrimSpace(term) != "" {
		pattern := containsPattern(term)
		query = query.Where(
			"nombre ILIKE ? OR clinica ILIKE ? OR municipio ILIKE ? OR especialidad ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	if err := query.Order("nombre ASC").Find(&physicianModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list physicians")
	}

	return toPhysicianDomains(physicianModels), nil
}

// Search matches name or clinic, capped at limit rows.
func (repo *physicianRepository) Search(ctx context.Context, term string, limit int) ([]*entity.Physician, error) {
	var physicianModels []*model.PhysicianModel

	pattern := containsPattern(term)
	if err := repo.db.WithContext(ctx).
		Where("activo = ?", true).
		Where("nombre ILIKE ? OR clinica ILIKE ?", pattern, pattern).
		Order("nombre ASC").
		Limit(limit).
		Find(&physicianModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search physicians")
	}

	return toPhysicianDomains(physicianModels), nil
}

// ListWithLocation returns active physicians that have registered coordinates.
func (repo *physicianRepository) ListWithLocation(ctx context.Context) ([]*entity.Physician, error) {
	var physicianModels []*model.PhysicianModel

	if err := repo.db.WithContext(ctx).
		Where("activo = ? AND latitud IS NOT NULL AND longitud IS NOT NULL", true).
		Order("nombre ASC").
		Find(&physicianModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list physicians with location")
	}

	return toPhysicianDomains(physicianModels), nil
}

// Deactivate soft-deletes a physician. Visits and commissions keep referencing it.
func (repo *physicianRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PhysicianModel{}).
		Where("id = ? AND activo = ?", id, true).
		Update("activo", false)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate physician")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPhysicianNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPhysicianDomains(physicianModels []*model.PhysicianModel) []*entity.Physician {
	physicians := make([]*entity.Physician, 0, len(physicianModels))
	for _, physicianM := range physicianModels {
		physicians = append(physicians, toPhysicianDomain(physicianM))
	}

	return physicians
}

func toPhysicianDomain(data *model.PhysicianModel) *entity.Physician {
	if data == nil {
		return nil
	}

	location, _ := entity.NewGeoPoint(data.Latitude, data.Longitude)

	return &entity.Physician{
		ID:           data.ID,
		Name:         data.Name,
		Clinic:       data.Clinic,
		Specialty:    data.Specialty,
		Municipality: data.Municipality,
		Address:      data.Address,
		Phone:        data.Phone,
		Notes:        data.Notes,
		Location:     location,
		Active:       data.Active,
		CreatedBy:    data.CreatedBy,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromPhysicianDomain(data *entity.Physician) *model.PhysicianModel {
	if data == nil {
		return nil
	}

	physicianM := &model.PhysicianModel{
		ID:           data.ID,
		Name:         data.Name,
		Clinic:       data.Clinic,
		Specialty:    data.Specialty,
		Municipality: data.Municipality,
		Address:      data.Address,
		Phone:        data.Phone,
		Notes:        data.Notes,
		Active:       true,
		CreatedBy:    data.CreatedBy,
	}
	if data.Location != nil {
		lat, lng := data.Location.Latitude, data.Location.Longitude
		physicianM.Latitude = &lat
		physicianM.Longitude = &lng
	}

	return physicianM
}
