package postgres

import (
	"context"

	"visitadoras/internal/domain/entity"
	"visitadoras/internal/domain/repository"
	"visitadoras/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// commissionConfigRepository implements the repository.CommissionConfigRepository interface.
type commissionConfigRepository struct {
	db *gorm.DB
}

// NewCommissionConfigRepository is the constructor for commissionConfigRepository.
func NewCommissionConfigRepository(db *gorm.DB) repository.CommissionConfigRepository {
	return &commissionConfigRepository{
		db: db,
	}
}

// FindByPhysicianID returns the rule set of a physician.
func (repo *commissionConfigRepository) FindByPhysicianID(ctx context.Context, physicianID uuid.UUID) (*entity.CommissionConfig, error) {
	var configM model.CommissionConfigModel

	if err := repo.db.WithContext(ctx).
		Where("medico_id = ?", physicianID).
		First(&configM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommissionConfigNotFound
		}

		return nil, errors.Wrap(err, "failed to find commission config")
	}

	return toCommissionConfigDomain(&configM), nil
}

// Upsert writes the single config row of a physician.
func (repo *commissionConfigRepository) Upsert(ctx context.Context, config *entity.CommissionConfig) error {
	configM := fromCommissionConfigDomain(config)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "medico_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"porcentaje_usg", "base_usg",
				"porcentaje_especial", "base_especial",
				"porcentaje_ekg", "base_ekg",
				"updated_at",
			}),
		}).
		Create(configM).Error; err != nil {
		return translateStoreError(err, "failed to upsert commission config")
	}

	config.UpdatedAt = configM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toCommissionConfigDomain(data *model.CommissionConfigModel) *entity.CommissionConfig {
	if data == nil {
		return nil
	}

	return &entity.CommissionConfig{
		PhysicianID: data.PhysicianID,
		USG:         entity.CommissionRule{Percentage: data.USGPercentage, Base: data.USGBase},
		Especial:    entity.CommissionRule{Percentage: data.EspecialPercentage, Base: data.EspecialBase},
		EKG:         entity.CommissionRule{Percentage: data.EKGPercentage, Base: data.EKGBase},
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromCommissionConfigDomain(data *entity.CommissionConfig) *model.CommissionConfigModel {
	if data == nil {
		return nil
	}

	return &model.CommissionConfigModel{
		PhysicianID:        data.PhysicianID,
		USGPercentage:      data.USG.Percentage,
		USGBase:            data.USG.Base,
		EspecialPercentage: data.Especial.Percentage,
		EspecialBase:       data.Especial.Base,
		EKGPercentage:      data.EKG.Percentage,
		EKGBase:            data.EKG.Base,
	}
}
