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

// visitadoraCommissionRepository implements the repository.VisitadoraCommissionRepository interface.
type visitadoraCommissionRepository struct {
	db *gorm.DB
}

// NewVisitadoraCommissionRepository is the constructor for visitadoraCommissionRepository.
func NewVisitadoraCommissionRepository(db *gorm.DB) repository.VisitadoraCommissionRepository {
	return &visitadoraCommissionRepository{
		db: db,
	}
}

// Upsert writes the pending (visitadora, month, year) row.
// A paid row is left untouched and reported as ErrCommissionNotPending.
func (repo *visitadoraCommissionRepository) Upsert(ctx context.Context, commission *entity.VisitadoraCommission) error {
	commissionM := fromVisitadoraCommissionDomain(commission)
	commissionM.Status = string(entity.CommissionPending)
	commissionM.AmountPaid = nil
	commissionM.PaidAt = nil

	result := repo.db.WithContext(ctx).
		Omit("Visitadora").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "visitadora_id"}, {Name: "mes"}, {Name: "anio"}},
			DoUpdates: clause.Assignments(map[string]any{
				"total_visitas":  commissionM.VisitCount,
				"monto_comision": commissionM.Amount,
			}),
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Expr{SQL: "comisiones.estado = ?", Vars: []any{string(entity.CommissionPending)}},
			}},
		}).
		Create(commissionM)
	if result.Error != nil {
		return translateStoreError(result.Error, "failed to upsert visitadora commission")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommissionNotPending
	}

	commission.ID = commissionM.ID
	commission.Status = entity.CommissionPending
	commission.AmountPaid = nil
	commission.PaidAt = nil

	return nil
}

// FindByID retrieves a visitadora commission with its profile.
func (repo *visitadoraCommissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.VisitadoraCommission, error) {
	var commissionM model.VisitadoraCommissionModel

	if err := repo.db.WithContext(ctx).
		Preload("Visitadora").
		Where("id = ?", id).
		First(&commissionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVisitadoraCommissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find visitadora commission")
	}

	return toVisitadoraCommissionDomain(&commissionM), nil
}

// List returns commissions, optionally of one visitadora, newest period first.
func (repo *visitadoraCommissionRepository) List(ctx context.Context, visitadoraID *uuid.UUID) ([]*entity.VisitadoraCommission, error) {
	var commissionModels []*model.VisitadoraCommissionModel

	query := repo.db.WithContext(ctx).Preload("Visitadora")
	if visitadoraID != nil {
		query = query.Where("visitadora_id = ?", *visitadoraID)
	}

	if err := query.Order("anio DESC").Order("mes DESC").Find(&commissionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list visitadora commissions")
	}

	commissions := make([]*entity.VisitadoraCommission, 0, len(commissionModels))
	for _, commissionM := range commissionModels {
		commissions = append(commissions, toVisitadoraCommissionDomain(commissionM))
	}

	return commissions, nil
}

// MarkPaid records the paid amount on a pending row.
func (repo *visitadoraCommissionRepository) MarkPaid(ctx context.Context, id uuid.UUID, payment entity.VisitadoraPayment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VisitadoraCommissionModel{}).
		Where("id = ? AND estado = ?", id, string(entity.CommissionPending)).
		Updates(map[string]any{
			"estado":       string(entity.CommissionPaid),
			"monto_pagado": payment.Amount,
			"fecha_pago":   payment.PaidAt,
		})
	if result.Error != nil {
		return translateStoreError(result.Error, "failed to mark visitadora commission paid")
	}
	if result.RowsAffected == 0 {
		if _, err := repo.FindByID(ctx, id); err != nil {
			return err
		}

		return repository.ErrCommissionNotPending
	}

	return nil
}

// --- Mapper Functions ---

func toVisitadoraCommissionDomain(data *model.VisitadoraCommissionModel) *entity.VisitadoraCommission {
	if data == nil {
		return nil
	}

	return &entity.VisitadoraCommission{
		ID:           data.ID,
		VisitadoraID: data.VisitadoraID,
		Visitadora:   toProfileDomain(data.Visitadora),
		Period:       entity.Period{Month: data.Month, Year: data.Year},
		VisitCount:   data.VisitCount,
		Amount:       data.Amount,
		AmountPaid:   data.AmountPaid,
		Status:       entity.CommissionStatus(data.Status),
		PaidAt:       data.PaidAt,
		CreatedAt:    data.CreatedAt,
	}
}

func fromVisitadoraCommissionDomain(data *entity.VisitadoraCommission) *model.VisitadoraCommissionModel {
	if data == nil {
		return nil
	}

	return &model.VisitadoraCommissionModel{
		ID:           data.ID,
		VisitadoraID: data.VisitadoraID,
		Month:        data.Period.Month,
		Year:         data.Period.Year,
		VisitCount:   data.VisitCount,
		Amount:       data.Amount,
		AmountPaid:   data.AmountPaid,
		Status:       string(data.Status),
		PaidAt:       data.PaidAt,
	}
}
