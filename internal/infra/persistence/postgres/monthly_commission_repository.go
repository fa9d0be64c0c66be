package postgres

import (
	"context"
	"fmt"
	"strings"

	"visitadoras/internal/domain/entity"
	"visitadoras/internal/domain/repository"
	"visitadoras/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// monthlyCommissionRepository implements the repository.MonthlyCommissionRepository interface.
type monthlyCommissionRepository struct {
	db *gorm.DB
}

// NewMonthlyCommissionRepository is the constructor for monthlyCommissionRepository.
func NewMonthlyCommissionRepository(db *gorm.DB) repository.MonthlyCommissionRepository {
	return &monthlyCommissionRepository{
		db: db,
	}
}

// FindByID retrieves a monthly commission by its unique ID.
func (repo *monthlyCommissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MonthlyCommission, error) {
	var commissionM model.MonthlyCommissionModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&commissionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMonthlyCommissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find monthly commission")
	}

	return toMonthlyCommissionDomain(&commissionM), nil
}

// FindPendingByPhysicianPeriodForUpdate locks and returns the pending (name, month, year) row.
// When the importer appended duplicates the oldest pending row is the one that is locked.
// The advisory lock serializes writers of the same key even before its first row exists.
func (repo *monthlyCommissionRepository) FindPendingByPhysicianPeriodForUpdate(ctx context.Context, physicianName string, period entity.Period) (*entity.MonthlyCommission, error) {
	if err := repo.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", periodLockKey(physicianName, period)).Error; err != nil {
		return nil, errors.Wrap(err, "failed to lock monthly commission period")
	}

	var commissionM model.MonthlyCommissionModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("nombre_medico = ? AND mes = ? AND anio = ? AND estado = ?",
			physicianName, period.Month, period.Year, string(entity.CommissionPending)).
		Order("created_at ASC").
		First(&commissionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMonthlyCommissionNotFound
		}

		return nil, errors.Wrap(err, "failed to lock monthly commission")
	}

	return toMonthlyCommissionDomain(&commissionM), nil
}

func periodLockKey(physicianName string, period entity.Period) string {
	return fmt.Sprintf("comisiones_mensuales|%s|%d|%d", physicianName, period.Month, period.Year)
}

// UpsertAmounts overwrites the three categories of the pending (name, month, year) row.
// A new pending row is created when none exists or every existing one is already paid.
func (repo *monthlyCommissionRepository) UpsertAmounts(ctx context.Context, commission *entity.MonthlyCommission) error {
	existing, err := repo.FindPendingByPhysicianPeriodForUpdate(ctx, commission.PhysicianName, commission.Period)
	if err != nil && !errors.Is(err, repository.ErrMonthlyCommissionNotFound) {
		return err
	}

	if existing == nil {
		return repo.Create(ctx, commission)
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.MonthlyCommissionModel{}).
		Where("id = ? AND estado = ?", existing.ID, string(entity.CommissionPending)).
		Updates(map[string]any{
			"medico_id":         commission.PhysicianID,
			"comision_usg":      commission.Amounts.USG,
			"comision_especial": commission.Amounts.Especial,
			"comision_ekg":      commission.Amounts.EKG,
		}).Error; err != nil {
		return translateStoreError(err, "failed to update monthly commission amounts")
	}

	commission.ID = existing.ID
	commission.Status = existing.Status
	commission.CreatedAt = existing.CreatedAt

	return nil
}

// AddAmounts sums into the categories of an existing pending row.
func (repo *monthlyCommissionRepository) AddAmounts(ctx context.Context, id uuid.UUID, amounts entity.CategoryAmounts) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MonthlyCommissionModel{}).
		Where("id = ? AND estado = ?", id, string(entity.CommissionPending)).
		Updates(map[string]any{
			"comision_usg":      gorm.Expr("comision_usg + ?", amounts.USG),
			"comision_especial": gorm.Expr("comision_especial + ?", amounts.Especial),
			"comision_ekg":      gorm.Expr("comision_ekg + ?", amounts.EKG),
		})
	if result.Error != nil {
		return translateStoreError(result.Error, "failed to add monthly commission amounts")
	}
	if result.RowsAffected == 0 {
		return repo.explainMiss(ctx, id)
	}

	return nil
}

// Create inserts a single pending row.
func (repo *monthlyCommissionRepository) Create(ctx context.Context, commission *entity.MonthlyCommission) error {
	commissionM := fromMonthlyCommissionDomain(commission)

	if err := repo.db.WithContext(ctx).Create(commissionM).Error; err != nil {
		return translateStoreError(err, "failed to create monthly commission")
	}

	commission.ID = commissionM.ID
	commission.Status = entity.CommissionStatus(commissionM.Status)
	commission.CreatedAt = commissionM.CreatedAt

	return nil
}

// CreateBatch appends every row in a single statement.
func (repo *monthlyCommissionRepository) CreateBatch(ctx context.Context, commissions []*entity.MonthlyCommission) error {
	if len(commissions) == 0 {
		return nil
	}

	commissionModels := make([]*model.MonthlyCommissionModel, 0, len(commissions))
	for _, commission := range commissions {
		commissionModels = append(commissionModels, fromMonthlyCommissionDomain(commission))
	}

	if err := repo.db.WithContext(ctx).Create(&commissionModels).Error; err != nil {
		return translateStoreError(err, "failed to import monthly commissions")
	}

	for i, commissionM := range commissionModels {
		commissions[i].ID = commissionM.ID
		commissions[i].CreatedAt = commissionM.CreatedAt
	}

	return nil
}

// List returns rows ordered by status, then total descending.
func (repo *monthlyCommissionRepository) List(ctx context.Context, filter entity.MonthlyCommissionFilter) ([]*entity.MonthlyCommission, error) {
	var commissionModels []*model.MonthlyCommissionModel

	query := repo.db.WithContext(ctx)
	if filter.Period != nil {
		query = query.Where("mes = ? AND anio = ?", filter.Period.Month, filter.Period.Year)
	}
	if filter.Status != nil {
		query = query.Where("estado = ?", string(*filter.Status))
	}
	if strings.TrimSpace(filter.PhysicianName) != "" {
		query = query.Where("nombre_medico ILIKE ?", containsPattern(filter.PhysicianName))
	}

	if err := query.
		Order("estado ASC").
		Order("total_comision DESC").
		Find(&commissionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list monthly commissions")
	}

	commissions := make([]*entity.MonthlyCommission, 0, len(commissionModels))
	for _, commissionM := range commissionModels {
		commissions = append(commissions, toMonthlyCommissionDomain(commissionM))
	}

	return commissions, nil
}

// MarkPaid transitions a pending row to paid.
func (repo *monthlyCommissionRepository) MarkPaid(ctx context.Context, id uuid.UUID, confirmation entity.PaymentConfirmation) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MonthlyCommissionModel{}).
		Where("id = ? AND estado = ?", id, string(entity.CommissionPending)).
		Updates(map[string]any{
			"estado":                 string(entity.CommissionPaid),
			"fecha_pago":             confirmation.PaidAt,
			"nombre_recibe":          confirmation.RecipientName,
			"firma_url":              confirmation.SignatureURL,
			"visitadora_pagadora_id": confirmation.PayerID,
		})
	if result.Error != nil {
		return translateStoreError(result.Error, "failed to mark monthly commission paid")
	}
	if result.RowsAffected == 0 {
		return repo.explainMiss(ctx, id)
	}

	return nil
}

// Delete removes a pending row.
func (repo *monthlyCommissionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND estado = ?", id, string(entity.CommissionPending)).
		Delete(&model.MonthlyCommissionModel{})
	if result.Error != nil {
		return translateStoreError(result.Error, "failed to delete monthly commission")
	}
	if result.RowsAffected == 0 {
		return repo.explainMiss(ctx, id)
	}

	return nil
}

// DeleteByStatus removes every row in a status and reports how many were removed.
func (repo *monthlyCommissionRepository) DeleteByStatus(ctx context.Context, status entity.CommissionStatus) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("estado = ?", string(status)).
		Delete(&model.MonthlyCommissionModel{})
	if result.Error != nil {
		return 0, translateStoreError(result.Error, "failed to delete monthly commissions by status")
	}

	return result.RowsAffected, nil
}

// DeleteAll empties the monthly rollup.
func (repo *monthlyCommissionRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.MonthlyCommissionModel{})
	if result.Error != nil {
		return 0, translateStoreError(result.Error, "failed to delete monthly commissions")
	}

	return result.RowsAffected, nil
}

// explainMiss tells a missing row apart from one that is no longer pending.
func (repo *monthlyCommissionRepository) explainMiss(ctx context.Context, id uuid.UUID) error {
	if _, err := repo.FindByID(ctx, id); err != nil {
		return err
	}

	return repository.ErrCommissionNotPending
}

// --- Mapper Functions ---

func toMonthlyCommissionDomain(data *model.MonthlyCommissionModel) *entity.MonthlyCommission {
	if data == nil {
		return nil
	}

	return &entity.MonthlyCommission{
		ID:            data.ID,
		PhysicianID:   data.PhysicianID,
		PhysicianName: data.PhysicianName,
		Period:        entity.Period{Month: data.Month, Year: data.Year},
		Amounts: entity.CategoryAmounts{
			USG:      data.USG,
			Especial: data.Especial,
			EKG:      data.EKG,
		},
		Status:        entity.CommissionStatus(data.Status),
		PaidBy:        data.PaidBy,
		RecipientName: data.RecipientName,
		SignatureURL:  data.SignatureURL,
		PaidAt:        data.PaidAt,
		CreatedAt:     data.CreatedAt,
	}
}

// fromMonthlyCommissionDomain never sets Total; the column is generated.
func fromMonthlyCommissionDomain(data *entity.MonthlyCommission) *model.MonthlyCommissionModel {
	if data == nil {
		return nil
	}

	status := data.Status
	if status == "" {
		status = entity.CommissionPending
	}

	return &model.MonthlyCommissionModel{
		ID:            data.ID,
		PhysicianID:   data.PhysicianID,
		PhysicianName: data.PhysicianName,
		Month:         data.Period.Month,
		Year:          data.Period.Year,
		USG:           data.Amounts.USG,
		Especial:      data.Amounts.Especial,
		EKG:           data.Amounts.EKG,
		Status:        string(status),
		PaidBy:        data.PaidBy,
		RecipientName: data.RecipientName,
		SignatureURL:  data.SignatureURL,
		PaidAt:        data.PaidAt,
	}
}
