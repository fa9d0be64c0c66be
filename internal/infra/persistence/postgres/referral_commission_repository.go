package postgres

import (
	"context"

	"visitadoras/internal/domain/entity"
	"visitadoras/internal/domain/repository"
	"visitadoras/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// referralCommissionRepository implements the repository.ReferralCommissionRepository interface.
type referralCommissionRepository struct {
	db *gorm.DB
}

// NewReferralCommissionRepository is the constructor for referralCommissionRepository.
func NewReferralCommissionRepository(db *gorm.DB) repository.ReferralCommissionRepository {
	return &referralCommissionRepository{
		db: db,
	}
}

// Create inserts a pending referral commission.
func (repo *referralCommissionRepository) Create(ctx context.Context, commission *entity.ReferralCommission) error {
	commissionM := fromReferralCommissionDomain(commission)

	if err := repo.db.WithContext(ctx).Omit("Physician").Create(commissionM).Error; err != nil {
		return translateStoreError(err, "failed to create referral commission")
	}

	commission.ID = commissionM.ID
	commission.Status = entity.CommissionStatus(commissionM.Status)
	commission.CreatedAt = commissionM.CreatedAt

	return nil
}

// FindByID retrieves a referral commission with its physician name.
func (repo *referralCommissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ReferralCommission, error) {
	var commissionM model.ReferralCommissionModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Physician").
		Where("id = ?", id).
		First(&commissionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReferralCommissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find referral commission")
	}

	return toReferralCommissionDomain(&commissionM), nil
}

// ListAssignedTo returns pending commissions assigned to the visitadora.
func (repo *referralCommissionRepository) ListAssignedTo(ctx context.Context, visitadoraID uuid.UUID) ([]*entity.ReferralCommission, error) {
	return repo.find(ctx, func(query *gorm.DB) *gorm.DB {
		return query.
			Where("asignada_a = ? AND estado = ?", visitadoraID, string(entity.CommissionPending)).
			Order("fecha_referencia DESC")
	})
}

// ListPool returns pending commissions with no assignee.
func (repo *referralCommissionRepository) ListPool(ctx context.Context) ([]*entity.ReferralCommission, error) {
	return repo.find(ctx, func(query *gorm.DB) *gorm.DB {
		return query.
			Where("asignada_a IS NULL AND estado = ?", string(entity.CommissionPending)).
			Order("fecha_referencia DESC")
	})
}

// ListPaidBy returns the visitadora's paid commissions, latest payment first.
func (repo *referralCommissionRepository) ListPaidBy(ctx context.Context, visitadoraID uuid.UUID, limit int) ([]*entity.ReferralCommission, error) {
	return repo.find(ctx, func(query *gorm.DB) *gorm.DB {
		return query.
			Where("pagado_por = ? AND estado = ?", visitadoraID, string(entity.CommissionPaid)).
			Order("fecha_pago DESC").
			Limit(limit)
	})
}

// List returns every commission matching the admin filter.
func (repo *referralCommissionRepository) List(ctx context.Context, filter entity.ReferralCommissionFilter) ([]*entity.ReferralCommission, error) {
	return repo.find(ctx, func(query *gorm.DB) *gorm.DB {
		if filter.Status != nil {
			query = query.Where("estado = ?", string(*filter.Status))
		}
		if filter.VisitadoraID != nil {
			query = query.Where("visitadora_id = ?", *filter.VisitadoraID)
		}
		if filter.OnlyPool {
			query = query.Where("asignada_a IS NULL")
		} else if filter.AssignedTo != nil {
			query = query.Where("asignada_a = ?", *filter.AssignedTo)
		}

		return query.Order("created_at DESC")
	})
}

// Assign sets or clears the assignee of a pending commission.
func (repo *referralCommissionRepository) Assign(ctx context.Context, id uuid.UUID, visitadoraID *uuid.UUID) error {
	var assignee any = gorm.Expr("NULL")
	if visitadoraID != nil {
		assignee = *visitadoraID
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ReferralCommissionModel{}).
		Where("id = ? AND estado = ?", id, string(entity.CommissionPending)).
		Update("asignada_a", assignee)
	if result.Error != nil {
		return translateStoreError(result.Error, "failed to assign referral commission")
	}
	if result.RowsAffected == 0 {
		return repo.explainMiss(ctx, id, nil)
	}

	return nil
}

// MarkPaid pays a pending commission that is unassigned or assigned to the payer.
// The eligibility rule lives in the WHERE clause so two concurrent payers cannot both win.
func (repo *referralCommissionRepository) MarkPaid(ctx context.Context, id uuid.UUID, confirmation entity.PaymentConfirmation) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReferralCommissionModel{}).
		Where("id = ? AND estado = ?", id, string(entity.CommissionPending)).
		Where("asignada_a IS NULL OR asignada_a = ?", confirmation.PayerID).
		Updates(map[string]any{
			"estado":        string(entity.CommissionPaid),
			"pagado_por":    confirmation.PayerID,
			"fecha_pago":    confirmation.PaidAt,
			"nombre_recibe": confirmation.RecipientName,
			"firma_url":     confirmation.SignatureURL,
		})
	if result.Error != nil {
		return translateStoreError(result.Error, "failed to mark referral commission paid")
	}
	if result.RowsAffected == 0 {
		return repo.explainMiss(ctx, id, &confirmation.PayerID)
	}

	return nil
}

// Delete removes a pending commission.
func (repo *referralCommissionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND estado = ?", id, string(entity.CommissionPending)).
		Delete(&model.ReferralCommissionModel{})
	if result.Error != nil {
		return translateStoreError(result.Error, "failed to delete referral commission")
	}
	if result.RowsAffected == 0 {
		return repo.explainMiss(ctx, id, nil)
	}

	return nil
}

func (repo *referralCommissionRepository) find(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*entity.ReferralCommission, error) {
	var commissionModels []*model.ReferralCommissionModel

	if err := scope(repo.db.WithContext(ctx).Preload("Physician")).
		Find(&commissionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list referral commissions")
	}

	commissions := make([]*entity.ReferralCommission, 0, len(commissionModels))
	for _, commissionM := range commissionModels {
		commissions = append(commissions, toReferralCommissionDomain(commissionM))
	}

	return commissions, nil
}

// explainMiss reports why a conditional update matched no row.
func (repo *referralCommissionRepository) explainMiss(ctx context.Context, id uuid.UUID, payerID *uuid.UUID) error {
	current, err := repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if current.Status != entity.CommissionPending {
		return repository.ErrCommissionNotPending
	}
	if payerID != nil && !current.CanBePaidBy(*payerID) {
		return repository.ErrReferralCommissionNotPayable
	}

	return repository.ErrCommissionNotPending
}

// --- Mapper Functions ---

func toReferralCommissionDomain(data *model.ReferralCommissionModel) *entity.ReferralCommission {
	if data == nil {
		return nil
	}

	commission := &entity.ReferralCommission{
		ID:            data.ID,
		PhysicianID:   data.PhysicianID,
		VisitadoraID:  data.VisitadoraID,
		ReferredAt:    data.ReferredAt,
		PatientName:   data.PatientName,
		Study:         data.Study,
		Amount:        data.Amount,
		Notes:         data.Notes,
		Status:        entity.CommissionStatus(data.Status),
		AssignedTo:    data.AssignedTo,
		PaidBy:        data.PaidBy,
		PaidAt:        data.PaidAt,
		RecipientName: data.RecipientName,
		SignatureURL:  data.SignatureURL,
		CreatedAt:     data.CreatedAt,
	}
	if data.Physician != nil {
		commission.PhysicianName = data.Physician.Name
	}

	return commission
}

func fromReferralCommissionDomain(data *entity.ReferralCommission) *model.ReferralCommissionModel {
	if data == nil {
		return nil
	}

	status := data.Status
	if status == "" {
		status = entity.CommissionPending
	}

	return &model.ReferralCommissionModel{
		ID:            data.ID,
		PhysicianID:   data.PhysicianID,
		VisitadoraID:  data.VisitadoraID,
		ReferredAt:    data.ReferredAt,
		PatientName:   data.PatientName,
		Study:         data.Study,
		Amount:        data.Amount,
		Notes:         data.Notes,
		Status:        string(status),
		AssignedTo:    data.AssignedTo,
		PaidBy:        data.PaidBy,
		PaidAt:        data.PaidAt,
		RecipientName: data.RecipientName,
		SignatureURL:  data.SignatureURL,
	}
}
