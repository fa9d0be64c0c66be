package postgres

import (
	"context"

	"visitadoras/internal/domain/entity"
	"visitadoras/internal/domain/repository"
	"visitadoras/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements the repository.PaymentRepository interface.
// The table is append-only: there is no update or delete here.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// Create appends an audit row.
func (repo *paymentRepository) Create(ctx context.Context, record *entity.PaymentRecord) error {
	recordM := fromPaymentRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return translateStoreError(err, "failed to record payment")
	}

	record.ID = recordM.ID

	return nil
}

// List returns the audit log, newest first.
func (repo *paymentRepository) List(ctx context.Context, filter entity.PaymentFilter) ([]*entity.PaymentRecord, error) {
	var recordModels []*model.PaymentRecordModel

	query := repo.db.WithContext(ctx)
	if filter.VisitadoraID != nil {
		query = query.Where("visitadora_id = ?", *filter.VisitadoraID)
	}
	if filter.Period != nil {
		query = query.Where("mes = ? AND anio = ?", filter.Period.Month, filter.Period.Year)
	}

	if err := query.Order("fecha_pago DESC").Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	records := make([]*entity.PaymentRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toPaymentRecordDomain(recordM))
	}

	return records, nil
}

// --- Mapper Functions ---

func toPaymentRecordDomain(data *model.PaymentRecordModel) *entity.PaymentRecord {
	if data == nil {
		return nil
	}

	return &entity.PaymentRecord{
		ID:            data.ID,
		VisitadoraID:  data.VisitadoraID,
		CommissionID:  data.CommissionID,
		Source:        entity.PaymentSource(data.Source),
		PhysicianName: data.PhysicianName,
		Amount:        data.Amount,
		Period:        entity.Period{Month: data.Month, Year: data.Year},
		PaidAt:        data.PaidAt,
		SignatureURL:  data.SignatureURL,
		RecipientName: data.RecipientName,
	}
}

func fromPaymentRecordDomain(data *entity.PaymentRecord) *model.PaymentRecordModel {
	if data == nil {
		return nil
	}

	return &model.PaymentRecordModel{
		ID:            data.ID,
		VisitadoraID:  data.VisitadoraID,
		CommissionID:  data.CommissionID,
		Source:        string(data.Source),
		PhysicianName: data.PhysicianName,
		Amount:        data.Amount,
		Month:         data.Period.Month,
		Year:          data.Period.Year,
		PaidAt:        data.PaidAt,
		SignatureURL:  data.SignatureURL,
		RecipientName: data.RecipientName,
	}
}
