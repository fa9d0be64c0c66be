package usecase

import (
	"context"

	"visitadoras/internal/domain/entity"

	"github.com/google/uuid"
)

// PayInput is the receipt captured when a commission is handed over.
type PayInput struct {
	CommissionID  uuid.UUID
	PayerID       uuid.UUID
	RecipientName string
	Signature     []byte // PNG
}

// PaymentUsecase pays monthly commissions and exposes the payment audit log.
type PaymentUsecase interface {
	PayMonthly(ctx context.Context, input *PayInput) (*entity.PaymentRecord, error)
	ListPayments(ctx context.Context, filter entity.PaymentFilter) ([]*entity.PaymentRecord, error)
}
