package impl

import (
	"context"
	"testing"
	"time"

	"visitadoras/internal/domain/entity"
	domainerrors "visitadoras/internal/domain/errors"
	"visitadoras/internal/domain/repository"
	"visitadoras/internal/domain/service"
	mockRepo "visitadoras/internal/mocks/repository"
	mockSvc "visitadoras/internal/mocks/service"
	"visitadoras/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentServiceFixtures struct {
	service     *paymentService
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	monthlyRepo *mockRepo.MockMonthlyCommissionRepository
	paymentRepo *mockRepo.MockPaymentRepository
	storage     *mockSvc.MockSignatureStorage
	publisher   *mockSvc.MockEventPublisher
	now         time.Time
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	fx := paymentServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		monthlyRepo: mockRepo.NewMockMonthlyCommissionRepository(t),
		paymentRepo: mockRepo.NewMockPaymentRepository(t),
		storage:     mockSvc.NewMockSignatureStorage(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		now:         time.UnixMilli(1717243200000),
	}

	fx.service = NewPaymentService(PaymentServiceParams{
		TxManager:   fx.txManager,
		MonthlyRepo: fx.monthlyRepo,
		PaymentRepo: fx.paymentRepo,
		Storage:     fx.storage,
		Publisher:   fx.publisher,
		Config:      newTestConfig(0),
		Logger:      newDiscardLogger(),
	}).(*paymentService)
	fx.service.now = func() time.Time { return fx.now }

	return fx
}

func pendingMonthly() *entity.MonthlyCommission {
	return &entity.MonthlyCommission{
		ID:            uuid.New(),
		PhysicianName: "Dr. Pérez",
		Period:        entity.Period{Month: 6, Year: 2024},
		Amounts: entity.CategoryAmounts{
			USG:      decimal.RequireFromString("150.00"),
			Especial: decimal.RequireFromString("25.50"),
			EKG:      decimal.RequireFromString("10.25"),
		},
		Status: entity.CommissionPending,
	}
}

func TestPaymentService_PayMonthly_RejectsBeforeAnyIO(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.PayInput
		wantErr error
	}{
		{
			name:    "blank recipient",
			input:   &usecase.PayInput{CommissionID: uuid.New(), PayerID: uuid.New(), RecipientName: "   ", Signature: testSignature},
			wantErr: domainerrors.ErrRecipientRequired,
		},
		{
			name:    "missing signature",
			input:   &usecase.PayInput{CommissionID: uuid.New(), PayerID: uuid.New(), RecipientName: "Recepción"},
			wantErr: domainerrors.ErrSignatureRequired,
		},
		{
			name:    "signature is not a png",
			input:   &usecase.PayInput{CommissionID: uuid.New(), PayerID: uuid.New(), RecipientName: "Recepción", Signature: []byte("not-an-image")},
			wantErr: domainerrors.ErrSignatureInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: any repository, storage or publisher call fails the test.
			fx := createTestPaymentService(t)

			_, err := fx.service.PayMonthly(context.Background(), tt.input)

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestPaymentService_PayMonthly_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	commission := pendingMonthly()
	payerID := uuid.New()
	key := monthlyPaymentSignatureKey(commission.ID, fx.now)

	fx.monthlyRepo.EXPECT().FindByID(ctx, commission.ID).Return(commission, nil)
	fx.storage.EXPECT().Upload(ctx, key, testSignature).Return("https://cdn.example.com/firmas/"+key, nil)

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewMonthlyCommissionRepository().Return(fx.monthlyRepo)
	fx.factory.EXPECT().NewPaymentRepository().Return(fx.paymentRepo)
	fx.monthlyRepo.EXPECT().
		MarkPaid(ctx, commission.ID, entity.PaymentConfirmation{
			PayerID:       payerID,
			RecipientName: "Recepción",
			SignatureURL:  "https://cdn.example.com/firmas/" + key,
			PaidAt:        fx.now,
		}).
		Return(nil)
	fx.paymentRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(record *entity.PaymentRecord) bool {
			return record.Source == entity.PaymentSourceMonthly &&
				record.Amount.Equal(decimal.RequireFromString("185.75")) &&
				record.Period == commission.Period
		})).
		Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.Event) bool {
			return event.Type == service.EventCommissionPaid && event.Payment.CommissionID == commission.ID
		})).
		Return(nil)

	record, err := fx.service.PayMonthly(ctx, &usecase.PayInput{
		CommissionID:  commission.ID,
		PayerID:       payerID,
		RecipientName: "  Recepción ",
		Signature:     testSignature,
	})

	require.NoError(t, err)
	assert.Equal(t, "Recepción", record.RecipientName)
	assert.Equal(t, payerID, record.VisitadoraID)
}

func TestPaymentService_PayMonthly_AlreadyPaid(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	commission := pendingMonthly()
	commission.Status = entity.CommissionPaid

	fx.monthlyRepo.EXPECT().FindByID(ctx, commission.ID).Return(commission, nil)

	_, err := fx.service.PayMonthly(ctx, &usecase.PayInput{
		CommissionID:  commission.ID,
		PayerID:       uuid.New(),
		RecipientName: "Recepción",
		Signature:     testSignature,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrCommissionAlreadyPaid))
}

func TestPaymentService_PayMonthly_LostRaceDiscardsSignature(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	commission := pendingMonthly()
	url := "https://cdn.example.com/firmas/receipt.png"

	fx.monthlyRepo.EXPECT().FindByID(ctx, commission.ID).Return(commission, nil)
	fx.storage.EXPECT().Upload(ctx, mock.Anything, testSignature).Return(url, nil)

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewMonthlyCommissionRepository().Return(fx.monthlyRepo)
	fx.monthlyRepo.EXPECT().MarkPaid(ctx, commission.ID, mock.Anything).Return(repository.ErrCommissionNotPending)
	fx.storage.EXPECT().Delete(mock.Anything, url).Return(nil)

	_, err := fx.service.PayMonthly(ctx, &usecase.PayInput{
		CommissionID:  commission.ID,
		PayerID:       uuid.New(),
		RecipientName: "Recepción",
		Signature:     testSignature,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrCommissionAlreadyPaid))
}

func TestPaymentService_PayMonthly_UploadFailure(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	commission := pendingMonthly()

	fx.monthlyRepo.EXPECT().FindByID(ctx, commission.ID).Return(commission, nil)
	fx.storage.EXPECT().Upload(ctx, mock.Anything, testSignature).Return("", errors.New("bucket unavailable"))

	_, err := fx.service.PayMonthly(ctx, &usecase.PayInput{
		CommissionID:  commission.ID,
		PayerID:       uuid.New(),
		RecipientName: "Recepción",
		Signature:     testSignature,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrSignatureUploadFailed))
}

func TestPaymentService_PublishFailureDoesNotFailPayment(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	commission := pendingMonthly()

	fx.monthlyRepo.EXPECT().FindByID(ctx, commission.ID).Return(commission, nil)
	fx.storage.EXPECT().Upload(ctx, mock.Anything, testSignature).Return("url", nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewMonthlyCommissionRepository().Return(fx.monthlyRepo)
	fx.factory.EXPECT().NewPaymentRepository().Return(fx.paymentRepo)
	fx.monthlyRepo.EXPECT().MarkPaid(ctx, commission.ID, mock.Anything).Return(nil)
	fx.paymentRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("topic not found"))

	_, err := fx.service.PayMonthly(ctx, &usecase.PayInput{
		CommissionID:  commission.ID,
		PayerID:       uuid.New(),
		RecipientName: "Recepción",
		Signature:     testSignature,
	})

	assert.NoError(t, err)
}

func TestPaymentService_ListPayments_InvalidPeriod(t *testing.T) {
	fx := createTestPaymentService(t)

	_, err := fx.service.ListPayments(context.Background(), entity.PaymentFilter{Period: &entity.Period{Month: 13, Year: 2024}})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPeriod))
}
