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

type referralServiceFixtures struct {
	service       *referralService
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	referralRepo  *mockRepo.MockReferralCommissionRepository
	paymentRepo   *mockRepo.MockPaymentRepository
	physicianRepo *mockRepo.MockPhysicianRepository
	profileRepo   *mockRepo.MockProfileRepository
	storage       *mockSvc.MockSignatureStorage
	publisher     *mockSvc.MockEventPublisher
	now           time.Time
}

func createTestReferralService(t *testing.T) referralServiceFixtures {
	fx := referralServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		factory:       mockRepo.NewMockRepositoryFactory(t),
		referralRepo:  mockRepo.NewMockReferralCommissionRepository(t),
		paymentRepo:   mockRepo.NewMockPaymentRepository(t),
		physicianRepo: mockRepo.NewMockPhysicianRepository(t),
		profileRepo:   mockRepo.NewMockProfileRepository(t),
		storage:       mockSvc.NewMockSignatureStorage(t),
		publisher:     mockSvc.NewMockEventPublisher(t),
		now:           time.Date(2024, time.July, 2, 16, 0, 0, 0, time.UTC),
	}

	fx.service = NewReferralService(ReferralServiceParams{
		TxManager:     fx.txManager,
		ReferralRepo:  fx.referralRepo,
		PhysicianRepo: fx.physicianRepo,
		ProfileRepo:   fx.profileRepo,
		Storage:       fx.storage,
		Publisher:     fx.publisher,
		Config:        newTestConfig(0),
		Logger:        newDiscardLogger(),
	}).(*referralService)
	fx.service.now = func() time.Time { return fx.now }

	return fx
}

func (fx referralServiceFixtures) expectPayment(ctx context.Context, commission *entity.ReferralCommission, payerID uuid.UUID) {
	fx.storage.EXPECT().
		Upload(ctx, referralPaymentSignatureKey(commission.ID, fx.now), testSignature).
		Return("https://cdn.example.com/firmas/recibo.png", nil)

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewReferralCommissionRepository().Return(fx.referralRepo)
	fx.factory.EXPECT().NewPaymentRepository().Return(fx.paymentRepo)
	fx.referralRepo.EXPECT().
		MarkPaid(ctx, commission.ID, mock.MatchedBy(func(c entity.PaymentConfirmation) bool {
			return c.PayerID == payerID && c.RecipientName == "Secretaria"
		})).
		Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.Event) bool {
			return event.Type == service.EventReferralPaid
		})).
		Return(nil)
}

func referralFixture(assignedTo *uuid.UUID) *entity.ReferralCommission {
	return &entity.ReferralCommission{
		ID:            uuid.New(),
		PhysicianID:   uuid.New(),
		PhysicianName: "Dra. Gómez",
		VisitadoraID:  uuid.New(),
		// 31 May 23:30 in Guatemala is already June in UTC.
		ReferredAt:  time.Date(2024, time.June, 1, 5, 30, 0, 0, time.UTC),
		PatientName: "Juan",
		Amount:      decimal.RequireFromString("75.00"),
		Status:      entity.CommissionPending,
		AssignedTo:  assignedTo,
	}
}

func TestReferralService_MarkPaid_PoolIsPayableByAnyone(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()
	commission := referralFixture(nil)
	payerID := uuid.New()

	fx.referralRepo.EXPECT().FindByID(ctx, commission.ID).Return(commission, nil)
	fx.expectPayment(ctx, commission, payerID)
	fx.paymentRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(record *entity.PaymentRecord) bool {
			return record.Source == entity.PaymentSourceReferral &&
				record.Period == entity.Period{Month: 5, Year: 2024} &&
				record.Amount.Equal(commission.Amount)
		})).
		Return(nil)

	record, err := fx.service.MarkPaid(ctx, &usecase.PayInput{
		CommissionID:  commission.ID,
		PayerID:       payerID,
		RecipientName: "Secretaria",
		Signature:     testSignature,
	})

	require.NoError(t, err)
	assert.Equal(t, payerID, record.VisitadoraID)
}

func TestReferralService_MarkPaid_AssigneeCanPay(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()
	assignee := uuid.New()
	commission := referralFixture(&assignee)

	fx.referralRepo.EXPECT().FindByID(ctx, commission.ID).Return(commission, nil)
	fx.expectPayment(ctx, commission, assignee)
	fx.paymentRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	_, err := fx.service.MarkPaid(ctx, &usecase.PayInput{
		CommissionID:  commission.ID,
		PayerID:       assignee,
		RecipientName: "Secretaria",
		Signature:     testSignature,
	})

	assert.NoError(t, err)
}

func TestReferralService_MarkPaid_AssignedToSomeoneElse(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()
	assignee := uuid.New()
	commission := referralFixture(&assignee)

	fx.referralRepo.EXPECT().FindByID(ctx, commission.ID).Return(commission, nil)

	_, err := fx.service.MarkPaid(ctx, &usecase.PayInput{
		CommissionID:  commission.ID,
		PayerID:       uuid.New(),
		RecipientName: "Secretaria",
		Signature:     testSignature,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrCommissionNotAssignedToYou))
}

func TestReferralService_MarkPaid_ReassignedDuringPayment(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()
	commission := referralFixture(nil)
	url := "https://cdn.example.com/firmas/recibo.png"

	fx.referralRepo.EXPECT().FindByID(ctx, commission.ID).Return(commission, nil)
	fx.storage.EXPECT().Upload(ctx, mock.Anything, testSignature).Return(url, nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewReferralCommissionRepository().Return(fx.referralRepo)
	fx.referralRepo.EXPECT().MarkPaid(ctx, commission.ID, mock.Anything).Return(repository.ErrReferralCommissionNotPayable)
	fx.storage.EXPECT().Delete(mock.Anything, url).Return(nil)

	_, err := fx.service.MarkPaid(ctx, &usecase.PayInput{
		CommissionID:  commission.ID,
		PayerID:       uuid.New(),
		RecipientName: "Secretaria",
		Signature:     testSignature,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrCommissionNotAssignedToYou))
}

func TestReferralService_MarkPaid_AlreadyPaid(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()
	commission := referralFixture(nil)
	commission.Status = entity.CommissionPaid

	fx.referralRepo.EXPECT().FindByID(ctx, commission.ID).Return(commission, nil)

	_, err := fx.service.MarkPaid(ctx, &usecase.PayInput{
		CommissionID:  commission.ID,
		PayerID:       uuid.New(),
		RecipientName: "Secretaria",
		Signature:     testSignature,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrCommissionAlreadyPaid))
}

func TestReferralService_Create_RejectsInactiveAssignee(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()
	physician := &entity.Physician{ID: uuid.New(), Name: "Dra. Gómez", Active: true}
	assignee := &entity.Profile{ID: uuid.New(), Role: entity.RoleVisitadora, Active: false}

	fx.physicianRepo.EXPECT().FindByID(ctx, physician.ID).Return(physician, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, assignee.ID).Return(assignee, nil)

	_, err := fx.service.Create(ctx, &usecase.CreateReferralInput{
		VisitadoraID: uuid.New(),
		PhysicianID:  physician.ID,
		PatientName:  "Juan",
		Amount:       decimal.NewFromInt(50),
		AssignedTo:   &assignee.ID,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrNotVisitadora))
}

func TestReferralService_Create_DefaultsToPool(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()
	physician := &entity.Physician{ID: uuid.New(), Name: "Dra. Gómez", Active: true}

	fx.physicianRepo.EXPECT().FindByID(ctx, physician.ID).Return(physician, nil)
	fx.referralRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ReferralCommission")).Return(nil)

	commission, err := fx.service.Create(ctx, &usecase.CreateReferralInput{
		VisitadoraID: uuid.New(),
		PhysicianID:  physician.ID,
		PatientName:  " Juan ",
		Amount:       decimal.RequireFromString("49.999"),
	})

	require.NoError(t, err)
	assert.True(t, commission.InPool())
	assert.Equal(t, "Juan", commission.PatientName)
	assert.Equal(t, "Dra. Gómez", commission.PhysicianName)
	assert.True(t, commission.Amount.Equal(decimal.RequireFromString("50.00")))
	assert.Equal(t, fx.now, commission.ReferredAt)
}

func TestReferralService_Create_RejectsNonPositiveAmount(t *testing.T) {
	fx := createTestReferralService(t)

	_, err := fx.service.Create(context.Background(), &usecase.CreateReferralInput{
		PhysicianID: uuid.New(),
		PatientName: "Juan",
		Amount:      decimal.Zero,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrAmountMustBePositive))
}

func TestReferralService_Assign_EmitsEvent(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()
	actor := uuid.New()
	assignee := &entity.Profile{ID: uuid.New(), Role: entity.RoleVisitadora, Active: true}
	commission := referralFixture(&assignee.ID)

	fx.profileRepo.EXPECT().FindByID(ctx, assignee.ID).Return(assignee, nil)
	fx.referralRepo.EXPECT().Assign(ctx, commission.ID, &assignee.ID).Return(nil)
	fx.referralRepo.EXPECT().FindByID(ctx, commission.ID).Return(commission, nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.Event) bool {
			return event.Type == service.EventReferralAssigned &&
				event.ActorID == actor.String() &&
				*event.Assignment.AssignedTo == assignee.ID
		})).
		Return(nil)

	result, err := fx.service.Assign(ctx, actor, commission.ID, &assignee.ID)

	require.NoError(t, err)
	assert.Equal(t, commission.ID, result.ID)
}

func TestReferralService_Assign_BackToPoolOfPaidCommission(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.referralRepo.EXPECT().Assign(ctx, id, (*uuid.UUID)(nil)).Return(repository.ErrCommissionNotPending)

	_, err := fx.service.Assign(ctx, uuid.New(), id, nil)

	assert.True(t, errors.Is(err, domainerrors.ErrCommissionAlreadyPaid))
}

func TestReferralService_Delete_NotFound(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.referralRepo.EXPECT().Delete(ctx, id).Return(repository.ErrReferralCommissionNotFound)

	err := fx.service.Delete(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrCommissionNotFound))
}
