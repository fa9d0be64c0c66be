package impl

import (
	"context"
	"testing"
	"time"

	"visitadoras/internal/domain/entity"
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

type notificationServiceFixtures struct {
	service         usecase.NotificationUsecase
	deviceRepo      *mockRepo.MockDeviceRepository
	notificationSvc *mockSvc.MockNotificationService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)

	return notificationServiceFixtures{
		service:         NewNotificationService(deviceRepo, notificationSvc, newDiscardLogger()),
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
	}
}

func visitEvent(distance *float64) *service.Event {
	return &service.Event{
		ID:         "evt-1",
		Type:       service.EventVisitRecorded,
		OccurredAt: time.Now(),
		Visit: &service.VisitRecordedPayload{
			VisitID:        uuid.New(),
			VisitadoraID:   uuid.New(),
			VisitadoraName: "Ana",
			PhysicianName:  "Dr. Pérez",
			DistanceMeters: distance,
		},
	}
}

func adminDevices(tokens ...string) []*entity.Device {
	devices := make([]*entity.Device, 0, len(tokens))
	for _, token := range tokens {
		devices = append(devices, &entity.Device{ID: uuid.New(), ProfileID: uuid.New(), FCMToken: token, IsActive: true})
	}

	return devices
}

func TestNotificationService_Dispatch_VisitNotifiesAdmins(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	event := visitEvent(ptr(123.4))

	fx.deviceRepo.EXPECT().FindActiveDevicesByRole(ctx, entity.RoleAdmin).Return(adminDevices("t1", "t2"), nil)
	fx.notificationSvc.EXPECT().
		SendMulticast(ctx, []string{"t1", "t2"}, mock.MatchedBy(func(n service.PushNotification) bool {
			return n.Title == "Nueva visita registrada" &&
				n.Body == "Ana visitó a Dr. Pérez (a 123 m del consultorio)" &&
				n.Data["visit_id"] == event.Visit.VisitID.String() &&
				n.Data["event_type"] == "visit.recorded"
		})).
		Return(&service.DeliveryReport{SuccessCount: 2}, nil)

	result, err := fx.service.Dispatch(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, usecase.DispatchResult{Recipients: 2, SuccessCount: 2}, *result)
}

func TestNotificationService_Dispatch_PaymentBody(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	event := &service.Event{
		ID:   "evt-2",
		Type: service.EventCommissionPaid,
		Payment: &service.CommissionPaidPayload{
			CommissionID:  uuid.New(),
			PhysicianName: "Dr. Pérez",
			RecipientName: "Recepción",
			Amount:        decimal.RequireFromString("185.75"),
		},
	}

	fx.deviceRepo.EXPECT().FindActiveDevicesByRole(ctx, entity.RoleAdmin).Return(adminDevices("t1"), nil)
	fx.notificationSvc.EXPECT().
		SendMulticast(ctx, []string{"t1"}, mock.MatchedBy(func(n service.PushNotification) bool {
			return n.Title == "Comisión pagada" && n.Body == "Q185.75 pagados a Recepción (Dr. Pérez)"
		})).
		Return(&service.DeliveryReport{SuccessCount: 1}, nil)

	_, err := fx.service.Dispatch(ctx, event)

	assert.NoError(t, err)
}

func TestNotificationService_Dispatch_AssignmentNotifiesAssignee(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	assignee := uuid.New()
	event := &service.Event{
		ID:   "evt-3",
		Type: service.EventReferralAssigned,
		Assignment: &service.ReferralAssignedPayload{
			CommissionID: uuid.New(),
			AssignedTo:   &assignee,
			PatientName:  "Juan",
			Amount:       decimal.NewFromInt(50),
		},
	}

	fx.deviceRepo.EXPECT().FindActiveDevicesByProfiles(ctx, []uuid.UUID{assignee}).Return(adminDevices("phone"), nil)
	fx.notificationSvc.EXPECT().
		SendMulticast(ctx, []string{"phone"}, mock.MatchedBy(func(n service.PushNotification) bool {
			return n.Body == "Se te asignó la comisión de Juan por Q50.00"
		})).
		Return(&service.DeliveryReport{SuccessCount: 1}, nil)

	result, err := fx.service.Dispatch(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Recipients)
}

func TestNotificationService_Dispatch_BackToPoolNotifiesNobody(t *testing.T) {
	fx := createTestNotificationService(t)

	event := &service.Event{
		ID:         "evt-4",
		Type:       service.EventReferralAssigned,
		Assignment: &service.ReferralAssignedPayload{CommissionID: uuid.New(), PatientName: "Juan"},
	}

	result, err := fx.service.Dispatch(context.Background(), event)

	require.NoError(t, err)
	assert.Zero(t, result.Recipients)
}

func TestNotificationService_Dispatch_NoDevices(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	fx.deviceRepo.EXPECT().FindActiveDevicesByRole(ctx, entity.RoleAdmin).Return(nil, nil)

	result, err := fx.service.Dispatch(ctx, visitEvent(nil))

	require.NoError(t, err)
	assert.Zero(t, result.Recipients)
}

func TestNotificationService_Dispatch_InvalidTokensAreDeactivated(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	fx.deviceRepo.EXPECT().FindActiveDevicesByRole(ctx, entity.RoleAdmin).Return(adminDevices("good", "stale"), nil)
	fx.notificationSvc.EXPECT().
		SendMulticast(ctx, []string{"good", "stale"}, mock.Anything).
		Return(&service.DeliveryReport{SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"stale"}}, nil)
	fx.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"stale"}).Return(errors.New("deadlock detected"))

	result, err := fx.service.Dispatch(ctx, visitEvent(nil))

	require.NoError(t, err)
	assert.Equal(t, usecase.DispatchResult{Recipients: 2, SuccessCount: 1, FailureCount: 1, InvalidTokens: 1}, *result)
}

func TestNotificationService_Dispatch_Retryable(t *testing.T) {
	t.Run("device lookup fails", func(t *testing.T) {
		fx := createTestNotificationService(t)

		ctx := context.Background()
		fx.deviceRepo.EXPECT().FindActiveDevicesByRole(ctx, entity.RoleAdmin).Return(nil, errors.New("connection refused"))

		_, err := fx.service.Dispatch(ctx, visitEvent(nil))

		assert.True(t, usecase.IsRetryable(err))
	})

	t.Run("provider fails", func(t *testing.T) {
		fx := createTestNotificationService(t)

		ctx := context.Background()
		fx.deviceRepo.EXPECT().FindActiveDevicesByRole(ctx, entity.RoleAdmin).Return(adminDevices("t1"), nil)
		fx.notificationSvc.EXPECT().SendMulticast(ctx, mock.Anything, mock.Anything).Return(nil, errors.New("quota exceeded"))

		result, err := fx.service.Dispatch(ctx, visitEvent(nil))

		assert.True(t, usecase.IsRetryable(err))
		assert.Equal(t, 1, result.Recipients)
	})
}

func TestNotificationService_Dispatch_MalformedEventIsDropped(t *testing.T) {
	tests := []struct {
		name  string
		event *service.Event
	}{
		{name: "unknown type", event: &service.Event{ID: "x", Type: "visit.deleted"}},
		{name: "visit without payload", event: &service.Event{ID: "x", Type: service.EventVisitRecorded}},
		{name: "payment without payload", event: &service.Event{ID: "x", Type: service.EventReferralPaid}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestNotificationService(t)

			_, err := fx.service.Dispatch(context.Background(), tt.event)

			require.Error(t, err)
			assert.False(t, usecase.IsRetryable(err))
		})
	}
}
