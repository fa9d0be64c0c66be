package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "visitadoras/internal/delivery/context"
	"visitadoras/internal/domain/entity"
	"visitadoras/internal/domain/repository"
	"visitadoras/internal/domain/service"
	"visitadoras/internal/usecase"
	"visitadoras/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type notificationService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	deviceRepo repository.DeviceRepository,
	notificationSvc service.NotificationService,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Dispatch notifies admins of visits and payments, and the assignee of a referral assignment.
// Malformed events are dropped; store and provider failures are retryable.
func (s *notificationService) Dispatch(ctx context.Context, event *service.Event) (*usecase.DispatchResult, error) {
	notification, err := buildPushNotification(event)
	if err != nil {
		return nil, err
	}

	devices, err := s.recipients(ctx, event)
	if err != nil {
		return nil, usecase.NewRetryableError(err)
	}

	result := &usecase.DispatchResult{Recipients: len(devices)}
	if len(devices) == 0 {
		s.log(ctx).Info("[Worker] No devices to notify", slog.String("event_type", string(event.Type)))

		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	report, err := s.notificationSvc.SendMulticast(ctx, tokens, notification)
	if report != nil {
		result.SuccessCount = report.SuccessCount
		result.FailureCount = report.FailureCount
		result.InvalidTokens = len(report.InvalidTokens)
		s.cleanupInvalidTokens(ctx, report.InvalidTokens)
	}
	if err != nil {
		return result, usecase.NewRetryableError(errors.Wrap(err, "failed to send push notifications"))
	}

	s.log(ctx).Info("[Worker] Notification sending completed",
		slog.String("event_id", event.ID),
		slog.Int("total_sent", result.SuccessCount),
		slog.Int("total_failed", result.FailureCount),
		slog.Int("invalid_tokens", result.InvalidTokens),
	)

	return result, nil
}

func (s *notificationService) recipients(ctx context.Context, event *service.Event) ([]*entity.Device, error) {
	switch event.Type {
	case service.EventVisitRecorded, service.EventCommissionPaid, service.EventReferralPaid:
		devices, err := s.deviceRepo.FindActiveDevicesByRole(ctx, entity.RoleAdmin)

		return devices, errors.Wrap(err, "failed to find admin devices")
	case service.EventReferralAssigned:
		if event.Assignment == nil || event.Assignment.AssignedTo == nil {
			return nil, nil
		}
		devices, err := s.deviceRepo.FindActiveDevicesByProfiles(ctx, []uuid.UUID{*event.Assignment.AssignedTo})

		return devices, errors.Wrap(err, "failed to find assignee devices")
	default:
		return nil, nil
	}
}

// cleanupInvalidTokens deactivates devices the provider reported as unregistered.
func (s *notificationService) cleanupInvalidTokens(ctx context.Context, tokens []string) {
	if len(tokens) == 0 {
		return
	}

	if err := s.deviceRepo.DeactivateByTokens(ctx, tokens); err != nil {
		s.log(ctx).Warn("[Worker] Failed to deactivate invalid devices",
			slog.Int("token_count", len(tokens)),
			slog.Any("error", err),
		)
	}
}

// buildPushNotification renders the Spanish push content of an event.
func buildPushNotification(event *service.Event) (service.PushNotification, error) {
	data := map[string]string{
		"event_id":   event.ID,
		"event_type": string(event.Type),
	}

	switch event.Type {
	case service.EventVisitRecorded:
		if event.Visit == nil {
			return service.PushNotification{}, errors.New("visit payload missing")
		}
		data["visit_id"] = event.Visit.VisitID.String()
		data["visitadora_id"] = event.Visit.VisitadoraID.String()

		body := fmt.Sprintf("%s visitó a %s", displayOr(event.Visit.VisitadoraName, "Una visitadora"), event.Visit.PhysicianName)
		if event.Visit.DistanceMeters != nil {
			body = fmt.Sprintf("%s (a %.0f m del consultorio)", body, *event.Visit.DistanceMeters)
		}

		return service.PushNotification{Title: "Nueva visita registrada", Body: body, Data: data}, nil

	case service.EventCommissionPaid, service.EventReferralPaid:
		if event.Payment == nil {
			return service.PushNotification{}, errors.New("payment payload missing")
		}
		data["commission_id"] = event.Payment.CommissionID.String()

		return service.PushNotification{
			Title: "Comisión pagada",
			Body: fmt.Sprintf("%s pagados a %s (%s)",
				util.FormatQuetzales(event.Payment.Amount), event.Payment.RecipientName, event.Payment.PhysicianName),
			Data: data,
		}, nil

	case service.EventReferralAssigned:
		if event.Assignment == nil {
			return service.PushNotification{}, errors.New("assignment payload missing")
		}
		data["commission_id"] = event.Assignment.CommissionID.String()

		return service.PushNotification{
			Title: "Comisión asignada",
			Body:  fmt.Sprintf("Se te asignó la comisión de %s por %s", event.Assignment.PatientName, util.FormatQuetzales(event.Assignment.Amount)),
			Data:  data,
		}, nil

	default:
		return service.PushNotification{}, errors.Errorf("unknown event type %q", event.Type)
	}
}

func displayOr(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
