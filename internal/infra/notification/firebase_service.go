// Package notification delivers push notifications to registered devices.
package notification

import (
	"context"
	"log/slog"
	"slices"

	"visitadoras/config"
	"visitadoras/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// maxTokensPerMulticast is the FCM limit for a single multicast request.
const maxTokensPerMulticast = 500

type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
	logger *slog.Logger
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.NotificationService, error) {
	opts := []option.ClientOption{}
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client, logger: logger}, nil
}

// SendMulticast sends the notification in batches of at most 500 tokens.
// A failing batch aborts the remaining ones; counts cover the batches already sent.
func (s *firebaseService) SendMulticast(ctx context.Context, tokens []string, notification service.PushNotification) (*service.DeliveryReport, error) {
	report := &service.DeliveryReport{InvalidTokens: []string{}}

	for batch := range slices.Chunk(tokens, maxTokensPerMulticast) {
		response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: batch,
			Notification: &messaging.Notification{
				Title: notification.Title,
				Body:  notification.Body,
			},
			Data: notification.Data,
		})
		if err != nil {
			return report, errors.Wrap(err, "failed to send multicast notification")
		}

		report.SuccessCount += response.SuccessCount
		report.FailureCount += response.FailureCount

		for idx, sendResponse := range response.Responses {
			if sendResponse == nil || sendResponse.Error == nil {
				continue
			}
			if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
				report.InvalidTokens = append(report.InvalidTokens, batch[idx])
			}
		}
	}

	return report, nil
}

// logOnlyService stands in for FCM when Firebase is not configured.
type logOnlyService struct {
	logger *slog.Logger
}

func (s *logOnlyService) SendMulticast(ctx context.Context, tokens []string, notification service.PushNotification) (*service.DeliveryReport, error) {
	s.logger.InfoContext(ctx, "Firebase not configured, notification not sent",
		slog.String("title", notification.Title),
		slog.Int("token_count", len(tokens)),
	)

	return &service.DeliveryReport{InvalidTokens: []string{}}, nil
}

// Params holds dependencies for the notification service, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New picks the Firebase sender when configured.
func New(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || (cfg.ProjectID == "" && cfg.CredentialsPath == "") {
		return &logOnlyService{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, cfg, params.Logger)
}
