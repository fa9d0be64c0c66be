package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"visitadoras/config"
	deliverycontext "visitadoras/internal/delivery/context"
	"visitadoras/internal/domain/constants"
	"visitadoras/internal/domain/service"
	"visitadoras/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TokenValidator checks a push OIDC token against an audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns Pub/Sub pushes into push notifications.
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validateToken  TokenValidator
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Pushes are only signed by Google; local publishers post unsigned JSON.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
	}
}

// HandlePush answers 200 for handled or undeliverable messages and 503 when Pub/Sub should retry.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.Event
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	ctx, reqLogger := deliverycontext.WithRequestScope(ctx, requestID, h.logger)

	reqLogger.Info("[Worker] Processing event",
		slog.String("event_id", event.ID),
		slog.String("event_type", string(event.Type)),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	result, err := h.notificationUC.Dispatch(ctx, &event)
	if err != nil {
		retryable := usecase.IsRetryable(err)
		reqLogger.Error("[Worker] Failed to process event",
			slog.String("event_id", event.ID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		// 503 makes Pub/Sub redeliver; anything else would loop forever.
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Event processed",
		slog.String("event_id", event.ID),
		slog.Int("recipients", result.Recipients),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the inbound header.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.Event) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the OIDC token Google attaches to authenticated push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
