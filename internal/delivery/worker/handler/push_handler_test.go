package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"visitadoras/internal/domain/service"
	mockUC "visitadoras/internal/mocks/usecase"
	"visitadoras/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockNotificationUsecase) {
	notificationUC := mockUC.NewMockNotificationUsecase(t)

	return &PushHandler{
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		notificationUC: notificationUC,
	}, notificationUC
}

func pushBody(t *testing.T, data string, attributes map[string]string) []byte {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/p/subscriptions/notifier"

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	return raw
}

func encodeEvent(t *testing.T, event service.Event) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func newPushContext(body []byte) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/pubsub/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := service.Event{ID: "evt-1", Type: service.EventCommissionPaid, RequestID: "req-from-event"}

	tests := []struct {
		name       string
		dispatch   error
		wantStatus int
	}{
		{name: "delivered", wantStatus: http.StatusOK},
		{name: "retryable failure", dispatch: usecase.NewRetryableError(errors.New("db down")), wantStatus: http.StatusServiceUnavailable},
		{name: "permanent failure", dispatch: errors.New("unknown event"), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notificationUC := newTestPushHandler(t)

			call := notificationUC.EXPECT().
				Dispatch(mock.Anything, mock.MatchedBy(func(got *service.Event) bool {
					return got.ID == "evt-1" && got.Type == service.EventCommissionPaid
				}))
			if tt.dispatch != nil {
				call.Return(nil, tt.dispatch)
			} else {
				call.Return(&usecase.DispatchResult{Recipients: 1, SuccessCount: 1}, nil)
			}

			c, rec := newPushContext(pushBody(t, encodeEvent(t, event), nil))

			require.NoError(t, h.HandlePush(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_BadData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not base64", data: "%%%"},
		{name: "not json", data: base64.StdEncoding.EncodeToString([]byte("nope"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t)

			c, rec := newPushContext(pushBody(t, tt.data, nil))

			require.NoError(t, h.HandlePush(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h, _ := newTestPushHandler(t)

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attrs"}
	event := &service.Event{RequestID: "from-event"}

	assert.Equal(t, "from-attrs", h.extractRequestID(context.Background(), &msg, event))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", h.extractRequestID(context.Background(), &msg, event))

	assert.NotEmpty(t, h.extractRequestID(context.Background(), &msg, &service.Event{}))
}

func TestPushHandler_VerifyPushAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		payload    *idtoken.Payload
		validErr   error
		wantStatus int
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer abc", validErr: errors.New("bad signature"), wantStatus: http.StatusUnauthorized},
		{
			name:       "foreign issuer",
			header:     "Bearer abc",
			payload:    &idtoken.Payload{Issuer: "https://evil.example.com"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unverified email",
			header:     "Bearer abc",
			payload:    &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": false}},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid",
			header:     "Bearer abc",
			payload:    &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": true}},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notificationUC := newTestPushHandler(t)
			h.verifyPushAuth = true
			h.audience = "https://notifier.example.com/pubsub/push"
			h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "abc", token)
				assert.Equal(t, "https://notifier.example.com/pubsub/push", audience)

				return tt.payload, tt.validErr
			}

			if tt.wantStatus == http.StatusOK {
				notificationUC.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(&usecase.DispatchResult{}, nil)
			}

			c, rec := newPushContext(pushBody(t, encodeEvent(t, service.Event{ID: "evt-2", Type: service.EventVisitRecorded}), nil))
			if tt.header != "" {
				c.Request().Header.Set(echo.HeaderAuthorization, tt.header)
			}

			require.NoError(t, h.HandlePush(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
