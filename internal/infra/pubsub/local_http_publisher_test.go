package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"visitadoras/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received PushMessage
	var requestIDHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDHeader = r.Header.Get("X-Request-Id")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	event := &service.Event{
		ID:         uuid.NewString(),
		Type:       service.EventVisitRecorded,
		RequestID:  "req-123",
		ActorID:    uuid.NewString(),
		OccurredAt: time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC),
		Visit: &service.VisitRecordedPayload{
			VisitID:       uuid.New(),
			PhysicianName: "Dr. Pérez",
		},
	}

	require.NoError(t, publisher.Publish(context.Background(), event))

	assert.Equal(t, "req-123", requestIDHeader)
	assert.Equal(t, event.ID, received.Message.MessageID)
	assert.Equal(t, string(service.EventVisitRecorded), received.Message.Attributes["event_type"])
	assert.Equal(t, "req-123", received.Message.Attributes["request_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.Event
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.Type, decoded.Type)
	require.NotNil(t, decoded.Visit)
	assert.Equal(t, "Dr. Pérez", decoded.Visit.PhysicianName)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.Publish(context.Background(), &service.Event{ID: "1", Type: service.EventCommissionPaid})
	assert.Error(t, err)
}

func TestEventAttributes_OmitsEmptyRequestID(t *testing.T) {
	attrs := eventAttributes(&service.Event{ID: "abc", Type: service.EventReferralPaid})

	assert.Equal(t, "abc", attrs["event_id"])
	assert.Equal(t, "referral.paid", attrs["event_type"])
	assert.NotContains(t, attrs, "request_id")
}
