package notification

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"visitadoras/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	batches [][]string
	failOn  int
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.batches = append(f.batches, message.Tokens)
	if f.failOn > 0 && len(f.batches) == f.failOn {
		return nil, fmt.Errorf("fcm unavailable")
	}

	responses := make([]*messaging.SendResponse, len(message.Tokens))
	for i := range responses {
		responses[i] = &messaging.SendResponse{Success: true}
	}

	return &messaging.BatchResponse{SuccessCount: len(message.Tokens), Responses: responses}, nil
}

func tokens(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("token-%d", i)
	}

	return out
}

func TestFirebaseService_SendMulticast_Batches(t *testing.T) {
	sender := &fakeSender{}
	svc := &firebaseService{client: sender, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	report, err := svc.SendMulticast(context.Background(), tokens(1201), service.PushNotification{Title: "Nueva visita"})
	require.NoError(t, err)

	require.Len(t, sender.batches, 3)
	assert.Len(t, sender.batches[0], 500)
	assert.Len(t, sender.batches[1], 500)
	assert.Len(t, sender.batches[2], 201)
	assert.Equal(t, 1201, report.SuccessCount)
	assert.Empty(t, report.InvalidTokens)
}

func TestFirebaseService_SendMulticast_StopsOnError(t *testing.T) {
	sender := &fakeSender{failOn: 2}
	svc := &firebaseService{client: sender, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	report, err := svc.SendMulticast(context.Background(), tokens(700), service.PushNotification{Title: "Pago"})
	assert.Error(t, err)
	assert.Equal(t, 500, report.SuccessCount)
}

func TestFirebaseService_SendMulticast_NoTokens(t *testing.T) {
	sender := &fakeSender{}
	svc := &firebaseService{client: sender}

	report, err := svc.SendMulticast(context.Background(), nil, service.PushNotification{})
	require.NoError(t, err)
	assert.Empty(t, sender.batches)
	assert.Zero(t, report.SuccessCount)
}
