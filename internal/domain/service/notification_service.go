package service

import (
	"context"
)

// PushNotification is the content delivered to devices.
type PushNotification struct {
	Title string
	Body  string
	Data  map[string]string
}

// DeliveryReport summarizes a multicast send.
type DeliveryReport struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string // tokens the provider reported as unregistered or malformed
}

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendMulticast delivers the notification to every token, batching as the provider requires.
	SendMulticast(ctx context.Context, tokens []string, notification PushNotification) (*DeliveryReport, error)
}
