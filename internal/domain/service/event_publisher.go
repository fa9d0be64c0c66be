package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventType names a domain event.
type EventType string

const (
	EventVisitRecorded    EventType = "visit.recorded"
	EventCommissionPaid   EventType = "commission.paid"
	EventReferralAssigned EventType = "referral.assigned"
	EventReferralPaid     EventType = "referral.paid"
)

// VisitRecordedPayload describes a newly captured visit.
type VisitRecordedPayload struct {
	VisitID        uuid.UUID `json:"visit_id"`
	VisitadoraID   uuid.UUID `json:"visitadora_id"`
	VisitadoraName string    `json:"visitadora_name"`
	PhysicianID    uuid.UUID `json:"physician_id"`
	PhysicianName  string    `json:"physician_name"`
	DistanceMeters *float64  `json:"distance_meters,omitempty"`
}

// CommissionPaidPayload describes a completed payment of either commission kind.
type CommissionPaidPayload struct {
	CommissionID  uuid.UUID       `json:"commission_id"`
	PayerID       uuid.UUID       `json:"payer_id"`
	PhysicianName string          `json:"physician_name"`
	RecipientName string          `json:"recipient_name"`
	Amount        decimal.Decimal `json:"amount"`
}

// ReferralAssignedPayload describes an assignment change of a referral commission.
type ReferralAssignedPayload struct {
	CommissionID uuid.UUID       `json:"commission_id"`
	AssignedTo   *uuid.UUID      `json:"assigned_to,omitempty"`
	PatientName  string          `json:"patient_name"`
	Amount       decimal.Decimal `json:"amount"`
}

// Event is the typed envelope published for asynchronous processing.
// Exactly one payload is set, matching Type.
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`

	Visit      *VisitRecordedPayload    `json:"visit,omitempty"`
	Payment    *CommissionPaidPayload   `json:"payment,omitempty"`
	Assignment *ReferralAssignedPayload `json:"assignment,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends an event for async processing
	Publish(ctx context.Context, event *Event) error

	// Close releases any resources held by the publisher
	Close() error
}
