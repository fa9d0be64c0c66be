package impl

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "visitadoras/internal/delivery/context"
	domainerrors "visitadoras/internal/domain/errors"
	"visitadoras/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// validateSignature checks a captured signature before anything is stored.
func validateSignature(png []byte, maxBytes int) error {
	if len(png) == 0 {
		return errors.Wrap(domainerrors.ErrSignatureRequired, "signature is empty")
	}
	if !bytes.HasPrefix(png, pngMagic) {
		return errors.Wrap(domainerrors.ErrSignatureInvalid, "signature is not a PNG image")
	}
	if maxBytes > 0 && len(png) > maxBytes {
		return errors.Wrap(
			domainerrors.ErrSignatureInvalid.WithDetails(fmt.Sprintf("max %d bytes", maxBytes)),
			"signature too large",
		)
	}

	return nil
}

func visitSignatureKey(visitadoraID uuid.UUID, at time.Time) string {
	return fmt.Sprintf("firma_%s_%d.png", visitadoraID, at.UnixMilli())
}

func monthlyPaymentSignatureKey(commissionID uuid.UUID, at time.Time) string {
	return fmt.Sprintf("firma-comision-%s-%d.png", commissionID, at.UnixMilli())
}

func referralPaymentSignatureKey(commissionID uuid.UUID, at time.Time) string {
	return fmt.Sprintf("firma_recibido_%s_%d.png", commissionID, at.UnixMilli())
}

// underscoreName turns "Ana María López" into "Ana_María_López".
func underscoreName(name string) string {
	return strings.Join(strings.Fields(name), "_")
}

// datedFileName builds "{prefix}_{Subject}_{dd-mm-yyyy}.{ext}", dropping a blank subject.
func datedFileName(prefix, subject string, at time.Time, ext string) string {
	parts := []string{prefix}
	if name := underscoreName(subject); name != "" {
		parts = append(parts, name)
	}
	parts = append(parts, at.Format("02-01-2006"))

	return strings.Join(parts, "_") + "." + ext
}

func reportFileName(subject string, at time.Time, ext string) string {
	return datedFileName("Reporte", subject, at, ext)
}

func physiciansFileName(subject string, at time.Time) string {
	return datedFileName("Medicos", subject, at, "xlsx")
}

// eventEmitter publishes domain events. Publishing never fails the operation that triggered it.
type eventEmitter struct {
	publisher service.EventPublisher
	now       func() time.Time
	logger    *slog.Logger
}

func newEventEmitter(publisher service.EventPublisher, logger *slog.Logger) *eventEmitter {
	return &eventEmitter{publisher: publisher, now: time.Now, logger: logger}
}

func (e *eventEmitter) emit(ctx context.Context, eventType service.EventType, actorID uuid.UUID, fill func(*service.Event)) {
	if e == nil || e.publisher == nil {
		return
	}

	event := &service.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		ActorID:    actorID.String(),
		OccurredAt: e.now(),
	}
	fill(event)

	if err := e.publisher.Publish(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).Warn("Failed to publish event",
			slog.String("event_type", string(eventType)),
			slog.String("event_id", event.ID),
			slog.Any("error", err),
		)
	}
}

// discardUpload removes a stored signature whose database write did not commit.
func discardUpload(ctx context.Context, storage service.SignatureStorage, logger *slog.Logger, url string) {
	if err := storage.Delete(context.WithoutCancel(ctx), url); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Failed to delete orphaned signature",
			slog.String("url", url),
			slog.Any("error", err),
		)
	}
}

// dayRange converts inclusive calendar days into a [from, to) interval in loc.
func dayRange(from, to *time.Time, loc *time.Location) (*time.Time, *time.Time, error) {
	var start, end *time.Time

	if from != nil {
		day := startOfDay(*from, loc)
		start = &day
	}
	if to != nil {
		day := startOfDay(*to, loc).AddDate(0, 0, 1)
		end = &day
	}

	if start != nil && end != nil && !start.Before(*end) {
		return nil, nil, errors.Wrap(domainerrors.ErrInvalidDateRange, "from is after to")
	}

	return start, end, nil
}

// startOfDay keeps the calendar date of t and moves it to midnight in loc.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
