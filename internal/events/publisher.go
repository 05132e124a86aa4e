package events

import (
	"context"
	"errors"
	"time"

	"resume-insight/internal/shared/metrics"
	"resume-insight/internal/shared/telemetry"
)

// Publisher delivers events to a broker.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }

// Multi fans an event out to every publisher and joins their errors.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, e Event) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

const emitTimeout = 3 * time.Second

// Emit publishes e on a best-effort basis. Failures are logged and counted, never returned.
func Emit(ctx context.Context, p Publisher, e Event) {
	if p == nil {
		return
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), emitTimeout)
	defer cancel()

	if err := p.Publish(ctx, e); err != nil {
		metrics.IncEvent(string(e.Type), "error")
		telemetry.Warn("events.publish_failed", map[string]any{
			"type":       e.Type,
			"session_id": e.SessionID,
			"request_id": e.RequestID,
			"error":      err,
		})
		return
	}
	metrics.IncEvent(string(e.Type), "ok")
}
