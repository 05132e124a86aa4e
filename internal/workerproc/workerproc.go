package workerproc

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"resume-insight/internal/events"
	"resume-insight/internal/shared/metrics"
	"resume-insight/internal/shared/telemetry"
)

// MessageMeta captures details useful for logging and diagnostics.
type MessageMeta struct {
	BodyLen int
	BodySHA string
}

// ComputeMeta returns the body length and SHA-256 hash.
func ComputeMeta(body string) MessageMeta {
	if body == "" {
		return MessageMeta{}
	}
	sum := sha256.Sum256([]byte(body))
	return MessageMeta{BodyLen: len(body), BodySHA: hex.EncodeToString(sum[:])}
}

// ErrEmptyBody indicates an empty queue payload.
type ErrEmptyBody struct {
	Meta MessageMeta
}

func (e ErrEmptyBody) Error() string { return "empty message body" }

// ErrDecode indicates a JSON decode failure.
type ErrDecode struct {
	Meta MessageMeta
	Err  error
}

func (e ErrDecode) Error() string {
	if e.Err == nil {
		return "decode event"
	}
	return "decode event: " + e.Err.Error()
}

func (e ErrDecode) Unwrap() error { return e.Err }

// ErrUnknownEvent indicates a decodable payload that is not one of our event types
// or lacks a session id.
type ErrUnknownEvent struct {
	Meta MessageMeta
	Type events.Type
}

func (e ErrUnknownEvent) Error() string { return "unknown event " + string(e.Type) }

// ErrProcess indicates handling failed after successful parsing.
type ErrProcess struct {
	Event events.Event
	Err   error
}

func (e ErrProcess) Error() string {
	if e.Err == nil {
		return "process event"
	}
	return "process event: " + e.Err.Error()
}

func (e ErrProcess) Unwrap() error { return e.Err }

// Unrecoverable reports whether redelivering the message can never succeed.
func Unrecoverable(err error) bool {
	switch err.(type) {
	case ErrEmptyBody, ErrDecode, ErrUnknownEvent:
		return true
	default:
		return false
	}
}

// ParseMessage validates and decodes the queue payload.
func ParseMessage(body string) (events.Event, MessageMeta, error) {
	meta := ComputeMeta(body)
	if strings.TrimSpace(body) == "" {
		return events.Event{}, meta, ErrEmptyBody{Meta: meta}
	}

	e, err := events.Decode([]byte(body))
	if err != nil {
		return events.Event{}, meta, ErrDecode{Meta: meta, Err: err}
	}
	if !events.Known(e.Type) || strings.TrimSpace(e.SessionID) == "" {
		return e, meta, ErrUnknownEvent{Meta: meta, Type: e.Type}
	}
	return e, meta, nil
}

// Handler consumes one decoded domain event.
type Handler interface {
	Handle(ctx context.Context, e events.Event) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, e events.Event) error

func (f HandlerFunc) Handle(ctx context.Context, e events.Event) error { return f(ctx, e) }

// AuditLog writes every event to the structured log.
var AuditLog = HandlerFunc(func(_ context.Context, e events.Event) error {
	fields := map[string]any{
		"type":        e.Type,
		"session_id":  e.SessionID,
		"user_id":     e.UserID,
		"occurred_at": e.OccurredAt,
		"version":     e.Version,
	}
	if e.RequestID != "" {
		fields["request_id"] = e.RequestID
	}
	for k, v := range e.Payload {
		fields["payload_"+k] = v
	}
	telemetry.Info("worker.event", fields)
	return nil
})

// HandleMessage parses body and passes the event to h, counting the outcome.
func HandleMessage(ctx context.Context, h Handler, body string) (events.Event, MessageMeta, error) {
	e, meta, err := ParseMessage(body)
	if err != nil {
		metrics.IncEventConsumed(eventLabel(e.Type), "invalid")
		return e, meta, err
	}
	if err := h.Handle(ctx, e); err != nil {
		metrics.IncEventConsumed(string(e.Type), "error")
		return e, meta, ErrProcess{Event: e, Err: err}
	}
	metrics.IncEventConsumed(string(e.Type), "ok")
	return e, meta, nil
}

func eventLabel(t events.Type) string {
	if events.Known(t) {
		return string(t)
	}
	return "unknown"
}
