package events

import (
	"encoding/json"
	"time"
)

// Type names a domain event. Types double as AMQP routing key prefixes.
type Type string

const (
	SessionCreated    Type = "session.created"
	AnalysisCompleted Type = "analysis.completed"
	ChatResponded     Type = "chat.responded"
)

const currentVersion = 1

// Known reports whether t is one of the published event types.
func Known(t Type) bool {
	switch t {
	case SessionCreated, AnalysisCompleted, ChatResponded:
		return true
	default:
		return false
	}
}

// Event is the payload sent to downstream consumers.
type Event struct {
	Type       Type           `json:"type"`
	SessionID  string         `json:"sessionId"`
	UserID     string         `json:"userId"`
	RequestID  string         `json:"requestId,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
	Payload    map[string]any `json:"payload,omitempty"`
	Version    int            `json:"version"`
}

// Encode returns the JSON representation of an event.
func Encode(e Event) ([]byte, error) {
	if e.Version == 0 {
		e.Version = currentVersion
	}
	return json.Marshal(e)
}

// Decode parses a JSON payload into an Event.
func Decode(payload []byte) (Event, error) {
	var e Event
	if err := json.Unmarshal(payload, &e); err != nil {
		return Event{}, err
	}
	return e, nil
}
