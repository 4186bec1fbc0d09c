package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CHAT_TURN_COMPLETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is a plain implementation for events without extra behavior.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes.
const (
	TypeChatTurnCompleted = "CHAT_TURN_COMPLETED"
	TypeSessionCleared    = "SESSION_CLEARED"
	TypeDocumentsIndexed  = "DOCUMENTS_INDEXED"
)

// NewChatTurnCompleted signals that a user turn and its assistant reply were
// committed to history.
func NewChatTurnCompleted(sessionID, decision string) Event {
	return BaseEvent{
		Type: TypeChatTurnCompleted,
		Data: map[string]interface{}{
			"session_id": sessionID,
			"decision":   decision,
		},
		OccurredAt: time.Now(),
	}
}

// NewSessionCleared signals that a session transcript was erased.
func NewSessionCleared(sessionID string) Event {
	return BaseEvent{
		Type: TypeSessionCleared,
		Data: map[string]interface{}{
			"session_id": sessionID,
		},
		OccurredAt: time.Now(),
	}
}

// NewDocumentsIndexed signals a completed indexing run.
func NewDocumentsIndexed(labels []string, chunkCount int) Event {
	return BaseEvent{
		Type: TypeDocumentsIndexed,
		Data: map[string]interface{}{
			"labels":      labels,
			"chunk_count": chunkCount,
		},
		OccurredAt: time.Now(),
	}
}
