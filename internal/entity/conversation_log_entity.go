package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConversationLog is the audit record of one completed exchange, written
// asynchronously so logging never delays the chat response.
type ConversationLog struct {
	Id               uuid.UUID
	SessionID        string
	UserMessage      string
	AssistantMessage string
	Decision         string
	Intent           string
	CreatedAt        time.Time
}
