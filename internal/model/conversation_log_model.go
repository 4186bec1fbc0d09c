package model

import (
	"time"

	"github.com/google/uuid"
)

type ConversationLog struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionID        string    `gorm:"type:text;not null;index"`
	UserMessage      string    `gorm:"type:text"`
	AssistantMessage string    `gorm:"type:text"`
	Decision         string    `gorm:"type:text"`
	Intent           string    `gorm:"type:text"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (ConversationLog) TableName() string {
	return "conversation_logs"
}
