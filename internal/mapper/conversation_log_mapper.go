package mapper

import (
	"support-chatbot-be/internal/entity"
	"support-chatbot-be/internal/model"
)

type ConversationLogMapper struct{}

func NewConversationLogMapper() *ConversationLogMapper {
	return &ConversationLogMapper{}
}

func (m *ConversationLogMapper) ToEntity(e *model.ConversationLog) *entity.ConversationLog {
	if e == nil {
		return nil
	}
	return &entity.ConversationLog{
		Id:               e.Id,
		SessionID:        e.SessionID,
		UserMessage:      e.UserMessage,
		AssistantMessage: e.AssistantMessage,
		Decision:         e.Decision,
		Intent:           e.Intent,
		CreatedAt:        e.CreatedAt,
	}
}

func (m *ConversationLogMapper) ToModel(e *entity.ConversationLog) *model.ConversationLog {
	if e == nil {
		return nil
	}
	return &model.ConversationLog{
		Id:               e.Id,
		SessionID:        e.SessionID,
		UserMessage:      e.UserMessage,
		AssistantMessage: e.AssistantMessage,
		Decision:         e.Decision,
		Intent:           e.Intent,
		CreatedAt:        e.CreatedAt,
	}
}
