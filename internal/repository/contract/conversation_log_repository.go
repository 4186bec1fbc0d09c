package contract

import (
	"context"

	"support-chatbot-be/internal/entity"
	"support-chatbot-be/internal/repository/specification"
)

type ConversationLogRepository interface {
	Create(ctx context.Context, logEntry *entity.ConversationLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
