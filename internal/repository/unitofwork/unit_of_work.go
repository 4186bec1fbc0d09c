package unitofwork

import (
	"context"

	"support-chatbot-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	DocumentChunkRepository() contract.DocumentChunkRepository
	ConversationLogRepository() contract.ConversationLogRepository
}
