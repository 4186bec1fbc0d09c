package service

import (
	"context"
	"encoding/json"

	"support-chatbot-be/internal/constant"
	"support-chatbot-be/internal/dto"
	"support-chatbot-be/internal/entity"
	"support-chatbot-be/internal/pkg/logger"
	"support-chatbot-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// ILogConsumerService drains the conversation log topic and persists entries,
// keeping database writes off the chat request path.
type ILogConsumerService interface {
	Consume(ctx context.Context) error
}

type logConsumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewLogConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) ILogConsumerService {
	return &logConsumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (cs *logConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *logConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ConversationLogMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error(constant.ModuleLogConsumer, "failed to unmarshal conversation log message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	logEntry := &entity.ConversationLog{
		SessionID:        payload.SessionID,
		UserMessage:      payload.UserMessage,
		AssistantMessage: payload.AssistantMessage,
		Decision:         payload.Decision,
		Intent:           payload.Intent,
	}

	if err := uow.ConversationLogRepository().Create(ctx, logEntry); err != nil {
		cs.logger.Error(constant.ModuleLogConsumer, "failed to persist conversation log", map[string]interface{}{
			"session_id": payload.SessionID,
			"error":      err.Error(),
		})
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
