package service

import (
	"context"
	"encoding/json"
	"time"

	"support-chatbot-be/internal/constant"
	"support-chatbot-be/internal/dto"
	"support-chatbot-be/internal/pkg/logger"
	"support-chatbot-be/internal/repository/memory"
	"support-chatbot-be/pkg/dialogue"
	"support-chatbot-be/pkg/dialogue/intent"
	"support-chatbot-be/pkg/events"
	"support-chatbot-be/pkg/retrieval"
	"support-chatbot-be/pkg/session"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// EventPublisher is the slice of the NATS publisher the service uses,
// injectable so tests run without a broker.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// IChatService orchestrates one conversation exchange end to end: intent
// routing, retrieval, the clarify-or-answer decision, synthesis and the
// atomic history append.
type IChatService interface {
	HandleMessage(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
	ClearHistory(ctx context.Context, sessionID string) error
}

type chatService struct {
	history     session.HistoryStore
	stateRepo   *memory.DialogueStateRepository
	retriever   retrieval.Retriever
	engine      *dialogue.Engine
	synthesizer dialogue.Synthesizer
	classifier  intent.Classifier
	pubSub      *gochannel.GoChannel
	logTopic    string
	eventBus    EventPublisher
	logger      logger.ILogger

	escalationContact string
	retrievalTimeout  time.Duration
	generationTimeout time.Duration
}

func NewChatService(
	history session.HistoryStore,
	stateRepo *memory.DialogueStateRepository,
	retriever retrieval.Retriever,
	engine *dialogue.Engine,
	synthesizer dialogue.Synthesizer,
	classifier intent.Classifier,
	pubSub *gochannel.GoChannel,
	logTopic string,
	eventBus EventPublisher,
	log logger.ILogger,
	escalationContact string,
	retrievalTimeout time.Duration,
	generationTimeout time.Duration,
) IChatService {
	return &chatService{
		history:           history,
		stateRepo:         stateRepo,
		retriever:         retriever,
		engine:            engine,
		synthesizer:       synthesizer,
		classifier:        classifier,
		pubSub:            pubSub,
		logTopic:          logTopic,
		eventBus:          eventBus,
		logger:            log,
		escalationContact: escalationContact,
		retrievalTimeout:  retrievalTimeout,
		generationTimeout: generationTimeout,
	}
}

const smallTalkFallback = "Hello! How can I help you today?"

func (s *chatService) HandleMessage(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	sessionID := request.SessionID
	if sessionID == "" {
		sessionID = session.NewID()
	}

	history, err := s.history.GetHistory(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	detectedIntent := s.classifier.Classify(ctx, request.Query)

	var reply, decisionCode string
	if detectedIntent == intent.SmallTalk {
		reply = s.replySmallTalk(ctx, request.Query, history)
		decisionCode = constant.DecisionSmall
		s.stateRepo.ClearPending(sessionID)
	} else {
		reply, decisionCode = s.replyWithPolicy(ctx, sessionID, request.Query, history)
	}

	// The reply is fully computed before anything is persisted: a cancelled
	// request appends neither turn.
	if err := s.history.Append(ctx, sessionID, session.UserTurn(request.Query), session.AssistantTurn(reply)); err != nil {
		return nil, err
	}

	s.publishConversationLog(sessionID, request.Query, reply, decisionCode, detectedIntent)
	s.publishEvent(ctx, events.NewChatTurnCompleted(sessionID, decisionCode))

	return &dto.ChatResponse{
		Response:  reply,
		SessionID: sessionID,
	}, nil
}

// replyWithPolicy runs the retrieval augmented path: resolve a pending
// clarification, retrieve, decide, then render or synthesize.
func (s *chatService) replyWithPolicy(ctx context.Context, sessionID, query string, history []session.Turn) (string, string) {
	pending, found := s.stateRepo.GetPending(sessionID)
	if !found {
		// Durable fallback: rebuild the pending clarification from the
		// transcript, surviving restarts when history lives in Redis.
		pending = dialogue.PendingFromHistory(history)
	}
	resolvedQuestion, _ := dialogue.ResolveQuestion(query, pending)

	retrieveCtx, cancel := context.WithTimeout(ctx, s.retrievalTimeout)
	defer cancel()

	candidates, err := s.retriever.Retrieve(retrieveCtx, resolvedQuestion)
	if err != nil {
		s.logger.Warn(constant.ModuleChatService, "retrieval failed, degrading to not-found", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		s.stateRepo.ClearPending(sessionID)
		return dialogue.RenderNotFound(dialogue.ReasonRetrievalUnavailable, s.escalationContact), constant.DecisionNotFound
	}

	decision := s.engine.Decide(query, history, candidates)

	switch decision.Kind {
	case dialogue.KindClarify:
		s.stateRepo.SetPending(sessionID, &dialogue.Pending{
			OriginalQuestion: query,
			Options:          decision.Options,
		})
		return dialogue.RenderClarify(decision.Options), constant.DecisionClarify

	case dialogue.KindAnswer:
		s.stateRepo.ClearPending(sessionID)
		genCtx, cancelGen := context.WithTimeout(ctx, s.generationTimeout)
		defer cancelGen()

		answer, err := s.synthesizer.Synthesize(genCtx, resolvedQuestion, decision.Candidates, history)
		if err != nil {
			s.logger.Warn(constant.ModuleChatService, "synthesis failed, degrading to not-found", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
			return dialogue.RenderNotFound(dialogue.ReasonRetrievalUnavailable, s.escalationContact), constant.DecisionNotFound
		}
		return answer, constant.DecisionAnswer

	default:
		s.stateRepo.ClearPending(sessionID)
		return dialogue.RenderNotFound(decision.Reason, s.escalationContact), constant.DecisionNotFound
	}
}

func (s *chatService) replySmallTalk(ctx context.Context, query string, history []session.Turn) string {
	genCtx, cancel := context.WithTimeout(ctx, s.generationTimeout)
	defer cancel()

	reply, err := s.synthesizer.SmallTalk(genCtx, query, history)
	if err != nil || reply == "" {
		return smallTalkFallback
	}
	return reply
}

func (s *chatService) ClearHistory(ctx context.Context, sessionID string) error {
	if err := s.history.Clear(ctx, sessionID); err != nil {
		return err
	}
	s.stateRepo.ClearPending(sessionID)
	s.publishEvent(ctx, events.NewSessionCleared(sessionID))
	return nil
}

func (s *chatService) publishConversationLog(sessionID, userMessage, assistantMessage, decision, detectedIntent string) {
	if s.pubSub == nil {
		return
	}

	payload, err := json.Marshal(dto.ConversationLogMessage{
		SessionID:        sessionID,
		UserMessage:      userMessage,
		AssistantMessage: assistantMessage,
		Decision:         decision,
		Intent:           detectedIntent,
	})
	if err != nil {
		s.logger.Error(constant.ModuleChatService, "failed to marshal conversation log", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	if err := s.pubSub.Publish(s.logTopic, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		s.logger.Warn(constant.ModuleChatService, "failed to publish conversation log", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
	}
}

func (s *chatService) publishEvent(ctx context.Context, event events.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, event); err != nil {
		s.logger.Warn(constant.ModuleChatService, "failed to publish event", map[string]interface{}{
			"event": event.EventType(),
			"error": err.Error(),
		})
	}
}
