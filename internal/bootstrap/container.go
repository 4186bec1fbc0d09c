package bootstrap

import (
	"context"
	"log"
	"time"

	"support-chatbot-be/internal/config"
	"support-chatbot-be/internal/controller"
	"support-chatbot-be/internal/pkg/logger"
	"support-chatbot-be/internal/repository/implementation"
	"support-chatbot-be/internal/repository/memory"
	"support-chatbot-be/internal/repository/unitofwork"
	"support-chatbot-be/internal/service"
	"support-chatbot-be/pkg/dialogue"
	"support-chatbot-be/pkg/dialogue/intent"
	"support-chatbot-be/pkg/embedding"
	"support-chatbot-be/pkg/llm/factory"
	pktNats "support-chatbot-be/pkg/nats"
	"support-chatbot-be/pkg/retrieval"
	"support-chatbot-be/pkg/session"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController

	// Background Services (Exposed for main.go to run)
	LogConsumerService service.ILogConsumerService

	// Offline tooling
	IndexingService service.IIndexingService

	Logger        logger.ILogger
	NatsPublisher *pktNats.Publisher
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	var eventBus service.EventPublisher
	if natsPub != nil {
		eventBus = natsPub
	}

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "gemini" {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	} else {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaEmbeddingModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaEmbeddingModel)
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. History Store
	var historyStore session.HistoryStore
	if cfg.History.Backend == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		historyStore = session.NewRedisStore(rdb, cfg.History.RedisPrefix, time.Duration(cfg.History.RedisTTL)*time.Second)
		log.Printf("[INFO] Using History Backend: REDIS (prefix %s)", cfg.History.RedisPrefix)
	} else {
		historyStore = session.NewMemoryStore()
		log.Printf("[INFO] Using History Backend: MEMORY")
	}

	// 5. Dialogue Components
	stateRepo := memory.NewDialogueStateRepository()
	chunkRepo := implementation.NewDocumentChunkRepository(db)
	retriever := retrieval.NewVectorRetriever(
		embeddingProvider,
		implementation.NewChunkSearcherAdapter(chunkRepo),
		cfg.Rag.TopK,
		cfg.Rag.RelevanceThreshold,
	)
	engine := dialogue.NewEngine()
	synthesizer := dialogue.NewLLMSynthesizer(llmProvider)
	classifier := intent.NewLLMClassifier(llmProvider, cfg.Ai.IntentModel, cfg.Dialogue.DefaultIntent)

	// 6. Services
	chatService := service.NewChatService(
		historyStore,
		stateRepo,
		retriever,
		engine,
		synthesizer,
		classifier,
		pubSub,
		cfg.App.LogTopic,
		eventBus,
		sysLogger,
		cfg.Dialogue.EscalationContact,
		time.Duration(cfg.Rag.RetrievalTimeout)*time.Second,
		time.Duration(cfg.Rag.GenerationTimeout)*time.Second,
	)
	logConsumer := service.NewLogConsumerService(pubSub, cfg.App.LogTopic, uowFactory, sysLogger)
	indexingService := service.NewIndexingService(
		uowFactory,
		embeddingProvider,
		eventBus,
		sysLogger,
		cfg.Rag.ChunkSize,
		cfg.Rag.ChunkOverlap,
	)

	// 7. Controllers
	chatController := controller.NewChatController(chatService, sysLogger)

	return &Container{
		ChatController:     chatController,
		LogConsumerService: logConsumer,
		IndexingService:    indexingService,
		Logger:             sysLogger,
		NatsPublisher:      natsPub,
	}
}
