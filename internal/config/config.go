package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	History  HistoryConfig
	Ai       AIConfig
	Rag      RAGConfig
	Dialogue DialogueConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	LogTopic           string // watermill topic for async conversation logging
}

type DatabaseConfig struct {
	Connection string
}

type HistoryConfig struct {
	Backend     string // "memory" or "redis"
	RedisPrefix string
	RedisTTL    int // seconds, 0 disables expiry
}

type AIConfig struct {
	EmbeddingProvider    string // "ollama" or "gemini"
	OllamaBaseURL        string
	OllamaEmbeddingModel string
	LLMProvider          string // "ollama"
	LLMModel             string
	IntentModel          string
	GoogleGemini         string
}

type RAGConfig struct {
	TopK               int
	RelevanceThreshold float64
	ChunkSize          int
	ChunkOverlap       int
	RetrievalTimeout   int // seconds
	GenerationTimeout  int // seconds
	DocumentsPath      string
}

type DialogueConfig struct {
	EscalationContact string
	DefaultIntent     string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			LogTopic:           getEnv("CONVERSATION_LOG_TOPIC_NAME", "LOG_CONVERSATION_TURN"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		History: HistoryConfig{
			Backend:     getEnv("HISTORY_BACKEND", "memory"),
			RedisPrefix: getEnv("REDIS_SESSION_PREFIX", "chat_session:"),
			RedisTTL:    getEnvAsInt("REDIS_SESSION_TTL_SECONDS", 0),
		},
		Ai: AIConfig{
			EmbeddingProvider:    getEnv("EMBEDDING_PROVIDER", "ollama"),
			OllamaBaseURL:        getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaEmbeddingModel: getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:          getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:             getEnv("LLM_MODEL", "llama3"),
			IntentModel:          getEnv("OLLAMA_INTENT_MODEL", "llama3"),
			GoogleGemini:         getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
		Rag: RAGConfig{
			TopK:               getEnvAsInt("RAG_SEARCH_K", 5),
			RelevanceThreshold: getEnvAsFloat("RAG_RELEVANCE_SCORE_THRESHOLD", 0.70),
			ChunkSize:          getEnvAsInt("RAG_CHUNK_SIZE", 1000),
			ChunkOverlap:       getEnvAsInt("RAG_CHUNK_OVERLAP", 150),
			RetrievalTimeout:   getEnvAsInt("RETRIEVAL_TIMEOUT_SECONDS", 5),
			GenerationTimeout:  getEnvAsInt("GENERATION_TIMEOUT_SECONDS", 8),
			DocumentsPath:      getEnv("MD_DOCUMENTS_PATH", "./data/md_documents"),
		},
		Dialogue: DialogueConfig{
			EscalationContact: getEnv("ESCALATION_CONTACT", "support@helpdesk.example"),
			DefaultIntent:     getEnv("DEFAULT_INTENT", "question"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
