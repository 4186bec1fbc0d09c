package factory

import (
	"fmt"

	"support-chatbot-be/pkg/llm"
	"support-chatbot-be/pkg/llm/ollama"
)

// NewLLMProvider resolves the configured provider name to a client. Only
// Ollama is supported for now; the switch leaves room for hosted backends.
func NewLLMProvider(providerType, modelName, baseURL string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
