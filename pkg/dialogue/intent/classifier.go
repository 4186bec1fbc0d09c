package intent

import (
	"context"
	"strings"

	"support-chatbot-be/pkg/llm"
)

// Intents the router distinguishes. Question goes through retrieval,
// SmallTalk bypasses it.
const (
	Question  = "question"
	SmallTalk = "smalltalk"
)

// Classifier labels an incoming message. Classification is best effort: any
// provider failure or unparseable reply falls back to the configured default
// so the request always proceeds.
type Classifier interface {
	Classify(ctx context.Context, message string) string
}

type LLMClassifier struct {
	provider      llm.LLMProvider
	model         string
	defaultIntent string
}

var _ Classifier = &LLMClassifier{}

func NewLLMClassifier(provider llm.LLMProvider, model, defaultIntent string) *LLMClassifier {
	if defaultIntent == "" {
		defaultIntent = Question
	}
	return &LLMClassifier{
		provider:      provider,
		model:         model,
		defaultIntent: defaultIntent,
	}
}

const classifyPrompt = `Classify the user message into exactly one category.

Categories:
- smalltalk: greetings, thanks, goodbyes, chit-chat with no information need
- question: anything asking for information or help

Reply with the single category word and nothing else.

Message: `

func (c *LLMClassifier) Classify(ctx context.Context, message string) string {
	// One category word is the entire expected output.
	opts := []llm.Option{llm.WithTemperature(0), llm.WithMaxTokens(5)}
	if c.model != "" {
		opts = append(opts, llm.WithModel(c.model))
	}

	reply, err := c.provider.Generate(ctx, classifyPrompt+message, opts...)
	if err != nil {
		return c.defaultIntent
	}

	switch strings.ToLower(strings.TrimSpace(reply)) {
	case SmallTalk:
		return SmallTalk
	case Question:
		return Question
	default:
		return c.defaultIntent
	}
}
