package llm

import (
	"context"
)

// Message is a provider-agnostic chat message.
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Option tunes a single call without touching provider defaults.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // override the provider's default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// LLMProvider is the contract every text-generation backend satisfies.
type LLMProvider interface {
	// Chat sends a full transcript and returns the model's reply.
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate sends a single prompt, for callers without a transcript.
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}
