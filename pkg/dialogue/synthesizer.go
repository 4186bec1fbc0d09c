package dialogue

import (
	"context"
	"strings"

	"support-chatbot-be/pkg/llm"
	"support-chatbot-be/pkg/retrieval"
	"support-chatbot-be/pkg/session"
)

// Synthesizer turns a resolved question plus its supporting candidates into
// final answer text. It is the only non-deterministic collaborator of the
// policy, kept behind an interface so decisions are testable without it.
type Synthesizer interface {
	Synthesize(ctx context.Context, question string, candidates []retrieval.Candidate, history []session.Turn) (string, error)
	SmallTalk(ctx context.Context, message string, history []session.Turn) (string, error)
}

// LLMSynthesizer generates answers with a chat model, grounded strictly on
// the supplied candidate snippets.
type LLMSynthesizer struct {
	provider llm.LLMProvider
}

var _ Synthesizer = &LLMSynthesizer{}

func NewLLMSynthesizer(provider llm.LLMProvider) *LLMSynthesizer {
	return &LLMSynthesizer{provider: provider}
}

func (s *LLMSynthesizer) Synthesize(ctx context.Context, question string, candidates []retrieval.Candidate, history []session.Turn) (string, error) {
	messages := historyToMessages(history)
	messages = append(messages, llm.Message{
		Role:    "user",
		Content: buildGroundedPrompt(question, candidates),
	})
	return s.provider.Chat(ctx, messages, llm.WithTemperature(0.3))
}

func (s *LLMSynthesizer) SmallTalk(ctx context.Context, message string, history []session.Turn) (string, error) {
	messages := []llm.Message{{
		Role:    "system",
		Content: "You are a friendly IT support assistant. Reply briefly and naturally. Do not invent technical instructions.",
	}}
	messages = append(messages, historyToMessages(history)...)
	messages = append(messages, llm.Message{Role: "user", Content: message})
	return s.provider.Chat(ctx, messages, llm.WithTemperature(0.7))
}

func buildGroundedPrompt(question string, candidates []retrieval.Candidate) string {
	var prompt strings.Builder

	prompt.WriteString("<reference_material>\n")
	for _, c := range candidates {
		prompt.WriteString(c.Snippet)
		prompt.WriteString("\n---\n")
	}
	prompt.WriteString("</reference_material>\n\n")

	prompt.WriteString("<task>\n")
	prompt.WriteString("You are an IT support assistant. Answer the user's question using only the reference material above.\n")
	prompt.WriteString("</task>\n\n")

	prompt.WriteString("<guidelines>\n")
	prompt.WriteString("1. Answer as if the knowledge is your own. Never mention documents, context, sources, or reference material.\n")
	prompt.WriteString("2. Give concrete steps when the material contains them.\n")
	prompt.WriteString("3. If the material does not cover the question, say you do not have that information.\n")
	prompt.WriteString("4. Reply in the language the user wrote in.\n")
	prompt.WriteString("</guidelines>\n\n")

	prompt.WriteString("Question: ")
	prompt.WriteString(question)
	return prompt.String()
}

func historyToMessages(history []session.Turn) []llm.Message {
	messages := make([]llm.Message, 0, len(history))
	for _, turn := range history {
		messages = append(messages, llm.Message{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}
	return messages
}
