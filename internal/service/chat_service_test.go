package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"support-chatbot-be/internal/dto"
	"support-chatbot-be/internal/repository/memory"
	"support-chatbot-be/pkg/dialogue"
	"support-chatbot-be/pkg/retrieval"
	"support-chatbot-be/pkg/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testContact = "helpdesk@corp.example"

type fakeRetriever struct {
	candidates []retrieval.Candidate
	err        error
	calls      int
}

func (f *fakeRetriever) Retrieve(ctx context.Context, query string) ([]retrieval.Candidate, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.candidates, nil
}

type fakeSynthesizer struct {
	answer    string
	smallTalk string
	err       error
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, question string, candidates []retrieval.Candidate, history []session.Turn) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func (f *fakeSynthesizer) SmallTalk(ctx context.Context, message string, history []session.Turn) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.smallTalk, nil
}

type fakeClassifier struct {
	intent string
}

func (f *fakeClassifier) Classify(ctx context.Context, message string) string {
	return f.intent
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func newTestService(retriever retrieval.Retriever, synth dialogue.Synthesizer, classifier *fakeClassifier) (IChatService, session.HistoryStore) {
	store := session.NewMemoryStore()
	svc := NewChatService(
		store,
		memory.NewDialogueStateRepository(),
		retriever,
		dialogue.NewEngine(),
		synth,
		classifier,
		nil, // no log pipeline in unit tests
		"",
		nil, // no event bus
		noopLogger{},
		testContact,
		2*time.Second,
		2*time.Second,
	)
	return svc, store
}

func TestHandleMessageClarifyThenAnswer(t *testing.T) {
	retriever := &fakeRetriever{candidates: []retrieval.Candidate{
		{Label: "Webmail", Snippet: "webmail signature steps", Score: 0.9},
		{Label: "Outlook", Snippet: "outlook signature steps", Score: 0.85},
	}}
	synth := &fakeSynthesizer{answer: "Open Outlook settings and add your signature."}
	svc, store := newTestService(retriever, synth, &fakeClassifier{intent: "question"})

	ctx := context.Background()
	first, err := svc.HandleMessage(ctx, &dto.ChatRequest{
		Query:     "how do I set up an email signature",
		SessionID: "abc",
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", first.SessionID)
	assert.Contains(t, first.Response, "Webmail")
	assert.Contains(t, first.Response, "Outlook")
	assert.NotContains(t, first.Response, "signature steps")

	second, err := svc.HandleMessage(ctx, &dto.ChatRequest{
		Query:     "Outlook",
		SessionID: "abc",
	})
	require.NoError(t, err)
	assert.Equal(t, synth.answer, second.Response)

	history, err := store.GetHistory(ctx, "abc")
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.Equal(t, session.RoleUser, history[0].Role)
	assert.Equal(t, session.RoleAssistant, history[1].Role)
	assert.Equal(t, "Outlook", history[2].Content)
	assert.Equal(t, synth.answer, history[3].Content)
}

func TestHandleMessageRetrievalFailureDegradesToNotFound(t *testing.T) {
	retriever := &fakeRetriever{err: errors.New("connection refused")}
	svc, store := newTestService(retriever, &fakeSynthesizer{}, &fakeClassifier{intent: "question"})

	res, err := svc.HandleMessage(context.Background(), &dto.ChatRequest{
		Query:     "how do I reset my password",
		SessionID: "abc",
	})
	require.NoError(t, err, "retriever failure must not surface as a hard error")
	assert.Contains(t, res.Response, testContact)
	assert.Contains(t, strings.ToLower(res.Response), "unavailable")

	// The user turn and the degraded reply are still recorded.
	history, err := store.GetHistory(context.Background(), "abc")
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestHandleMessageSynthesisFailureDegradesToNotFound(t *testing.T) {
	retriever := &fakeRetriever{candidates: []retrieval.Candidate{
		{Label: "VPN", Snippet: "vpn setup steps", Score: 0.9},
	}}
	synth := &fakeSynthesizer{err: errors.New("model timeout")}
	svc, _ := newTestService(retriever, synth, &fakeClassifier{intent: "question"})

	res, err := svc.HandleMessage(context.Background(), &dto.ChatRequest{
		Query:     "how do I connect to the vpn",
		SessionID: "abc",
	})
	require.NoError(t, err)
	assert.Contains(t, res.Response, testContact)
}

func TestHandleMessageNoMatchIncludesContact(t *testing.T) {
	retriever := &fakeRetriever{} // zero candidates
	svc, _ := newTestService(retriever, &fakeSynthesizer{}, &fakeClassifier{intent: "question"})

	res, err := svc.HandleMessage(context.Background(), &dto.ChatRequest{
		Query:     "how do I fix the coffee machine",
		SessionID: "abc",
	})
	require.NoError(t, err)
	assert.Contains(t, res.Response, testContact)
}

func TestHandleMessageMintsSessionID(t *testing.T) {
	retriever := &fakeRetriever{candidates: []retrieval.Candidate{
		{Label: "VPN", Snippet: "vpn setup steps", Score: 0.9},
	}}
	svc, _ := newTestService(retriever, &fakeSynthesizer{answer: "Install the VPN client."}, &fakeClassifier{intent: "question"})

	res, err := svc.HandleMessage(context.Background(), &dto.ChatRequest{Query: "vpn help"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.SessionID)
}

func TestHandleMessageSmallTalkBypassesRetrieval(t *testing.T) {
	retriever := &fakeRetriever{err: errors.New("should not be called")}
	synth := &fakeSynthesizer{smallTalk: "Hi! How can I help?"}
	svc, _ := newTestService(retriever, synth, &fakeClassifier{intent: "smalltalk"})

	res, err := svc.HandleMessage(context.Background(), &dto.ChatRequest{
		Query:     "oi",
		SessionID: "abc",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hi! How can I help?", res.Response)
	assert.Zero(t, retriever.calls)
}

func TestClearHistory(t *testing.T) {
	retriever := &fakeRetriever{candidates: []retrieval.Candidate{
		{Label: "VPN", Snippet: "vpn setup steps", Score: 0.9},
	}}
	svc, store := newTestService(retriever, &fakeSynthesizer{answer: "done"}, &fakeClassifier{intent: "question"})
	ctx := context.Background()

	_, err := svc.HandleMessage(ctx, &dto.ChatRequest{Query: "vpn help", SessionID: "abc"})
	require.NoError(t, err)

	require.NoError(t, svc.ClearHistory(ctx, "abc"))

	history, err := store.GetHistory(ctx, "abc")
	require.NoError(t, err)
	assert.Empty(t, history)

	err = svc.ClearHistory(ctx, "abc")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}
