package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"support-chatbot-be/internal/dto"
	"support-chatbot-be/internal/pkg/serverutils"
	"support-chatbot-be/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubChatService exercises the transport contract without retrieval or
// generation behind it.
type stubChatService struct {
	knownSessions map[string]bool
}

func (s *stubChatService) HandleMessage(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	sessionID := request.SessionID
	if sessionID == "" {
		sessionID = session.NewID()
	}
	s.knownSessions[sessionID] = true
	return &dto.ChatResponse{
		Response:  "Hello! How can I help you today?",
		SessionID: sessionID,
	}, nil
}

func (s *stubChatService) ClearHistory(ctx context.Context, sessionID string) error {
	if !s.knownSessions[sessionID] {
		return session.ErrSessionNotFound
	}
	delete(s.knownSessions, sessionID)
	return nil
}

type testLogger struct{}

func (testLogger) Debug(module, message string, details map[string]interface{}) {}
func (testLogger) Info(module, message string, details map[string]interface{})  {}
func (testLogger) Warn(module, message string, details map[string]interface{})  {}
func (testLogger) Error(module, message string, details map[string]interface{}) {}
func (testLogger) Sync() error                                                  { return nil }

func newTestApp() (*fiber.App, *stubChatService) {
	svc := &stubChatService{knownSessions: make(map[string]bool)}

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewChatController(svc, testLogger{}).RegisterRoutes(api)

	return app, svc
}

func postChat(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)
	return res
}

func TestPostChatRoundTrip(t *testing.T) {
	app, _ := newTestApp()

	res := postChat(t, app, `{"query":"oi","session_id":"abc"}`)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var body dto.ChatResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "abc", body.SessionID)
	assert.NotEmpty(t, body.Response)
}

func TestPostChatMintsSessionID(t *testing.T) {
	app, _ := newTestApp()

	res := postChat(t, app, `{"query":"hello"}`)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var body dto.ChatResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.NotEmpty(t, body.SessionID)
}

func TestPostChatValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing query", `{"session_id":"abc"}`},
		{"empty query", `{"query":"","session_id":"abc"}`},
		{"malformed json", `{"query":`},
		{"session id with slash", `{"query":"oi","session_id":"a/b"}`},
		{"session id with space", `{"query":"oi","session_id":"a b"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp()
			res := postChat(t, app, tt.body)
			assert.Equal(t, http.StatusBadRequest, res.StatusCode)

			var errRes serverutils.ErrorResponse
			require.NoError(t, json.NewDecoder(res.Body).Decode(&errRes))
			assert.NotEmpty(t, errRes.Detail)
		})
	}
}

func TestDeleteHistory(t *testing.T) {
	app, _ := newTestApp()

	// Create the session first.
	res := postChat(t, app, `{"query":"oi","session_id":"abc"}`)
	require.Equal(t, http.StatusOK, res.StatusCode)

	req := httptest.NewRequest(http.MethodDelete, "/api/chat/abc/history", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestDeleteHistoryUnknownSession(t *testing.T) {
	app, _ := newTestApp()

	req := httptest.NewRequest(http.MethodDelete, "/api/chat/never-seen/history", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	var errRes serverutils.ErrorResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&errRes))
	assert.Equal(t, "session not found", errRes.Detail)
}
