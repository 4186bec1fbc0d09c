package dto

// ChatRequest is the body of POST /api/chat. SessionID is optional; a blank
// one makes the server mint a fresh session. Session ids must survive as a
// URL path segment, so the controller additionally rejects spaces and
// slashes.
type ChatRequest struct {
	Query     string `json:"query" validate:"required"`
	SessionID string `json:"session_id" validate:"omitempty,max=128,printascii"`
}

type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

// ConversationLogMessage is the watermill payload carrying one completed
// exchange to the async persistence consumer.
type ConversationLogMessage struct {
	SessionID        string `json:"session_id"`
	UserMessage      string `json:"user_message"`
	AssistantMessage string `json:"assistant_message"`
	Decision         string `json:"decision"`
	Intent           string `json:"intent"`
}
