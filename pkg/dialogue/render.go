package dialogue

import (
	"strings"

	"support-chatbot-be/pkg/session"
)

// Clarify messages follow a fixed shape so a pending clarification can be
// recovered from the transcript alone, surviving process restarts when
// history lives in Redis.
const (
	clarifyLead = "Your question could apply to more than one option: "
	clarifyTail = ". Which one do you mean?"
)

// RenderClarify produces the clarifying question, enumerating every option in
// the order given and nothing else.
func RenderClarify(options []string) string {
	return clarifyLead + strings.Join(options, ", ") + clarifyTail
}

// RenderNotFound produces the fallback reply. The escalation contact comes
// from configuration and is included verbatim.
func RenderNotFound(reason, escalationContact string) string {
	if reason == ReasonRetrievalUnavailable {
		return "I could not look that up right now because retrieval is unavailable. Please try again in a moment, or contact " + escalationContact + "."
	}
	return "I could not find an answer to that. Please contact " + escalationContact + " for further help."
}

// PendingFromHistory recovers an unanswered clarification from a transcript.
// It returns non-nil only when the most recent assistant turn is a clarify
// message, pairing its options with the user question that preceded it.
func PendingFromHistory(history []session.Turn) *Pending {
	for i := len(history) - 1; i >= 0; i-- {
		turn := history[i]
		if turn.Role != session.RoleAssistant {
			continue
		}
		options := parseClarify(turn.Content)
		if options == nil {
			return nil
		}
		for j := i - 1; j >= 0; j-- {
			if history[j].Role == session.RoleUser {
				return &Pending{
					OriginalQuestion: history[j].Content,
					Options:          options,
				}
			}
		}
		return nil
	}
	return nil
}

func parseClarify(message string) []string {
	if !strings.HasPrefix(message, clarifyLead) || !strings.HasSuffix(message, clarifyTail) {
		return nil
	}
	body := strings.TrimSuffix(strings.TrimPrefix(message, clarifyLead), clarifyTail)
	if body == "" {
		return nil
	}
	parts := strings.Split(body, ", ")
	options := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			options = append(options, p)
		}
	}
	if len(options) == 0 {
		return nil
	}
	return options
}
