package session

import "time"

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single utterance in a session transcript. Timestamp records when
// the turn was appended; stores fill it in for turns that arrive without one.
type Turn struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func UserTurn(content string) Turn {
	return Turn{Role: RoleUser, Content: content}
}

func AssistantTurn(content string) Turn {
	return Turn{Role: RoleAssistant, Content: content}
}

// stampTurns fills in missing timestamps with the append time. All turns of
// one append share a single reading of the clock.
func stampTurns(turns []Turn) []Turn {
	now := time.Now()
	stamped := make([]Turn, len(turns))
	for i, turn := range turns {
		if turn.Timestamp.IsZero() {
			turn.Timestamp = now
		}
		stamped[i] = turn
	}
	return stamped
}
