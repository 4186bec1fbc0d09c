package session

import (
	"testing"
	"time"
)

func TestRedisStoreTurnRoundTrip(t *testing.T) {
	stamped := time.Date(2026, 8, 26, 10, 30, 0, 0, time.UTC)
	turns := []Turn{
		{Role: RoleUser, Content: "my vpn keeps dropping", Timestamp: stamped},
		{Role: RoleAssistant, Content: "Which client are you using?", Timestamp: stamped},
	}

	for _, turn := range turns {
		encoded, err := encodeTurn(turn)
		if err != nil {
			t.Fatalf("encodeTurn() error = %v", err)
		}
		decoded, err := decodeTurn(string(encoded))
		if err != nil {
			t.Fatalf("decodeTurn() error = %v", err)
		}
		if decoded.Role != turn.Role || decoded.Content != turn.Content {
			t.Errorf("round trip = {%s %q}, want {%s %q}", decoded.Role, decoded.Content, turn.Role, turn.Content)
		}
		if !decoded.Timestamp.Equal(turn.Timestamp) {
			t.Errorf("round trip timestamp = %v, want %v", decoded.Timestamp, turn.Timestamp)
		}
	}
}

func TestRedisStoreDecodeRejectsBadPayload(t *testing.T) {
	if _, err := decodeTurn("{not json"); err == nil {
		t.Error("decodeTurn() accepted malformed payload")
	}
}

func TestRedisStoreKeyPrefix(t *testing.T) {
	store := NewRedisStore(nil, "custom:", 0)
	if got := store.key("abc"); got != "custom:abc" {
		t.Errorf("key() = %q, want %q", got, "custom:abc")
	}

	// An empty prefix falls back to the default.
	store = NewRedisStore(nil, "", 0)
	if got := store.key("abc"); got != "chat_session:abc" {
		t.Errorf("key() = %q, want %q", got, "chat_session:abc")
	}
}

func TestStampTurnsFillsMissingTimestamps(t *testing.T) {
	preset := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)
	stamped := stampTurns([]Turn{
		UserTurn("hello"),
		{Role: RoleAssistant, Content: "hi", Timestamp: preset},
	})

	if stamped[0].Timestamp.IsZero() {
		t.Error("append did not stamp a turn without a timestamp")
	}
	if !stamped[1].Timestamp.Equal(preset) {
		t.Errorf("preset timestamp overwritten: got %v, want %v", stamped[1].Timestamp, preset)
	}
}
