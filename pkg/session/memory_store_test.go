package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestMemoryStoreAppendPreservesOrder(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		pair := []Turn{
			UserTurn(fmt.Sprintf("question %d", i)),
			AssistantTurn(fmt.Sprintf("answer %d", i)),
		}
		if err := store.Append(ctx, "abc", pair...); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	history, err := store.GetHistory(ctx, "abc")
	if err != nil {
		t.Fatalf("GetHistory() error = %v", err)
	}
	if len(history) != 10 {
		t.Fatalf("got %d turns, want 10", len(history))
	}
	for i, turn := range history {
		wantRole := RoleUser
		wantContent := fmt.Sprintf("question %d", i/2)
		if i%2 == 1 {
			wantRole = RoleAssistant
			wantContent = fmt.Sprintf("answer %d", i/2)
		}
		if turn.Role != wantRole || turn.Content != wantContent {
			t.Errorf("turn %d = {%s %q}, want {%s %q}", i, turn.Role, turn.Content, wantRole, wantContent)
		}
	}

	// Every turn is stamped when appended, in non-decreasing order.
	for i, turn := range history {
		if turn.Timestamp.IsZero() {
			t.Errorf("turn %d has no timestamp", i)
		}
		if i > 0 && turn.Timestamp.Before(history[i-1].Timestamp) {
			t.Errorf("turn %d timestamp precedes turn %d", i, i-1)
		}
	}
}

func TestMemoryStoreUnknownSessionIsEmpty(t *testing.T) {
	store := NewMemoryStore()

	history, err := store.GetHistory(context.Background(), "never-seen")
	if err != nil {
		t.Fatalf("GetHistory() error = %v", err)
	}
	if len(history) != 0 {
		t.Errorf("got %d turns for unknown session, want 0", len(history))
	}
}

func TestMemoryStoreClear(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Append(ctx, "abc", UserTurn("oi"), AssistantTurn("hello")); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	if err := store.Clear(ctx, "abc"); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	history, err := store.GetHistory(ctx, "abc")
	if err != nil {
		t.Fatalf("GetHistory() after clear error = %v", err)
	}
	if len(history) != 0 {
		t.Errorf("got %d turns after clear, want 0", len(history))
	}

	// Session is gone entirely, so a second clear reports not found.
	if err := store.Clear(ctx, "abc"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second Clear() error = %v, want ErrSessionNotFound", err)
	}
}

func TestMemoryStoreClearUnknownSession(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Clear(context.Background(), "ghost"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Clear() error = %v, want ErrSessionNotFound", err)
	}
}

func TestMemoryStoreSessionIsolation(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Append(ctx, "a", UserTurn("for a")); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := store.Append(ctx, "b", UserTurn("for b")); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := store.Clear(ctx, "a"); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	history, err := store.GetHistory(ctx, "b")
	if err != nil {
		t.Fatalf("GetHistory() error = %v", err)
	}
	if len(history) != 1 || history[0].Content != "for b" {
		t.Errorf("session b history = %v, want the single original turn", history)
	}
}

func TestMemoryStoreConcurrentAppendsSameSession(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	const writers = 8
	const pairsPerWriter = 50

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < pairsPerWriter; i++ {
				tag := fmt.Sprintf("%d-%d", w, i)
				_ = store.Append(ctx, "shared", UserTurn("q"+tag), AssistantTurn("a"+tag))
			}
		}(w)
	}
	wg.Wait()

	history, err := store.GetHistory(ctx, "shared")
	if err != nil {
		t.Fatalf("GetHistory() error = %v", err)
	}
	if len(history) != writers*pairsPerWriter*2 {
		t.Fatalf("got %d turns, want %d: a concurrent append was dropped", len(history), writers*pairsPerWriter*2)
	}
	assertPairsIntact(t, history)
}

func TestMemoryStoreClearRacingAppend(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	const writers = 4
	const pairsPerWriter = 50

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < pairsPerWriter; i++ {
				tag := fmt.Sprintf("%d-%d", w, i)
				_ = store.Append(ctx, "contested", UserTurn("q"+tag), AssistantTurn("a"+tag))
			}
		}(w)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 10; i++ {
			// A clear racing appends may find the session momentarily absent.
			if err := store.Clear(ctx, "contested"); err != nil && !errors.Is(err, ErrSessionNotFound) {
				t.Errorf("Clear() error = %v", err)
			}
		}
	}()
	wg.Wait()

	// Whatever survived the clears, no pair may be torn in half.
	history, err := store.GetHistory(ctx, "contested")
	if err != nil {
		t.Fatalf("GetHistory() error = %v", err)
	}
	assertPairsIntact(t, history)
}

// assertPairsIntact checks that every appended user/assistant pair is adjacent
// and matching, i.e. no append was dropped halfway or interleaved with another.
func assertPairsIntact(t *testing.T, history []Turn) {
	t.Helper()
	if len(history)%2 != 0 {
		t.Fatalf("history has %d turns, a pair was torn in half", len(history))
	}
	for i := 0; i < len(history); i += 2 {
		q, a := history[i], history[i+1]
		if q.Role != RoleUser || a.Role != RoleAssistant {
			t.Fatalf("pair at %d interleaved: %s then %s", i, q.Role, a.Role)
		}
		if strings.TrimPrefix(q.Content, "q") != strings.TrimPrefix(a.Content, "a") {
			t.Fatalf("pair at %d mismatched: %q answered by %q", i, q.Content, a.Content)
		}
	}
}

func TestNewID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("NewID() returned empty string")
		}
		if strings.ContainsAny(id, " /") {
			t.Errorf("NewID() = %q contains characters unsafe in a path segment", id)
		}
		if seen[id] {
			t.Fatalf("NewID() repeated value %q", id)
		}
		seen[id] = true
	}
}
