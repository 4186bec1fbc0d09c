package session

import (
	"context"
	"errors"
)

// ErrSessionNotFound is returned by Clear when no history exists for the id,
// including a second Clear for the same session.
var ErrSessionNotFound = errors.New("session not found")

// HistoryStore persists per-session conversation transcripts.
//
// Append writes turns in order as one atomic unit, so a user turn and the
// assistant reply are either both recorded or neither is. GetHistory returns
// turns oldest first; an unknown or cleared session yields an empty slice,
// not an error. Clear removes the session entirely.
type HistoryStore interface {
	Append(ctx context.Context, sessionID string, turns ...Turn) error
	GetHistory(ctx context.Context, sessionID string) ([]Turn, error)
	Clear(ctx context.Context, sessionID string) error
}
