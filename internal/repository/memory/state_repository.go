package memory

import (
	"time"

	"support-chatbot-be/pkg/dialogue"

	"github.com/patrickmn/go-cache"
)

// DialogueStateRepository caches the pending clarification per session as a
// fast path. It is best effort: after a process restart the state is rebuilt
// from the transcript, so entries may expire freely.
type DialogueStateRepository struct {
	cache *cache.Cache
}

func NewDialogueStateRepository() *DialogueStateRepository {
	// Pending clarifications are short lived; purge stale ones regularly.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &DialogueStateRepository{
		cache: c,
	}
}

func (r *DialogueStateRepository) SetPending(sessionID string, pending *dialogue.Pending) {
	r.cache.Set(sessionID, pending, cache.DefaultExpiration)
}

func (r *DialogueStateRepository) GetPending(sessionID string) (*dialogue.Pending, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*dialogue.Pending), true
	}
	return nil, false
}

func (r *DialogueStateRepository) ClearPending(sessionID string) {
	r.cache.Delete(sessionID)
}
