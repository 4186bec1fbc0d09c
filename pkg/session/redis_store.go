package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each transcript as a Redis list, one JSON encoded turn per
// element. A single RPUSH carries all turns of an Append so the pair of user
// and assistant turns lands atomically.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ HistoryStore = &RedisStore{}

// NewRedisStore wraps an existing client. ttl of zero keeps sessions forever.
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = "chat_session:"
	}
	return &RedisStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *RedisStore) key(sessionID string) string {
	return s.prefix + sessionID
}

func (s *RedisStore) Append(ctx context.Context, sessionID string, turns ...Turn) error {
	if len(turns) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(turns))
	for _, turn := range stampTurns(turns) {
		encoded, err := encodeTurn(turn)
		if err != nil {
			return fmt.Errorf("encode turn: %w", err)
		}
		values = append(values, encoded)
	}

	key := s.key(sessionID)
	if err := s.client.RPush(ctx, key, values...).Err(); err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	if s.ttl > 0 {
		if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
			return fmt.Errorf("refresh history ttl: %w", err)
		}
	}
	return nil
}

func (s *RedisStore) GetHistory(ctx context.Context, sessionID string) ([]Turn, error) {
	raw, err := s.client.LRange(ctx, s.key(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	history := make([]Turn, 0, len(raw))
	for _, item := range raw {
		turn, err := decodeTurn(item)
		if err != nil {
			return nil, fmt.Errorf("decode turn: %w", err)
		}
		history = append(history, turn)
	}
	return history, nil
}

// encodeTurn and decodeTurn define the list element format: one JSON object
// per turn, timestamp included.
func encodeTurn(turn Turn) ([]byte, error) {
	return json.Marshal(turn)
}

func decodeTurn(raw string) (Turn, error) {
	var turn Turn
	if err := json.Unmarshal([]byte(raw), &turn); err != nil {
		return Turn{}, err
	}
	return turn, nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	deleted, err := s.client.Del(ctx, s.key(sessionID)).Result()
	if err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	if deleted == 0 {
		return ErrSessionNotFound
	}
	return nil
}
