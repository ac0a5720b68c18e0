package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bbq-enquiry/internal/domain"
	"bbq-enquiry/internal/ports/output"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// Compile-time check to ensure RedisSessionStore implements SessionStore interface
var _ output.SessionStore = (*RedisSessionStore)(nil)

// RedisSessionStore struct - Output adapter persisting conversation contexts
// in Redis as JSON values under "session:<id>". The idle timeout maps to the
// key TTL, so expiry is enforced by Redis itself.
type RedisSessionStore struct {
	client  *redis.Client
	timeout time.Duration
}

// NewRedisSessionStore creates a session store on an existing Redis client.
// timeout: idle duration after which a stored context expires
func NewRedisSessionStore(client *redis.Client, timeout time.Duration) *RedisSessionStore {
	return &RedisSessionStore{
		client:  client,
		timeout: timeout,
	}
}

// GetSession retrieves a context by session identifier.
// Returns nil if the key is absent or already expired.
func (r *RedisSessionStore) GetSession(sessionID string) (*domain.SessionContext, error) {
	value, err := r.client.Get(context.Background(), sessionKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session %s: %w", sessionID, err)
	}

	var session domain.SessionContext
	if err := json.Unmarshal([]byte(value), &session); err != nil {
		// Malformed payload: drop it and start the session fresh
		r.client.Del(context.Background(), sessionKeyPrefix+sessionID)
		return nil, nil
	}
	return &session, nil
}

// UpdateSession creates or updates a context (full overwrite) and refreshes
// its TTL
func (r *RedisSessionStore) UpdateSession(session *domain.SessionContext) error {
	stored := session.Clone()
	stored.UpdatedAt = time.Now()

	payload, err := json.Marshal(stored)
	if err != nil {
		return err
	}

	if err := r.client.Set(context.Background(), sessionKeyPrefix+stored.SessionID, payload, r.timeout).Err(); err != nil {
		return fmt.Errorf("failed to store session %s: %w", stored.SessionID, err)
	}
	return nil
}

// DeleteSession removes a context by session identifier.
// This operation is idempotent.
func (r *RedisSessionStore) DeleteSession(sessionID string) error {
	if err := r.client.Del(context.Background(), sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	return nil
}
