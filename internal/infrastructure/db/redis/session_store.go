package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/clubebrotos/consultant-portal/internal/core/domain"
)

// SessionStore keeps live gateway sessions in Redis.
// Key format: session:<session_id> → auth id, expiring with the token.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Save records a session for ttl.
func (s *SessionStore) Save(ctx context.Context, sessionID, authID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key(sessionID), authID, ttl).Err(); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

// Lookup returns the auth id of a live session, or domain.ErrNoSession.
func (s *SessionStore) Lookup(ctx context.Context, sessionID string) (string, error) {
	authID, err := s.client.Get(ctx, key(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrNoSession
		}
		return "", fmt.Errorf("session lookup: %w", err)
	}
	return authID, nil
}

// Revoke deletes the session. Revoking an unknown session is not an error.
func (s *SessionStore) Revoke(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, key(sessionID)).Err(); err != nil {
		return fmt.Errorf("session revoke: %w", err)
	}
	return nil
}

func key(sessionID string) string {
	return "session:" + sessionID
}
