package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopgrid/admin-api/internal/core/domain"
)

// SessionStore persists the authentication slice in Redis, keyed by user id.
// It is whitelisted storage: only the identity snapshot lives here, nothing
// else survives across requests.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Set(ctx context.Context, identity domain.SessionIdentity) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("session store: marshal: %w", err)
	}
	return s.client.Set(ctx, s.key(identity.UserID), payload, s.ttl).Err()
}

func (s *SessionStore) Get(ctx context.Context, userID string) (*domain.SessionIdentity, error) {
	payload, err := s.client.Get(ctx, s.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrIdentityUnresolved
		}
		return nil, fmt.Errorf("session store: get: %w", err)
	}

	var identity domain.SessionIdentity
	if err := json.Unmarshal(payload, &identity); err != nil {
		// A corrupt record reads as unresolved rather than a crash.
		return nil, domain.ErrIdentityUnresolved
	}
	return &identity, nil
}

func (s *SessionStore) Clear(ctx context.Context, userID string) error {
	return s.client.Del(ctx, s.key(userID)).Err()
}

func (s *SessionStore) key(userID string) string {
	return "session:" + userID
}
