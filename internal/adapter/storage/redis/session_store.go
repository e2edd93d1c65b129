package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Gigabyte00/flowpay-dashboard/internal/core/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// SessionStore implements ports.SessionStore on Redis with per-key TTL.
type SessionStore struct {
	client *goredis.Client
	prefix string
}

// NewSessionStore creates a Redis-backed session store.
func NewSessionStore(client *goredis.Client) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: "session:",
	}
}

type storedSession struct {
	ID           uuid.UUID `json:"id"`
	BackendToken string    `json:"backend_token"`
	DisplayName  string    `json:"display_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// Save writes the session, resetting its TTL.
func (s *SessionStore) Save(ctx context.Context, sess *domain.Session, ttl time.Duration) error {
	data, err := json.Marshal(storedSession{
		ID:           sess.ID,
		BackendToken: sess.BackendToken,
		DisplayName:  sess.DisplayName,
		CreatedAt:    sess.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+sess.ID.String(), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis session save: %w", err)
	}
	return nil
}

// Get loads a session. A missing or expired session returns (nil, nil).
func (s *SessionStore) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	data, err := s.client.Get(ctx, s.prefix+id.String()).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis session get: %w", err)
	}

	var stored storedSession
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("unmarshaling session: %w", err)
	}
	return &domain.Session{
		ID:           stored.ID,
		BackendToken: stored.BackendToken,
		DisplayName:  stored.DisplayName,
		CreatedAt:    stored.CreatedAt,
	}, nil
}

// Delete removes the session. Deleting an absent session is not an error.
func (s *SessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, s.prefix+id.String()).Err(); err != nil {
		return fmt.Errorf("redis session delete: %w", err)
	}
	return nil
}
