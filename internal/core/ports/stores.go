package ports

import (
	"context"
	"time"

	"github.com/Gigabyte00/flowpay-dashboard/internal/core/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=stores.go -destination=mocks/stores.go -package=mocks

// FlightGuard is the single-flight guard for duplicable calls. While a key
// is held, a second acquisition fails; the busy/disabled state in the UI
// maps to a held key.
type FlightGuard interface {
	// Acquire atomically claims key for at most ttl. Returns true if the
	// key was free.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Release frees the key before its TTL expires.
	Release(ctx context.Context, key string) error
}

// SessionStore persists session state between requests.
type SessionStore interface {
	Save(ctx context.Context, sess *domain.Session, ttl time.Duration) error
	// Get returns nil, nil when the session does not exist or has expired.
	Get(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
