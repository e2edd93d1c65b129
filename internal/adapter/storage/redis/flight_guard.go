package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// FlightGuard implements ports.FlightGuard using Redis SET NX.
type FlightGuard struct {
	client *goredis.Client
	prefix string
}

// NewFlightGuard creates a Redis-backed in-flight request guard.
func NewFlightGuard(client *goredis.Client) *FlightGuard {
	return &FlightGuard{
		client: client,
		prefix: "flight:",
	}
}

// Acquire atomically claims the key if it is free. Returns true when the
// caller holds the claim, false when another request already does.
func (g *FlightGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	result, err := g.client.SetArgs(ctx, g.prefix+key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists — a request is in flight
			return false, nil
		}
		return false, fmt.Errorf("redis flight acquire: %w", err)
	}
	return result == "OK", nil
}

// Release frees the key so the next request may proceed.
func (g *FlightGuard) Release(ctx context.Context, key string) error {
	if err := g.client.Del(ctx, g.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis flight release: %w", err)
	}
	return nil
}
