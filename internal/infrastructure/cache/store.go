package cache

import (
	"context"
	"time"
)

// Store is a key-value cache with per-key expiration. Both the Redis-backed
// and in-memory implementations satisfy it, so callers can run without Redis
// in tests and development.
type Store interface {
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
}
