// Package redis keeps idempotency keys for order creation in Redis.
//
// A key moves through two values: "pending" while the create request that
// reserved it is running, then the decimal id of the created order. Both
// expire after the configured TTL.
package redis

import (
	"context"
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix    = "orderflow:idempotency:"
	pendingValue = "pending"
	DefaultTTL   = 24 * time.Hour
)

type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ ports.IdempotencyStore = (*IdempotencyStore)(nil)

// NewIdempotencyStore falls back to DefaultTTL when ttl is not positive.
func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &IdempotencyStore{client: client, ttl: ttl}
}

func (s *IdempotencyStore) Reserve(ctx context.Context, key string) (bool, error) {
	return s.client.SetNX(ctx, keyPrefix+key, pendingValue, s.ttl).Result()
}

func (s *IdempotencyStore) Complete(ctx context.Context, key string, id kernel.OrderID) error {
	return s.client.Set(ctx, keyPrefix+key, id.Int64(), s.ttl).Err()
}

func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (kernel.OrderID, bool, error) {
	value, err := s.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return kernel.OrderID{}, false, nil
	}
	if err != nil {
		return kernel.OrderID{}, false, err
	}
	if value == pendingValue {
		return kernel.OrderID{}, false, nil
	}

	id, err := kernel.ParseOrderID(value)
	if err != nil {
		return kernel.OrderID{}, false, err
	}

	return id, true, nil
}

func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, keyPrefix+key).Err()
}

// NopIdempotencyStore accepts every key and remembers nothing.
type NopIdempotencyStore struct{}

func (NopIdempotencyStore) Reserve(context.Context, string) (bool, error) { return true, nil }

func (NopIdempotencyStore) Complete(context.Context, string, kernel.OrderID) error { return nil }

func (NopIdempotencyStore) Lookup(context.Context, string) (kernel.OrderID, bool, error) {
	return kernel.OrderID{}, false, nil
}

func (NopIdempotencyStore) Release(context.Context, string) error { return nil }
