package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
)

// IdempotencyStore remembers which client-supplied keys already produced an order.
type IdempotencyStore interface {
	// Reserve claims key. It returns false if the key was already claimed.
	Reserve(ctx context.Context, key string) (bool, error)

	// Complete records the order created under a reserved key.
	Complete(ctx context.Context, key string, id kernel.OrderID) error

	// Lookup returns the order recorded for key. ok is false when the key is
	// unknown or still reserved without a result.
	Lookup(ctx context.Context, key string) (id kernel.OrderID, ok bool, err error)

	// Release drops a reservation so the client may retry.
	Release(ctx context.Context, key string) error
}
