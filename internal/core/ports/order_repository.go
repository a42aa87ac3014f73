// Package ports defines the contracts between the order workflow and its
// infrastructure: persistence, notification publishing, idempotency and metrics.
package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and assigns its id. The order must not have an id yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update overwrites the status of an existing order.
	// Returns an error if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	// Returns errs.ObjectNotFoundError if there is no such order.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetForUpdate is Get plus an exclusive row lock held until the
	// surrounding transaction ends. Concurrent transitions on the same order
	// serialize on this lock.
	GetForUpdate(ctx context.Context, id kernel.OrderID) (*order.Order, error)
}
