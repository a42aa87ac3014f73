package ports

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// OrderStateChangedEvent is the notification emitted after an accepted
// transition has been committed.
type OrderStateChangedEvent struct {
	ID         kernel.UUID
	OrderID    kernel.OrderID
	Event      order.Event
	From       order.State
	To         order.State
	OccurredAt time.Time
}

// OrderEventPublisher delivers state-changed notifications to downstream consumers.
// Delivery is at-most-once from the workflow's point of view: a failed publish
// is logged by the caller and not retried.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event OrderStateChangedEvent) error
}
