package ports

import (
	"orderflow/internal/core/domain/model/order"
)

// TransitionMetrics records workflow outcomes for monitoring.
type TransitionMetrics interface {
	// ObserveTransition counts one submit. result is "accepted", "denied",
	// "not_found" or "error".
	ObserveTransition(event order.Event, result string)

	// SetOrdersByStatus publishes the current number of orders per status.
	SetOrdersByStatus(counts map[order.State]int64)
}
