package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
)

var ErrDuplicateRequest = errors.New("duplicate request")

// DuplicateRequestError is returned when an idempotency key was already used.
// OrderID is the order created by the first request, if it has finished.
type DuplicateRequestError struct {
	Key     string
	OrderID kernel.OrderID
}

func (e *DuplicateRequestError) Error() string {
	if e.OrderID.IsAssigned() {
		return fmt.Sprintf("%s: key %q already created order %s", ErrDuplicateRequest, e.Key, e.OrderID)
	}
	return fmt.Sprintf("%s: key %q is in progress", ErrDuplicateRequest, e.Key)
}

func (e *DuplicateRequestError) Unwrap() error {
	return ErrDuplicateRequest
}

// CreateOrderCommandHandler creates orders by submitting CREATE to a fresh session.
// The order row is inserted by the state interceptor when the transition is accepted.
type CreateOrderCommandHandler struct {
	runner      transitionRunner
	idempotency ports.IdempotencyStore
	logger      *slog.Logger
}

// NewCreateOrderCommandHandler wires the handler. All dependencies are required;
// pass no-op adapters for publisher and idempotency store when they are disabled.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	machine *services.Machine,
	idempotency ports.IdempotencyStore,
	publisher ports.OrderEventPublisher,
	metrics ports.TransitionMetrics,
	publishTimeout time.Duration,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	logger = logger.With("component", "create_order_handler")

	return CreateOrderCommandHandler{
		runner:      newTransitionRunner(uowFactory, machine, publisher, metrics, publishTimeout, logger),
		idempotency: idempotency,
		logger:      logger,
	}
}

// Handle creates the order and returns the transition result carrying the new id.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (services.TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.TransitionResult{}, err
	}

	key := cmd.IdempotencyKey()
	if key == "" {
		return h.runner.run(ctx, kernel.OrderID{}, order.Create)
	}

	reserved, err := h.idempotency.Reserve(ctx, key)
	if err != nil {
		return services.TransitionResult{}, fmt.Errorf("reserve idempotency key: %w", err)
	}

	if !reserved {
		previous, _, lookupErr := h.idempotency.Lookup(ctx, key)
		if lookupErr != nil {
			return services.TransitionResult{}, fmt.Errorf("lookup idempotency key: %w", lookupErr)
		}
		return services.TransitionResult{}, &DuplicateRequestError{Key: key, OrderID: previous}
	}

	result, err := h.runner.run(ctx, kernel.OrderID{}, order.Create)
	if err != nil || !result.IsAccepted() {
		if releaseErr := h.idempotency.Release(ctx, key); releaseErr != nil {
			h.logger.WarnContext(ctx, "Failed to release idempotency key", "key", key, "error", releaseErr)
		}
		return result, err
	}

	if err = h.idempotency.Complete(ctx, key, result.OrderID); err != nil {
		h.logger.WarnContext(ctx, "Failed to record idempotency key",
			"key", key,
			"order_id", result.OrderID.String(),
			"error", err,
		)
	}

	return result, nil
}
