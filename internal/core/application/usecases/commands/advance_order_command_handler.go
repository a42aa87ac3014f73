package commands

import (
	"context"
	"log/slog"
	"time"

	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
)

// AdvanceOrderCommandHandler loads an order under a row lock, submits the
// command's event and commits the new state if the event was accepted.
//
// Outcomes:
//   - errs.ErrObjectNotFound when the order does not exist (nothing written)
//   - a Denied result with nil error when no rule matches (nothing written)
//   - an Accepted result once the new state is committed
//   - any other error is a persistence failure; the stored state is unchanged
type AdvanceOrderCommandHandler struct {
	runner transitionRunner
}

func NewAdvanceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	machine *services.Machine,
	publisher ports.OrderEventPublisher,
	metrics ports.TransitionMetrics,
	publishTimeout time.Duration,
	logger *slog.Logger,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		runner: newTransitionRunner(
			uowFactory, machine, publisher, metrics, publishTimeout,
			logger.With("component", "advance_order_handler"),
		),
	}
}

func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (services.TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.TransitionResult{}, err
	}

	return h.runner.run(ctx, cmd.OrderID(), cmd.Event())
}
