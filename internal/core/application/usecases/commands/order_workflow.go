package commands

import (
	"context"
	"log/slog"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
)

// OrderWorkflow is the public face of the write side: one method per
// lifecycle operation, each fixing its event.
//
//	Create   -> CREATE (new order)
//	Pay      -> PAY
//	Ship     -> SHIP
//	Deliver  -> DELIVER
//	Complete -> COMPLETE
//	Cancel   -> CANCEL
//
// A denied transition is returned as a result with a nil error; callers branch
// on result.IsAccepted().
type OrderWorkflow struct {
	create  CreateOrderCommandHandler
	advance AdvanceOrderCommandHandler
	logger  *slog.Logger
}

func NewOrderWorkflow(
	create CreateOrderCommandHandler,
	advance AdvanceOrderCommandHandler,
	logger *slog.Logger,
) OrderWorkflow {
	return OrderWorkflow{
		create:  create,
		advance: advance,
		logger:  logger.With("component", "order_workflow"),
	}
}

// Create starts a new order. idempotencyKey may be empty.
func (w OrderWorkflow) Create(ctx context.Context, idempotencyKey string) (services.TransitionResult, error) {
	w.logger.InfoContext(ctx, "Event: Creating order")

	cmd, err := NewCreateOrderCommand(idempotencyKey)
	if err != nil {
		return services.TransitionResult{}, err
	}

	result, err := w.create.Handle(ctx, cmd)
	if err != nil {
		return result, err
	}

	w.report(ctx, result)
	return result, nil
}

func (w OrderWorkflow) Pay(ctx context.Context, id kernel.OrderID) (services.TransitionResult, error) {
	w.logger.InfoContext(ctx, "Event: Paying order", "order_id", id.String())
	return w.submit(ctx, id, order.Pay)
}

func (w OrderWorkflow) Ship(ctx context.Context, id kernel.OrderID) (services.TransitionResult, error) {
	w.logger.InfoContext(ctx, "Event: Shipping order", "order_id", id.String())
	return w.submit(ctx, id, order.Ship)
}

func (w OrderWorkflow) Deliver(ctx context.Context, id kernel.OrderID) (services.TransitionResult, error) {
	w.logger.InfoContext(ctx, "Event: Delivering order", "order_id", id.String())
	return w.submit(ctx, id, order.Deliver)
}

func (w OrderWorkflow) Complete(ctx context.Context, id kernel.OrderID) (services.TransitionResult, error) {
	w.logger.InfoContext(ctx, "Event: Completing order", "order_id", id.String())
	return w.submit(ctx, id, order.Complete)
}

func (w OrderWorkflow) Cancel(ctx context.Context, id kernel.OrderID) (services.TransitionResult, error) {
	w.logger.InfoContext(ctx, "Event: Cancelling order", "order_id", id.String())
	return w.submit(ctx, id, order.Cancel)
}

func (w OrderWorkflow) submit(ctx context.Context, id kernel.OrderID, event order.Event) (services.TransitionResult, error) {
	cmd, err := NewAdvanceOrderCommand(id, event)
	if err != nil {
		return services.TransitionResult{}, err
	}

	result, err := w.advance.Handle(ctx, cmd)
	if err != nil {
		return result, err
	}

	w.report(ctx, result)
	return result, nil
}

func (w OrderWorkflow) report(ctx context.Context, result services.TransitionResult) {
	w.logger.InfoContext(ctx, "State: "+result.Type.String(), "order_id", result.OrderID.String())

	if !result.IsAccepted() {
		w.logger.InfoContext(ctx, result.DenialMessage(), "order_id", result.OrderID.String())
	}
}
