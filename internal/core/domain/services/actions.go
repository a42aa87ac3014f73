package services

import "context"

// The side effects below only log. They stand in for the integrations a real
// fulfilment system would call (payment gateway, carrier, billing).

func ValidatePaymentAndOrigin(ctx context.Context, ac ActionContext) {
	logAction(ctx, ac, "Action: Validating payment and origin")
}

func ShipOrder(ctx context.Context, ac ActionContext) {
	logAction(ctx, ac, "Action: Shipping order")
}

func CancelOrder(ctx context.Context, ac ActionContext) {
	logAction(ctx, ac, "Action: Cancelling order")
}

func DeliverOrder(ctx context.Context, ac ActionContext) {
	logAction(ctx, ac, "Action: Delivering order")
}

func PayOrder(ctx context.Context, ac ActionContext) {
	logAction(ctx, ac, "Action: Paying for order")
}

func CompleteOrder(ctx context.Context, ac ActionContext) {
	logAction(ctx, ac, "Action: Completing order")
}

func logAction(ctx context.Context, ac ActionContext, msg string) {
	ac.Logger.InfoContext(ctx, msg,
		"order_id", ac.OrderID.String(),
		"event", ac.Event.String(),
		"from", ac.From.String(),
		"to", ac.To.String(),
	)
}
