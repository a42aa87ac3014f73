package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand submits one event to an existing order.
//
// Example:
//
//	cmd, err := NewAdvanceOrderCommand(orderID, order.Ship)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	if err == nil && !result.IsAccepted() {
//	    // the order cannot ship from its current state
//	}
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	event   order.Event

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand requires a persisted order id and a known event.
func NewAdvanceOrderCommand(orderID kernel.OrderID, event order.Event) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setEvent(event),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

func (c AdvanceOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c AdvanceOrderCommand) Event() order.Event {
	return c.event
}

func (c *AdvanceOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderCommand) setEvent(event order.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	c.event = event
	return nil
}
