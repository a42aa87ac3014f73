package commands

import (
	"errors"
	"fmt"
	"strings"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

const maxIdempotencyKeyLength = 128

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand requests a brand-new order. The order starts in CREATED
// and the CREATE event runs its validation side effect.
//
// IdempotencyKey is optional. When set, repeating the command with the same
// key does not create a second order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(r.Header.Get("Idempotency-Key"))
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	// result.OrderID is the new order's id
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	idempotencyKey string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the optional idempotency key.
func NewCreateOrderCommand(idempotencyKey string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setIdempotencyKey(idempotencyKey); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// IdempotencyKey returns the client-supplied key, or "" when none was given.
func (c CreateOrderCommand) IdempotencyKey() string {
	return c.idempotencyKey
}

func (c *CreateOrderCommand) setIdempotencyKey(key string) error {
	key = strings.TrimSpace(key)
	if len(key) > maxIdempotencyKeyLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"idempotency key",
			fmt.Errorf("length %d exceeds %d", len(key), maxIdempotencyKeyLength),
		)
	}

	c.idempotencyKey = key
	return nil
}
