package commands

import (
	"context"
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
)

// OrderStateInterceptor writes every accepted transition to the order store.
//
// A change without an order id creates a new order in the target state and
// reports the id the store assigned. Any other change loads the order,
// overwrites its status and saves it.
type OrderStateInterceptor struct {
	repo ports.OrderRepository
}

func NewOrderStateInterceptor(repo ports.OrderRepository) OrderStateInterceptor {
	return OrderStateInterceptor{repo: repo}
}

func (i OrderStateInterceptor) PreStateChange(ctx context.Context, change services.StateChange) (kernel.OrderID, error) {
	if !change.OrderID.IsAssigned() {
		return i.createOrder(ctx, change.To)
	}

	existing, err := i.repo.Get(ctx, change.OrderID)
	if err != nil {
		return kernel.OrderID{}, fmt.Errorf("load order %s: %w", change.OrderID, err)
	}

	if err = existing.ChangeStatus(change.To); err != nil {
		return kernel.OrderID{}, err
	}

	if err = i.repo.Update(ctx, existing); err != nil {
		return kernel.OrderID{}, fmt.Errorf("save order %s: %w", change.OrderID, err)
	}

	return existing.ID(), nil
}

func (i OrderStateInterceptor) createOrder(ctx context.Context, status order.State) (kernel.OrderID, error) {
	created, err := order.NewOrder(status)
	if err != nil {
		return kernel.OrderID{}, err
	}

	if err = i.repo.Add(ctx, created); err != nil {
		return kernel.OrderID{}, fmt.Errorf("save new order: %w", err)
	}

	return created.ID(), nil
}
