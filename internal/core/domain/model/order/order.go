package order

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderIDAlreadyAssigned is returned when AssignID is called on an order
	// that already carries a store-assigned id.
	ErrOrderIDAlreadyAssigned = errors.New("order id is already assigned")
)

// Order is the persisted record tracked by the workflow: a stable identifier
// and the current State.
//
// Order follows these invariants:
//   - The id is assigned exactly once, by the store, on first save
//   - The status is always a valid State
//   - The status is overwritten on every accepted transition, never versioned
//   - Can only be created through NewOrder or RestoreOrder
//
// Order does not decide which transitions are legal. That is the job of the
// transition table; Order only records the outcome.
type Order struct {
	// id is zero until the order has been saved
	id kernel.OrderID

	// status is the current lifecycle state
	status State

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an order that has not been saved yet, so it has no id.
//
// Example:
//
//	o, err := order.NewOrder(order.Created)
//	if err != nil {
//	    return err
//	}
//	_ = repo.Add(ctx, o) // o.ID() is now assigned
func NewOrder(status State) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		status:        status,
		isConstructed: true,
	}, nil
}

// RestoreOrder rebuilds an order loaded from persistence.
// Both the id and the stored status must be valid.
func RestoreOrder(id kernel.OrderID, status State) (*Order, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned identifier, or the zero OrderID for an unsaved order.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Status returns the current state of the order.
func (o *Order) Status() State {
	return o.status
}

// IsNew reports whether the order has never been saved.
func (o *Order) IsNew() bool {
	return !o.id.IsAssigned()
}

// AssignID records the identifier produced by the store on first save.
// It fails if the id is invalid or if the order already has one.
func (o *Order) AssignID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !o.IsNew() {
		return ErrOrderIDAlreadyAssigned
	}

	o.id = id
	return nil
}

// ChangeStatus overwrites the current status with a valid State.
func (o *Order) ChangeStatus(status State) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}
