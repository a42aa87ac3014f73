package services

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// StateChange describes one accepted transition. OrderID is the zero
// OrderID when the transition belongs to an order that has not been saved yet.
type StateChange struct {
	OrderID kernel.OrderID
	Event   order.Event
	From    order.State
	To      order.State
}

// StateChangeInterceptor runs after a rule matched and its side effect ran,
// but before the session's state is updated. It is where the new state is
// persisted. Returning an error aborts the transition and leaves the session
// untouched.
//
// The returned OrderID is the id the order has after the write. For an
// existing order it is change.OrderID; for a new order it is the id the store
// just assigned.
type StateChangeInterceptor interface {
	PreStateChange(ctx context.Context, change StateChange) (kernel.OrderID, error)
}

// StateChangeListener is notified after a transition has been applied.
// Listeners are for observability only; they cannot fail the transition.
type StateChangeListener interface {
	StateChanged(ctx context.Context, change StateChange)
}

// Session is the request-scoped view of one order: its id (zero for a new
// order) and its current state. A session is built for a single Submit and
// then discarded. It is not safe for concurrent use.
type Session struct {
	orderID      kernel.OrderID
	current      order.State
	interceptors []StateChangeInterceptor
}

// NewSession starts a session for an order that does not exist yet.
// It always begins in CREATED.
func NewSession(interceptors ...StateChangeInterceptor) *Session {
	return &Session{
		current:      order.Created,
		interceptors: interceptors,
	}
}

// RestoreSession seeds a session from a persisted order.
func RestoreSession(o *order.Order, interceptors ...StateChangeInterceptor) (*Session, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := o.ID().Validate(); err != nil {
		return nil, err
	}

	return &Session{
		orderID:      o.ID(),
		current:      o.Status(),
		interceptors: interceptors,
	}, nil
}

// OrderID returns the session's order id; zero until a new order is persisted.
func (s *Session) OrderID() kernel.OrderID {
	return s.orderID
}

// CurrentState returns the state the next event will be evaluated against.
func (s *Session) CurrentState() order.State {
	return s.current
}
