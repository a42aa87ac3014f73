package order

import (
	"fmt"
	"strings"

	"orderflow/internal/pkg/errs"
)

// State is the lifecycle position of an order.
//
// State graph (edges are labelled with the event that drives them):
//
//	         CREATE
//	        ┌──────┐
//	        v      │
//	     CREATED ──┘──SHIP──> SHIPPED ──DELIVER──> DELIVERED ──PAY──> PAID ──COMPLETE──> COMPLETED
//	        │                    │
//	        └──CANCEL──┐  ┌──CANCEL
//	                   v  v
//	                CANCELLED
//
// CREATED is the only initial state. COMPLETED and CANCELLED are terminal.
// The authoritative edge list lives in the services transition table; State
// only knows names and which values are valid.
type State int

const (
	// UnknownState (0) catches uninitialized values and unparseable input.
	UnknownState State = iota

	// Created is the initial state of every order.
	Created

	// Shipped means the order has left the origin.
	Shipped

	// Delivered means the order reached the customer and awaits payment.
	Delivered

	// Paid means the customer has paid for a delivered order.
	Paid

	// Completed is terminal: the order was delivered and paid.
	Completed

	// Cancelled is terminal: the order was cancelled before delivery.
	Cancelled
)

// States lists every valid state in declaration order.
func States() []State {
	return []State{Created, Shipped, Delivered, Paid, Completed, Cancelled}
}

func getStateStrings() map[State]string {
	return map[State]string{
		UnknownState: "UNKNOWN",
		Created:      "CREATED",
		Shipped:      "SHIPPED",
		Delivered:    "DELIVERED",
		Paid:         "PAID",
		Completed:    "COMPLETED",
		Cancelled:    "CANCELLED",
	}
}

// ParseState converts the persisted/wire name (case-insensitive) back into a State.
func ParseState(s string) (State, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, state := range States() {
		if state.String() == name {
			return state, nil
		}
	}
	return UnknownState, errs.NewValueIsInvalidErrorWithCause("state is invalid", fmt.Errorf("%q is not a valid state", s))
}

// Validate rejects UnknownState and out-of-range values, e.g. a corrupt row.
func (s State) Validate() error {
	if s <= UnknownState || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// IsTerminal reports whether no event can move an order out of s.
func (s State) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// String returns the upper-case name used in storage, logs and the HTTP API.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
