package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Event is an external request to advance an order. Whether it is honoured
// depends on the order's current State and the transition table.
type Event int

const (
	UnknownEvent Event = iota
	Create
	Ship
	Deliver
	Pay
	Complete
	Cancel
)

// Events lists every valid event in declaration order.
func Events() []Event {
	return []Event{Create, Ship, Deliver, Pay, Complete, Cancel}
}

func getEventStrings() map[Event]string {
	return map[Event]string{
		UnknownEvent: "UNKNOWN",
		Create:       "CREATE",
		Ship:         "SHIP",
		Deliver:      "DELIVER",
		Pay:          "PAY",
		Complete:     "COMPLETE",
		Cancel:       "CANCEL",
	}
}

func (e Event) Validate() error {
	if e <= UnknownEvent || e > Cancel {
		return errs.NewValueIsInvalidErrorWithCause("event is invalid", fmt.Errorf("%d is not a valid event", e))
	}
	return nil
}

func (e Event) String() string {
	if str, ok := getEventStrings()[e]; ok {
		return str
	}
	return "UNKNOWN"
}
