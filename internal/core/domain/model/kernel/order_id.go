package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"orderflow/internal/pkg/errs"
)

// ErrOrderIDIsNotAssigned is returned when an operation needs a persisted order
// but receives the zero OrderID, which marks an order that has not been saved yet.
var ErrOrderIDIsNotAssigned = errs.NewValueIsRequiredError("order id is not assigned")

// OrderID identifies a persisted order. Identifiers are assigned by the order
// store on first save and are always positive.
//
// The zero value is meaningful: it is the "no id yet" marker carried by a
// session that is about to create a brand-new order.
//
// Example:
//
//	var pending kernel.OrderID     // new order, not saved
//	pending.IsAssigned()           // false
//
//	id, err := kernel.NewOrderID(1)
//	id.IsAssigned()                // true
type OrderID struct {
	value int64
}

// NewOrderID wraps a store-assigned identifier. Non-positive values are rejected.
func NewOrderID(value int64) (OrderID, error) {
	if value <= 0 {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause(
			"order id is invalid",
			fmt.Errorf("%d is not greater than 0", value),
		)
	}
	return OrderID{value: value}, nil
}

// ParseOrderID parses the decimal form used in URLs and log lines.
func ParseOrderID(s string) (OrderID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return OrderID{}, errs.NewValueIsRequiredError("order id")
	}

	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("order id is invalid", err)
	}
	return NewOrderID(value)
}

// Int64 returns the raw identifier. Zero for an unassigned id.
func (id OrderID) Int64() int64 {
	return id.value
}

// IsAssigned reports whether the id refers to a persisted order.
func (id OrderID) IsAssigned() bool {
	return id.value > 0
}

// Validate returns ErrOrderIDIsNotAssigned for the "no id yet" marker.
func (id OrderID) Validate() error {
	if !id.IsAssigned() {
		return ErrOrderIDIsNotAssigned
	}
	return nil
}

func (id OrderID) String() string {
	if !id.IsAssigned() {
		return "<none>"
	}
	return strconv.FormatInt(id.value, 10)
}
