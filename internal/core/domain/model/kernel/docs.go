// Package kernel provides the identifier value objects shared across the
// order domain.
//
// The package includes:
//   - OrderID: the store-assigned numeric identity of an order; its zero value
//     is the "no id yet" marker used while an order is being created
//   - UUID: a random identifier for state-changed notifications
//
// Both types are immutable and safe for concurrent use.
package kernel
