// Package order provides the order aggregate and the value types that
// describe its lifecycle.
//
// The package includes:
//   - Order: the persisted record, an id plus the current State
//   - State: CREATED, SHIPPED, DELIVERED, PAID, COMPLETED, CANCELLED
//   - Event: CREATE, SHIP, DELIVER, PAY, COMPLETE, CANCEL
//
// Key business rules:
//   - CREATED is the only initial state; COMPLETED and CANCELLED are terminal
//   - An order id is assigned by the store on first save and never changes
//   - The status is overwritten once per accepted transition
//
// Which (State, Event) pairs are legal is decided by the transition table in
// the domain services package, not by this package.
package order
