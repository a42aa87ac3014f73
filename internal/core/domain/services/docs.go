// Package services provides the order transition engine.
//
// The package includes:
//   - TransitionTable: the fixed (state, event) -> (target, side effect) rules
//   - Session: the request-scoped id and current state of one order
//   - Machine: evaluates one event against a session and reports Accepted or Denied
//   - StateChangeInterceptor / StateChangeListener: hooks for persisting and
//     observing applied transitions
//   - Side effects (ValidatePaymentAndOrigin, ShipOrder, ...) that log what
//     each transition does
//
// The engine is synchronous. A denied event is a result value, not an error;
// errors come only from interceptors, i.e. from persistence.
package services
