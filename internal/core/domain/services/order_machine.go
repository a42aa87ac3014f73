package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

var ErrSessionIsRequired = errors.New("session is required")

// ResultType tells the caller whether the event was applied.
type ResultType int

const (
	Accepted ResultType = iota + 1
	Denied
)

func (r ResultType) String() string {
	switch r {
	case Accepted:
		return "ACCEPTED"
	case Denied:
		return "DENIED"
	default:
		return "UNKNOWN"
	}
}

// TransitionResult is the outcome of Submit. Denied is a normal result, not
// an error: Event and From tell the caller what was attempted and where.
type TransitionResult struct {
	Type    ResultType
	Event   order.Event
	From    order.State
	State   order.State
	OrderID kernel.OrderID
}

func (r TransitionResult) IsAccepted() bool {
	return r.Type == Accepted
}

// DenialMessage returns the diagnostic text for a denied result, or "" otherwise.
func (r TransitionResult) DenialMessage() string {
	if r.Type != Denied {
		return ""
	}
	return fmt.Sprintf("Transition denied for event: %s in state: %s", r.Event, r.From)
}

// Machine drives a session through one transition attempt using a
// TransitionTable. It holds no per-order state and is safe for concurrent
// use by many requests, each with its own Session.
//
// Submit order of operations for a matching rule:
//  1. run the rule's side effect (a panic is logged, never propagated)
//  2. run the session's interceptors; the first error aborts
//  3. update the session's id and state
//  4. notify listeners
//
// If there is no rule the session is left unchanged and Denied is returned.
type Machine struct {
	table     TransitionTable
	listeners []StateChangeListener
	logger    *slog.Logger
}

func NewMachine(table TransitionTable, logger *slog.Logger, listeners ...StateChangeListener) *Machine {
	return &Machine{
		table:     table,
		listeners: listeners,
		logger:    logger.With("component", "order_machine"),
	}
}

// Submit evaluates event against the session's current state.
//
// A non-nil error means an interceptor failed (the new state could not be
// persisted); the session is unchanged and the result must be ignored.
func (m *Machine) Submit(ctx context.Context, session *Session, event order.Event) (TransitionResult, error) {
	if session == nil {
		return TransitionResult{}, ErrSessionIsRequired
	}

	from := session.current
	rule, ok := m.table.Lookup(from, event)
	if !ok {
		return TransitionResult{
			Type:    Denied,
			Event:   event,
			From:    from,
			State:   from,
			OrderID: session.orderID,
		}, nil
	}

	change := StateChange{
		OrderID: session.orderID,
		Event:   event,
		From:    from,
		To:      rule.Target,
	}

	m.runAction(ctx, rule, change)

	for _, interceptor := range session.interceptors {
		id, err := interceptor.PreStateChange(ctx, change)
		if err != nil {
			return TransitionResult{}, fmt.Errorf("apply %s on %s: %w", event, from, err)
		}
		change.OrderID = id
	}

	session.orderID = change.OrderID
	session.current = rule.Target

	m.notify(ctx, change)

	return TransitionResult{
		Type:    Accepted,
		Event:   event,
		From:    from,
		State:   rule.Target,
		OrderID: session.orderID,
	}, nil
}

// AvailableEvents lists the events that would be accepted in state.
func (m *Machine) AvailableEvents(state order.State) []order.Event {
	return m.table.EventsFrom(state)
}

func (m *Machine) runAction(ctx context.Context, rule TransitionRule, change StateChange) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.ErrorContext(ctx, "Side effect panicked",
				"action", rule.ActionName,
				"order_id", change.OrderID.String(),
				"event", change.Event.String(),
				"panic", r,
			)
		}
	}()

	rule.Action(ctx, ActionContext{
		Logger:  m.logger,
		OrderID: change.OrderID,
		Event:   change.Event,
		From:    change.From,
		To:      change.To,
	})
}

func (m *Machine) notify(ctx context.Context, change StateChange) {
	for _, listener := range m.listeners {
		func() {
			defer func() {
				if r := recover(); r != nil {
					m.logger.ErrorContext(ctx, "State change listener panicked",
						"order_id", change.OrderID.String(),
						"panic", r,
					)
				}
			}()
			listener.StateChanged(ctx, change)
		}()
	}
}
