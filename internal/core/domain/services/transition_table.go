package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

var (
	// ErrRuleIsInvalid is returned when a rule has an unknown state or event or no action.
	ErrRuleIsInvalid = errors.New("transition rule is invalid")

	// ErrDuplicateRule is returned when two rules share the same (source, event) pair.
	ErrDuplicateRule = errors.New("duplicate transition rule")

	// ErrTerminalSource is returned for a rule leaving COMPLETED or CANCELLED.
	ErrTerminalSource = errors.New("transition rule leaves a terminal state")
)

// ActionContext is what a side effect gets to see about the transition it belongs to.
type ActionContext struct {
	Logger  *slog.Logger
	OrderID kernel.OrderID
	Event   order.Event
	From    order.State
	To      order.State
}

// Action is the side effect attached to a rule. Actions are notifications:
// they have no return value and cannot veto a transition.
type Action func(ctx context.Context, ac ActionContext)

// TransitionRule maps (Source, Event) to (Target, Action). Rules are immutable values.
type TransitionRule struct {
	Source     order.State
	Event      order.Event
	Target     order.State
	ActionName string
	Action     Action
}

func (r TransitionRule) validate() error {
	if err := errors.Join(r.Source.Validate(), r.Event.Validate(), r.Target.Validate()); err != nil {
		return fmt.Errorf("%w: %w", ErrRuleIsInvalid, err)
	}
	if r.Action == nil {
		return fmt.Errorf("%w: %s on %s has no action", ErrRuleIsInvalid, r.Source, r.Event)
	}
	if r.Source.IsTerminal() {
		return fmt.Errorf("%w: %s on %s", ErrTerminalSource, r.Source, r.Event)
	}
	return nil
}

type ruleKey struct {
	source order.State
	event  order.Event
}

// TransitionTable is the single source of truth for legal transitions.
// It is built once at startup and is read-only afterwards, so a single
// table can be shared by every request.
type TransitionTable struct {
	rules   map[ruleKey]TransitionRule
	ordered []TransitionRule
}

// NewTransitionTable builds a table from rules, rejecting invalid rules,
// rules out of a terminal state and ambiguous (source, event) pairs.
func NewTransitionTable(rules ...TransitionRule) (TransitionTable, error) {
	table := TransitionTable{
		rules:   make(map[ruleKey]TransitionRule, len(rules)),
		ordered: make([]TransitionRule, 0, len(rules)),
	}

	for _, rule := range rules {
		if err := rule.validate(); err != nil {
			return TransitionTable{}, err
		}

		key := ruleKey{source: rule.Source, event: rule.Event}
		if _, exists := table.rules[key]; exists {
			return TransitionTable{}, fmt.Errorf("%w: %s on %s", ErrDuplicateRule, rule.Source, rule.Event)
		}

		table.rules[key] = rule
		table.ordered = append(table.ordered, rule)
	}

	return table, nil
}

// DefaultTransitionTable returns the order lifecycle:
//
//	CREATED   + CREATE   -> CREATED    validate payment and origin
//	CREATED   + SHIP     -> SHIPPED    ship
//	CREATED   + CANCEL   -> CANCELLED  cancel
//	SHIPPED   + DELIVER  -> DELIVERED  deliver
//	SHIPPED   + CANCEL   -> CANCELLED  cancel
//	DELIVERED + PAY      -> PAID       pay
//	PAID      + COMPLETE -> COMPLETED  complete
func DefaultTransitionTable() TransitionTable {
	table, err := NewTransitionTable(
		TransitionRule{order.Created, order.Create, order.Created, "validate", ValidatePaymentAndOrigin},
		TransitionRule{order.Created, order.Ship, order.Shipped, "ship", ShipOrder},
		TransitionRule{order.Created, order.Cancel, order.Cancelled, "cancel", CancelOrder},
		TransitionRule{order.Shipped, order.Deliver, order.Delivered, "deliver", DeliverOrder},
		TransitionRule{order.Shipped, order.Cancel, order.Cancelled, "cancel", CancelOrder},
		TransitionRule{order.Delivered, order.Pay, order.Paid, "pay", PayOrder},
		TransitionRule{order.Paid, order.Complete, order.Completed, "complete", CompleteOrder},
	)
	if err != nil {
		panic(err)
	}
	return table
}

// Lookup returns the rule for (source, event). A missing rule is not an
// error; the caller decides how to report the denial.
func (t TransitionTable) Lookup(source order.State, event order.Event) (TransitionRule, bool) {
	rule, ok := t.rules[ruleKey{source: source, event: event}]
	return rule, ok
}

// EventsFrom lists the events that have a rule for source, in declaration order.
func (t TransitionTable) EventsFrom(source order.State) []order.Event {
	events := make([]order.Event, 0)
	for _, rule := range t.ordered {
		if rule.Source == source {
			events = append(events, rule.Event)
		}
	}
	return events
}
