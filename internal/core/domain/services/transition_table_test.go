package services_test

import (
	"context"
	"testing"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transitionKey struct {
	state order.State
	event order.Event
}

// lifecycle is the expected rule set, written out independently of the table.
var lifecycle = map[transitionKey]order.State{
	{order.Created, order.Create}:    order.Created,
	{order.Created, order.Ship}:      order.Shipped,
	{order.Created, order.Cancel}:    order.Cancelled,
	{order.Shipped, order.Deliver}:   order.Delivered,
	{order.Shipped, order.Cancel}:    order.Cancelled,
	{order.Delivered, order.Pay}:     order.Paid,
	{order.Paid, order.Complete}:     order.Completed,
}

func noop(context.Context, services.ActionContext) {}

func TestDefaultTransitionTable_Lookup(t *testing.T) {
	table := services.DefaultTransitionTable()

	found := 0
	for _, state := range order.States() {
		for _, event := range order.Events() {
			rule, ok := table.Lookup(state, event)
			target, expected := lifecycle[transitionKey{state, event}]

			assert.Equal(t, expected, ok, "%s + %s", state, event)
			if ok {
				found++
			}
			if expected {
				assert.Equal(t, target, rule.Target, "%s + %s", state, event)
				assert.Equal(t, state, rule.Source)
				assert.Equal(t, event, rule.Event)
				assert.NotNil(t, rule.Action)
			}
		}
	}
	assert.Equal(t, len(lifecycle), found)
}

func TestDefaultTransitionTable_Shape(t *testing.T) {
	table := services.DefaultTransitionTable()

	for _, state := range order.States() {
		events := table.EventsFrom(state)
		if state.IsTerminal() {
			assert.Empty(t, events, state.String())
		} else {
			assert.NotEmpty(t, events, state.String())
		}
	}

	assert.Equal(t, []order.Event{order.Create, order.Ship, order.Cancel}, table.EventsFrom(order.Created))
	assert.Equal(t, []order.Event{order.Deliver, order.Cancel}, table.EventsFrom(order.Shipped))
}

func TestNewTransitionTable(t *testing.T) {
	t.Run("rejects duplicate pair", func(t *testing.T) {
		_, err := services.NewTransitionTable(
			services.TransitionRule{Source: order.Created, Event: order.Ship, Target: order.Shipped, Action: noop},
			services.TransitionRule{Source: order.Created, Event: order.Ship, Target: order.Cancelled, Action: noop},
		)

		require.ErrorIs(t, err, services.ErrDuplicateRule)
	})

	t.Run("rejects missing action", func(t *testing.T) {
		_, err := services.NewTransitionTable(
			services.TransitionRule{Source: order.Created, Event: order.Ship, Target: order.Shipped},
		)

		require.ErrorIs(t, err, services.ErrRuleIsInvalid)
	})

	t.Run("rejects unknown state", func(t *testing.T) {
		_, err := services.NewTransitionTable(
			services.TransitionRule{Source: order.UnknownState, Event: order.Ship, Target: order.Shipped, Action: noop},
		)

		require.ErrorIs(t, err, services.ErrRuleIsInvalid)
	})

	t.Run("rejects rule out of a terminal state", func(t *testing.T) {
		for _, terminal := range []order.State{order.Completed, order.Cancelled} {
			_, err := services.NewTransitionTable(
				services.TransitionRule{Source: terminal, Event: order.Ship, Target: order.Shipped, Action: noop},
			)

			require.ErrorIs(t, err, services.ErrTerminalSource, terminal.String())
		}
	})

	t.Run("empty table denies everything", func(t *testing.T) {
		table, err := services.NewTransitionTable()

		require.NoError(t, err)
		_, ok := table.Lookup(order.Created, order.Create)
		assert.False(t, ok)
	})
}
