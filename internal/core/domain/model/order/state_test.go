package order_test

import (
	"testing"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_String(t *testing.T) {
	tests := []struct {
		state order.State
		want  string
	}{
		{order.Created, "CREATED"},
		{order.Shipped, "SHIPPED"},
		{order.Delivered, "DELIVERED"},
		{order.Paid, "PAID"},
		{order.Completed, "COMPLETED"},
		{order.Cancelled, "CANCELLED"},
		{order.UnknownState, "UNKNOWN"},
		{order.State(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
		})
	}
}

func TestParseState(t *testing.T) {
	for _, s := range order.States() {
		parsed, err := order.ParseState(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	parsed, err := order.ParseState(" shipped ")
	require.NoError(t, err)
	assert.Equal(t, order.Shipped, parsed)

	_, err = order.ParseState("LOST")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.ParseState("UNKNOWN")
	require.Error(t, err)
}

func TestState_Validate(t *testing.T) {
	for _, s := range order.States() {
		require.NoError(t, s.Validate(), s.String())
	}

	require.Error(t, order.UnknownState.Validate())
	require.Error(t, order.State(-1).Validate())
	require.Error(t, order.State(7).Validate())
}

func TestState_IsTerminal(t *testing.T) {
	terminal := map[order.State]bool{
		order.Completed: true,
		order.Cancelled: true,
	}

	for _, s := range order.States() {
		assert.Equal(t, terminal[s], s.IsTerminal(), s.String())
	}
}

func TestEvent(t *testing.T) {
	names := []string{"CREATE", "SHIP", "DELIVER", "PAY", "COMPLETE", "CANCEL"}
	require.Len(t, order.Events(), len(names))

	for i, e := range order.Events() {
		assert.Equal(t, names[i], e.String())
		require.NoError(t, e.Validate())
	}

	require.ErrorIs(t, order.UnknownEvent.Validate(), errs.ErrValueIsInvalid)
	require.Error(t, order.Event(42).Validate())
	assert.Equal(t, "UNKNOWN", order.Event(42).String())
}
