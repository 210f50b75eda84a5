package order_test

import (
	"testing"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range order.Statuses() {
		parsed, err := order.ParseStatus(string(s))

		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	for _, input := range []string{"", "Pending", "shipped"} {
		_, err := order.ParseStatus(input)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid, input)
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", order.Pending.String())
	assert.Equal(t, "confirmed", order.Confirmed.String())
	assert.Equal(t, "completed", order.Completed.String())
	assert.Equal(t, "cancelled", order.Cancelled.String())
}

func TestStatus_IsFinal(t *testing.T) {
	assert.False(t, order.Pending.IsFinal())
	assert.False(t, order.Confirmed.IsFinal())
	assert.True(t, order.Completed.IsFinal())
	assert.True(t, order.Cancelled.IsFinal())
}

func TestStatus_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		transition func(order.Status) (order.Status, error)
		allowed    map[order.Status]order.Status
	}{
		{
			name:       "confirm",
			transition: order.Status.Confirm,
			allowed:    map[order.Status]order.Status{order.Pending: order.Confirmed},
		},
		{
			name:       "complete",
			transition: order.Status.Complete,
			allowed:    map[order.Status]order.Status{order.Confirmed: order.Completed},
		},
		{
			name:       "cancel",
			transition: order.Status.Cancel,
			allowed: map[order.Status]order.Status{
				order.Pending:   order.Cancelled,
				order.Confirmed: order.Cancelled,
			},
		},
	}

	for _, tt := range tests {
		for _, from := range order.Statuses() {
			t.Run(tt.name+" from "+from.String(), func(t *testing.T) {
				next, err := tt.transition(from)

				if want, ok := tt.allowed[from]; ok {
					require.NoError(t, err)
					assert.Equal(t, want, next)
					return
				}
				require.ErrorIs(t, err, errs.ErrValidation)
				assert.Empty(t, next)
			})
		}
	}
}

func TestStatus_NoTransitionLeavesTerminalStates(t *testing.T) {
	for _, from := range []order.Status{order.Completed, order.Cancelled} {
		_, err := from.Confirm()
		require.Error(t, err)
		_, err = from.Complete()
		require.Error(t, err)
		_, err = from.Cancel()
		require.Error(t, err)
	}
}
