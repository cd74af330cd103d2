//go:build unit

package booking_test

import (
	"testing"

	"cape-tours-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	t.Run("validity", func(t *testing.T) {
		for _, s := range []booking.Status{
			booking.StatusPending, booking.StatusConfirmed, booking.StatusCompleted, booking.StatusCancelled,
		} {
			assert.True(t, s.IsValid(), s)
		}
		assert.False(t, booking.Status("").IsValid())
		assert.False(t, booking.Status("archived").IsValid())
		assert.False(t, booking.Status("Pending").IsValid(), "statuses are case sensitive")
	})

	t.Run("slot holding", func(t *testing.T) {
		assert.True(t, booking.StatusPending.HoldsSlot())
		assert.True(t, booking.StatusConfirmed.HoldsSlot())
		assert.False(t, booking.StatusCompleted.HoldsSlot())
		assert.False(t, booking.StatusCancelled.HoldsSlot())
	})

	t.Run("terminal states", func(t *testing.T) {
		assert.False(t, booking.StatusPending.IsTerminal())
		assert.False(t, booking.StatusConfirmed.IsTerminal())
		assert.True(t, booking.StatusCompleted.IsTerminal())
		assert.True(t, booking.StatusCancelled.IsTerminal())
	})

	t.Run("transition table is total", func(t *testing.T) {
		all := []booking.Status{
			booking.StatusPending, booking.StatusConfirmed, booking.StatusCompleted, booking.StatusCancelled,
		}
		allowed := map[booking.Status]map[booking.Status]bool{
			booking.StatusPending:   {booking.StatusConfirmed: true, booking.StatusCancelled: true},
			booking.StatusConfirmed: {booking.StatusCompleted: true, booking.StatusCancelled: true},
		}

		for _, from := range all {
			for _, to := range all {
				expected := allowed[from][to]
				assert.Equal(t, expected, from.CanTransitionTo(to), "%s -> %s", from, to)
			}
		}
	})
}
