package booking

import (
	"testing"

	"trimly/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		current models.BookingStatus
		next    models.BookingStatus
		want    bool
	}{
		{"pending to confirmed", models.BookingPending, models.BookingConfirmed, true},
		{"pending to cancelled", models.BookingPending, models.BookingCancelled, true},
		{"pending to completed skips confirmation", models.BookingPending, models.BookingCompleted, false},
		{"pending to no_show", models.BookingPending, models.BookingNoShow, false},
		{"confirmed to completed", models.BookingConfirmed, models.BookingCompleted, true},
		{"confirmed to cancelled", models.BookingConfirmed, models.BookingCancelled, true},
		{"confirmed to no_show", models.BookingConfirmed, models.BookingNoShow, true},
		{"confirmed back to pending", models.BookingConfirmed, models.BookingPending, false},
		{"completed is terminal", models.BookingCompleted, models.BookingCancelled, false},
		{"cancelled is terminal", models.BookingCancelled, models.BookingConfirmed, false},
		{"no_show is terminal", models.BookingNoShow, models.BookingCompleted, false},
		{"self transition rejected", models.BookingConfirmed, models.BookingConfirmed, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(tc.current, tc.next))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, models.BookingPending.IsTerminal())
	assert.False(t, models.BookingConfirmed.IsTerminal())
	assert.True(t, models.BookingCompleted.IsTerminal())
	assert.True(t, models.BookingCancelled.IsTerminal())
	assert.True(t, models.BookingNoShow.IsTerminal())
}
