package booking

import "trimly/models"

// allowedTransitions encodes the forward-only booking lifecycle. Terminal
// states (completed, cancelled, no_show) have no outgoing transitions.
var allowedTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingPending: {
		models.BookingConfirmed,
		models.BookingCancelled,
	},
	models.BookingConfirmed: {
		models.BookingCompleted,
		models.BookingCancelled,
		models.BookingNoShow,
	},
}

// CanTransition reports whether a booking may move from current to next.
func CanTransition(current, next models.BookingStatus) bool {
	for _, allowed := range allowedTransitions[current] {
		if allowed == next {
			return true
		}
	}
	return false
}
