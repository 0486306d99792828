package bookingRepo

import (
	"time"

	"trimly/models"
)

// BookingRepository defines methods for booking data access. All queries are
// scoped by shop ID.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(shopID, id string) (*models.Booking, error)
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// Update modifies an existing booking record.
	Update(booking *models.Booking) error
	// Delete removes a booking record by its ID.
	Delete(shopID, id string) error

	// ListRange retrieves bookings scheduled within [from, to).
	ListRange(shopID string, from, to time.Time) ([]models.Booking, error)
	// ListByStatusSince retrieves bookings with the given status scheduled at or after since.
	ListByStatusSince(shopID string, status models.BookingStatus, since time.Time) ([]models.Booking, error)
	// ListPendingOlderThan retrieves pending bookings created before the cutoff.
	ListPendingOlderThan(shopID string, cutoff time.Time) ([]models.Booking, error)
	// ListCompletedSince retrieves completed bookings updated at or after since.
	ListCompletedSince(shopID string, since time.Time) ([]models.Booking, error)
}
