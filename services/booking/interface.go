package booking

import (
	"time"

	bookingRepo "trimly/database/repository/booking"
	customerRepo "trimly/database/repository/customer"
	"trimly/models"
)

// BookingService manages the appointment lifecycle for a shop.
type BookingService interface {
	CreateBooking(shopID string, req CreateBookingRequest) (*models.Booking, error)
	GetBooking(shopID, id string) (*models.Booking, error)
	ListRange(shopID string, from, to time.Time) ([]models.Booking, error)
	DayAgenda(shopID string, day time.Time) ([]models.Booking, error)
	UpdateStatus(shopID, id string, next models.BookingStatus) (*models.Booking, error)
	DeleteBooking(shopID, id string) error
}

// CreateBookingRequest carries the fields accepted when creating a booking.
type CreateBookingRequest struct {
	CustomerID   string    `json:"customerId"`
	BarberName   string    `json:"barberName"`
	ServiceName  string    `json:"serviceName" binding:"required"`
	ScheduledAt  time.Time `json:"scheduledAt" binding:"required"`
	ServicePrice float64   `json:"servicePrice"`
	TipAmount    float64   `json:"tipAmount"`
	IsWalkIn     bool      `json:"isWalkIn"`
	IsNewClient  bool      `json:"isNewClient"`
}

// ReminderScheduler schedules an appointment reminder for later delivery.
type ReminderScheduler interface {
	ScheduleBookingReminder(payload models.ReminderPayload, processAt time.Time) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Customers customerRepo.CustomerRepository
	Reminders ReminderScheduler // optional
}
