package booking

import (
	"fmt"
	"time"

	"trimly/models"
	"trimly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// reminderLeadTime is how long before the appointment the reminder fires.
const reminderLeadTime = time.Hour

// CreateBooking validates and stores a new booking. Walk-ins skip the
// confirmation step and start out confirmed.
func (s *DefaultBookingService) CreateBooking(shopID string, req CreateBookingRequest) (*models.Booking, error) {
	if req.ServiceName == "" {
		return nil, NewBookingError("service name is required")
	}
	if req.ScheduledAt.IsZero() {
		return nil, NewBookingError("scheduled time is required")
	}
	if req.ServicePrice < 0 || req.TipAmount < 0 {
		return nil, NewBookingError("amounts must not be negative")
	}

	status := models.BookingPending
	var confirmedAt *time.Time
	if req.IsWalkIn {
		status = models.BookingConfirmed
		now := time.Now()
		confirmedAt = &now
	}

	booking := &models.Booking{
		ID:           uuid.NewString(),
		ShopID:       shopID,
		CustomerID:   req.CustomerID,
		BarberName:   req.BarberName,
		ServiceName:  req.ServiceName,
		ScheduledAt:  req.ScheduledAt,
		Status:       status,
		ServicePrice: req.ServicePrice,
		TipAmount:    req.TipAmount,
		IsWalkIn:     req.IsWalkIn,
		IsNewClient:  req.IsNewClient,
		ConfirmedAt:  confirmedAt,
	}

	if err := s.Repo.Create(booking); err != nil {
		return nil, fmt.Errorf("CreateBooking: %w", err)
	}
	return booking, nil
}

// GetBooking retrieves one booking.
func (s *DefaultBookingService) GetBooking(shopID, id string) (*models.Booking, error) {
	return s.Repo.GetByID(shopID, id)
}

// ListRange retrieves bookings scheduled within [from, to).
func (s *DefaultBookingService) ListRange(shopID string, from, to time.Time) ([]models.Booking, error) {
	if !to.After(from) {
		return nil, NewBookingError("invalid range: 'to' must be after 'from'")
	}
	return s.Repo.ListRange(shopID, from, to)
}

// DayAgenda retrieves all bookings scheduled on the given calendar day.
func (s *DefaultBookingService) DayAgenda(shopID string, day time.Time) ([]models.Booking, error) {
	year, month, d := day.Date()
	start := time.Date(year, month, d, 0, 0, 0, 0, day.Location())
	return s.Repo.ListRange(shopID, start, start.AddDate(0, 0, 1))
}

// UpdateStatus moves a booking forward through its lifecycle. Terminal states
// are immutable; invalid transitions are rejected.
func (s *DefaultBookingService) UpdateStatus(shopID, id string, next models.BookingStatus) (*models.Booking, error) {
	logger := utils.GetLogger()

	booking, err := s.Repo.GetByID(shopID, id)
	if err != nil {
		return nil, fmt.Errorf("UpdateStatus: %w", err)
	}

	if !CanTransition(booking.Status, next) {
		return nil, NewTransitionError(fmt.Sprintf("cannot move booking from %s to %s", booking.Status, next))
	}

	booking.Status = next
	if next == models.BookingConfirmed {
		now := time.Now()
		booking.ConfirmedAt = &now
	}

	if err := s.Repo.Update(booking); err != nil {
		return nil, fmt.Errorf("UpdateStatus: %w", err)
	}

	switch next {
	case models.BookingConfirmed:
		s.scheduleReminder(booking)
	case models.BookingCompleted:
		if booking.CustomerID != "" {
			spent := booking.Revenue(true)
			if err := s.Customers.RecordVisit(shopID, booking.CustomerID, spent, booking.ScheduledAt); err != nil {
				logger.Warn("failed to record customer visit", zap.String("customerID", booking.CustomerID), zap.Error(err))
			}
		}
	}

	return booking, nil
}

// DeleteBooking removes a booking record.
func (s *DefaultBookingService) DeleteBooking(shopID, id string) error {
	return s.Repo.Delete(shopID, id)
}

// scheduleReminder enqueues a pre-appointment reminder when a scheduler is
// wired and the appointment is far enough in the future.
func (s *DefaultBookingService) scheduleReminder(booking *models.Booking) {
	if s.Reminders == nil {
		return
	}
	fireAt := booking.ScheduledAt.Add(-reminderLeadTime)
	if !fireAt.After(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		ShopID:    booking.ShopID,
		BookingID: booking.ID,
		Title:     "Upcoming appointment",
		Body:      fmt.Sprintf("%s at %s", booking.ServiceName, booking.ScheduledAt.Format("15:04")),
		FireDate:  fireAt.Format(time.RFC3339),
	}
	if err := s.Reminders.ScheduleBookingReminder(payload, fireAt); err != nil {
		utils.GetLogger().Warn("failed to schedule booking reminder",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}
}
