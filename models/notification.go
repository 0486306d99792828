package models

// ReminderPayload is the asynq task payload for scheduled reminders and
// the daily insights digest.
type ReminderPayload struct {
	ShopID    string `json:"shopId"`
	BookingID string `json:"bookingId,omitempty"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	FireDate  string `json:"fireDate,omitempty"`
}
