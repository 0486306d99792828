package models

import "time"

type BookingStatus string

// Booking lifecycle. Transitions are forward-only; Completed, Cancelled and
// NoShow are terminal.
const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
	BookingNoShow    BookingStatus = "no_show"
)

// Booking represents one scheduled service instance for a shop.
type Booking struct {
	ID          string        `bson:"id" json:"id"`
	ShopID      string        `bson:"shopId" json:"shopId"`
	CustomerID  string        `bson:"customerId,omitempty" json:"customerId,omitempty"` // empty for anonymous walk-ins
	BarberName  string        `bson:"barberName,omitempty" json:"barberName,omitempty"`
	ServiceName string        `bson:"serviceName" json:"serviceName"`
	ScheduledAt time.Time     `bson:"scheduledAt" json:"scheduledAt"`
	Status      BookingStatus `bson:"status" json:"status"`

	ServicePrice float64 `bson:"servicePrice" json:"servicePrice"`
	TipAmount    float64 `bson:"tipAmount" json:"tipAmount"`

	IsWalkIn    bool `bson:"isWalkIn" json:"isWalkIn"`
	IsNewClient bool `bson:"isNewClient" json:"isNewClient"`

	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
	ConfirmedAt *time.Time `bson:"confirmedAt,omitempty" json:"confirmedAt,omitempty"`
}

// Revenue returns the booking's revenue contribution. Missing amounts count as zero.
func (b Booking) Revenue(includeTips bool) float64 {
	total := b.ServicePrice
	if total < 0 {
		total = 0
	}
	if includeTips && b.TipAmount > 0 {
		total += b.TipAmount
	}
	return total
}

// IsTerminal reports whether the booking reached a final state.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCompleted || s == BookingCancelled || s == BookingNoShow
}
