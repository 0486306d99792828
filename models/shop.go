package models

import "time"

// Security holds credential material. Plaintext fields never reach storage.
type Security struct {
	Password     string `bson:"-" json:"password,omitempty"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Token        string `bson:"-" json:"token,omitempty"`
	TokenHash    string `bson:"tokenHash" json:"-"`
	FCMToken     string `bson:"fcmToken,omitempty" json:"fcmToken,omitempty"`
}

// AutopaySettings holds a shop's saved payment configuration.
type AutopaySettings struct {
	Enabled              bool      `bson:"enabled" json:"enabled"`
	StripeCustomerID     string    `bson:"stripeCustomerId,omitempty" json:"stripeCustomerId,omitempty"`
	DefaultPaymentMethod string    `bson:"defaultPaymentMethod,omitempty" json:"defaultPaymentMethod,omitempty"`
	LastUpdated          time.Time `bson:"lastUpdated" json:"lastUpdated,omitzero"`
}

// Shop is one barbershop tenant. Every domain query is scoped by its ID.
type Shop struct {
	ID          string `bson:"id" json:"id,omitempty"`
	Name        string `bson:"name" json:"name"`
	Email       string `bson:"email" json:"email"`
	PhoneNumber string `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Address     string `bson:"address,omitempty" json:"address,omitempty"`

	Security Security `bson:"security" json:"security,omitzero"`

	// StaffCount feeds the capacity-utilization denominator. Defaults to 1.
	StaffCount int `bson:"staffCount" json:"staffCount"`

	// ThresholdOverrides lets a tenant tune individual alert thresholds
	// (key -> value, e.g. "minDailyRevenue" -> 350).
	ThresholdOverrides map[string]float64 `bson:"thresholdOverrides,omitempty" json:"thresholdOverrides,omitempty"`

	Autopay AutopaySettings `bson:"autopay" json:"autopay,omitzero"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}
