package models

import "time"

// Customer is a client of one shop.
type Customer struct {
	ID          string     `bson:"id" json:"id"`
	ShopID      string     `bson:"shopId" json:"shopId"`
	Name        string     `bson:"name" json:"name"`
	PhoneNumber string     `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Email       string     `bson:"email,omitempty" json:"email,omitempty"`
	Notes       string     `bson:"notes,omitempty" json:"notes,omitempty"`
	TotalVisits int        `bson:"totalVisits" json:"totalVisits"`
	TotalSpent  float64    `bson:"totalSpent" json:"totalSpent"`
	LastVisit   *time.Time `bson:"lastVisit,omitempty" json:"lastVisit,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}
