package models

import "time"

// Review is a customer review left for a shop.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	ShopID     string    `bson:"shopId" json:"shopId"`
	CustomerID string    `bson:"customerId,omitempty" json:"customerId,omitempty"`
	Rating     int       `bson:"rating" json:"rating"` // 1-5
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	ReviewDate time.Time `bson:"reviewDate" json:"reviewDate"`

	Response    string     `bson:"response,omitempty" json:"response,omitempty"`
	RespondedAt *time.Time `bson:"respondedAt,omitempty" json:"respondedAt,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// HasResponse reports whether the shop already replied to the review.
func (r Review) HasResponse() bool {
	return r.Response != ""
}
