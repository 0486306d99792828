package models

import "time"

type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignCompleted CampaignStatus = "completed"
)

// Campaign is a marketing campaign run by a shop (promo posts, referral pushes).
type Campaign struct {
	ID       string         `bson:"id" json:"id"`
	ShopID   string         `bson:"shopId" json:"shopId"`
	Name     string         `bson:"name" json:"name"`
	Channel  string         `bson:"channel,omitempty" json:"channel,omitempty"` // e.g. "instagram", "sms"
	Message  string         `bson:"message,omitempty" json:"message,omitempty"`
	Status   CampaignStatus `bson:"status" json:"status"`
	ImageURL string         `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`

	StartsAt *time.Time `bson:"startsAt,omitempty" json:"startsAt,omitempty"`
	EndsAt   *time.Time `bson:"endsAt,omitempty" json:"endsAt,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
