package campaignRepo

import (
	"trimly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// CampaignRepository defines methods for marketing-campaign data access.
type CampaignRepository interface {
	// GetByID retrieves a campaign by its unique ID.
	GetByID(shopID, id string) (*models.Campaign, error)
	// ListByShop retrieves all campaigns of a shop.
	ListByShop(shopID string) ([]models.Campaign, error)
	// Create inserts a new campaign record.
	Create(campaign *models.Campaign) error
	// UpdateSetDocument applies a partial $set update by campaign ID.
	UpdateSetDocument(shopID, id string, updateDoc bson.M) error
	// Delete removes a campaign record by its ID.
	Delete(shopID, id string) error
}
