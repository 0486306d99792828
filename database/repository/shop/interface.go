package shopRepo

import (
	"trimly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ShopRepository defines methods for shop (tenant) data access.
type ShopRepository interface {
	// GetByID retrieves a shop by its unique ID.
	GetByID(id string) (*models.Shop, error)
	// GetByEmail retrieves a shop by its owner email.
	GetByEmail(email string) (*models.Shop, error)
	// ListAll retrieves every shop. Used by the digest worker.
	ListAll() ([]models.Shop, error)
	// Create inserts a new shop record.
	Create(shop *models.Shop) error
	// Update modifies an existing shop record.
	Update(shop *models.Shop) error
	// UpdateSetDocument applies a partial $set update by shop ID.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes a shop record by its ID.
	Delete(id string) error
}
