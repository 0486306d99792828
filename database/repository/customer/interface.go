package customerRepo

import (
	"time"

	"trimly/models"
)

// CustomerRepository defines methods for customer data access.
type CustomerRepository interface {
	// GetByID retrieves a customer by its unique ID.
	GetByID(shopID, id string) (*models.Customer, error)
	// ListByShop retrieves all customers of a shop.
	ListByShop(shopID string) ([]models.Customer, error)
	// ListCreatedSince retrieves customers created at or after since.
	ListCreatedSince(shopID string, since time.Time) ([]models.Customer, error)
	// Create inserts a new customer record.
	Create(customer *models.Customer) error
	// Update modifies an existing customer record.
	Update(customer *models.Customer) error
	// Delete removes a customer record by its ID.
	Delete(shopID, id string) error
	// RecordVisit bumps visit counters after a completed booking.
	RecordVisit(shopID, id string, spent float64, at time.Time) error
}
