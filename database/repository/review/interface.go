package reviewRepo

import (
	"time"

	"trimly/models"
)

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// GetByID retrieves a review by its unique ID.
	GetByID(shopID, id string) (*models.Review, error)
	// Create inserts a new review record.
	Create(review *models.Review) error
	// ListSince retrieves reviews dated at or after since.
	ListSince(shopID string, since time.Time) ([]models.Review, error)
	// ListUnansweredSince retrieves reviews without a response dated at or after since.
	ListUnansweredSince(shopID string, since time.Time) ([]models.Review, error)
	// SetResponse stores the shop's reply to a review.
	SetResponse(shopID, id, response string, at time.Time) error
}
