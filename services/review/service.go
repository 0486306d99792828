package review

import (
	"fmt"
	"time"

	reviewRepo "trimly/database/repository/review"
	"trimly/models"

	"github.com/google/uuid"
)

// ReviewService manages shop reviews and responses.
type ReviewService interface {
	AddReview(shopID string, req AddReviewRequest) (*models.Review, error)
	ListReviews(shopID string, since time.Time) ([]models.Review, error)
	ListUnanswered(shopID string, since time.Time) ([]models.Review, error)
	Respond(shopID, reviewID, response string) (*models.Review, error)
}

// AddReviewRequest carries the fields accepted when recording a review.
type AddReviewRequest struct {
	CustomerID string    `json:"customerId"`
	Rating     int       `json:"rating" binding:"required,min=1,max=5"`
	Comment    string    `json:"comment"`
	ReviewDate time.Time `json:"reviewDate"`
}

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	Repo reviewRepo.ReviewRepository
}

func (s *DefaultReviewService) AddReview(shopID string, req AddReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("AddReview: rating must be between 1 and 5")
	}
	when := req.ReviewDate
	if when.IsZero() {
		when = time.Now()
	}

	review := &models.Review{
		ID:         uuid.NewString(),
		ShopID:     shopID,
		CustomerID: req.CustomerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		ReviewDate: when,
	}
	if err := s.Repo.Create(review); err != nil {
		return nil, fmt.Errorf("AddReview: %w", err)
	}
	return review, nil
}

func (s *DefaultReviewService) ListReviews(shopID string, since time.Time) ([]models.Review, error) {
	return s.Repo.ListSince(shopID, since)
}

func (s *DefaultReviewService) ListUnanswered(shopID string, since time.Time) ([]models.Review, error) {
	return s.Repo.ListUnansweredSince(shopID, since)
}

// Respond stores the shop's reply to a review.
func (s *DefaultReviewService) Respond(shopID, reviewID, response string) (*models.Review, error) {
	if response == "" {
		return nil, fmt.Errorf("Respond: response must not be empty")
	}
	if err := s.Repo.SetResponse(shopID, reviewID, response, time.Now()); err != nil {
		return nil, fmt.Errorf("Respond: %w", err)
	}
	return s.Repo.GetByID(shopID, reviewID)
}
