package campaign

import (
	"context"
	"fmt"
	"time"

	campaignRepo "trimly/database/repository/campaign"
	"trimly/models"
	"trimly/services/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// CampaignService manages marketing campaigns and their media.
type CampaignService interface {
	CreateCampaign(shopID string, req CreateCampaignRequest) (*models.Campaign, error)
	GetCampaign(shopID, id string) (*models.Campaign, error)
	ListCampaigns(shopID string) ([]models.Campaign, error)
	UpdateCampaign(shopID, id string, req UpdateCampaignRequest) (*models.Campaign, error)
	DeleteCampaign(shopID, id string) error
	AttachImage(ctx context.Context, shopID, id, localFilePath string) (*models.Campaign, error)
}

// CreateCampaignRequest carries the fields accepted when creating a campaign.
type CreateCampaignRequest struct {
	Name     string     `json:"name" binding:"required"`
	Channel  string     `json:"channel"`
	Message  string     `json:"message"`
	StartsAt *time.Time `json:"startsAt"`
	EndsAt   *time.Time `json:"endsAt"`
}

// UpdateCampaignRequest carries the mutable campaign fields.
type UpdateCampaignRequest struct {
	Name    string                `json:"name"`
	Channel string                `json:"channel"`
	Message string                `json:"message"`
	Status  models.CampaignStatus `json:"status"`
}

// DefaultCampaignService implements CampaignService.
type DefaultCampaignService struct {
	Repo    campaignRepo.CampaignRepository
	Storage storage.StorageService // optional; image uploads fail without it
}

func (s *DefaultCampaignService) CreateCampaign(shopID string, req CreateCampaignRequest) (*models.Campaign, error) {
	campaign := &models.Campaign{
		ID:       uuid.NewString(),
		ShopID:   shopID,
		Name:     req.Name,
		Channel:  req.Channel,
		Message:  req.Message,
		Status:   models.CampaignDraft,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
	}
	if err := s.Repo.Create(campaign); err != nil {
		return nil, fmt.Errorf("CreateCampaign: %w", err)
	}
	return campaign, nil
}

func (s *DefaultCampaignService) GetCampaign(shopID, id string) (*models.Campaign, error) {
	return s.Repo.GetByID(shopID, id)
}

func (s *DefaultCampaignService) ListCampaigns(shopID string) ([]models.Campaign, error) {
	return s.Repo.ListByShop(shopID)
}

func (s *DefaultCampaignService) UpdateCampaign(shopID, id string, req UpdateCampaignRequest) (*models.Campaign, error) {
	updateDoc := bson.M{}
	if req.Name != "" {
		updateDoc["name"] = req.Name
	}
	if req.Channel != "" {
		updateDoc["channel"] = req.Channel
	}
	if req.Message != "" {
		updateDoc["message"] = req.Message
	}
	if req.Status != "" {
		switch req.Status {
		case models.CampaignDraft, models.CampaignActive, models.CampaignCompleted:
			updateDoc["status"] = req.Status
		default:
			return nil, fmt.Errorf("UpdateCampaign: unknown status %q", req.Status)
		}
	}
	if len(updateDoc) == 0 {
		return nil, fmt.Errorf("UpdateCampaign: no updatable fields provided")
	}

	if err := s.Repo.UpdateSetDocument(shopID, id, updateDoc); err != nil {
		return nil, fmt.Errorf("UpdateCampaign: %w", err)
	}
	return s.Repo.GetByID(shopID, id)
}

func (s *DefaultCampaignService) DeleteCampaign(shopID, id string) error {
	return s.Repo.Delete(shopID, id)
}

// AttachImage uploads a local file to storage and links it to the campaign.
func (s *DefaultCampaignService) AttachImage(ctx context.Context, shopID, id, localFilePath string) (*models.Campaign, error) {
	if s.Storage == nil {
		return nil, fmt.Errorf("AttachImage: storage service not configured")
	}

	publicID, err := s.Storage.UploadFile(ctx, localFilePath, "campaigns/"+shopID)
	if err != nil {
		return nil, fmt.Errorf("AttachImage: %w", err)
	}
	url, err := s.Storage.GetDownloadURL(ctx, "image", publicID, 0)
	if err != nil {
		return nil, fmt.Errorf("AttachImage: %w", err)
	}

	if err := s.Repo.UpdateSetDocument(shopID, id, bson.M{"imageUrl": url}); err != nil {
		return nil, fmt.Errorf("AttachImage: %w", err)
	}
	return s.Repo.GetByID(shopID, id)
}
