package campaignRepo

import (
	"context"
	"fmt"
	"time"

	"trimly/database"
	"trimly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCampaignRepo implements CampaignRepository using MongoDB.
type MongoCampaignRepo struct {
	coll *mongo.Collection
}

// NewMongoCampaignRepo creates a new instance of CampaignRepository using MongoDB.
func NewMongoCampaignRepo() CampaignRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("campaigns")
	repo := &MongoCampaignRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCampaignRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "shopId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a campaign by its unique ID.
func (r *MongoCampaignRepo) GetByID(shopID, id string) (*models.Campaign, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var campaign models.Campaign
	filter := bson.M{"id": id, "shopId": shopID}
	if err := r.coll.FindOne(ctx, filter).Decode(&campaign); err != nil {
		return nil, fmt.Errorf("failed to fetch campaign with id %s: %w", id, err)
	}
	return &campaign, nil
}

// ListByShop retrieves all campaigns of a shop, newest first.
func (r *MongoCampaignRepo) ListByShop(shopID string) ([]models.Campaign, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"shopId": shopID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query campaigns: %w", err)
	}
	defer cursor.Close(ctx)

	var campaigns []models.Campaign
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, fmt.Errorf("failed to decode campaigns: %w", err)
	}
	return campaigns, nil
}

// Create inserts a new campaign document.
func (r *MongoCampaignRepo) Create(campaign *models.Campaign) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	campaign.CreatedAt = now
	campaign.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, campaign); err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}
	return nil
}

// UpdateSetDocument applies a partial $set update by campaign ID.
func (r *MongoCampaignRepo) UpdateSetDocument(shopID, id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	update := bson.M{"$set": updateDoc}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id, "shopId": shopID}, update)
	if err != nil {
		return fmt.Errorf("failed to update campaign with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("campaign with id %s not found", id)
	}
	return nil
}

// Delete removes a campaign document by its ID.
func (r *MongoCampaignRepo) Delete(shopID, id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "shopId": shopID})
	if err != nil {
		return fmt.Errorf("failed to delete campaign with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("campaign with id %s not found", id)
	}
	return nil
}
