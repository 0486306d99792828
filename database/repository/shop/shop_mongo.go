package shopRepo

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

// MongoShopRepo implements ShopRepository using MongoDB.
type MongoShopRepo struct {
	coll *mongo.Collection
}

// NewMongoShopRepo creates a new instance of ShopRepository using MongoDB.
func NewMongoShopRepo() ShopRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("shops")
	repo := &MongoShopRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoShopRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a shop by its unique ID.
func (r *MongoShopRepo) GetByID(id string) (*models.Shop, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var shop models.Shop
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&shop); err != nil {
		return nil, fmt.Errorf("failed to fetch shop with id %s: %w", id, err)
	}
	return &shop, nil
}

// GetByEmail retrieves a shop by its owner email.
func (r *MongoShopRepo) GetByEmail(email string) (*models.Shop, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var shop models.Shop
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&shop); err != nil {
		return nil, fmt.Errorf("failed to fetch shop with email %s: %w", email, err)
	}
	return &shop, nil
}

// ListAll retrieves every shop.
func (r *MongoShopRepo) ListAll() ([]models.Shop, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query shops: %w", err)
	}
	defer cursor.Close(ctx)

	var shops []models.Shop
	if err := cursor.All(ctx, &shops); err != nil {
		return nil, fmt.Errorf("failed to decode shops: %w", err)
	}
	return shops, nil
}

// Create inserts a new shop document.
func (r *MongoShopRepo) Create(shop *models.Shop) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	shop.CreatedAt = now
	shop.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, shop); err != nil {
		return fmt.Errorf("failed to create shop: %w", err)
	}
	return nil
}

// Update modifies an existing shop document.
func (r *MongoShopRepo) Update(shop *models.Shop) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	shop.UpdatedAt = time.Now()
	filter := bson.M{"id": shop.ID}
	update := bson.M{"$set": shop}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update shop with id %s: %w", shop.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("shop with id %s not found", shop.ID)
	}
	return nil
}

// UpdateSetDocument applies a partial $set update by shop ID.
func (r *MongoShopRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	update := bson.M{"$set": updateDoc}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update shop with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("shop with id %s not found", id)
	}
	return nil
}

// Delete removes a shop document by its ID.
func (r *MongoShopRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete shop with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("shop with id %s not found", id)
	}
	return nil
}
