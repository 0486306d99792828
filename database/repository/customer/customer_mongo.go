package customerRepo

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

// MongoCustomerRepo implements CustomerRepository using MongoDB.
type MongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo creates a new instance of CustomerRepository using MongoDB.
func NewMongoCustomerRepo() CustomerRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("customers")
	repo := &MongoCustomerRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCustomerRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "shopId", Value: 1}, {Key: "createdAt", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a customer by its unique ID.
func (r *MongoCustomerRepo) GetByID(shopID, id string) (*models.Customer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var customer models.Customer
	filter := bson.M{"id": id, "shopId": shopID}
	if err := r.coll.FindOne(ctx, filter).Decode(&customer); err != nil {
		return nil, fmt.Errorf("failed to fetch customer with id %s: %w", id, err)
	}
	return &customer, nil
}

func (r *MongoCustomerRepo) findCustomers(filter bson.M) ([]models.Customer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("failed to decode customers: %w", err)
	}
	return customers, nil
}

// ListByShop retrieves all customers of a shop.
func (r *MongoCustomerRepo) ListByShop(shopID string) ([]models.Customer, error) {
	return r.findCustomers(bson.M{"shopId": shopID})
}

// ListCreatedSince retrieves customers created at or after since.
func (r *MongoCustomerRepo) ListCreatedSince(shopID string, since time.Time) ([]models.Customer, error) {
	return r.findCustomers(bson.M{
		"shopId":    shopID,
		"createdAt": bson.M{"$gte": since},
	})
}

// Create inserts a new customer document.
func (r *MongoCustomerRepo) Create(customer *models.Customer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, customer); err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// Update modifies an existing customer document.
func (r *MongoCustomerRepo) Update(customer *models.Customer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	customer.UpdatedAt = time.Now()
	filter := bson.M{"id": customer.ID, "shopId": customer.ShopID}
	update := bson.M{"$set": customer}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update customer with id %s: %w", customer.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("customer with id %s not found", customer.ID)
	}
	return nil
}

// Delete removes a customer document by its ID.
func (r *MongoCustomerRepo) Delete(shopID, id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "shopId": shopID})
	if err != nil {
		return fmt.Errorf("failed to delete customer with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("customer with id %s not found", id)
	}
	return nil
}

// RecordVisit bumps visit counters after a completed booking.
func (r *MongoCustomerRepo) RecordVisit(shopID, id string, spent float64, at time.Time) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "shopId": shopID}
	update := bson.M{
		"$inc": bson.M{"totalVisits": 1, "totalSpent": spent},
		"$set": bson.M{"lastVisit": at, "updatedAt": time.Now()},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to record visit for customer %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("customer with id %s not found", id)
	}
	return nil
}
