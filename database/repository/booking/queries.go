package bookingRepo

import (
	"fmt"
	"time"

	"trimly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoBookingRepo) findBookings(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "scheduledAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// ListRange retrieves bookings scheduled within [from, to).
func (r *MongoBookingRepo) ListRange(shopID string, from, to time.Time) ([]models.Booking, error) {
	return r.findBookings(bson.M{
		"shopId":      shopID,
		"scheduledAt": bson.M{"$gte": from, "$lt": to},
	})
}

// ListByStatusSince retrieves bookings with the given status scheduled at or after since.
func (r *MongoBookingRepo) ListByStatusSince(shopID string, status models.BookingStatus, since time.Time) ([]models.Booking, error) {
	return r.findBookings(bson.M{
		"shopId":      shopID,
		"status":      status,
		"scheduledAt": bson.M{"$gte": since},
	})
}

// ListPendingOlderThan retrieves pending bookings created before the cutoff.
func (r *MongoBookingRepo) ListPendingOlderThan(shopID string, cutoff time.Time) ([]models.Booking, error) {
	return r.findBookings(bson.M{
		"shopId":    shopID,
		"status":    models.BookingPending,
		"createdAt": bson.M{"$lt": cutoff},
	})
}

// ListCompletedSince retrieves completed bookings updated at or after since.
func (r *MongoBookingRepo) ListCompletedSince(shopID string, since time.Time) ([]models.Booking, error) {
	return r.findBookings(bson.M{
		"shopId":    shopID,
		"status":    models.BookingCompleted,
		"updatedAt": bson.M{"$gte": since},
	})
}
