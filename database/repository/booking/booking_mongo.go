package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homehero/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements Repository against the bookings collection.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a repository bound to the given collection.
func NewMongoBookingRepo(coll *mongo.Collection) *MongoBookingRepo {
	return &MongoBookingRepo{coll: coll}
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// ListByUser returns all bookings placed by the given user email.
func (r *MongoBookingRepo) ListByUser(ctx context.Context, email string) ([]models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		return nil, fmt.Errorf("failed to find user bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode user bookings: %w", err)
	}
	return bookings, nil
}

// GetByID returns a single booking document.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking %s: %w", id.Hex(), err)
	}
	return &booking, nil
}

// Create inserts a new booking document and returns its assigned id.
// Status defaults to pending when the caller left it empty.
func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) (primitive.ObjectID, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	if booking.Status == "" {
		booking.Status = models.BookingStatusPending
	}
	booking.CreatedAt = now
	booking.UpdatedAt = now

	result, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create booking: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	booking.ID = oid
	return oid, nil
}

// UpdateStatus replaces the booking's status. The caller validates the status
// against the enumerated set before the call reaches the store.
func (r *MongoBookingRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update booking %s status: %w", id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a booking document by id. This is a hard delete, distinct
// from a status transition to cancelled.
func (r *MongoBookingRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete booking %s: %w", id.Hex(), err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
