package serviceRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homehero/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// List returns services matching the given filter, in the store's natural order.
func (r *MongoServiceRepo) List(ctx context.Context, filter ListFilter) ([]models.Service, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find()
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := r.coll.Find(ctx, buildListFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find services: %w", err)
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

// GetByID returns a single service document.
func (r *MongoServiceRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var svc models.Service
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&svc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get service %s: %w", id.Hex(), err)
	}
	return &svc, nil
}

// ListByProvider returns all services owned by the given provider email.
func (r *MongoServiceRepo) ListByProvider(ctx context.Context, email string) ([]models.Service, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"providerEmail": email})
	if err != nil {
		return nil, fmt.Errorf("failed to find provider services: %w", err)
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode provider services: %w", err)
	}
	return services, nil
}

// TopRated returns reviewed services ordered by averageRating descending,
// ties broken by totalReviews descending.
func (r *MongoServiceRepo) TopRated(ctx context.Context, limit int64) ([]models.Service, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{
			{Key: "averageRating", Value: -1},
			{Key: "totalReviews", Value: -1},
		}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{"totalReviews": bson.M{"$gt": 0}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find top rated services: %w", err)
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode top rated services: %w", err)
	}
	return services, nil
}
