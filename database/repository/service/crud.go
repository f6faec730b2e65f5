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
)

// addReviewAttempts bounds the optimistic-concurrency retry loop in AddReview.
const addReviewAttempts = 3

// Create inserts a new service document and returns its assigned id.
// Reviews and rating aggregates are always initialized empty regardless of input.
func (r *MongoServiceRepo) Create(ctx context.Context, svc *models.Service) (primitive.ObjectID, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	svc.Reviews = []models.Review{}
	svc.AverageRating = 0
	svc.TotalReviews = 0
	svc.CreatedAt = now
	svc.UpdatedAt = now

	result, err := r.coll.InsertOne(ctx, svc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create service: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	svc.ID = oid
	return oid, nil
}

// Update applies a partial field merge to an existing service document.
// The caller is responsible for keeping immutable fields out of set.
func (r *MongoServiceRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	set["updatedAt"] = time.Now()

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update service %s: %w", id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a service document by id.
func (r *MongoServiceRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete service %s: %w", id.Hex(), err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddReview appends a review and recomputes averageRating/totalReviews.
//
// The append runs as an optimistic-concurrency loop: the write is conditioned
// on totalReviews still holding the value that was read, so two concurrent
// appends against the same service cannot overwrite each other. A lost race
// re-reads and retries.
func (r *MongoServiceRepo) AddReview(ctx context.Context, id primitive.ObjectID, review models.Review) (*models.RatingSummary, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	review.Date = time.Now()

	for attempt := 0; attempt < addReviewAttempts; attempt++ {
		var current models.Service
		err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&current)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to load service %s: %w", id.Hex(), err)
		}

		reviews := append(current.Reviews, review)
		summary := models.RatingSummary{
			AverageRating: models.AverageRating(reviews),
			TotalReviews:  len(reviews),
		}

		filter := bson.M{"_id": id, "totalReviews": current.TotalReviews}
		update := bson.M{"$set": bson.M{
			"reviews":       reviews,
			"averageRating": summary.AverageRating,
			"totalReviews":  summary.TotalReviews,
			"updatedAt":     time.Now(),
		}}

		result, err := r.coll.UpdateOne(ctx, filter, update)
		if err != nil {
			return nil, fmt.Errorf("failed to append review to service %s: %w", id.Hex(), err)
		}
		if result.MatchedCount > 0 {
			return &summary, nil
		}
		// Another writer appended between our read and write; go again.
	}

	return nil, fmt.Errorf("failed to append review to service %s: too many concurrent updates", id.Hex())
}
