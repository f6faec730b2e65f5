package serviceRepo

import (
	"context"
	"testing"

	"homehero/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mockCollection struct {
	mock.Mock
}

func (m *mockCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.Cursor), args.Error(1)
}

func (m *mockCollection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
	args := m.Called(ctx, filter)
	return args.Get(0).(*mongo.SingleResult)
}

func (m *mockCollection) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, document)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.InsertOneResult), args.Error(1)
}

func (m *mockCollection) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, filter, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

func (m *mockCollection) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.DeleteResult), args.Error(1)
}

func singleResult(svc models.Service) *mongo.SingleResult {
	return mongo.NewSingleResultFromDocument(svc, nil, nil)
}

func TestCreate_InitializesAggregatesAndTimestamps(t *testing.T) {
	id := primitive.NewObjectID()
	coll := new(mockCollection)
	coll.On("InsertOne", mock.Anything, mock.AnythingOfType("*models.Service")).
		Return(&mongo.InsertOneResult{InsertedID: id}, nil)

	repo := &MongoServiceRepo{coll: coll}
	svc := models.Service{
		ServiceName: "Gutter Cleaning",
		// A pre-filled review must not survive creation.
		Reviews:       []models.Review{{Rating: 5}},
		AverageRating: 5,
		TotalReviews:  1,
	}
	got, err := repo.Create(context.Background(), &svc)

	assert.NoError(t, err)
	assert.Equal(t, id, got)
	assert.Empty(t, svc.Reviews)
	assert.Zero(t, svc.AverageRating)
	assert.Zero(t, svc.TotalReviews)
	assert.False(t, svc.CreatedAt.IsZero())
	assert.Equal(t, svc.CreatedAt, svc.UpdatedAt)
}

func TestAddReview_AppendsAndRecomputes(t *testing.T) {
	id := primitive.NewObjectID()
	existing := models.Service{
		ID:            id,
		ServiceName:   "Deep Home Cleaning",
		Reviews:       []models.Review{{Rating: 4, UserName: "Alex"}},
		AverageRating: 4.0,
		TotalReviews:  1,
	}

	coll := new(mockCollection)
	coll.On("FindOne", mock.Anything, bson.M{"_id": id}).Return(singleResult(existing)).Once()
	coll.On("UpdateOne", mock.Anything, bson.M{"_id": id, "totalReviews": 1},
		mock.MatchedBy(func(update bson.M) bool {
			set, ok := update["$set"].(bson.M)
			if !ok {
				return false
			}
			reviews, ok := set["reviews"].([]models.Review)
			return ok && len(reviews) == 2 &&
				reviews[1].Rating == 2 && !reviews[1].Date.IsZero() &&
				set["averageRating"] == 3.0 && set["totalReviews"] == 2
		})).Return(&mongo.UpdateResult{MatchedCount: 1}, nil).Once()

	repo := &MongoServiceRepo{coll: coll}
	summary, err := repo.AddReview(context.Background(), id, models.Review{Rating: 2})

	assert.NoError(t, err)
	assert.Equal(t, 3.0, summary.AverageRating)
	assert.Equal(t, 2, summary.TotalReviews)
	coll.AssertExpectations(t)
}

func TestAddReview_RetriesWhenConcurrentWriterWins(t *testing.T) {
	id := primitive.NewObjectID()
	first := models.Service{ID: id, Reviews: []models.Review{}, TotalReviews: 0}
	second := models.Service{
		ID:            id,
		Reviews:       []models.Review{{Rating: 4}},
		AverageRating: 4.0,
		TotalReviews:  1,
	}

	coll := new(mockCollection)
	// First attempt loses the race: the conditional write matches nothing.
	coll.On("FindOne", mock.Anything, bson.M{"_id": id}).Return(singleResult(first)).Once()
	coll.On("UpdateOne", mock.Anything, bson.M{"_id": id, "totalReviews": 0}, mock.Anything).
		Return(&mongo.UpdateResult{MatchedCount: 0}, nil).Once()
	// Second attempt re-reads the winner's state and succeeds.
	coll.On("FindOne", mock.Anything, bson.M{"_id": id}).Return(singleResult(second)).Once()
	coll.On("UpdateOne", mock.Anything, bson.M{"_id": id, "totalReviews": 1}, mock.Anything).
		Return(&mongo.UpdateResult{MatchedCount: 1}, nil).Once()

	repo := &MongoServiceRepo{coll: coll}
	summary, err := repo.AddReview(context.Background(), id, models.Review{Rating: 2})

	assert.NoError(t, err)
	assert.Equal(t, 3.0, summary.AverageRating)
	assert.Equal(t, 2, summary.TotalReviews)
	coll.AssertNumberOfCalls(t, "FindOne", 2)
	coll.AssertExpectations(t)
}

func TestAddReview_GivesUpAfterRepeatedConflicts(t *testing.T) {
	id := primitive.NewObjectID()
	svc := models.Service{ID: id, Reviews: []models.Review{}, TotalReviews: 0}

	coll := new(mockCollection)
	coll.On("FindOne", mock.Anything, bson.M{"_id": id}).Return(singleResult(svc))
	coll.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).
		Return(&mongo.UpdateResult{MatchedCount: 0}, nil)

	repo := &MongoServiceRepo{coll: coll}
	summary, err := repo.AddReview(context.Background(), id, models.Review{Rating: 5})

	assert.Nil(t, summary)
	assert.ErrorContains(t, err, "too many concurrent updates")
	coll.AssertNumberOfCalls(t, "UpdateOne", addReviewAttempts)
}

func TestAddReview_UnknownService(t *testing.T) {
	id := primitive.NewObjectID()
	coll := new(mockCollection)
	coll.On("FindOne", mock.Anything, bson.M{"_id": id}).
		Return(mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil))

	repo := &MongoServiceRepo{coll: coll}
	summary, err := repo.AddReview(context.Background(), id, models.Review{Rating: 5})

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, ErrNotFound)
	coll.AssertNotCalled(t, "UpdateOne")
}

func TestUpdate_UnknownServiceIsNotFound(t *testing.T) {
	id := primitive.NewObjectID()
	coll := new(mockCollection)
	coll.On("UpdateOne", mock.Anything, bson.M{"_id": id}, mock.Anything).
		Return(&mongo.UpdateResult{MatchedCount: 0}, nil)

	repo := &MongoServiceRepo{coll: coll}
	err := repo.Update(context.Background(), id, bson.M{"price": 99.0})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_UnknownServiceIsNotFound(t *testing.T) {
	id := primitive.NewObjectID()
	coll := new(mockCollection)
	coll.On("DeleteOne", mock.Anything, bson.M{"_id": id}).
		Return(&mongo.DeleteResult{DeletedCount: 0}, nil)

	repo := &MongoServiceRepo{coll: coll}
	err := repo.Delete(context.Background(), id)

	assert.ErrorIs(t, err, ErrNotFound)
}
