package serviceRepo

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// servicesCollection is the subset of *mongo.Collection the repository uses.
type servicesCollection interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

// MongoServiceRepo implements Repository against the services collection.
type MongoServiceRepo struct {
	coll servicesCollection
}

// NewMongoServiceRepo returns a repository bound to the given collection.
func NewMongoServiceRepo(coll *mongo.Collection) *MongoServiceRepo {
	return &MongoServiceRepo{coll: coll}
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// buildListFilter translates a ListFilter into a MongoDB query document.
func buildListFilter(f ListFilter) bson.M {
	query := bson.M{}

	if f.Category != "" {
		query["category"] = f.Category
	}

	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		query["price"] = price
	}

	if f.Search != "" {
		// Quote the term so the match is a plain case-insensitive substring,
		// not a user-supplied regular expression.
		pattern := regexp.QuoteMeta(f.Search)
		query["$or"] = bson.A{
			bson.M{"serviceName": primitive.Regex{Pattern: pattern, Options: "i"}},
			bson.M{"category": primitive.Regex{Pattern: pattern, Options: "i"}},
			bson.M{"description": primitive.Regex{Pattern: pattern, Options: "i"}},
		}
	}

	return query
}
