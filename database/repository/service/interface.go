package serviceRepo

import (
	"context"
	"errors"

	"homehero/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when no service matches the given id.
var ErrNotFound = errors.New("service not found")

// ListFilter narrows the services a List call returns. Zero values mean
// "no constraint"; price bounds are inclusive.
type ListFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Search   string
	Limit    int64
}

// Repository defines the persistence operations for services.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]models.Service, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error)
	ListByProvider(ctx context.Context, email string) ([]models.Service, error)
	Create(ctx context.Context, svc *models.Service) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	AddReview(ctx context.Context, id primitive.ObjectID, review models.Review) (*models.RatingSummary, error)
	TopRated(ctx context.Context, limit int64) ([]models.Service, error)
}
