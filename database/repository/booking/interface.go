package bookingRepo

import (
	"context"
	"errors"

	"homehero/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

// Repository defines the persistence operations for bookings.
type Repository interface {
	ListByUser(ctx context.Context, email string) ([]models.Booking, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) (primitive.ObjectID, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
