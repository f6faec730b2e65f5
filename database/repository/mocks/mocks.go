package mocks

import (
	"context"

	"homehero/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	serviceRepo "homehero/database/repository/service"
)

// MockServiceRepository is a testify mock for serviceRepo.Repository.
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) List(ctx context.Context, filter serviceRepo.ListFilter) ([]models.Service, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockServiceRepository) ListByProvider(ctx context.Context, email string) ([]models.Service, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockServiceRepository) Create(ctx context.Context, svc *models.Service) (primitive.ObjectID, error) {
	args := m.Called(ctx, svc)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockServiceRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	args := m.Called(ctx, id, set)
	return args.Error(0)
}

func (m *MockServiceRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockServiceRepository) AddReview(ctx context.Context, id primitive.ObjectID, review models.Review) (*models.RatingSummary, error) {
	args := m.Called(ctx, id, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RatingSummary), args.Error(1)
}

func (m *MockServiceRepository) TopRated(ctx context.Context, limit int64) ([]models.Service, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

// MockBookingRepository is a testify mock for bookingRepo.Repository.
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, email string) ([]models.Booking, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *models.Booking) (primitive.ObjectID, error) {
	args := m.Called(ctx, booking)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
