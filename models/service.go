package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service represents a listed home service with its embedded reviews.
type Service struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ServiceName   string             `json:"serviceName" bson:"serviceName"`
	Category      string             `json:"category" bson:"category"`
	Price         float64            `json:"price" bson:"price"`
	Description   string             `json:"description" bson:"description"`
	ImageURL      string             `json:"imageURL" bson:"imageURL"`
	ProviderName  string             `json:"providerName" bson:"providerName"`
	ProviderEmail string             `json:"providerEmail" bson:"providerEmail"`
	ProviderImage string             `json:"providerImage,omitempty" bson:"providerImage,omitempty"`
	Reviews       []Review           `json:"reviews" bson:"reviews"`
	AverageRating float64            `json:"averageRating" bson:"averageRating"`
	TotalReviews  int                `json:"totalReviews" bson:"totalReviews"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Review is embedded in a service document and has no identity of its own.
type Review struct {
	Rating    int       `json:"rating" bson:"rating"`
	Comment   string    `json:"comment,omitempty" bson:"comment,omitempty"`
	UserName  string    `json:"userName,omitempty" bson:"userName,omitempty"`
	UserEmail string    `json:"userEmail,omitempty" bson:"userEmail,omitempty"`
	Date      time.Time `json:"date" bson:"date"`
}

// AverageRating returns the mean rating rounded to one decimal place,
// or 0 when there are no reviews.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum int
	for _, rv := range reviews {
		sum += rv.Rating
	}
	mean := float64(sum) / float64(len(reviews))
	return math.Round(mean*10) / 10
}

// RatingSummary reports the aggregate state after a review is appended.
type RatingSummary struct {
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`
}
