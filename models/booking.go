package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking statuses. Any valid status may replace any other; there is no
// enforced transition graph.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a user's booking of a service.
type Booking struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ServiceID   string             `json:"serviceId" bson:"serviceId"`
	ServiceName string             `json:"serviceName" bson:"serviceName"`
	UserEmail   string             `json:"userEmail" bson:"userEmail"`
	BookingDate string             `json:"bookingDate" bson:"bookingDate"`
	Price       float64            `json:"price" bson:"price"`
	Status      string             `json:"status" bson:"status"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// IsValidBookingStatus reports whether s is one of the enumerated statuses.
func IsValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}
