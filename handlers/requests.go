package handlers

import (
	"homehero/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Request bodies use pointer fields so that absent and zero-valued inputs can
// be told apart; validation failures report the exact set of missing fields.

// CreateServiceRequest is the body of POST /api/services.
type CreateServiceRequest struct {
	ServiceName   *string  `json:"serviceName"`
	Category      *string  `json:"category"`
	Price         *float64 `json:"price"`
	Description   *string  `json:"description"`
	ImageURL      *string  `json:"imageURL"`
	ProviderName  *string  `json:"providerName"`
	ProviderEmail *string  `json:"providerEmail"`
	ProviderImage *string  `json:"providerImage"`
}

// MissingFields lists every required field that is absent or empty.
func (r CreateServiceRequest) MissingFields() []string {
	missing := []string{}
	requireString(&missing, "serviceName", r.ServiceName)
	requireString(&missing, "category", r.Category)
	if r.Price == nil {
		missing = append(missing, "price")
	}
	requireString(&missing, "description", r.Description)
	requireString(&missing, "imageURL", r.ImageURL)
	requireString(&missing, "providerName", r.ProviderName)
	requireString(&missing, "providerEmail", r.ProviderEmail)
	return missing
}

// ToModel builds the service document to insert. Repository initialization
// covers reviews, rating aggregates and timestamps.
func (r CreateServiceRequest) ToModel() models.Service {
	svc := models.Service{
		ServiceName:   *r.ServiceName,
		Category:      *r.Category,
		Price:         *r.Price,
		Description:   *r.Description,
		ImageURL:      *r.ImageURL,
		ProviderName:  *r.ProviderName,
		ProviderEmail: *r.ProviderEmail,
	}
	if r.ProviderImage != nil {
		svc.ProviderImage = *r.ProviderImage
	}
	return svc
}

// UpdateServiceRequest is the body of PUT /api/services/:id. Only provided
// fields change; id, reviews, rating aggregates and createdAt are not
// client-mutable and have no counterpart here.
type UpdateServiceRequest struct {
	ServiceName   *string  `json:"serviceName"`
	Category      *string  `json:"category"`
	Price         *float64 `json:"price"`
	Description   *string  `json:"description"`
	ImageURL      *string  `json:"imageURL"`
	ProviderName  *string  `json:"providerName"`
	ProviderEmail *string  `json:"providerEmail"`
	ProviderImage *string  `json:"providerImage"`
}

// SetDocument returns the $set payload for the provided fields.
func (r UpdateServiceRequest) SetDocument() bson.M {
	set := bson.M{}
	setString(set, "serviceName", r.ServiceName)
	setString(set, "category", r.Category)
	if r.Price != nil {
		set["price"] = *r.Price
	}
	setString(set, "description", r.Description)
	setString(set, "imageURL", r.ImageURL)
	setString(set, "providerName", r.ProviderName)
	setString(set, "providerEmail", r.ProviderEmail)
	setString(set, "providerImage", r.ProviderImage)
	return set
}

// AddReviewRequest is the body of POST /api/services/:id/review.
type AddReviewRequest struct {
	Rating    *int   `json:"rating"`
	Comment   string `json:"comment"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

// ToModel builds the review to embed; the repository stamps the date.
func (r AddReviewRequest) ToModel() models.Review {
	return models.Review{
		Rating:    *r.Rating,
		Comment:   r.Comment,
		UserName:  r.UserName,
		UserEmail: r.UserEmail,
	}
}

// CreateBookingRequest is the body of POST /api/bookings.
type CreateBookingRequest struct {
	ServiceID   *string  `json:"serviceId"`
	ServiceName *string  `json:"serviceName"`
	UserEmail   *string  `json:"userEmail"`
	BookingDate *string  `json:"bookingDate"`
	Price       *float64 `json:"price"`
	Status      string   `json:"status"`
}

// MissingFields lists every required field that is absent or empty.
func (r CreateBookingRequest) MissingFields() []string {
	missing := []string{}
	requireString(&missing, "serviceId", r.ServiceID)
	requireString(&missing, "serviceName", r.ServiceName)
	requireString(&missing, "userEmail", r.UserEmail)
	requireString(&missing, "bookingDate", r.BookingDate)
	if r.Price == nil {
		missing = append(missing, "price")
	}
	return missing
}

// ToModel builds the booking document to insert.
func (r CreateBookingRequest) ToModel() models.Booking {
	return models.Booking{
		ServiceID:   *r.ServiceID,
		ServiceName: *r.ServiceName,
		UserEmail:   *r.UserEmail,
		BookingDate: *r.BookingDate,
		Price:       *r.Price,
		Status:      r.Status,
	}
}

// UpdateBookingStatusRequest is the body of PATCH /api/bookings/:id/status.
type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

func requireString(missing *[]string, name string, v *string) {
	if v == nil || *v == "" {
		*missing = append(*missing, name)
	}
}

func setString(set bson.M, name string, v *string) {
	if v != nil {
		set[name] = *v
	}
}
