package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	bookingRepo "homehero/database/repository/booking"
	"homehero/database/repository/mocks"
	"homehero/handlers"
	"homehero/models"
	"homehero/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func setupBookingRouter(repo bookingRepo.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewBookingHandler(repo, zap.NewNop())
	r.GET("/api/bookings/user/:email", h.ListByUser)
	r.GET("/api/bookings/:id", h.GetBookingByID)
	r.POST("/api/bookings", h.CreateBooking)
	r.PATCH("/api/bookings/:id/status", h.UpdateBookingStatus)
	r.DELETE("/api/bookings/:id", h.DeleteBooking)
	return r
}

func validBookingBody() map[string]interface{} {
	return map[string]interface{}{
		"serviceId":   primitive.NewObjectID().Hex(),
		"serviceName": "Deep Home Cleaning",
		"userEmail":   "dana@example.com",
		"bookingDate": "2025-07-01",
		"price":       120,
	}
}

func TestListBookingsByUser_EmptyResultIsOK(t *testing.T) {
	repo := new(mocks.MockBookingRepository)
	repo.On("ListByUser", mock.Anything, "nobody@example.com").Return([]models.Booking{}, nil)

	w := doJSON(setupBookingRouter(repo), http.MethodGet, "/api/bookings/user/nobody@example.com", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetBookingByID_MalformedID(t *testing.T) {
	repo := new(mocks.MockBookingRepository)

	w := doJSON(setupBookingRouter(repo), http.MethodGet, "/api/bookings/bogus", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "GetByID")
}

func TestGetBookingByID_NotFound(t *testing.T) {
	repo := new(mocks.MockBookingRepository)
	repo.On("GetByID", mock.Anything, mock.Anything).Return(nil, bookingRepo.ErrNotFound)

	w := doJSON(setupBookingRouter(repo), http.MethodGet, "/api/bookings/"+primitive.NewObjectID().Hex(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBooking_Success(t *testing.T) {
	id := primitive.NewObjectID()
	repo := new(mocks.MockBookingRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(b *models.Booking) bool {
		return b.UserEmail == "dana@example.com" && b.Price == 120 && b.Status == ""
	})).Return(id, nil)

	w := doJSON(setupBookingRouter(repo), http.MethodPost, "/api/bookings", validBookingBody())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Booking created successfully", resp["message"])
	assert.Equal(t, id.Hex(), resp["bookingId"])
}

func TestCreateBooking_MissingFieldsAreListed(t *testing.T) {
	repo := new(mocks.MockBookingRepository)

	w := doJSON(setupBookingRouter(repo), http.MethodPost, "/api/bookings",
		map[string]interface{}{"serviceName": "Deep Home Cleaning"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp utils.ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required fields", resp.Error)
	assert.ElementsMatch(t, []string{"serviceId", "userEmail", "bookingDate", "price"}, resp.MissingFields)
	repo.AssertNotCalled(t, "Create")
}

func TestCreateBooking_InvalidInitialStatus(t *testing.T) {
	repo := new(mocks.MockBookingRepository)

	body := validBookingBody()
	body["status"] = "archived"
	w := doJSON(setupBookingRouter(repo), http.MethodPost, "/api/bookings", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Create")
}

func TestUpdateBookingStatus_Success(t *testing.T) {
	id := primitive.NewObjectID()
	repo := new(mocks.MockBookingRepository)
	repo.On("UpdateStatus", mock.Anything, id, "confirmed").Return(nil)

	w := doJSON(setupBookingRouter(repo), http.MethodPatch, "/api/bookings/"+id.Hex()+"/status",
		map[string]interface{}{"status": "confirmed"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp["status"])
}

func TestUpdateBookingStatus_InvalidStatus(t *testing.T) {
	repo := new(mocks.MockBookingRepository)

	w := doJSON(setupBookingRouter(repo), http.MethodPatch,
		"/api/bookings/"+primitive.NewObjectID().Hex()+"/status",
		map[string]interface{}{"status": "archived"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "UpdateStatus")
}

func TestUpdateBookingStatus_NotFound(t *testing.T) {
	repo := new(mocks.MockBookingRepository)
	repo.On("UpdateStatus", mock.Anything, mock.Anything, "cancelled").Return(bookingRepo.ErrNotFound)

	w := doJSON(setupBookingRouter(repo), http.MethodPatch,
		"/api/bookings/"+primitive.NewObjectID().Hex()+"/status",
		map[string]interface{}{"status": "cancelled"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteBooking_Success(t *testing.T) {
	id := primitive.NewObjectID()
	repo := new(mocks.MockBookingRepository)
	repo.On("Delete", mock.Anything, id).Return(nil)

	w := doJSON(setupBookingRouter(repo), http.MethodDelete, "/api/bookings/"+id.Hex(), nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Booking cancelled successfully", resp["message"])
}

func TestDeleteBooking_NotFound(t *testing.T) {
	repo := new(mocks.MockBookingRepository)
	repo.On("Delete", mock.Anything, mock.Anything).Return(bookingRepo.ErrNotFound)

	w := doJSON(setupBookingRouter(repo), http.MethodDelete, "/api/bookings/"+primitive.NewObjectID().Hex(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
