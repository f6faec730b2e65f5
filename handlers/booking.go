package handlers

import (
	"errors"
	"net/http"

	bookingRepo "homehero/database/repository/booking"
	"homehero/models"
	"homehero/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// BookingHandler exposes the bookings collection over HTTP.
type BookingHandler struct {
	Repo   bookingRepo.Repository
	Logger *zap.Logger
}

func NewBookingHandler(repo bookingRepo.Repository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Repo: repo, Logger: logger}
}

// ListByUser handles GET /api/bookings/user/:email.
func (h *BookingHandler) ListByUser(c *gin.Context) {
	email := c.Param("email")

	bookings, err := h.Repo.ListByUser(c.Request.Context(), email)
	if err != nil {
		h.Logger.Error("Error fetching user bookings", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingByID handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	booking, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
			return
		}
		h.Logger.Error("Error fetching booking", zap.String("id", id.Hex()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch booking")
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if missing := req.MissingFields(); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse{
			Error:         "Missing required fields",
			MissingFields: missing,
		})
		return
	}
	if req.Status != "" && !models.IsValidBookingStatus(req.Status) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status")
		return
	}

	booking := req.ToModel()
	id, err := h.Repo.Create(c.Request.Context(), &booking)
	if err != nil {
		h.Logger.Error("Error creating booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Booking created successfully",
		"bookingId": id.Hex(),
	})
}

// UpdateBookingStatus handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !models.IsValidBookingStatus(req.Status) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status")
		return
	}

	if err := h.Repo.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
			return
		}
		h.Logger.Error("Error updating booking status", zap.String("id", id.Hex()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update booking status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking status updated successfully",
		"status":  req.Status,
	})
}

// DeleteBooking handles DELETE /api/bookings/:id. The record is removed
// outright; callers wanting a soft cancel use the status endpoint instead.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
			return
		}
		h.Logger.Error("Error cancelling booking", zap.String("id", id.Hex()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to cancel booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully"})
}
