package handlers

import (
	"errors"
	"net/http"
	"strconv"

	serviceRepo "homehero/database/repository/service"
	"homehero/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// defaultTopRatedLimit caps the top-rated listing when no limit is given.
const defaultTopRatedLimit = 6

// ServiceHandler exposes the service collection over HTTP.
type ServiceHandler struct {
	Repo   serviceRepo.Repository
	Logger *zap.Logger
}

func NewServiceHandler(repo serviceRepo.Repository, logger *zap.Logger) *ServiceHandler {
	return &ServiceHandler{Repo: repo, Logger: logger}
}

// ListServices handles GET /api/services with optional limit and filters.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	var filter serviceRepo.ListFilter

	filter.Category = c.Query("category")
	filter.Search = c.Query("search")

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		filter.Limit = limit
	}
	if raw := c.Query("minPrice"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid minPrice")
			return
		}
		filter.MinPrice = &min
	}
	if raw := c.Query("maxPrice"); raw != "" {
		max, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid maxPrice")
			return
		}
		filter.MaxPrice = &max
	}

	services, err := h.Repo.List(c.Request.Context(), filter)
	if err != nil {
		h.Logger.Error("Error fetching services", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetServiceByID handles GET /api/services/:id.
func (h *ServiceHandler) GetServiceByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	svc, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Service not found")
			return
		}
		h.Logger.Error("Error fetching service", zap.String("id", id.Hex()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch service")
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ListByProvider handles GET /api/services/provider/:email.
func (h *ServiceHandler) ListByProvider(c *gin.Context) {
	email := c.Param("email")

	services, err := h.Repo.ListByProvider(c.Request.Context(), email)
	if err != nil {
		h.Logger.Error("Error fetching provider services", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch provider services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// TopRatedServices handles GET /api/services/top-rated/list.
func (h *ServiceHandler) TopRatedServices(c *gin.Context) {
	limit := int64(defaultTopRatedLimit)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	services, err := h.Repo.TopRated(c.Request.Context(), limit)
	if err != nil {
		h.Logger.Error("Error fetching top rated services", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch top rated services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// CreateService handles POST /api/services.
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
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
	if *req.Price < 0 {
		utils.JSONError(c, http.StatusBadRequest, "Price must not be negative")
		return
	}

	svc := req.ToModel()
	id, err := h.Repo.Create(c.Request.Context(), &svc)
	if err != nil {
		h.Logger.Error("Error creating service", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Service created successfully",
		"serviceId": id.Hex(),
	})
}

// UpdateService handles PUT /api/services/:id.
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Price != nil && *req.Price < 0 {
		utils.JSONError(c, http.StatusBadRequest, "Price must not be negative")
		return
	}

	if err := h.Repo.Update(c.Request.Context(), id, req.SetDocument()); err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Service not found")
			return
		}
		h.Logger.Error("Error updating service", zap.String("id", id.Hex()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service updated successfully"})
}

// DeleteService handles DELETE /api/services/:id.
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Service not found")
			return
		}
		h.Logger.Error("Error deleting service", zap.String("id", id.Hex()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

// AddReview handles POST /api/services/:id/review.
func (h *ServiceHandler) AddReview(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Rating == nil || *req.Rating < 1 || *req.Rating > 5 {
		utils.JSONError(c, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	summary, err := h.Repo.AddReview(c.Request.Context(), id, req.ToModel())
	if err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Service not found")
			return
		}
		h.Logger.Error("Error adding review", zap.String("id", id.Hex()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to add review")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Review added successfully",
		"averageRating": summary.AverageRating,
		"totalReviews":  summary.TotalReviews,
	})
}
