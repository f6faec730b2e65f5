package routes

import (
	"time"

	"homehero/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles the handler sets the router wires up.
type Handlers struct {
	Service *handlers.ServiceHandler
	Booking *handlers.BookingHandler
	Health  *handlers.HealthHandler
}

// RegisterServiceRoutes registers the service CRUD and query endpoints.
func RegisterServiceRoutes(r *gin.Engine, h *handlers.ServiceHandler) {
	api := r.Group("/api/services")
	{
		api.GET("", h.ListServices)
		api.GET("/:id", h.GetServiceByID)
		api.GET("/provider/:email", h.ListByProvider)
		api.GET("/top-rated/list", h.TopRatedServices)
		api.POST("", h.CreateService)
		api.PUT("/:id", h.UpdateService)
		api.DELETE("/:id", h.DeleteService)
		api.POST("/:id/review", h.AddReview)
	}
}

// RegisterBookingRoutes registers the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	api := r.Group("/api/bookings")
	{
		api.GET("/user/:email", h.ListByUser)
		api.GET("/:id", h.GetBookingByID)
		api.POST("", h.CreateBooking)
		api.PATCH("/:id/status", h.UpdateBookingStatus)
		api.DELETE("/:id", h.DeleteBooking)
	}
}

// RegisterHealthRoutes registers the liveness and health-check endpoints.
func RegisterHealthRoutes(r *gin.Engine, h *handlers.HealthHandler) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
}

// RegisterRoutes centralizes registration of all endpoints and CORS.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterServiceRoutes(r, h.Service)
	RegisterBookingRoutes(r, h.Booking)
	RegisterHealthRoutes(r, h.Health)
}
