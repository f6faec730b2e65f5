package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthHandler answers the liveness and health-check endpoints.
type HealthHandler struct {
	Client *mongo.Client
}

func NewHealthHandler(client *mongo.Client) *HealthHandler {
	return &HealthHandler{Client: client}
}

// Root handles GET /.
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "HomeHero Server is Running")
}

// Health handles GET /health and reflects a live database ping.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	database := "Connected"
	if err := h.Client.Ping(ctx, nil); err != nil {
		database = "Disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
