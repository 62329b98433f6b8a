package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	storageEnabled bool
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(storageEnabled bool) *HealthHandler {
	return &HealthHandler{storageEnabled: storageEnabled}
}

// Liveness handles GET /health
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "storage": h.storageEnabled})
}
