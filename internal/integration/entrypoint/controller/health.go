// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	storeHealthCheck func() bool
	startedAt        time.Time
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Store     string `json:"store"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(storeHealthCheck func() bool) *HealthController {
	return &HealthController{
		storeHealthCheck: storeHealthCheck,
		startedAt:        time.Now(),
	}
}

// Check handles GET /health requests. It reports whether the local
// tracker store is reachable.
func (h *HealthController) Check(c *gin.Context) {
	storeStatus := "disconnected"
	if h.storeHealthCheck != nil && h.storeHealthCheck() {
		storeStatus = "connected"
	}

	response := HealthResponse{
		Status:    "ok",
		Store:     storeStatus,
		Uptime:    time.Since(h.startedAt).Round(time.Second).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, response)
}
