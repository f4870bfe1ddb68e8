package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FabricioSoica/Front-MindCase/internal/service"
)

const backendProbeTimeout = 2 * time.Second

// HealthHandler handles health check requests. The only dependency worth
// probing is the blog backend, reached through the article service.
type HealthHandler struct {
	articles service.ArticleServiceInterface
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(articles service.ArticleServiceInterface) *HealthHandler {
	return &HealthHandler{articles: articles}
}

// HealthResponse represents the response for health check endpoints.
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services,omitempty"`
}

// Health handles GET /health - reports backend reachability.
func (h *HealthHandler) Health(c *gin.Context) {
	services := map[string]string{
		"backend": "healthy",
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), backendProbeTimeout)
	defer cancel()

	// The probe runs outside any browser session, so no token is attached.
	if _, err := h.articles.List(ctx, "", 1, 1); err != nil {
		services["backend"] = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Services: services,
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Services: services,
	})
}

// Ready handles GET /ready - readiness probe.
func (h *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live handles GET /live - liveness probe.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
