package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jpdelos/creative-marketplace/pkg/kv"
	"github.com/jpdelos/creative-marketplace/pkg/response"
)

// HealthHandler exposes liveness and readiness probes.
type HealthHandler struct {
	store kv.Store
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(store kv.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health handles GET /health. Liveness only; reports nothing about
// downstream dependencies.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(gin.H{
		"status": "ok",
	}))
}

// Ready handles GET /ready. The service is ready once the tenant store
// answers a ping.
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, response.ServiceUnavailable("tenant store unreachable"))
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{
		"status": "ready",
	}))
}
