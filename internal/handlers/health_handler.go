package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler answers liveness probes.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.Check)
}

// Check reports that the service is up.
func (h *HealthHandler) Check(c *gin.Context) {
	c.String(http.StatusOK, "CNC Engine is Running!")
}
