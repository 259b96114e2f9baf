package handlers

import (
	"net/http"

	"github.com/chatappointment/services/internal/services"
	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	info *services.InfoService
}

func NewServiceHandler(info *services.InfoService) *ServiceHandler {
	return &ServiceHandler{info: info}
}

// ServiceName is also the swagger instance the service's docs live under.
func (h *ServiceHandler) ServiceName() string {
	return h.info.Descriptor().Name
}

// HealthCheck handles GET /health
// @Summary Health check
// @Description Reports that the service process is up
// @Tags system
// @Produce json
// @Success 200 {object} models.HealthStatus
// @Router /health [get]
func (h *ServiceHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, h.info.Health())
}

// GetInfo handles GET /
// @Summary Service info
// @Description Returns the service name and version
// @Tags system
// @Produce json
// @Success 200 {object} models.ServiceInfo
// @Router / [get]
func (h *ServiceHandler) GetInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.info.Info())
}
