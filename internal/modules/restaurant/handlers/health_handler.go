package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	serviceName    = "Restaurant Analytics API"
	serviceVersion = "1.0.0"
)

type HealthHandler struct {
	providerName string
}

func NewHealthHandler(providerName string) *HealthHandler {
	return &HealthHandler{providerName: providerName}
}

// GetRoot godoc
// @Summary Service banner
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) GetRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":    serviceName,
		"version": serviceVersion,
	})
}

// GetHealth godoc
// @Summary Service health check
// @Description Check if API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"ok":       true,
		"time":     time.Now().UTC().Format(time.RFC3339),
		"provider": h.providerName,
	})
}
