package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AmoghShukla/VisionID/internal/config"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// HealthResponse reports configuration presence, never configuration values.
type HealthResponse struct {
	Status             string `json:"status"`
	Provider           string `json:"provider"`
	EndpointConfigured bool   `json:"endpointConfigured"`
	KeyConfigured      bool   `json:"keyConfigured"`
}

// Health GET /api/health - configuration-presence status, no side effects.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:             "ok",
		Provider:           h.cfg.ProviderType,
		EndpointConfigured: h.cfg.VisionEndpoint != "",
		KeyConfigured:      h.cfg.VisionKey != "",
	})
}
