package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// DiagnosticsHandler exposes the connectivity probe.
type DiagnosticsHandler struct {
	service DetectionService
	logger  *slog.Logger
}

func NewDiagnosticsHandler(service DetectionService, logger *slog.Logger) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		service: service,
		logger:  logger,
	}
}

// TestResponse is the successful probe result.
type TestResponse struct {
	Success     bool   `json:"success"`
	FaceCount   int    `json:"faceCount"`
	SampleImage string `json:"sampleImage"`
}

// TestVision GET /api/test-azure - issues a canned detection against a fixed
// public sample image to validate connectivity and credential validity.
func (h *DiagnosticsHandler) TestVision(c *fiber.Ctx) error {
	count, err := h.service.TestConnectivity(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(TestResponse{
		Success:     true,
		FaceCount:   count,
		SampleImage: h.service.SampleImageURL(),
	})
}
