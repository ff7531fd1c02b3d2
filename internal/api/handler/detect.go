package handler

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/AmoghShukla/VisionID/internal/domain"
)

// DetectionService is the surface the handlers need from the service layer.
type DetectionService interface {
	Detect(ctx context.Context, req domain.DetectRequest) ([]domain.Face, error)
	TestConnectivity(ctx context.Context) (int, error)
	SampleImageURL() string
}

// DetectHandler handles detection requests.
type DetectHandler struct {
	service DetectionService
	logger  *slog.Logger
}

func NewDetectHandler(service DetectionService, logger *slog.Logger) *DetectHandler {
	return &DetectHandler{
		service: service,
		logger:  logger,
	}
}

// Detect POST /api/detect-faces - run face detection on one image.
// The response body is the provider's detection array relayed verbatim.
func (h *DetectHandler) Detect(c *fiber.Ctx) error {
	var req domain.DetectRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrInvalidRequestBody.WithError(err)
	}

	faces, err := h.service.Detect(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(faces)
}
