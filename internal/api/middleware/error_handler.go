package middleware

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/AmoghShukla/VisionID/internal/domain"
)

// errorBody is the wire shape for every failure: a human-readable message,
// a machine code, and, for upstream failures, a suggestion plus the raw
// downstream detail.
type errorBody struct {
	Error      string `json:"error"`
	Code       string `json:"code,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
	Details    string `json:"details,omitempty"`
}

// ErrorHandler converts every error escaping a handler into a structured
// JSON response. Nothing propagates as a process-level failure.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(errorBody{
				Error: fiberErr.Message,
				Code:  "HTTP_ERROR",
			})
		}

		var appErr *domain.AppError
		if errors.As(err, &appErr) {
			if appErr.StatusCode >= 500 {
				logger.Error("upstream or internal error",
					slog.String("code", appErr.Code),
					slog.String("message", appErr.Message),
					slog.Any("error", appErr.Err),
				)
			}

			return c.Status(appErr.StatusCode).JSON(errorBody{
				Error:      appErr.Message,
				Code:       appErr.Code,
				Suggestion: appErr.Suggestion,
				Details:    appErr.Details,
			})
		}

		logger.Error("unhandled error",
			slog.Any("error", err),
			slog.String("path", c.Path()),
		)

		return c.Status(fiber.StatusInternalServerError).JSON(errorBody{
			Error: "An unexpected error occurred",
			Code:  "INTERNAL_ERROR",
		})
	}
}
