package azure

import (
	"errors"

	"github.com/AmoghShukla/VisionID/internal/domain"
)

var (
	ErrServiceUnavailable = errors.New("vision service unavailable")
	ErrInvalidResponse    = errors.New("invalid response from vision service")
)

// apiError is a structured failure reported by the vision service.
type apiError struct {
	Status  int
	Code    string
	Message string
	Raw     string
}

func (e *apiError) Error() string {
	return "vision service error " + e.Code + ": " + e.Message
}

// mapAPIError converts a service failure into the caller-facing taxonomy.
// The upstream status code is relayed as-is; the service's error code picks
// the suggestion text.
func mapAPIError(e *apiError) *domain.AppError {
	var appErr *domain.AppError

	switch e.Code {
	case "InvalidURL":
		appErr = domain.ErrUpstreamInvalidURL
	case "InvalidImage", "InvalidImageFormat":
		appErr = domain.ErrUnsupportedFormat
	case "InvalidImageSize":
		appErr = domain.ErrUpstreamInvalidSize
	case "BadArgument", "InvalidRequest":
		appErr = domain.ErrUpstreamBadRequest
	case "Unauthorized", "401":
		appErr = domain.ErrUpstreamUnauthorized
	default:
		if e.Status == 401 || e.Status == 403 {
			appErr = domain.ErrUpstreamUnauthorized
		} else {
			appErr = domain.ErrUpstreamUnclassified
		}
	}

	appErr = appErr.WithDetails(e.Raw).WithError(e)
	if e.Status > 0 {
		appErr = appErr.WithStatus(e.Status)
	}
	return appErr
}
