package domain

import (
	"fmt"
)

// AppError is the single error currency of the proxy. Suggestion carries the
// actionable hint for upstream failures; Details carries the raw downstream
// error text for diagnostics.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
	Details    string `json:"details,omitempty"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

func (e *AppError) WithDetails(details string) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// WithStatus overrides the caller-facing status, used to relay the exact
// status code reported by the external service.
func (e *AppError) WithStatus(status int) *AppError {
	clone := *e
	clone.StatusCode = status
	return &clone
}

// Input validation errors, raised locally before any call to the external
// service.
var (
	ErrMissingImage = &AppError{
		Code:       "MISSING_IMAGE",
		Message:    "Request must include imageUrl or imageData",
		StatusCode: 400,
	}

	ErrAmbiguousImage = &AppError{
		Code:       "AMBIGUOUS_IMAGE",
		Message:    "Provide imageUrl or imageData, not both",
		StatusCode: 400,
	}

	ErrImageTooSmall = &AppError{
		Code:       "IMAGE_TOO_SMALL",
		Message:    "Image data is below the 1 KB minimum size",
		StatusCode: 400,
	}

	ErrImageTooLarge = &AppError{
		Code:       "IMAGE_TOO_LARGE",
		Message:    "Image data exceeds the 6 MB maximum size",
		StatusCode: 400,
	}

	ErrInvalidImageData = &AppError{
		Code:       "INVALID_IMAGE_DATA",
		Message:    "Image data is not valid base64",
		StatusCode: 400,
	}

	ErrInvalidImageURL = &AppError{
		Code:       "INVALID_IMAGE_URL",
		Message:    "Image URL is not a valid http(s) URL",
		StatusCode: 400,
	}

	ErrInvalidRequestBody = &AppError{
		Code:       "INVALID_REQUEST_BODY",
		Message:    "Request body is not valid JSON",
		StatusCode: 400,
	}
)

// External service errors, relayed with the upstream status code where one
// is available.
var (
	ErrUpstreamInvalidURL = &AppError{
		Code:       "UPSTREAM_INVALID_URL",
		Message:    "The vision service could not fetch the image URL",
		Suggestion: "Check that the image URL is publicly reachable and points to an image file",
		StatusCode: 400,
	}

	ErrUnsupportedFormat = &AppError{
		Code:       "UNSUPPORTED_IMAGE_FORMAT",
		Message:    "The vision service could not decode the image",
		Suggestion: "Use a JPEG, PNG, GIF or BMP image",
		StatusCode: 400,
	}

	ErrUpstreamInvalidSize = &AppError{
		Code:       "UPSTREAM_INVALID_SIZE",
		Message:    "The vision service rejected the image size",
		Suggestion: "The service accepts images between 1 KB and 6 MB",
		StatusCode: 400,
	}

	ErrUpstreamBadRequest = &AppError{
		Code:       "UPSTREAM_BAD_REQUEST",
		Message:    "The vision service rejected the request as malformed",
		Suggestion: "Check the submitted image and request parameters",
		StatusCode: 400,
	}

	ErrUpstreamUnauthorized = &AppError{
		Code:       "UPSTREAM_UNAUTHORIZED",
		Message:    "The vision service rejected the credential",
		Suggestion: "Verify the VISION_KEY credential and VISION_ENDPOINT region configuration",
		StatusCode: 401,
	}

	ErrUpstreamUnclassified = &AppError{
		Code:       "UPSTREAM_ERROR",
		Message:    "The vision service reported an error",
		Suggestion: "See details for the raw service response",
		StatusCode: 502,
	}

	ErrUpstreamUnavailable = &AppError{
		Code:       "UPSTREAM_UNAVAILABLE",
		Message:    "Could not reach the vision service",
		Suggestion: "Check network connectivity to the vision endpoint",
		StatusCode: 502,
	}

	ErrInternal = &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		StatusCode: 500,
	}
)
