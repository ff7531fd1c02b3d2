package service

import (
	"net/url"

	"github.com/AmoghShukla/VisionID/internal/domain"
)

// validateImageURL checks that a remote image reference is an absolute
// http(s) URL with a host. Anything else is rejected locally rather than
// forwarded for the external service to choke on.
func validateImageURL(imageURL string) error {
	parsed, err := url.Parse(imageURL)
	if err != nil {
		return domain.ErrInvalidImageURL.WithError(err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return domain.ErrInvalidImageURL
	}
	if parsed.Host == "" {
		return domain.ErrInvalidImageURL
	}
	return nil
}
