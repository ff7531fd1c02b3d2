package provider

import (
	"context"

	"github.com/AmoghShukla/VisionID/internal/domain"
)

// FaceProvider is the contract for an external face-detection service. Both
// operations request geometric landmarks but never identity tokens or
// attribute recognition, which need elevated service authorization.
type FaceProvider interface {
	// DetectURL submits a dereferenceable remote image URL.
	DetectURL(ctx context.Context, imageURL string) ([]domain.Face, error)

	// DetectBytes submits raw decoded image bytes.
	DetectBytes(ctx context.Context, image []byte) ([]domain.Face, error)
}
