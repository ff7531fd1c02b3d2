package mock

import (
	"context"
	"strings"

	"github.com/AmoghShukla/VisionID/internal/domain"
	"github.com/AmoghShukla/VisionID/internal/provider"
)

// Provider implements provider.FaceProvider for tests and credential-less
// development. It mimics the external service's size check and returns one
// deterministic face per request.
type Provider struct{}

func New() *Provider {
	return &Provider{}
}

func (p *Provider) DetectURL(ctx context.Context, imageURL string) ([]domain.Face, error) {
	if strings.Contains(imageURL, "empty") {
		return []domain.Face{}, nil
	}
	return []domain.Face{canonicalFace()}, nil
}

func (p *Provider) DetectBytes(ctx context.Context, image []byte) ([]domain.Face, error) {
	// The real service rejects images below its minimum size server-side.
	if len(image) < 1024 {
		return nil, domain.ErrUpstreamInvalidSize.WithDetails("mock: image below service minimum")
	}
	return []domain.Face{canonicalFace()}, nil
}

func canonicalFace() domain.Face {
	return domain.Face{
		FaceRectangle: domain.FaceRectangle{Left: 10, Top: 20, Width: 100, Height: 120},
		FaceLandmarks: map[string]domain.Point{
			"pupilLeft":  {X: 40, Y: 60},
			"pupilRight": {X: 81, Y: 60},
			"noseTip":    {X: 60, Y: 95},
		},
	}
}

var _ provider.FaceProvider = (*Provider)(nil)
