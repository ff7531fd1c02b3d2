package azure

import (
	"context"
	"errors"

	"github.com/AmoghShukla/VisionID/internal/domain"
	"github.com/AmoghShukla/VisionID/internal/provider"
)

// Provider implements provider.FaceProvider against the cloud Face API.
type Provider struct {
	client *Client
}

// NewProvider creates a new cloud face-detection provider.
func NewProvider(config Config) *Provider {
	return &Provider{
		client: NewClient(config),
	}
}

func (p *Provider) DetectURL(ctx context.Context, imageURL string) ([]domain.Face, error) {
	faces, err := p.client.DetectURL(ctx, imageURL)
	if err != nil {
		return nil, normalize(err)
	}
	return faces, nil
}

func (p *Provider) DetectBytes(ctx context.Context, image []byte) ([]domain.Face, error) {
	faces, err := p.client.DetectBytes(ctx, image)
	if err != nil {
		return nil, normalize(err)
	}
	return faces, nil
}

// normalize folds client failures into the domain taxonomy. Context errors
// pass through untouched so callers can distinguish cancellation.
func normalize(err error) error {
	var api *apiError
	if errors.As(err, &api) {
		return mapAPIError(api)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, ErrServiceUnavailable) {
		return domain.ErrUpstreamUnavailable.WithError(err)
	}
	return domain.ErrUpstreamUnclassified.WithError(err).WithDetails(err.Error())
}

var _ provider.FaceProvider = (*Provider)(nil)
