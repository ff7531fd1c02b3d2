package vision

import (
	"fmt"

	"github.com/AmoghShukla/VisionID/internal/config"
	"github.com/AmoghShukla/VisionID/internal/provider"
	"github.com/AmoghShukla/VisionID/internal/provider/azure"
	"github.com/AmoghShukla/VisionID/internal/provider/mock"
)

// ProviderType defines supported face-detection provider types
type ProviderType string

const (
	// ProviderTypeAzure is the cloud Face API provider (requires credentials)
	ProviderTypeAzure ProviderType = "azure"
	// ProviderTypeMock is the deterministic in-process provider (dev/test)
	ProviderTypeMock ProviderType = "mock"
)

// NewFaceProvider creates a FaceProvider instance based on configuration.
//
// Environment variables:
//   - PROVIDER_TYPE: "azure" or "mock" (default: "azure")
//   - VISION_ENDPOINT: Face API base URL (required for azure)
//   - VISION_KEY: Face API subscription key (required for azure)
//   - VISION_TIMEOUT: outbound request timeout (default: 30s)
func NewFaceProvider(cfg *config.Config) (provider.FaceProvider, error) {
	providerType := ProviderType(cfg.ProviderType)

	switch providerType {
	case ProviderTypeAzure, "":
		return azure.NewProvider(azure.Config{
			Endpoint: cfg.VisionEndpoint,
			Key:      cfg.VisionKey,
			Timeout:  cfg.VisionTimeout,
		}), nil

	case ProviderTypeMock:
		return mock.New(), nil

	default:
		return nil, fmt.Errorf("unknown provider type: %s (supported: %s, %s)",
			cfg.ProviderType, ProviderTypeAzure, ProviderTypeMock)
	}
}
