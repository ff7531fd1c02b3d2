package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Server
	Port        int    `envconfig:"PORT" default:"3000"`
	Environment string `envconfig:"ENV" default:"development"`

	// External vision service
	VisionEndpoint string        `envconfig:"VISION_ENDPOINT"`
	VisionKey      string        `envconfig:"VISION_KEY"`
	VisionTimeout  time.Duration `envconfig:"VISION_TIMEOUT" default:"30s"`

	// Provider selection ("azure" or "mock")
	ProviderType string `envconfig:"PROVIDER_TYPE" default:"azure"`

	// Public image used by the connectivity probe
	SampleImageURL string `envconfig:"SAMPLE_IMAGE_URL" default:"https://raw.githubusercontent.com/Microsoft/Cognitive-Face-Windows/master/Data/detection1.jpg"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate enforces the startup contract: the azure provider refuses to run
// without both the endpoint and the credential. The mock provider needs
// neither.
func (c *Config) Validate() error {
	if c.ProviderType != "azure" {
		return nil
	}
	if c.VisionEndpoint == "" {
		return errors.New("VISION_ENDPOINT is required")
	}
	if c.VisionKey == "" {
		return errors.New("VISION_KEY is required")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
