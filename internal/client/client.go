// Package client is the HTTP client for the VisionID detection proxy, used
// by the capture CLI.
package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/AmoghShukla/VisionID/internal/domain"
)

// Config holds the configuration for the proxy client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:3000",
		Timeout: 60 * time.Second,
	}
}

// Client talks to the detection proxy.
type Client struct {
	httpClient *http.Client
	config     Config
}

// APIError is a structured failure relayed by the proxy.
type APIError struct {
	StatusCode int
	Message    string `json:"error"`
	Code       string `json:"code"`
	Suggestion string `json:"suggestion"`
	Details    string `json:"details"`
}

func (e *APIError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Suggestion)
	}
	return e.Message
}

// NewClient creates a new proxy client.
func NewClient(config Config) *Client {
	if config.Timeout <= 0 {
		config.Timeout = DefaultConfig().Timeout
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultConfig().BaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		config: config,
	}
}

// DetectURL submits a remote image URL, unchanged, for detection.
func (c *Client) DetectURL(ctx context.Context, imageURL string) ([]domain.Face, error) {
	return c.detect(ctx, domain.DetectRequest{ImageURL: imageURL})
}

// DetectImage inline-encodes raw image bytes and submits them.
func (c *Client) DetectImage(ctx context.Context, image []byte) ([]domain.Face, error) {
	return c.detect(ctx, domain.DetectRequest{
		ImageData: base64.StdEncoding.EncodeToString(image),
	})
}

func (c *Client) detect(ctx context.Context, req domain.DetectRequest) ([]domain.Face, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := c.config.BaseURL + "/api/detect-faces"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(respBody, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = fmt.Sprintf("proxy returned status %d: %s", resp.StatusCode, string(respBody))
		}
		return nil, apiErr
	}

	var faces []domain.Face
	if err := json.Unmarshal(respBody, &faces); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return faces, nil
}
