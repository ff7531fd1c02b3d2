package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/AmoghShukla/VisionID/internal/domain"
)

const (
	detectPath = "/face/v1.0/detect"

	// Landmarks are requested, identity tokens and attribute recognition are
	// not: those require elevated service authorization.
	detectQuery = "returnFaceId=false&returnFaceAttributes=&returnFaceLandmarks=true"

	subscriptionKeyHeader = "Ocp-Apim-Subscription-Key"
)

// Config holds the configuration for the vision service client.
type Config struct {
	Endpoint string
	Key      string
	Timeout  time.Duration
}

// DefaultConfig returns a Config with sensible defaults. Endpoint and Key
// have no defaults and must come from process configuration.
func DefaultConfig() Config {
	return Config{
		Timeout: 30 * time.Second,
	}
}

// Client is the HTTP client for the external face-detection service.
type Client struct {
	httpClient *http.Client
	config     Config
}

// NewClient creates a new vision service client.
func NewClient(config Config) *Client {
	if config.Timeout <= 0 {
		config.Timeout = DefaultConfig().Timeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		config: config,
	}
}

// DetectURL runs detection on a remote image URL.
func (c *Client) DetectURL(ctx context.Context, imageURL string) ([]domain.Face, error) {
	body, err := json.Marshal(urlRequest{URL: imageURL})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	return c.detect(ctx, "application/json", body)
}

// DetectBytes runs detection on raw image bytes.
func (c *Client) DetectBytes(ctx context.Context, image []byte) ([]domain.Face, error) {
	return c.detect(ctx, "application/octet-stream", image)
}

func (c *Client) detect(ctx context.Context, contentType string, body []byte) ([]domain.Face, error) {
	url := strings.TrimRight(c.config.Endpoint, "/") + detectPath + "?" + detectQuery

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(subscriptionKeyHeader, c.config.Key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, parseAPIError(resp.StatusCode, respBody)
	}

	var faces []domain.Face
	if err := json.Unmarshal(respBody, &faces); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return faces, nil
}

// parseAPIError decodes the service error body, tolerating both the nested
// and the flat envelope shapes.
func parseAPIError(status int, body []byte) *apiError {
	e := &apiError{
		Status: status,
		Raw:    string(body),
	}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil {
		switch {
		case env.Error.Code != "":
			e.Code = env.Error.Code
			e.Message = env.Error.Message
		case env.Message != "":
			e.Code = strconv.Itoa(status)
			e.Message = env.Message
		}
	}

	if e.Message == "" {
		e.Code = strconv.Itoa(status)
		e.Message = http.StatusText(status)
	}
	return e
}
