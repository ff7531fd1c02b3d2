package azure

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmoghShukla/VisionID/internal/domain"
)

func TestMapAPIError(t *testing.T) {
	tests := []struct {
		name           string
		apiErr         *apiError
		wantCode       string
		wantStatus     int
		suggestionHint string
	}{
		{
			name:           "invalid url",
			apiErr:         &apiError{Status: 400, Code: "InvalidURL", Message: "Invalid image URL."},
			wantCode:       "UPSTREAM_INVALID_URL",
			wantStatus:     400,
			suggestionHint: "publicly reachable",
		},
		{
			name:           "unsupported format",
			apiErr:         &apiError{Status: 400, Code: "InvalidImageFormat", Message: "Decoding error."},
			wantCode:       "UNSUPPORTED_IMAGE_FORMAT",
			wantStatus:     400,
			suggestionHint: "JPEG",
		},
		{
			name:           "invalid size",
			apiErr:         &apiError{Status: 400, Code: "InvalidImageSize", Message: "Image size is too big."},
			wantCode:       "UPSTREAM_INVALID_SIZE",
			wantStatus:     400,
			suggestionHint: "1 KB and 6 MB",
		},
		{
			name:           "malformed request",
			apiErr:         &apiError{Status: 400, Code: "BadArgument", Message: "Request body is invalid."},
			wantCode:       "UPSTREAM_BAD_REQUEST",
			wantStatus:     400,
			suggestionHint: "request parameters",
		},
		{
			name:           "unauthorized by code",
			apiErr:         &apiError{Status: 401, Code: "401", Message: "Access denied due to invalid subscription key."},
			wantCode:       "UPSTREAM_UNAUTHORIZED",
			wantStatus:     401,
			suggestionHint: "credential",
		},
		{
			name:           "forbidden maps to unauthorized regardless of code",
			apiErr:         &apiError{Status: 403, Code: "QuotaExceeded", Message: "Out of call volume quota."},
			wantCode:       "UPSTREAM_UNAUTHORIZED",
			wantStatus:     403,
			suggestionHint: "credential",
		},
		{
			name:           "unclassified keeps upstream status",
			apiErr:         &apiError{Status: 429, Code: "RateLimitExceeded", Message: "Too many requests."},
			wantCode:       "UPSTREAM_ERROR",
			wantStatus:     429,
			suggestionHint: "details",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := mapAPIError(tt.apiErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, tt.wantStatus, appErr.StatusCode)
			assert.Contains(t, appErr.Suggestion, tt.suggestionHint)
		})
	}
}

func TestProvider_DetectURL_NormalizesErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":"Unauthorized","message":"Access denied due to invalid subscription key."}}`))
	}))
	defer server.Close()

	p := NewProvider(Config{Endpoint: server.URL, Key: "bad-key"})

	_, err := p.DetectURL(context.Background(), "https://example.com/face.jpg")
	require.Error(t, err)

	var appErr *domain.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "UPSTREAM_UNAUTHORIZED", appErr.Code)
	assert.Equal(t, 401, appErr.StatusCode)
	assert.Contains(t, appErr.Suggestion, "credential")
	assert.Contains(t, appErr.Details, "invalid subscription key")
}

func TestProvider_DetectBytes_RelaysFacesVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"faceRectangle":{"left":10,"top":20,"width":100,"height":120}}]`))
	}))
	defer server.Close()

	p := NewProvider(Config{Endpoint: server.URL, Key: "test-key"})

	faces, err := p.DetectBytes(context.Background(), make([]byte, 2048))
	require.NoError(t, err)
	require.Len(t, faces, 1)
	assert.Equal(t, domain.FaceRectangle{Left: 10, Top: 20, Width: 100, Height: 120}, faces[0].FaceRectangle)
	assert.Nil(t, faces[0].FaceLandmarks)
}

func TestProvider_DetectURL_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	p := NewProvider(Config{Endpoint: server.URL, Key: "test-key"})

	_, err := p.DetectURL(context.Background(), "https://example.com/face.jpg")
	require.Error(t, err)

	var appErr *domain.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", appErr.Code)
	assert.Equal(t, 502, appErr.StatusCode)
}
