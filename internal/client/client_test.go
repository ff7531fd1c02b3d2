package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmoghShukla/VisionID/internal/domain"
)

func TestClient_DetectURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/detect-faces", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req domain.DetectRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "https://example.com/face.jpg", req.ImageURL)
		assert.Empty(t, req.ImageData)

		_, _ = w.Write([]byte(`[{"faceRectangle":{"left":10,"top":20,"width":100,"height":120},"faceLandmarks":{"noseTip":{"x":60,"y":95}}}]`))
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL})
	faces, err := c.DetectURL(context.Background(), "https://example.com/face.jpg")

	require.NoError(t, err)
	require.Len(t, faces, 1)
	assert.Equal(t, 100, faces[0].FaceRectangle.Width)
	assert.InDelta(t, 95.0, faces[0].FaceLandmarks["noseTip"].Y, 0.001)
}

func TestClient_DetectImage_EncodesBase64(t *testing.T) {
	image := []byte("fake jpeg bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.DetectRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Empty(t, req.ImageURL)

		decoded, err := base64.StdEncoding.DecodeString(req.ImageData)
		require.NoError(t, err)
		assert.Equal(t, image, decoded)

		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL})
	faces, err := c.DetectImage(context.Background(), image)

	require.NoError(t, err)
	assert.Len(t, faces, 0)
}

func TestClient_Detect_DecodesErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"The vision service rejected the credential","code":"UPSTREAM_UNAUTHORIZED","suggestion":"Verify the VISION_KEY credential and VISION_ENDPOINT region configuration"}`))
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL})
	_, err := c.DetectURL(context.Background(), "https://example.com/face.jpg")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 401, apiErr.StatusCode)
	assert.Equal(t, "UPSTREAM_UNAUTHORIZED", apiErr.Code)
	assert.Contains(t, apiErr.Error(), "credential")
}

func TestClient_Detect_NonJSONError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream exploded`))
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL})
	_, err := c.DetectURL(context.Background(), "https://example.com/face.jpg")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 502, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "status 502")
}
