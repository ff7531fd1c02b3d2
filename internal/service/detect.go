package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/AmoghShukla/VisionID/internal/domain"
	"github.com/AmoghShukla/VisionID/internal/payload"
	"github.com/AmoghShukla/VisionID/internal/provider"
)

// DetectionService validates image payloads and bridges them to the external
// face-detection provider. It holds no per-request state.
type DetectionService struct {
	provider       provider.FaceProvider
	sampleImageURL string
	logger         *slog.Logger
}

func NewDetectionService(p provider.FaceProvider, sampleImageURL string, logger *slog.Logger) *DetectionService {
	return &DetectionService{
		provider:       p,
		sampleImageURL: sampleImageURL,
		logger:         logger,
	}
}

// Detect runs one detection request. Exactly one payload form must be
// present: requests carrying both imageUrl and imageData, or neither, are
// rejected before anything is sent upstream.
func (s *DetectionService) Detect(ctx context.Context, req domain.DetectRequest) ([]domain.Face, error) {
	imageURL := strings.TrimSpace(req.ImageURL)
	imageData := strings.TrimSpace(req.ImageData)

	switch {
	case imageURL != "" && imageData != "":
		return nil, domain.ErrAmbiguousImage
	case imageURL == "" && imageData == "":
		return nil, domain.ErrMissingImage
	}

	requestID := uuid.New().String()

	var (
		faces []domain.Face
		err   error
	)
	if imageURL != "" {
		if err := validateImageURL(imageURL); err != nil {
			return nil, err
		}
		faces, err = s.provider.DetectURL(ctx, imageURL)
	} else {
		var raw []byte
		raw, err = payload.DecodeInline(imageData)
		if err != nil {
			return nil, err
		}
		faces, err = s.provider.DetectBytes(ctx, raw)
	}

	if err != nil {
		s.logger.Warn("detection failed",
			slog.String("request_id", requestID),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.Debug("detection completed",
		slog.String("request_id", requestID),
		slog.Int("faces", len(faces)),
	)

	// Callers always receive an array, even when nothing was detected.
	if faces == nil {
		faces = []domain.Face{}
	}
	return faces, nil
}

// TestConnectivity issues a canned detection against a fixed public sample
// image, validating both reachability and credential validity. Returns the
// detected face count.
func (s *DetectionService) TestConnectivity(ctx context.Context) (int, error) {
	faces, err := s.provider.DetectURL(ctx, s.sampleImageURL)
	if err != nil {
		return 0, err
	}
	return len(faces), nil
}

// SampleImageURL reports the probe image used by TestConnectivity.
func (s *DetectionService) SampleImageURL() string {
	return s.sampleImageURL
}
