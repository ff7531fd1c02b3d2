package render

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmoghShukla/VisionID/internal/domain"
)

func TestBuildOverlays_OneRectAndLabelPerFace(t *testing.T) {
	faces := []domain.Face{
		{FaceRectangle: domain.FaceRectangle{Left: 10, Top: 20, Width: 100, Height: 120}},
		{FaceRectangle: domain.FaceRectangle{Left: 200, Top: 30, Width: 90, Height: 95}},
		{FaceRectangle: domain.FaceRectangle{Left: 5, Top: 300, Width: 40, Height: 45}},
	}

	overlays := BuildOverlays(faces)

	require.Len(t, overlays, len(faces))
	for i, ov := range overlays {
		assert.Equal(t, faces[i].FaceRectangle, ov.Rect, "rectangles keep response order")
		assert.Equal(t, fmt.Sprintf("Face %d", i+1), ov.Label)
	}
}

func TestBuildOverlays_ZeroFaces(t *testing.T) {
	overlays := BuildOverlays(nil)
	assert.Empty(t, overlays)

	overlays = BuildOverlays([]domain.Face{})
	assert.Empty(t, overlays)
}

func TestBuildOverlays_SingleFaceScenario(t *testing.T) {
	faces := []domain.Face{
		{FaceRectangle: domain.FaceRectangle{Left: 10, Top: 20, Width: 100, Height: 120}},
	}

	overlays := BuildOverlays(faces)

	require.Len(t, overlays, 1)
	assert.Equal(t, "Face 1", overlays[0].Label)
	assert.Equal(t, 10, overlays[0].Rect.Left)
	assert.Equal(t, 20, overlays[0].Rect.Top)
	assert.Equal(t, 100, overlays[0].Rect.Width)
	assert.Equal(t, 120, overlays[0].Rect.Height)
	assert.Empty(t, overlays[0].Landmarks)
}

func TestBuildOverlays_LandmarksSortedByName(t *testing.T) {
	faces := []domain.Face{
		{
			FaceRectangle: domain.FaceRectangle{Left: 0, Top: 0, Width: 50, Height: 50},
			FaceLandmarks: map[string]domain.Point{
				"pupilRight": {X: 30, Y: 20},
				"noseTip":    {X: 25, Y: 30},
				"pupilLeft":  {X: 20, Y: 20},
			},
		},
	}

	overlays := BuildOverlays(faces)

	require.Len(t, overlays, 1)
	require.Len(t, overlays[0].Landmarks, 3)
	assert.Equal(t, "noseTip", overlays[0].Landmarks[0].Name)
	assert.Equal(t, "pupilLeft", overlays[0].Landmarks[1].Name)
	assert.Equal(t, "pupilRight", overlays[0].Landmarks[2].Name)
	assert.Equal(t, domain.Point{X: 25, Y: 30}, overlays[0].Landmarks[0].Point)
}
