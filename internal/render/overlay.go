// Package render turns detection results into an overlay drawn onto the
// submitted image: one rectangle and sequential label per face, one marker
// per landmark.
package render

import (
	"fmt"
	"sort"

	"github.com/AmoghShukla/VisionID/internal/domain"
)

// Landmark is one named marker position.
type Landmark struct {
	Name  string
	Point domain.Point
}

// Overlay is the drawing plan for a single detected face.
type Overlay struct {
	Rect      domain.FaceRectangle
	Label     string
	Landmarks []Landmark
}

// BuildOverlays plans the overlay for a result set: faces keep response
// order and are labeled "Face 1".."Face N"; landmarks are sorted by name so
// drawing is deterministic. An empty result set plans nothing.
func BuildOverlays(faces []domain.Face) []Overlay {
	overlays := make([]Overlay, 0, len(faces))
	for i, face := range faces {
		ov := Overlay{
			Rect:  face.FaceRectangle,
			Label: fmt.Sprintf("Face %d", i+1),
		}

		if len(face.FaceLandmarks) > 0 {
			names := make([]string, 0, len(face.FaceLandmarks))
			for name := range face.FaceLandmarks {
				names = append(names, name)
			}
			sort.Strings(names)

			ov.Landmarks = make([]Landmark, 0, len(names))
			for _, name := range names {
				ov.Landmarks = append(ov.Landmarks, Landmark{
					Name:  name,
					Point: face.FaceLandmarks[name],
				})
			}
		}

		overlays = append(overlays, ov)
	}
	return overlays
}
