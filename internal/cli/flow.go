package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/AmoghShukla/VisionID/internal/capture"
	"github.com/AmoghShukla/VisionID/internal/domain"
	"github.com/AmoghShukla/VisionID/internal/render"
)

// detectAndShow drives a previewing session through one detection round
// trip. Any failure is recorded on the session before being returned, so
// observers see the error state.
func detectAndShow(ctx context.Context, session *capture.Session, submit func(context.Context) ([]domain.Face, error)) error {
	if err := session.StartDetect(); err != nil {
		return err
	}

	faces, err := submit(ctx)
	if err != nil {
		session.Fail(err.Error())
		return err
	}

	return session.ShowResults(faces)
}

// writeResults prints one line per detected face and writes the overlay
// image next to it. A preview-less session (URL source that could not be
// fetched locally) still gets the face listing.
func writeResults(snap capture.Snapshot) error {
	if len(snap.Faces) == 0 {
		fmt.Println("No faces detected.")
	}
	for i, face := range snap.Faces {
		r := face.FaceRectangle
		fmt.Printf("Face %d: %dx%d at (%d,%d), %d landmarks\n",
			i+1, r.Width, r.Height, r.Left, r.Top, len(face.FaceLandmarks))
	}

	if snap.Image == nil {
		return nil
	}

	rendered, err := render.Draw(snap.Image, snap.Faces, scale)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, rendered, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	fmt.Printf("Saved %s\n", outputPath)
	return nil
}
