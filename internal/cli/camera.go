package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/AmoghShukla/VisionID/internal/capture"
	"github.com/AmoghShukla/VisionID/internal/domain"
)

var cameraDevice int

var cameraCmd = &cobra.Command{
	Use:   "camera",
	Short: "Capture a mirrored still from a local camera and detect faces in it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCamera(cmd.Context())
	},
}

func init() {
	cameraCmd.Flags().IntVarP(&cameraDevice, "device", "d", 0, "Camera device index")
	rootCmd.AddCommand(cameraCmd)
}

func runCamera(ctx context.Context) error {
	session := newSession()
	api := newAPIClient()

	if err := session.StartAcquire(); err != nil {
		return err
	}

	cam, err := capture.OpenCamera(cameraDevice)
	if err != nil {
		session.Fail(cameraMessage(err))
		return errors.New(cameraMessage(err))
	}

	frame, err := cam.CaptureFrame()
	if err != nil {
		session.Fail(cameraMessage(err))
		return errors.New(cameraMessage(err))
	}
	if err := session.SetPreview(frame, ""); err != nil {
		return err
	}

	return detectAndShow(ctx, session, func(ctx context.Context) ([]domain.Face, error) {
		return api.DetectImage(ctx, frame)
	})
}

// cameraMessage prefers the per-kind guidance a CameraError carries over
// the raw driver error text.
func cameraMessage(err error) string {
	var camErr *capture.CameraError
	if errors.As(err, &camErr) {
		return camErr.Message()
	}
	return err.Error()
}
