package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AmoghShukla/VisionID/internal/domain"
)

var fileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Detect faces in a local image file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFile(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(fileCmd)
}

func runFile(ctx context.Context, path string) error {
	session := newSession()
	api := newAPIClient()

	if err := session.StartAcquire(); err != nil {
		return err
	}

	image, err := os.ReadFile(path)
	if err != nil {
		session.Fail(err.Error())
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := session.SetPreview(image, ""); err != nil {
		return err
	}

	return detectAndShow(ctx, session, func(ctx context.Context) ([]domain.Face, error) {
		return api.DetectImage(ctx, image)
	})
}
