package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/AmoghShukla/VisionID/internal/domain"
)

var urlCmd = &cobra.Command{
	Use:   "url <image-url>",
	Short: "Detect faces in an image addressed by a public URL",
	Long: `Submits the URL to the detection proxy unchanged; the proxy's upstream
service fetches the image itself. The image is also downloaded locally so
the detected faces can be rendered onto it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runURL(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(urlCmd)
}

func runURL(ctx context.Context, imageURL string) error {
	session := newSession()
	api := newAPIClient()

	if err := session.StartAcquire(); err != nil {
		return err
	}

	// A failed local download is not fatal: the upstream service fetches
	// the URL independently, we just lose the rendered overlay.
	preview, err := fetchImage(ctx, imageURL)
	if err != nil {
		fmt.Printf("preview unavailable: %v\n", err)
	}
	if err := session.SetPreview(preview, imageURL); err != nil {
		return err
	}

	return detectAndShow(ctx, session, func(ctx context.Context) ([]domain.Face, error) {
		return api.DetectURL(ctx, imageURL)
	})
}

func fetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", imageURL, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
