package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/AmoghShukla/VisionID/internal/capture"
	"github.com/AmoghShukla/VisionID/internal/client"
)

// Version is the application version.
const Version = "0.1.0"

var (
	serverURL  string
	outputPath string
	scale      int
	timeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:     "visionid",
	Short:   "Capture an image, detect faces through the VisionID proxy, and render the results",
	Version: Version,
}

func Execute() {
	// Create a context that listens for Ctrl+C (SIGINT) or Kill (SIGTERM)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "http://localhost:3000", "Detection proxy base URL")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "detected.jpg", "Path for the rendered overlay image")
	rootCmd.PersistentFlags().IntVar(&scale, "scale", 1, "Integer render scale for high-density output")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 60*time.Second, "Detection request timeout")
}

func newAPIClient() *client.Client {
	return client.NewClient(client.Config{
		BaseURL: serverURL,
		Timeout: timeout,
	})
}

// newSession builds the acquisition session and attaches the rendering
// observer: results and errors become output whenever the session reaches
// them, so rendering re-runs on every image or result change.
func newSession() *capture.Session {
	session := capture.NewSession()
	session.Observe(func(snap capture.Snapshot) {
		switch snap.State {
		case capture.StateShowingResults:
			if err := writeResults(snap); err != nil {
				fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
			}
		case capture.StateError:
			fmt.Fprintf(os.Stderr, "error: %s\n", snap.ErrMsg)
		}
	})
	return session
}
