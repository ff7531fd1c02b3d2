package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmoghShukla/VisionID/internal/capture"
	"github.com/AmoghShukla/VisionID/internal/domain"
)

func previewingSession(t *testing.T) *capture.Session {
	t.Helper()
	session := capture.NewSession()
	require.NoError(t, session.StartAcquire())
	require.NoError(t, session.SetPreview(nil, "https://example.com/a.jpg"))
	return session
}

func TestDetectAndShow_RecordsResults(t *testing.T) {
	session := previewingSession(t)
	faces := []domain.Face{{FaceRectangle: domain.FaceRectangle{Left: 1, Top: 2, Width: 3, Height: 4}}}

	err := detectAndShow(context.Background(), session, func(context.Context) ([]domain.Face, error) {
		return faces, nil
	})

	require.NoError(t, err)
	snap := session.Snapshot()
	assert.Equal(t, capture.StateShowingResults, snap.State)
	assert.Equal(t, faces, snap.Faces)
}

func TestDetectAndShow_FailureReachesSession(t *testing.T) {
	session := previewingSession(t)
	boom := errors.New("upstream said no")

	err := detectAndShow(context.Background(), session, func(context.Context) ([]domain.Face, error) {
		return nil, boom
	})

	require.Error(t, err)
	snap := session.Snapshot()
	assert.Equal(t, capture.StateError, snap.State)
	assert.Equal(t, "upstream said no", snap.ErrMsg)
	assert.Nil(t, snap.Faces)
}

func TestDetectAndShow_RefusesConcurrentSubmit(t *testing.T) {
	session := previewingSession(t)
	require.NoError(t, session.StartDetect())

	err := detectAndShow(context.Background(), session, func(context.Context) ([]domain.Face, error) {
		t.Fatal("submit must not run when the session is already detecting")
		return nil, nil
	})

	assert.Error(t, err)
}

func TestWriteResults_NoPreviewListsFacesOnly(t *testing.T) {
	snap := capture.Snapshot{
		State: capture.StateShowingResults,
		Faces: []domain.Face{{FaceRectangle: domain.FaceRectangle{Width: 10, Height: 10}}},
	}
	assert.NoError(t, writeResults(snap))
}
