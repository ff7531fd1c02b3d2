package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/AmoghShukla/VisionID/internal/domain"
)

var (
	boxColor      = color.RGBA{R: 0, G: 255, B: 0, A: 0}
	labelColor    = color.RGBA{R: 0, G: 255, B: 0, A: 0}
	landmarkColor = color.RGBA{R: 255, G: 64, B: 64, A: 0}
)

// ErrUndecodableImage means the preview bytes are not a decodable image.
var ErrUndecodableImage = errors.New("image could not be decoded")

// Draw decodes the image, draws the overlay plan for faces, and re-encodes
// as JPEG. scale >= 2 renders at an integer multiple of the natural
// resolution for sharper output on high-density displays; coordinates are
// scaled to match. Zero faces draws the image alone.
func Draw(imageBytes []byte, faces []domain.Face, scale int) ([]byte, error) {
	if scale < 1 {
		scale = 1
	}

	mat, err := gocv.IMDecode(imageBytes, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodableImage, err)
	}
	defer func() {
		_ = mat.Close()
	}()
	if mat.Empty() {
		return nil, ErrUndecodableImage
	}

	if scale > 1 {
		scaled := gocv.NewMat()
		gocv.Resize(mat, &scaled, image.Pt(mat.Cols()*scale, mat.Rows()*scale), 0, 0, gocv.InterpolationLinear)
		_ = mat.Close()
		mat = scaled
	}

	for _, ov := range BuildOverlays(faces) {
		drawOverlay(&mat, ov, scale)
	}

	buf, err := gocv.IMEncode(".jpg", mat)
	if err != nil {
		return nil, fmt.Errorf("encode rendered image: %w", err)
	}
	defer buf.Close()

	out := make([]byte, len(buf.GetBytes()))
	copy(out, buf.GetBytes())
	return out, nil
}

func drawOverlay(mat *gocv.Mat, ov Overlay, scale int) {
	rect := image.Rect(
		ov.Rect.Left*scale,
		ov.Rect.Top*scale,
		(ov.Rect.Left+ov.Rect.Width)*scale,
		(ov.Rect.Top+ov.Rect.Height)*scale,
	)
	gocv.Rectangle(mat, rect, boxColor, 2*scale)

	// Label sits just above the box, clamped inside the image.
	labelY := rect.Min.Y - 6*scale
	if labelY < 16*scale {
		labelY = rect.Min.Y + 18*scale
	}
	gocv.PutText(mat, ov.Label, image.Pt(rect.Min.X, labelY),
		gocv.FontHersheySimplex, 0.6*float64(scale), labelColor, 2*scale)

	for _, lm := range ov.Landmarks {
		center := image.Pt(int(lm.Point.X)*scale, int(lm.Point.Y)*scale)
		gocv.Circle(mat, center, 2*scale, landmarkColor, -1)
	}
}
