package capture

import (
	"image"
)

// Mirror returns the horizontal (left-right) flip of img. The captured
// photo must be the mirror of the live frame, so that what the user gets
// matches what a mirrored preview showed at the moment of capture.
func Mirror(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			mx := bounds.Max.X - 1 - (x - bounds.Min.X)
			out.Set(x, y, img.At(mx, y))
		}
	}
	return out
}
