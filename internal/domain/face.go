package domain

// Point is a single 2D pixel coordinate in the submitted image.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FaceRectangle is the axis-aligned bounding box of a detected face, in
// source-image pixel units.
type FaceRectangle struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Face is one detection returned by the vision service. Faces carry no
// identifier and are scoped to a single response; they are never correlated
// across calls.
type Face struct {
	FaceRectangle FaceRectangle    `json:"faceRectangle"`
	FaceLandmarks map[string]Point `json:"faceLandmarks,omitempty"`
}

// DetectRequest is the proxy's inbound payload. Exactly one of the two
// fields must be present: a dereferenceable remote URL, or inline image
// bytes encoded as base64 (an optional data-URI prefix is stripped before
// decoding).
type DetectRequest struct {
	ImageURL  string `json:"imageUrl,omitempty"`
	ImageData string `json:"imageData,omitempty"`
}
