package docs

import (
	"github.com/go-swagno/swagno"
	"github.com/go-swagno/swagno/components/endpoint"
	"github.com/go-swagno/swagno/components/http/response"
	"github.com/go-swagno/swagno/components/mime"
)

// DetectRequestBody documents the detection request payload.
type DetectRequestBody struct {
	ImageURL  string `json:"imageUrl,omitempty" example:"https://example.com/face.jpg"`
	ImageData string `json:"imageData,omitempty" example:"data:image/jpeg;base64,/9j/4AAQ..."`
}

// FaceRectangleDoc documents a detected face bounding box.
type FaceRectangleDoc struct {
	Left   int `json:"left" example:"10"`
	Top    int `json:"top" example:"20"`
	Width  int `json:"width" example:"100"`
	Height int `json:"height" example:"120"`
}

// LandmarkDoc documents one named landmark point.
type LandmarkDoc struct {
	X float64 `json:"x" example:"40.2"`
	Y float64 `json:"y" example:"60.1"`
}

// FaceDoc documents one detection record.
type FaceDoc struct {
	FaceRectangle FaceRectangleDoc       `json:"faceRectangle"`
	FaceLandmarks map[string]LandmarkDoc `json:"faceLandmarks,omitempty"`
}

// HealthDoc documents the configuration-presence report.
type HealthDoc struct {
	Status             string `json:"status" example:"ok"`
	Provider           string `json:"provider" example:"azure"`
	EndpointConfigured bool   `json:"endpointConfigured" example:"true"`
	KeyConfigured      bool   `json:"keyConfigured" example:"true"`
}

// TestDoc documents the connectivity probe result.
type TestDoc struct {
	Success     bool   `json:"success" example:"true"`
	FaceCount   int    `json:"faceCount" example:"1"`
	SampleImage string `json:"sampleImage" example:"https://example.com/sample.jpg"`
}

// ErrorDoc documents the error envelope.
type ErrorDoc struct {
	Error      string `json:"error" example:"The vision service rejected the credential"`
	Code       string `json:"code" example:"UPSTREAM_UNAUTHORIZED"`
	Suggestion string `json:"suggestion,omitempty" example:"Verify the VISION_KEY credential and VISION_ENDPOINT region configuration"`
	Details    string `json:"details,omitempty"`
}

func NewSwagger() *swagno.Swagger {
	sw := swagno.New(swagno.Config{
		Title:       "VisionID Detection Proxy",
		Version:     "v1.0.0",
		Description: "Stateless proxy that forwards images to a cloud face-detection service and relays face rectangles and landmarks",
		Host:        "localhost:3000",
		Path:        "/api",
	})

	endpoints := []*endpoint.EndPoint{
		// POST /api/detect-faces - Detect faces
		endpoint.New(
			endpoint.POST,
			"/detect-faces",
			endpoint.WithTags("Detection"),
			endpoint.WithSummary("Detect faces in one image"),
			endpoint.WithDescription("Accepts exactly one of imageUrl or imageData (base64, optional data-URI prefix; decoded size must fall in [1 KB, 6 MB]) and relays the external service's detection array verbatim."),
			endpoint.WithBody(DetectRequestBody{}),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New([]FaceDoc{}, "200", "Detection array, possibly empty"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorDoc{Code: "MISSING_IMAGE"}, "400", "Missing, ambiguous, undecodable or out-of-bounds payload"),
				response.New(ErrorDoc{Code: "UPSTREAM_UNAUTHORIZED"}, "401", "Vision service rejected the credential"),
				response.New(ErrorDoc{Code: "UPSTREAM_UNAVAILABLE"}, "502", "Vision service unreachable or unclassified upstream failure"),
			}),
		),

		// GET /api/health - Health
		endpoint.New(
			endpoint.GET,
			"/health",
			endpoint.WithTags("Diagnostics"),
			endpoint.WithSummary("Configuration-presence status"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(HealthDoc{}, "200", "Config presence report"),
			}),
		),

		// GET /api/test-azure - Connectivity probe
		endpoint.New(
			endpoint.GET,
			"/test-azure",
			endpoint.WithTags("Diagnostics"),
			endpoint.WithSummary("Probe the vision service"),
			endpoint.WithDescription("Runs a canned detection against a fixed public sample image to validate connectivity and credential validity."),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(TestDoc{}, "200", "Probe succeeded"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorDoc{Code: "UPSTREAM_UNAUTHORIZED"}, "401", "Credential rejected"),
				response.New(ErrorDoc{Code: "UPSTREAM_UNAVAILABLE"}, "502", "Service unreachable"),
			}),
		),
	}

	sw.AddEndpoints(endpoints)
	return sw
}
