package azure

// urlRequest is the JSON body for detection by remote URL.
type urlRequest struct {
	URL string `json:"url"`
}

// errorEnvelope is the service's error body: {"error":{"code","message"}}.
// Some gateway-level rejections (invalid key) use a flat shape instead, so
// both are tried.
type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`

	// Flat variant used by the API gateway on authentication failures.
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}
