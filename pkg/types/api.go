package types

// GenerateRequest is the payload for POST /generate.
type GenerateRequest struct {
	// Prompt text to respond to. Empty input is allowed and produces a
	// degenerate prompt made only of the style instruction.
	// example: write about the sea
	Prompt string `json:"prompt" example:"write about the sea"`
	// Maximum number of tokens to generate. Defaults to 150 and is always
	// capped at 150 regardless of what the caller asks for.
	// example: 150
	MaxLength int `json:"max_length,omitempty" example:"150"`
	// When false, the full completion is produced synchronously and no
	// session is created. Omitted means true.
	// example: true
	Progressive *bool `json:"progressive,omitempty" example:"true"`
	// Style preset key: default, poem or brief. Unknown keys fall back to
	// the poem preset.
	// example: poem
	Style string `json:"style,omitempty" example:"poem"`
}

// GenerateResponse is returned by POST /generate in progressive mode.
type GenerateResponse struct {
	// Opaque session handle for polling GET /continue_generation/{id}.
	// example: 5f3c9a2e-8d1b-4c6e-9f0a-2b7d4e1c8a53
	GenerationID string `json:"generation_id" example:"5f3c9a2e-8d1b-4c6e-9f0a-2b7d4e1c8a53"`
	// The short first chunk produced on the request path.
	GeneratedText string `json:"generated_text"`
	// Always false on the initial response; the background completion is
	// still running.
	// example: false
	Completed bool `json:"completed" example:"false"`
}

// TextResponse is returned by POST /generate in non-progressive mode.
type TextResponse struct {
	GeneratedText string `json:"generated_text"`
}

// ContinueResponse is returned by GET /continue_generation/{generation_id}.
type ContinueResponse struct {
	// Latest known text: the first chunk until the background completion
	// lands, the full cleaned result afterwards.
	GeneratedText string `json:"generated_text"`
	// example: true
	Completed bool `json:"completed" example:"true"`
}

// TestResponse is returned by GET /test.
type TestResponse struct {
	// example: ok
	Status string `json:"status" example:"ok"`
	// example: text generation API is up
	Message string `json:"message" example:"text generation API is up"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: generation session not found
	Error string `json:"error" example:"generation session not found"`
	// HTTP status code.
	// example: 404
	Code int `json:"code" example:"404"`
}
