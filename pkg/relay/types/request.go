// Package types defines the request and error shapes of the relay API.
// All types are transient; nothing outlives the HTTP request that carried it.
package types

// Defaults applied to omitted optional fields.
const (
	// DefaultTemperature is used when a chat request omits temperature.
	DefaultTemperature = 0.7

	// DefaultMaxTokens is used when a chat request omits maxTokens.
	DefaultMaxTokens = 512

	// DefaultScriptLength is the target word count when a script request
	// omits length.
	DefaultScriptLength = 400

	// DefaultScriptIntensity is the trance depth when a script request
	// omits intensity.
	DefaultScriptIntensity = 6
)

// ChatMessage is one turn of a free-form chat conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature *float64      `json:"temperature"`
	MaxTokens   *int          `json:"maxTokens"`
}

// ApplyDefaults fills in defaults for omitted optional fields.
func (r *ChatRequest) ApplyDefaults() {
	if r.Temperature == nil {
		t := DefaultTemperature
		r.Temperature = &t
	}
	if r.MaxTokens == nil {
		n := DefaultMaxTokens
		r.MaxTokens = &n
	}
}

// Validate checks required fields.
func (r *ChatRequest) Validate() error {
	if r.Model == "" {
		return &ValidationError{Field: "model", Message: "Model is required"}
	}
	return nil
}

// StyleAnalysisRequest is the body of POST /api/analyze-style and
// POST /api/analyze-style/stream.
type StyleAnalysisRequest struct {
	Model   string   `json:"model"`
	Samples []string `json:"samples"`
}

// Validate checks required fields.
func (r *StyleAnalysisRequest) Validate() error {
	if r.Model == "" {
		return &ValidationError{Field: "model", Message: "Model is required"}
	}
	if len(r.Samples) == 0 {
		return &ValidationError{Field: "samples", Message: "At least one writing sample is required"}
	}
	return nil
}

// ScriptGenerationRequest is the body of POST /api/generate-script and
// POST /api/generate-script/stream.
// Length and Intensity are pointers so an explicit zero survives decoding:
// a request asking for length 0 gets the clamped minimum token budget, not
// the default word count.
type ScriptGenerationRequest struct {
	Model        string `json:"model"`
	StyleSummary string `json:"styleSummary"`
	Length       *int   `json:"length"`
	Intensity    *int   `json:"intensity"`
	Theme        string `json:"theme"`
}

// ApplyDefaults fills in defaults for omitted optional fields.
func (r *ScriptGenerationRequest) ApplyDefaults() {
	if r.Length == nil {
		n := DefaultScriptLength
		r.Length = &n
	}
	if r.Intensity == nil {
		n := DefaultScriptIntensity
		r.Intensity = &n
	}
}

// Validate checks required fields.
func (r *ScriptGenerationRequest) Validate() error {
	if r.Model == "" {
		return &ValidationError{Field: "model", Message: "Model is required"}
	}
	if r.StyleSummary == "" {
		return &ValidationError{Field: "styleSummary", Message: "Style summary is required"}
	}
	return nil
}
