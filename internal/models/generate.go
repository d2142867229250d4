package models

// GenerateRequest is the shared request body of the /v1/ai generation
// endpoints. Image is a data-URI-encoded upload; Texts carries literal text
// elements from the canvas; Prompt is the user's question (text flows) or
// diagram description (text-to-diagram).
type GenerateRequest struct {
	Texts  string `json:"texts" example:"Login, Password, Submit"`
	Image  string `json:"image" example:"data:image/png;base64,iVBORw0KGgo..."`
	Theme  string `json:"theme" example:"dark"`
	Prompt string `json:"prompt" example:"What does the header say?"`
}

func (r GenerateRequest) HasImage() bool  { return r.Image != "" }
func (r GenerateRequest) HasTexts() bool  { return r.Texts != "" }
func (r GenerateRequest) HasPrompt() bool { return r.Prompt != "" }

// Provenance values reported in the processedWith field.
const (
	ProcessedWithPipeline  = "vision+synthesis"
	ProcessedWithSynthesis = "synthesis only"
)

// CodeResponse is returned by the code generation flows.
type CodeResponse struct {
	HTML          string `json:"html"`
	ProcessedWith string `json:"processedWith,omitempty"`
}

// TextResponse is returned by the question answering flow.
type TextResponse struct {
	Text          string `json:"text"`
	ProcessedWith string `json:"processedWith,omitempty"`
}

// DiagramResponse is returned by the text-to-diagram flow.
type DiagramResponse struct {
	GeneratedResponse string `json:"generatedResponse"`
}

type HealthResponse struct {
	Status    string   `json:"status"`
	Service   string   `json:"service"`
	Model     string   `json:"model"`
	Timestamp string   `json:"timestamp"`
	Endpoints []string `json:"endpoints"`
}
