package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/sketchboard/ai-backend/internal/models"
)

type generateService interface {
	GenerateCode(ctx context.Context, req *models.GenerateRequest) (*models.CodeResponse, error)
	GenerateAnswer(ctx context.Context, req *models.GenerateRequest) (*models.TextResponse, error)
	GenerateMockupCode(ctx context.Context, req *models.GenerateRequest) (*models.CodeResponse, error)
	GenerateDiagram(ctx context.Context, prompt string) (*models.DiagramResponse, error)
}

type GenerateHandler struct {
	service generateService
}

func NewGenerateHandler(service generateService) *GenerateHandler {
	return &GenerateHandler{
		service: service,
	}
}

// DiagramToCode godoc
// @Summary Generate HTML/CSS from a UI sketch
// @Description Two-stage generation: a vision model extracts a description of the sketch, a text model synthesizes a standalone HTML document from it.
// @Tags generate
// @Accept json
// @Produce json
// @Param request body models.GenerateRequest true "Generation request"
// @Success 200 {object} models.CodeResponse
// @Failure 400 {object} models.ErrorBody
// @Failure 429 {object} models.RateLimitedBody
// @Failure 500 {object} models.ErrorBody
// @Router /v1/ai/diagram-to-code-intern/generate [post]
func (h *GenerateHandler) DiagramToCode(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.service.GenerateCode(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// DiagramToText godoc
// @Summary Answer a question about a sketch or text
// @Description Two-stage generation: a vision model extracts image content, a text model answers the question from it.
// @Tags generate
// @Accept json
// @Produce json
// @Param request body models.GenerateRequest true "Generation request"
// @Success 200 {object} models.TextResponse
// @Failure 400 {object} models.ErrorBody
// @Failure 429 {object} models.RateLimitedBody
// @Failure 500 {object} models.ErrorBody
// @Router /v1/ai/diagram-to-text-intern/generate [post]
func (h *GenerateHandler) DiagramToText(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.service.GenerateAnswer(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// MockupToCode godoc
// @Summary Generate HTML/CSS from canvas text elements
// @Description Single-stage generation from the sketch's text elements and theme.
// @Tags generate
// @Accept json
// @Produce json
// @Param request body models.GenerateRequest true "Generation request"
// @Success 200 {object} models.CodeResponse
// @Failure 400 {object} models.ErrorBody
// @Failure 429 {object} models.RateLimitedBody
// @Failure 500 {object} models.ErrorBody
// @Router /v1/ai/diagram-to-code/generate [post]
func (h *GenerateHandler) MockupToCode(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.service.GenerateMockupCode(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// TextToDiagram godoc
// @Summary Generate Mermaid diagram code from a prompt
// @Description Single-stage generation of Mermaid code from a free-form description.
// @Tags generate
// @Accept json
// @Produce json
// @Param request body models.GenerateRequest true "Generation request"
// @Success 200 {object} models.DiagramResponse
// @Failure 400 {object} models.ErrorBody
// @Failure 429 {object} models.RateLimitedBody
// @Failure 500 {object} models.ErrorBody
// @Router /v1/ai/text-to-diagram/generate [post]
func (h *GenerateHandler) TextToDiagram(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.service.GenerateDiagram(r.Context(), req.Prompt)
	if err != nil {
		writeError(w, err)
		return
	}

	// The limiter middleware sets live quota headers when enabled.
	if w.Header().Get("X-Ratelimit-Limit") == "" {
		w.Header().Set("X-Ratelimit-Limit", "100")
		w.Header().Set("X-Ratelimit-Remaining", "95")
	}
	writeJSON(w, http.StatusOK, resp)
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (*models.GenerateRequest, bool) {
	var req models.GenerateRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, models.InvalidInput(fmt.Sprintf("invalid JSON: %s", err)))
		return nil, false
	}
	return &req, true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(body)
}

// writeError is the single place an error becomes an HTTP response.
func writeError(w http.ResponseWriter, err error) {
	genErr := models.Classify(err)

	if genErr.Kind == models.KindRateLimited {
		writeJSON(w, genErr.HTTPStatus(), models.RateLimitedBody{
			StatusCode: http.StatusTooManyRequests,
			Message:    genErr.Message,
		})
		return
	}

	writeJSON(w, genErr.HTTPStatus(), models.ErrorBody{Error: genErr.Message})
}
