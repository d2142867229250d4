package handler

import (
	"net/http"
	"time"

	"github.com/sketchboard/ai-backend/internal/models"
)

type HealthHandler struct {
	model string
}

func NewHealthHandler(model string) *HealthHandler {
	return &HealthHandler{model: model}
}

// Health godoc
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Service:   "Sketchboard AI Backend",
		Model:     h.model,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Endpoints: []string{
			"POST /v1/ai/text-to-diagram/generate",
			"POST /v1/ai/diagram-to-code/generate",
			"POST /v1/ai/diagram-to-code-intern/generate",
			"POST /v1/ai/diagram-to-text-intern/generate",
			"GET /health",
		},
	})
}
