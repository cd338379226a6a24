package api

import (
	"net/http"

	"ai-lab/backend/internal/interfaces"
)

// ModelHandler handles HTTP requests for model discovery.
type ModelHandler struct {
	service interfaces.ModelService
}

func NewModelHandler(svc interfaces.ModelService) *ModelHandler {
	return &ModelHandler{service: svc}
}

// HandleListModels godoc
// @Summary      List local models
// @Description  Gets a list of all models available at the Ollama endpoint.
// @Tags         Models
// @Produce      json
// @Success      200  {object}  llm.ListModelsResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/models [get]
func (h *ModelHandler) HandleListModels(w http.ResponseWriter, r *http.Request) {
	models, err := h.service.List(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, models)
}
