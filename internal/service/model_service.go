package service

import (
	"context"
	"log/slog"
	"strings"

	"ai-lab/backend/internal/llm"
)

// ModelService reports which models the generation endpoint serves.
type ModelService struct {
	llm llm.Provider
}

// NewModelService creates a new ModelService.
func NewModelService(llmProvider llm.Provider) *ModelService {
	return &ModelService{llm: llmProvider}
}

// List returns a list of all locally available models.
func (s *ModelService) List(ctx context.Context) (*llm.ListModelsResponse, error) {
	return s.llm.ListModels(ctx)
}

// Resolve returns preferred when the endpoint serves it, otherwise the first
// available model. If the list cannot be fetched or is empty, preferred is
// returned unchanged.
func (s *ModelService) Resolve(ctx context.Context, preferred string) string {
	models, err := s.llm.ListModels(ctx)
	if err != nil {
		slog.Warn("Could not list models, keeping configured model", "model", preferred, "error", err)
		return preferred
	}
	if len(models.Models) == 0 {
		slog.Warn("Model endpoint has no models, keeping configured model", "model", preferred)
		return preferred
	}
	for _, m := range models.Models {
		if m.Name == preferred || strings.TrimSuffix(m.Name, ":latest") == preferred {
			return preferred
		}
	}
	fallback := models.Models[0].Name
	slog.Warn("Configured model is not available, using first available model", "configured", preferred, "selected", fallback)
	return fallback
}
