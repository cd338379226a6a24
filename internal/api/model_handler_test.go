package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ai-lab/backend/internal/api"
	"ai-lab/backend/internal/interfaces/mocks"
	"ai-lab/backend/internal/llm"
)

func setupModelHandler(t *testing.T) (*api.ModelHandler, *mocks.MockModelService) {
	mockModelSvc := mocks.NewMockModelService(t)
	return api.NewModelHandler(mockModelSvc), mockModelSvc
}

func TestModelHandler_HandleListModels(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupModelHandler(t)
		expectedResp := &llm.ListModelsResponse{Models: []llm.Model{{Name: "llama3:latest"}}}
		mockSvc.On("List", mock.Anything).Return(expectedResp, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/models", nil)
		rr := httptest.NewRecorder()
		handler.HandleListModels(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp llm.ListModelsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Models, 1)
		assert.Equal(t, "llama3:latest", resp.Models[0].Name)
	})

	t.Run("Failure", func(t *testing.T) {
		handler, mockSvc := setupModelHandler(t)
		mockSvc.On("List", mock.Anything).Return(nil, errors.New("connection refused")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/models", nil)
		rr := httptest.NewRecorder()
		handler.HandleListModels(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
