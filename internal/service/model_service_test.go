package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"ai-lab/backend/internal/llm"
	"ai-lab/backend/internal/llm/mocks"
	"ai-lab/backend/internal/service"
)

func setupModelService(t *testing.T) (*service.ModelService, *mocks.MockProvider) {
	mockProvider := mocks.NewMockProvider(t)
	modelService := service.NewModelService(mockProvider)
	return modelService, mockProvider
}

func TestModelService_List(t *testing.T) {
	ctx := context.Background()

	expectedResponse := &llm.ListModelsResponse{
		Models: []llm.Model{{Name: "test-model"}},
	}
	expectedError := errors.New("provider error")

	testCases := []struct {
		name         string
		setupMock    func(m *mocks.MockProvider)
		expectError  bool
		expectedResp *llm.ListModelsResponse
		expectedErr  error
	}{
		{
			name: "Success",
			setupMock: func(m *mocks.MockProvider) {
				m.On("ListModels", ctx).Return(expectedResponse, nil).Once()
			},
			expectError:  false,
			expectedResp: expectedResponse,
		},
		{
			name: "Failure - Provider Error",
			setupMock: func(m *mocks.MockProvider) {
				m.On("ListModels", ctx).Return(nil, expectedError).Once()
			},
			expectError: true,
			expectedErr: expectedError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			modelService, mockProvider := setupModelService(t)
			tc.setupMock(mockProvider)

			resp, err := modelService.List(ctx)

			if tc.expectError {
				assert.Error(t, err)
				assert.Equal(t, tc.expectedErr, err)
				assert.Nil(t, resp)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedResp, resp)
			}
		})
	}
}

func TestModelService_Resolve(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		models   *llm.ListModelsResponse
		err      error
		expected string
	}{
		{
			name:     "Configured model is available",
			models:   &llm.ListModelsResponse{Models: []llm.Model{{Name: "mistral"}, {Name: "llama3.2:latest"}}},
			expected: "llama3.2",
		},
		{
			name:     "Falls back to first available model",
			models:   &llm.ListModelsResponse{Models: []llm.Model{{Name: "mistral"}}},
			expected: "mistral",
		},
		{
			name:     "No models keeps configured",
			models:   &llm.ListModelsResponse{},
			expected: "llama3.2",
		},
		{
			name:     "Provider error keeps configured",
			err:      errors.New("connection refused"),
			expected: "llama3.2",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			modelService, mockProvider := setupModelService(t)
			if tc.err != nil {
				mockProvider.On("ListModels", ctx).Return(nil, tc.err).Once()
			} else {
				mockProvider.On("ListModels", ctx).Return(tc.models, nil).Once()
			}

			assert.Equal(t, tc.expected, modelService.Resolve(ctx, "llama3.2"))
		})
	}
}
