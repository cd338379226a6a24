package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ai-lab/backend/internal/api"
	app_errors "ai-lab/backend/internal/errors"
	"ai-lab/backend/internal/interfaces/mocks"
	"ai-lab/backend/internal/model"
	"ai-lab/backend/internal/service"
)

func setupVectorHandler(t *testing.T) (*api.VectorHandler, *mocks.MockVectorService) {
	mockVecSvc := mocks.NewMockVectorService(t)
	return api.NewVectorHandler(mockVecSvc), mockVecSvc
}

func TestVectorHandler_SaveVector(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupVectorHandler(t)
		mockSvc.On("Save", mock.Anything, mock.MatchedBy(func(req *service.SaveVectorRequest) bool {
			return req.Content == "hello" && len(req.Embedding) == 2
		})).Return(&model.VectorRecord{
			ID:        "v1",
			Content:   "hello",
			Metadata:  map[string]any{},
			Embedding: pgvector.NewVector([]float32{0.5, 1}),
		}, nil).Once()

		rr := httptest.NewRecorder()
		handler.SaveVector(rr, httptest.NewRequest(http.MethodPost, "/api/vectors", strings.NewReader(`{"content":"hello","embedding":[0.5,1]}`)))

		assert.Equal(t, http.StatusCreated, rr.Code)
		var resp api.VectorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "v1", resp.ID)
		assert.Equal(t, []float32{0.5, 1}, resp.Embedding)
		assert.Nil(t, resp.Distance)
	})

	t.Run("Failure - Dimension mismatch", func(t *testing.T) {
		handler, mockSvc := setupVectorHandler(t)
		mockSvc.On("Save", mock.Anything, mock.Anything).Return(nil, app_errors.ErrValidation).Once()

		rr := httptest.NewRecorder()
		handler.SaveVector(rr, httptest.NewRequest(http.MethodPost, "/api/vectors", strings.NewReader(`{"content":"hello","embedding":[1]}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestVectorHandler_SearchVectors(t *testing.T) {
	hit := model.ScoredVector{VectorRecord: model.VectorRecord{ID: "near", Content: "close"}, Distance: 1}

	t.Run("Nearest uses the default limit", func(t *testing.T) {
		handler, mockSvc := setupVectorHandler(t)
		mockSvc.On("FindNearest", mock.Anything, []float32{0, 0}, 5).Return([]model.ScoredVector{hit}, nil).Once()

		rr := httptest.NewRecorder()
		handler.SearchVectors(rr, httptest.NewRequest(http.MethodPost, "/api/vectors/search", strings.NewReader(`{"embedding":[0,0]}`)))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []api.VectorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		require.NotNil(t, resp[0].Distance)
		assert.InDelta(t, 1.0, *resp[0].Distance, 1e-9)
	})

	t.Run("Max distance switches to a range query", func(t *testing.T) {
		handler, mockSvc := setupVectorHandler(t)
		mockSvc.On("FindWithinDistance", mock.Anything, []float32{0, 0}, 2.5).Return([]model.ScoredVector{hit}, nil).Once()

		rr := httptest.NewRecorder()
		handler.SearchVectors(rr, httptest.NewRequest(http.MethodPost, "/api/vectors/search", strings.NewReader(`{"embedding":[0,0],"limit":1,"max_distance":2.5}`)))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Empty embedding is rejected", func(t *testing.T) {
		handler, _ := setupVectorHandler(t)

		rr := httptest.NewRecorder()
		handler.SearchVectors(rr, httptest.NewRequest(http.MethodPost, "/api/vectors/search", strings.NewReader(`{"embedding":[]}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestVectorHandler_SearchByMetadata(t *testing.T) {
	handler, mockSvc := setupVectorHandler(t)
	mockSvc.On("SearchByMetadata", mock.Anything, map[string]any{"source": "a.md"}).
		Return([]model.VectorRecord{{ID: "v1", Metadata: map[string]any{"source": "a.md"}}}, nil).Once()

	rr := httptest.NewRecorder()
	handler.SearchByMetadata(rr, httptest.NewRequest(http.MethodPost, "/api/vectors/search/metadata", strings.NewReader(`{"metadata":{"source":"a.md"}}`)))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":"v1"`)
}

func TestVectorHandler_ListAndCount(t *testing.T) {
	t.Run("List by keyword", func(t *testing.T) {
		handler, mockSvc := setupVectorHandler(t)
		mockSvc.On("SearchByContent", mock.Anything, "away").Return([]model.VectorRecord{{ID: "far"}}, nil).Once()

		rr := httptest.NewRecorder()
		handler.ListVectors(rr, httptest.NewRequest(http.MethodGet, "/api/vectors?q=away", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"id":"far"`)
	})

	t.Run("List is never null", func(t *testing.T) {
		handler, mockSvc := setupVectorHandler(t)
		mockSvc.On("List", mock.Anything).Return(nil, nil).Once()

		rr := httptest.NewRecorder()
		handler.ListVectors(rr, httptest.NewRequest(http.MethodGet, "/api/vectors", nil))

		assert.Equal(t, "[]", rr.Body.String())
	})

	t.Run("Count embedded", func(t *testing.T) {
		handler, mockSvc := setupVectorHandler(t)
		mockSvc.On("CountWithEmbedding", mock.Anything).Return(int64(3), nil).Once()

		rr := httptest.NewRecorder()
		handler.CountVectors(rr, httptest.NewRequest(http.MethodGet, "/api/vectors/count?embedded=true", nil))

		assert.JSONEq(t, `{"count":3}`, rr.Body.String())
	})
}

func TestVectorHandler_Delete(t *testing.T) {
	t.Run("DeleteVector", func(t *testing.T) {
		handler, mockSvc := setupVectorHandler(t)
		mockSvc.On("Delete", mock.Anything, "v1").Return(nil).Once()

		req := addChiURLParams(httptest.NewRequest(http.MethodDelete, "/api/vectors/v1", nil), map[string]string{"vectorID": "v1"})
		rr := httptest.NewRecorder()
		handler.DeleteVector(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("DeleteVectors", func(t *testing.T) {
		handler, mockSvc := setupVectorHandler(t)
		mockSvc.On("DeleteMany", mock.Anything, []string{"a", "b"}).Return(nil).Once()

		rr := httptest.NewRecorder()
		handler.DeleteVectors(rr, httptest.NewRequest(http.MethodPost, "/api/vectors/delete", strings.NewReader(`{"ids":["a","b"]}`)))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("DeleteVectors requires ids", func(t *testing.T) {
		handler, _ := setupVectorHandler(t)

		rr := httptest.NewRecorder()
		handler.DeleteVectors(rr, httptest.NewRequest(http.MethodPost, "/api/vectors/delete", strings.NewReader(`{"ids":[]}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestVectorHandler_HeadVector(t *testing.T) {
	for name, exists := range map[string]bool{"present": true, "absent": false} {
		t.Run(name, func(t *testing.T) {
			handler, mockSvc := setupVectorHandler(t)
			mockSvc.On("Exists", mock.Anything, "v1").Return(exists, nil).Once()

			req := addChiURLParams(httptest.NewRequest(http.MethodHead, "/api/vectors/v1", nil), map[string]string{"vectorID": "v1"})
			rr := httptest.NewRecorder()
			handler.HeadVector(rr, req)

			if exists {
				assert.Equal(t, http.StatusOK, rr.Code)
			} else {
				assert.Equal(t, http.StatusNotFound, rr.Code)
			}
			assert.Empty(t, rr.Body.String())
		})
	}
}
