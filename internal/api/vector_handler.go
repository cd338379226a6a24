package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ai-lab/backend/internal/interfaces"
	"ai-lab/backend/internal/model"
	"ai-lab/backend/internal/service"
)

// VectorResponse is the JSON view of a stored fragment.
type VectorResponse struct {
	ID        string         `json:"id"`
	Content   string         `json:"content"`
	Metadata  map[string]any `json:"metadata"`
	Embedding []float32      `json:"embedding,omitempty"`
	Distance  *float64       `json:"distance,omitempty"`
}

// VectorSearchRequest finds the nearest fragments. With MaxDistance set,
// every fragment strictly closer is returned and Limit is ignored.
type VectorSearchRequest struct {
	Embedding   []float32 `json:"embedding" validate:"required,min=1"`
	Limit       int       `json:"limit" validate:"omitempty,min=1,max=1000" example:"5"`
	MaxDistance *float64  `json:"max_distance" validate:"omitempty,gte=0"`
}

type MetadataSearchRequest struct {
	Metadata map[string]any `json:"metadata" validate:"required"`
}

type DeleteVectorsRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

const defaultSearchLimit = 5

type VectorHandler struct {
	service interfaces.VectorService
}

func NewVectorHandler(svc interfaces.VectorService) *VectorHandler {
	return &VectorHandler{service: svc}
}

// SaveVector godoc
// @Summary      Store a fragment
// @Description  Upserts by id; a blank id is generated.
// @Tags         Vectors
// @Accept       json
// @Produce      json
// @Param        vector  body      service.SaveVectorRequest  true  "Fragment"
// @Success      201     {object}  VectorResponse
// @Failure      400     {object}  ErrorResponse
// @Router       /api/vectors [post]
func (h *VectorHandler) SaveVector(w http.ResponseWriter, r *http.Request) {
	var req service.SaveVectorRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	rec, err := h.service.Save(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, toVectorResponse(*rec, nil))
}

// UpdateVector godoc
// @Summary      Partially update a fragment
// @Tags         Vectors
// @Accept       json
// @Produce      json
// @Param        vectorID  path      string                       true  "Vector ID"
// @Param        vector    body      service.UpdateVectorRequest  true  "Fields to change"
// @Success      200       {object}  VectorResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /api/vectors/{vectorID} [patch]
func (h *VectorHandler) UpdateVector(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateVectorRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	rec, err := h.service.Update(r.Context(), chi.URLParam(r, "vectorID"), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, toVectorResponse(*rec, nil))
}

// GetVector godoc
// @Summary      Get a fragment
// @Tags         Vectors
// @Produce      json
// @Param        vectorID  path      string  true  "Vector ID"
// @Success      200       {object}  VectorResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /api/vectors/{vectorID} [get]
func (h *VectorHandler) GetVector(w http.ResponseWriter, r *http.Request) {
	rec, err := h.service.Get(r.Context(), chi.URLParam(r, "vectorID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, toVectorResponse(*rec, nil))
}

// ListVectors godoc
// @Summary      List fragments
// @Tags         Vectors
// @Produce      json
// @Param        q  query    string  false  "Content keyword"
// @Success      200  {array}  VectorResponse
// @Router       /api/vectors [get]
func (h *VectorHandler) ListVectors(w http.ResponseWriter, r *http.Request) {
	var (
		records []model.VectorRecord
		err     error
	)
	if keyword := r.URL.Query().Get("q"); keyword != "" {
		records, err = h.service.SearchByContent(r.Context(), keyword)
	} else {
		records, err = h.service.List(r.Context())
	}
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, toVectorResponses(records))
}

// CountVectors godoc
// @Summary      Count fragments
// @Tags         Vectors
// @Produce      json
// @Param        embedded  query     bool  false  "Only fragments with an embedding"
// @Success      200       {object}  CountResponse
// @Router       /api/vectors/count [get]
func (h *VectorHandler) CountVectors(w http.ResponseWriter, r *http.Request) {
	var (
		n   int64
		err error
	)
	if r.URL.Query().Get("embedded") == "true" {
		n, err = h.service.CountWithEmbedding(r.Context())
	} else {
		n, err = h.service.Count(r.Context())
	}
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, CountResponse{Count: n})
}

// SearchVectors godoc
// @Summary      Similarity search
// @Description  Orders fragments by ascending L2 distance to the query embedding.
// @Tags         Vectors
// @Accept       json
// @Produce      json
// @Param        query  body      VectorSearchRequest  true  "Query"
// @Success      200    {array}   VectorResponse
// @Failure      400    {object}  ErrorResponse
// @Router       /api/vectors/search [post]
func (h *VectorHandler) SearchVectors(w http.ResponseWriter, r *http.Request) {
	var req VectorSearchRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}

	var (
		scored []model.ScoredVector
		err    error
	)
	if req.MaxDistance != nil {
		scored, err = h.service.FindWithinDistance(r.Context(), req.Embedding, *req.MaxDistance)
	} else {
		limit := req.Limit
		if limit == 0 {
			limit = defaultSearchLimit
		}
		scored, err = h.service.FindNearest(r.Context(), req.Embedding, limit)
	}
	if err != nil {
		respondWithError(w, err)
		return
	}

	resp := make([]VectorResponse, 0, len(scored))
	for _, s := range scored {
		d := s.Distance
		resp = append(resp, toVectorResponse(s.VectorRecord, &d))
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// SearchByMetadata godoc
// @Summary      Metadata search
// @Description  Returns fragments whose metadata contains every given key with an equal value.
// @Tags         Vectors
// @Accept       json
// @Produce      json
// @Param        query  body      MetadataSearchRequest  true  "Metadata subset"
// @Success      200    {array}   VectorResponse
// @Router       /api/vectors/search/metadata [post]
func (h *VectorHandler) SearchByMetadata(w http.ResponseWriter, r *http.Request) {
	var req MetadataSearchRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	records, err := h.service.SearchByMetadata(r.Context(), req.Metadata)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, toVectorResponses(records))
}

// HeadVector godoc
// @Summary      Check a vector exists
// @Tags         Vectors
// @Param        vectorID  path  string  true  "Vector ID"
// @Success      200
// @Failure      404
// @Router       /api/vectors/{vectorID} [head]
func (h *VectorHandler) HeadVector(w http.ResponseWriter, r *http.Request) {
	exists, err := h.service.Exists(r.Context(), chi.URLParam(r, "vectorID"))
	switch {
	case err != nil:
		respondWithError(w, err)
	case !exists:
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusOK)
	}
}

// DeleteVector godoc
// @Summary      Delete a fragment
// @Tags         Vectors
// @Produce      json
// @Param        vectorID  path      string  true  "Vector ID"
// @Success      200       {object}  StatusResponse
// @Router       /api/vectors/{vectorID} [delete]
func (h *VectorHandler) DeleteVector(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "vectorID")); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// DeleteVectors godoc
// @Summary      Delete several fragments
// @Tags         Vectors
// @Accept       json
// @Produce      json
// @Param        ids  body      DeleteVectorsRequest  true  "IDs"
// @Success      200  {object}  StatusResponse
// @Router       /api/vectors/delete [post]
func (h *VectorHandler) DeleteVectors(w http.ResponseWriter, r *http.Request) {
	var req DeleteVectorsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.service.DeleteMany(r.Context(), req.IDs); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// DeleteAllVectors godoc
// @Summary      Delete every fragment
// @Tags         Vectors
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /api/vectors [delete]
func (h *VectorHandler) DeleteAllVectors(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAll(r.Context()); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

func toVectorResponse(rec model.VectorRecord, distance *float64) VectorResponse {
	return VectorResponse{
		ID:        rec.ID,
		Content:   rec.Content,
		Metadata:  rec.Metadata,
		Embedding: rec.Embedding.Slice(),
		Distance:  distance,
	}
}

func toVectorResponses(records []model.VectorRecord) []VectorResponse {
	resp := make([]VectorResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, toVectorResponse(rec, nil))
	}
	return resp
}
