package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	app_errors "ai-lab/backend/internal/errors"
	"ai-lab/backend/internal/interfaces"
	"ai-lab/backend/internal/model"
)

// SaveDocumentRequest records a loaded file. Only the content hash is kept.
type SaveDocumentRequest struct {
	Filename     string `json:"filename" validate:"required,max=255" example:"guide.pdf"`
	Content      string `json:"content"`
	DocumentType string `json:"document_type" validate:"max=50" example:"pdf"`
	ChunkCount   int    `json:"chunk_count" validate:"min=0"`
}

type CheckDocumentRequest struct {
	Filename string `json:"filename" validate:"required"`
	Content  string `json:"content"`
}

type CheckDocumentResponse struct {
	Loaded bool `json:"loaded"`
}

type UpdateChunkCountRequest struct {
	ChunkCount int `json:"chunk_count" validate:"min=0"`
}

type DocumentHandler struct {
	service interfaces.DocumentService
}

func NewDocumentHandler(svc interfaces.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: svc}
}

// SaveDocument godoc
// @Summary      Record a loaded document
// @Description  Saving the same filename and content twice returns the existing record.
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Param        document  body      SaveDocumentRequest  true  "Document"
// @Success      200       {object}  model.Document
// @Failure      400       {object}  ErrorResponse
// @Router       /api/documents [post]
func (h *DocumentHandler) SaveDocument(w http.ResponseWriter, r *http.Request) {
	var req SaveDocumentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	doc, err := h.service.Save(r.Context(), req.Filename, req.Content, req.DocumentType, req.ChunkCount)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, doc)
}

// CheckDocument godoc
// @Summary      Check whether content was loaded
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Param        document  body      CheckDocumentRequest  true  "Filename and content"
// @Success      200       {object}  CheckDocumentResponse
// @Router       /api/documents/check [post]
func (h *DocumentHandler) CheckDocument(w http.ResponseWriter, r *http.Request) {
	var req CheckDocumentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	loaded, err := h.service.IsLoaded(r.Context(), req.Filename, req.Content)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, CheckDocumentResponse{Loaded: loaded})
}

// ListDocuments godoc
// @Summary      List documents
// @Description  Filters by exactly one of `filename`, `type`, `search`, or the `from`/`to` RFC 3339 range; without a filter every document is returned, most recent first.
// @Tags         Documents
// @Produce      json
// @Param        filename  query     string  false  "Exact filename"
// @Param        type      query     string  false  "Document type"
// @Param        search    query     string  false  "Filename fragment"
// @Param        from      query     string  false  "Loaded at or after"
// @Param        to        query     string  false  "Loaded at or before"
// @Success      200       {array}   model.Document
// @Failure      400       {object}  ErrorResponse
// @Router       /api/documents [get]
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var (
		docs []model.Document
		err  error
	)
	switch {
	case q.Get("filename") != "":
		docs, err = h.service.ListByFilename(r.Context(), q.Get("filename"))
	case q.Get("type") != "":
		docs, err = h.service.ListByType(r.Context(), q.Get("type"))
	case q.Get("search") != "":
		docs, err = h.service.SearchByFilename(r.Context(), q.Get("search"))
	case q.Get("from") != "" || q.Get("to") != "":
		var start, end time.Time
		if start, end, err = parseRange(q.Get("from"), q.Get("to")); err == nil {
			docs, err = h.service.ListLoadedBetween(r.Context(), start, end)
		}
	default:
		docs, err = h.service.ListRecent(r.Context())
	}
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, docs)
}

// CountDocuments godoc
// @Summary      Count documents
// @Tags         Documents
// @Produce      json
// @Param        type  query     string  false  "Document type"
// @Success      200   {object}  CountResponse
// @Router       /api/documents/count [get]
func (h *DocumentHandler) CountDocuments(w http.ResponseWriter, r *http.Request) {
	var (
		n   int64
		err error
	)
	if docType := r.URL.Query().Get("type"); docType != "" {
		n, err = h.service.CountByType(r.Context(), docType)
	} else {
		n, err = h.service.Count(r.Context())
	}
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, CountResponse{Count: n})
}

// GetDocument godoc
// @Summary      Get a document
// @Tags         Documents
// @Produce      json
// @Param        documentID  path      int  true  "Document ID"
// @Success      200         {object}  model.Document
// @Failure      404         {object}  ErrorResponse
// @Router       /api/documents/{documentID} [get]
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	id, err := documentID(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	doc, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, doc)
}

// UpdateChunkCount godoc
// @Summary      Update a document's chunk count
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Param        documentID  path      int                      true  "Document ID"
// @Param        body        body      UpdateChunkCountRequest  true  "Chunk count"
// @Success      200         {object}  StatusResponse
// @Failure      404         {object}  ErrorResponse
// @Router       /api/documents/{documentID}/chunks [put]
func (h *DocumentHandler) UpdateChunkCount(w http.ResponseWriter, r *http.Request) {
	id, err := documentID(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	var req UpdateChunkCountRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.service.UpdateChunkCount(r.Context(), id, req.ChunkCount); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// DeleteDocument godoc
// @Summary      Delete a document record
// @Tags         Documents
// @Produce      json
// @Param        documentID  path      int  true  "Document ID"
// @Success      200         {object}  StatusResponse
// @Router       /api/documents/{documentID} [delete]
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, err := documentID(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// DeleteAllDocuments godoc
// @Summary      Delete every document record
// @Tags         Documents
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /api/documents [delete]
func (h *DocumentHandler) DeleteAllDocuments(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAll(r.Context()); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

func documentID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "documentID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid document id %q", app_errors.ErrValidation, raw)
	}
	return id, nil
}

// parseRange reads an RFC 3339 range. A missing bound is open.
func parseRange(from, to string) (time.Time, time.Time, error) {
	start := time.Unix(0, 0).UTC()
	end := time.Now().UTC()
	var err error
	if from != "" {
		if start, err = time.Parse(time.RFC3339, from); err != nil {
			return start, end, fmt.Errorf("%w: invalid 'from' time", app_errors.ErrValidation)
		}
	}
	if to != "" {
		if end, err = time.Parse(time.RFC3339, to); err != nil {
			return start, end, fmt.Errorf("%w: invalid 'to' time", app_errors.ErrValidation)
		}
	}
	return start.UTC(), end.UTC(), nil
}
