package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	app_errors "ai-lab/backend/internal/errors"
	"ai-lab/backend/internal/model"
	"ai-lab/backend/internal/repository"
)

// SaveVectorRequest describes a fragment to store. A blank ID is generated.
type SaveVectorRequest struct {
	ID        string         `json:"id"`
	Content   string         `json:"content" validate:"required"`
	Metadata  map[string]any `json:"metadata"`
	Embedding []float32      `json:"embedding"`
}

// UpdateVectorRequest changes only the fields that are set.
type UpdateVectorRequest struct {
	Content   *string        `json:"content"`
	Metadata  map[string]any `json:"metadata"`
	Embedding []float32      `json:"embedding"`
}

// VectorService manages embedded text fragments.
type VectorService struct {
	repo       repository.VectorRepository
	dimensions int
}

func NewVectorService(repo repository.VectorRepository, dimensions int) *VectorService {
	return &VectorService{repo: repo, dimensions: dimensions}
}

func (s *VectorService) Save(ctx context.Context, req *SaveVectorRequest) (*model.VectorRecord, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", app_errors.ErrValidation)
	}
	if len(req.Embedding) > 0 {
		if err := s.checkDimensions(req.Embedding); err != nil {
			return nil, err
		}
	}

	record := &model.VectorRecord{
		ID:        strings.TrimSpace(req.ID),
		Content:   req.Content,
		Metadata:  req.Metadata,
		Embedding: pgvector.NewVector(req.Embedding),
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.Metadata == nil {
		record.Metadata = map[string]any{}
	}
	if err := s.repo.Upsert(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Update applies a partial change to an existing record.
func (s *VectorService) Update(ctx context.Context, id string, req *UpdateVectorRequest) (*model.VectorRecord, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, fmt.Errorf("%w: content cannot be empty", app_errors.ErrValidation)
		}
		record.Content = *req.Content
	}
	if req.Metadata != nil {
		record.Metadata = req.Metadata
	}
	if req.Embedding != nil {
		if err := s.checkDimensions(req.Embedding); err != nil {
			return nil, err
		}
		record.Embedding = pgvector.NewVector(req.Embedding)
	}
	if err := s.repo.Upsert(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *VectorService) Get(ctx context.Context, id string) (*model.VectorRecord, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, translate(err, "vector %s", id)
	}
	return record, nil
}

func (s *VectorService) List(ctx context.Context) ([]model.VectorRecord, error) {
	return s.repo.List(ctx)
}

// FindNearest returns up to limit records closest to query by L2 distance.
func (s *VectorService) FindNearest(ctx context.Context, query []float32, limit int) ([]model.ScoredVector, error) {
	if err := s.checkDimensions(query); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", app_errors.ErrValidation)
	}
	scored, err := s.repo.FindNearest(ctx, pgvector.NewVector(query), limit)
	if err != nil {
		return nil, translate(err, "vector query")
	}
	return scored, nil
}

// FindWithinDistance returns records strictly closer than distance to query.
func (s *VectorService) FindWithinDistance(ctx context.Context, query []float32, distance float64) ([]model.ScoredVector, error) {
	if err := s.checkDimensions(query); err != nil {
		return nil, err
	}
	scored, err := s.repo.FindWithinDistance(ctx, pgvector.NewVector(query), distance)
	if err != nil {
		return nil, translate(err, "vector query")
	}
	return scored, nil
}

func (s *VectorService) SearchByContent(ctx context.Context, keyword string) ([]model.VectorRecord, error) {
	return s.repo.SearchByContent(ctx, keyword)
}

// SearchByMetadata returns records whose metadata contains every given pair.
func (s *VectorService) SearchByMetadata(ctx context.Context, subset map[string]any) ([]model.VectorRecord, error) {
	return s.repo.SearchByMetadata(ctx, subset)
}

func (s *VectorService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *VectorService) DeleteMany(ctx context.Context, ids []string) error {
	return s.repo.DeleteMany(ctx, ids)
}

func (s *VectorService) DeleteAll(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}

func (s *VectorService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *VectorService) CountWithEmbedding(ctx context.Context) (int64, error) {
	return s.repo.CountWithEmbedding(ctx)
}

func (s *VectorService) Exists(ctx context.Context, id string) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *VectorService) checkDimensions(v []float32) error {
	if s.dimensions > 0 && len(v) != s.dimensions {
		return fmt.Errorf("%w: embedding has %d dimensions, expected %d", app_errors.ErrValidation, len(v), s.dimensions)
	}
	if len(v) == 0 {
		return fmt.Errorf("%w: embedding is empty", app_errors.ErrValidation)
	}
	return nil
}
