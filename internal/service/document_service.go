package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	app_errors "ai-lab/backend/internal/errors"
	"ai-lab/backend/internal/model"
	"ai-lab/backend/internal/repository"
)

// DocumentService records which files have been loaded for retrieval.
type DocumentService struct {
	repo repository.DocumentRepository
}

func NewDocumentService(repo repository.DocumentRepository) *DocumentService {
	return &DocumentService{repo: repo}
}

// HashContent returns the hex SHA-256 digest used to detect reloads.
func HashContent(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// Save records a loaded document. Saving the same filename and content again
// returns the existing record.
func (s *DocumentService) Save(ctx context.Context, filename, content, documentType string, chunkCount int) (*model.Document, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return nil, fmt.Errorf("%w: filename is required", app_errors.ErrValidation)
	}
	if chunkCount < 0 {
		return nil, fmt.Errorf("%w: chunk count cannot be negative", app_errors.ErrValidation)
	}

	doc := &model.Document{
		Filename:     filename,
		ContentHash:  HashContent(content),
		DocumentType: documentType,
		ChunkCount:   chunkCount,
		LoadedAt:     time.Now().UTC(),
	}
	saved, created, err := s.repo.SaveIfAbsent(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("could not save document: %w", err)
	}
	if created {
		slog.Info("Recorded loaded document", "filename", saved.Filename, "id", saved.ID)
	} else {
		slog.Debug("Document already loaded", "filename", saved.Filename, "id", saved.ID)
	}
	return saved, nil
}

// IsLoaded reports whether this exact content was loaded under filename.
func (s *DocumentService) IsLoaded(ctx context.Context, filename, content string) (bool, error) {
	_, err := s.repo.FindByFilenameAndHash(ctx, filename, HashContent(content))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	return false, err
}

func (s *DocumentService) Get(ctx context.Context, id int64) (*model.Document, error) {
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, translate(err, "document %d", id)
	}
	return doc, nil
}

func (s *DocumentService) FindByFilenameAndHash(ctx context.Context, filename, contentHash string) (*model.Document, error) {
	doc, err := s.repo.FindByFilenameAndHash(ctx, filename, contentHash)
	if err != nil {
		return nil, translate(err, "document %s", filename)
	}
	return doc, nil
}

func (s *DocumentService) ListByFilename(ctx context.Context, filename string) ([]model.Document, error) {
	return s.repo.ListByFilename(ctx, filename)
}

func (s *DocumentService) ListByType(ctx context.Context, documentType string) ([]model.Document, error) {
	return s.repo.ListByType(ctx, documentType)
}

func (s *DocumentService) SearchByFilename(ctx context.Context, pattern string) ([]model.Document, error) {
	return s.repo.SearchByFilename(ctx, pattern)
}

// ListRecent returns all documents, most recently loaded first.
func (s *DocumentService) ListRecent(ctx context.Context) ([]model.Document, error) {
	return s.repo.ListRecent(ctx)
}

func (s *DocumentService) ListLoadedBetween(ctx context.Context, start, end time.Time) ([]model.Document, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end is before start", app_errors.ErrValidation)
	}
	return s.repo.ListLoadedBetween(ctx, start, end)
}

func (s *DocumentService) UpdateChunkCount(ctx context.Context, id int64, chunkCount int) error {
	if chunkCount < 0 {
		return fmt.Errorf("%w: chunk count cannot be negative", app_errors.ErrValidation)
	}
	if err := s.repo.UpdateChunkCount(ctx, id, chunkCount); err != nil {
		return translate(err, "document %d", id)
	}
	return nil
}

func (s *DocumentService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *DocumentService) DeleteAll(ctx context.Context) error {
	slog.Warn("Deleting all document records")
	return s.repo.DeleteAll(ctx)
}

func (s *DocumentService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *DocumentService) CountByType(ctx context.Context, documentType string) (int64, error) {
	return s.repo.CountByType(ctx, documentType)
}
