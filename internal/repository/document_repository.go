package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ai-lab/backend/internal/model"
)

type sqliteDocumentRepository struct {
	db *sql.DB
}

func NewSQLiteDocumentRepository(db *sql.DB) DocumentRepository {
	return &sqliteDocumentRepository{db: db}
}

const documentColumns = "id, filename, content_hash, document_type, chunk_count, loaded_at"

func (r *sqliteDocumentRepository) SaveIfAbsent(ctx context.Context, doc *model.Document) (*model.Document, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := "SELECT " + documentColumns + " FROM loaded_documents WHERE filename = ? AND content_hash = ?"
	existing, err := scanDocument(tx.QueryRowContext(ctx, query, doc.Filename, doc.ContentHash))
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	insert := `INSERT INTO loaded_documents (filename, content_hash, document_type, chunk_count, loaded_at)
		VALUES (?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, insert, doc.Filename, doc.ContentHash, doc.DocumentType, doc.ChunkCount, doc.LoadedAt.UTC())
	if err != nil {
		return nil, false, fmt.Errorf("could not insert document: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, false, err
	}
	if err := tx.Commit(); err != nil {
		return nil, false, err
	}

	saved := *doc
	saved.ID = id
	return &saved, true, nil
}

func (r *sqliteDocumentRepository) Get(ctx context.Context, id int64) (*model.Document, error) {
	query := "SELECT " + documentColumns + " FROM loaded_documents WHERE id = ?"
	return scanDocument(r.db.QueryRowContext(ctx, query, id))
}

func (r *sqliteDocumentRepository) FindByFilenameAndHash(ctx context.Context, filename, contentHash string) (*model.Document, error) {
	query := "SELECT " + documentColumns + " FROM loaded_documents WHERE filename = ? AND content_hash = ?"
	return scanDocument(r.db.QueryRowContext(ctx, query, filename, contentHash))
}

func (r *sqliteDocumentRepository) ListByFilename(ctx context.Context, filename string) ([]model.Document, error) {
	return r.queryDocuments(ctx, "WHERE filename = ? ORDER BY id", filename)
}

func (r *sqliteDocumentRepository) ListByType(ctx context.Context, documentType string) ([]model.Document, error) {
	return r.queryDocuments(ctx, "WHERE document_type = ? ORDER BY id", documentType)
}

func (r *sqliteDocumentRepository) SearchByFilename(ctx context.Context, pattern string) ([]model.Document, error) {
	return r.queryDocuments(ctx, `WHERE filename LIKE ? ESCAPE '\' ORDER BY id`, containsPattern(pattern))
}

func (r *sqliteDocumentRepository) ListRecent(ctx context.Context) ([]model.Document, error) {
	return r.queryDocuments(ctx, "ORDER BY loaded_at DESC, id DESC")
}

func (r *sqliteDocumentRepository) ListLoadedBetween(ctx context.Context, start, end time.Time) ([]model.Document, error) {
	return r.queryDocuments(ctx, "WHERE loaded_at BETWEEN ? AND ? ORDER BY loaded_at", start.UTC(), end.UTC())
}

func (r *sqliteDocumentRepository) queryDocuments(ctx context.Context, clause string, args ...any) ([]model.Document, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+documentColumns+" FROM loaded_documents "+clause, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []model.Document{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, rows.Err()
}

func (r *sqliteDocumentRepository) UpdateChunkCount(ctx context.Context, id int64, chunkCount int) error {
	res, err := r.db.ExecContext(ctx, "UPDATE loaded_documents SET chunk_count = ? WHERE id = ?", chunkCount, id)
	if err != nil {
		return fmt.Errorf("could not update chunk count: %w", err)
	}
	return requireAffected(res)
}

func (r *sqliteDocumentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM loaded_documents WHERE id = ?", id)
	return err
}

func (r *sqliteDocumentRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM loaded_documents")
	return err
}

func (r *sqliteDocumentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM loaded_documents").Scan(&n)
	return n, err
}

func (r *sqliteDocumentRepository) CountByType(ctx context.Context, documentType string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM loaded_documents WHERE document_type = ?", documentType).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*model.Document, error) {
	var doc model.Document
	err := row.Scan(&doc.ID, &doc.Filename, &doc.ContentHash, &doc.DocumentType, &doc.ChunkCount, &doc.LoadedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}
