package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	"ai-lab/backend/internal/model"

	"github.com/pgvector/pgvector-go"
)

// sqliteVectorRepository keeps embeddings in pgvector's text format so the
// rows can be bulk-copied into a Postgres vector column unchanged. SQLite has
// no distance operator, so similarity queries are evaluated in Go.
type sqliteVectorRepository struct {
	db *sql.DB
}

func NewSQLiteVectorRepository(db *sql.DB) VectorRepository {
	return &sqliteVectorRepository{db: db}
}

const vectorColumns = "id, content, metadata, embedding"

func (r *sqliteVectorRepository) Upsert(ctx context.Context, record *model.VectorRecord) error {
	metadata, err := encodeMetadata(record.Metadata)
	if err != nil {
		return err
	}
	var embedding any
	if record.HasEmbedding() {
		embedding = record.Embedding
	}

	query := `
		INSERT INTO vector_store (id, content, metadata, embedding) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			content = excluded.content,
			metadata = excluded.metadata,
			embedding = excluded.embedding
	`
	if _, err := r.db.ExecContext(ctx, query, record.ID, record.Content, metadata, embedding); err != nil {
		return fmt.Errorf("could not upsert vector %s: %w", record.ID, err)
	}
	return nil
}

func (r *sqliteVectorRepository) Get(ctx context.Context, id string) (*model.VectorRecord, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+vectorColumns+" FROM vector_store WHERE id = ?", id)
	rec, err := scanVector(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rec, err
}

func (r *sqliteVectorRepository) List(ctx context.Context) ([]model.VectorRecord, error) {
	return r.queryVectors(ctx, "ORDER BY id")
}

func (r *sqliteVectorRepository) FindNearest(ctx context.Context, query pgvector.Vector, limit int) ([]model.ScoredVector, error) {
	scored, err := r.scoreAll(ctx, query)
	if err != nil {
		return nil, err
	}
	if limit >= 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

func (r *sqliteVectorRepository) FindWithinDistance(ctx context.Context, query pgvector.Vector, distance float64) ([]model.ScoredVector, error) {
	scored, err := r.scoreAll(ctx, query)
	if err != nil {
		return nil, err
	}
	n := sort.Search(len(scored), func(i int) bool { return scored[i].Distance >= distance })
	return scored[:n], nil
}

// scoreAll returns every embedded record ordered by L2 distance to query.
func (r *sqliteVectorRepository) scoreAll(ctx context.Context, query pgvector.Vector) ([]model.ScoredVector, error) {
	records, err := r.queryVectors(ctx, "WHERE embedding IS NOT NULL")
	if err != nil {
		return nil, err
	}
	q := query.Slice()
	scored := make([]model.ScoredVector, 0, len(records))
	for _, rec := range records {
		d, err := l2Distance(q, rec.Embedding.Slice())
		if err != nil {
			return nil, fmt.Errorf("vector %s: %w", rec.ID, err)
		}
		scored = append(scored, model.ScoredVector{VectorRecord: rec, Distance: d})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Distance < scored[j].Distance })
	return scored, nil
}

func (r *sqliteVectorRepository) SearchByContent(ctx context.Context, keyword string) ([]model.VectorRecord, error) {
	return r.queryVectors(ctx, `WHERE content LIKE ? ESCAPE '\' ORDER BY id`, containsPattern(keyword))
}

func (r *sqliteVectorRepository) SearchByMetadata(ctx context.Context, subset map[string]any) ([]model.VectorRecord, error) {
	// Round-trip the query so its values have the same Go types as decoded rows.
	raw, err := json.Marshal(subset)
	if err != nil {
		return nil, fmt.Errorf("could not encode metadata query: %w", err)
	}
	var want map[string]any
	if err := json.Unmarshal(raw, &want); err != nil {
		return nil, err
	}

	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := []model.VectorRecord{}
	for _, rec := range records {
		if containsAll(rec.Metadata, want) {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

func (r *sqliteVectorRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM vector_store WHERE id = ?", id)
	return err
}

func (r *sqliteVectorRepository) DeleteMany(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	_, err := r.db.ExecContext(ctx, "DELETE FROM vector_store WHERE id IN ("+placeholders+")", args...)
	return err
}

func (r *sqliteVectorRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM vector_store")
	return err
}

func (r *sqliteVectorRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM vector_store").Scan(&n)
	return n, err
}

func (r *sqliteVectorRepository) CountWithEmbedding(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM vector_store WHERE embedding IS NOT NULL").Scan(&n)
	return n, err
}

func (r *sqliteVectorRepository) Exists(ctx context.Context, id string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, "SELECT 1 FROM vector_store WHERE id = ?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (r *sqliteVectorRepository) queryVectors(ctx context.Context, clause string, args ...any) ([]model.VectorRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+vectorColumns+" FROM vector_store "+clause, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []model.VectorRecord{}
	for rows.Next() {
		rec, err := scanVector(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func scanVector(row rowScanner) (*model.VectorRecord, error) {
	var rec model.VectorRecord
	var metadata string
	var embedding sql.NullString
	if err := row.Scan(&rec.ID, &rec.Content, &metadata, &embedding); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(metadata), &rec.Metadata); err != nil {
		return nil, fmt.Errorf("could not decode metadata of vector %s: %w", rec.ID, err)
	}
	if rec.Metadata == nil {
		rec.Metadata = map[string]any{}
	}
	if embedding.Valid {
		if err := rec.Embedding.Scan(embedding.String); err != nil {
			return nil, fmt.Errorf("could not decode embedding of vector %s: %w", rec.ID, err)
		}
	}
	return &rec, nil
}

func encodeMetadata(metadata map[string]any) (string, error) {
	if len(metadata) == 0 {
		return "{}", nil
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return "", fmt.Errorf("could not encode metadata: %w", err)
	}
	return string(raw), nil
}

func containsAll(have, want map[string]any) bool {
	for k, v := range want {
		got, ok := have[k]
		if !ok || !reflect.DeepEqual(got, v) {
			return false
		}
	}
	return true
}

func l2Distance(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(a), len(b))
	}
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum), nil
}
