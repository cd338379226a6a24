package repository_test

import (
	"context"
	"testing"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-lab/backend/internal/model"
	"ai-lab/backend/internal/repository"
)

func seedVectors(t *testing.T, repo repository.VectorRepository) {
	t.Helper()
	ctx := context.Background()
	records := []model.VectorRecord{
		{ID: "origin", Content: "at the origin", Metadata: map[string]any{"source": "a.md", "page": 1}, Embedding: pgvector.NewVector([]float32{0, 0})},
		{ID: "near", Content: "close by", Metadata: map[string]any{"source": "a.md", "page": 2}, Embedding: pgvector.NewVector([]float32{1, 0})},
		{ID: "far", Content: "far away", Metadata: map[string]any{"source": "b.md"}, Embedding: pgvector.NewVector([]float32{3, 4})},
		{ID: "bare", Content: "no embedding yet"},
	}
	for i := range records {
		require.NoError(t, repo.Upsert(ctx, &records[i]))
	}
}

func TestSQLiteVectorRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSQLiteVectorRepository(newTestDB(t))
	seedVectors(t, repo)

	rec, err := repo.Get(ctx, "far")
	require.NoError(t, err)
	assert.Equal(t, []float32{3, 4}, rec.Embedding.Slice())
	assert.Equal(t, "b.md", rec.Metadata["source"])

	bare, err := repo.Get(ctx, "bare")
	require.NoError(t, err)
	assert.False(t, bare.HasEmbedding())
	assert.Empty(t, bare.Metadata)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	embedded, err := repo.CountWithEmbedding(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, embedded)
}

func TestSQLiteVectorRepository_Similarity(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSQLiteVectorRepository(newTestDB(t))
	seedVectors(t, repo)
	query := pgvector.NewVector([]float32{0, 0})

	t.Run("FindNearest", func(t *testing.T) {
		scored, err := repo.FindNearest(ctx, query, 2)
		require.NoError(t, err)
		require.Len(t, scored, 2)
		assert.Equal(t, "origin", scored[0].ID)
		assert.Equal(t, "near", scored[1].ID)
		assert.InDelta(t, 1.0, scored[1].Distance, 1e-9)
	})

	t.Run("FindWithinDistance", func(t *testing.T) {
		scored, err := repo.FindWithinDistance(ctx, query, 5)
		require.NoError(t, err)
		require.Len(t, scored, 2, "distance 5 itself is excluded")
	})

	t.Run("Dimension mismatch", func(t *testing.T) {
		_, err := repo.FindNearest(ctx, pgvector.NewVector([]float32{1, 2, 3}), 1)
		assert.ErrorIs(t, err, repository.ErrDimensionMismatch)
	})
}

func TestSQLiteVectorRepository_Search(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSQLiteVectorRepository(newTestDB(t))
	seedVectors(t, repo)

	byContent, err := repo.SearchByContent(ctx, "away")
	require.NoError(t, err)
	require.Len(t, byContent, 1)
	assert.Equal(t, "far", byContent[0].ID)

	byMeta, err := repo.SearchByMetadata(ctx, map[string]any{"source": "a.md", "page": 2})
	require.NoError(t, err)
	require.Len(t, byMeta, 1)
	assert.Equal(t, "near", byMeta[0].ID)
}

func TestSQLiteVectorRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSQLiteVectorRepository(newTestDB(t))
	seedVectors(t, repo)

	require.NoError(t, repo.Delete(ctx, "bare"))
	exists, err := repo.Exists(ctx, "bare")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.DeleteMany(ctx, []string{"near", "far"}))
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.NoError(t, repo.DeleteAll(ctx))
	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
