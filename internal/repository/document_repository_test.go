package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-lab/backend/internal/model"
	"ai-lab/backend/internal/repository"
)

func newDocument(filename, hash, docType string, loadedAt time.Time) *model.Document {
	return &model.Document{
		Filename:     filename,
		ContentHash:  hash,
		DocumentType: docType,
		ChunkCount:   1,
		LoadedAt:     loadedAt,
	}
}

func TestSQLiteDocumentRepository_SaveIfAbsent(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSQLiteDocumentRepository(newTestDB(t))
	now := time.Now().UTC()

	first, created, err := repo.SaveIfAbsent(ctx, newDocument("a.pdf", "h1", "pdf", now))
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotZero(t, first.ID)

	again, created, err := repo.SaveIfAbsent(ctx, newDocument("a.pdf", "h1", "pdf", now.Add(time.Minute)))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)

	_, created, err = repo.SaveIfAbsent(ctx, newDocument("a.pdf", "h2", "pdf", now))
	require.NoError(t, err)
	assert.True(t, created)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestSQLiteDocumentRepository_Queries(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSQLiteDocumentRepository(newTestDB(t))
	base := time.Now().UTC().Add(-time.Hour)

	old, _, err := repo.SaveIfAbsent(ctx, newDocument("guide.md", "h1", "md", base))
	require.NoError(t, err)
	recent, _, err := repo.SaveIfAbsent(ctx, newDocument("report_2024.pdf", "h2", "pdf", base.Add(30*time.Minute)))
	require.NoError(t, err)

	t.Run("ListRecent", func(t *testing.T) {
		docs, err := repo.ListRecent(ctx)
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, recent.ID, docs[0].ID)
		assert.Equal(t, old.ID, docs[1].ID)
	})

	t.Run("ListByType and CountByType", func(t *testing.T) {
		docs, err := repo.ListByType(ctx, "pdf")
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "report_2024.pdf", docs[0].Filename)

		n, err := repo.CountByType(ctx, "md")
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
	})

	t.Run("SearchByFilename", func(t *testing.T) {
		docs, err := repo.SearchByFilename(ctx, "_2024")
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, recent.ID, docs[0].ID)
	})

	t.Run("ListLoadedBetween", func(t *testing.T) {
		docs, err := repo.ListLoadedBetween(ctx, base.Add(10*time.Minute), base.Add(40*time.Minute))
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, recent.ID, docs[0].ID)
	})

	t.Run("FindByFilenameAndHash", func(t *testing.T) {
		doc, err := repo.FindByFilenameAndHash(ctx, "guide.md", "h1")
		require.NoError(t, err)
		assert.Equal(t, old.ID, doc.ID)

		_, err = repo.FindByFilenameAndHash(ctx, "guide.md", "nope")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("UpdateChunkCount", func(t *testing.T) {
		require.NoError(t, repo.UpdateChunkCount(ctx, old.ID, 12))
		doc, err := repo.Get(ctx, old.ID)
		require.NoError(t, err)
		assert.Equal(t, 12, doc.ChunkCount)

		assert.ErrorIs(t, repo.UpdateChunkCount(ctx, 9999, 1), repository.ErrNotFound)
	})

	t.Run("Delete and DeleteAll", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, old.ID))
		_, err := repo.Get(ctx, old.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)

		require.NoError(t, repo.DeleteAll(ctx))
		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
