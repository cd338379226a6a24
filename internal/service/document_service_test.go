package service_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-lab/backend/internal/database"
	app_errors "ai-lab/backend/internal/errors"
	"ai-lab/backend/internal/repository"
	"ai-lab/backend/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(filepath.Join(t.TempDir(), "service.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func setupDocumentService(t *testing.T) *service.DocumentService {
	return service.NewDocumentService(repository.NewSQLiteDocumentRepository(newTestDB(t)))
}

func TestHashContent(t *testing.T) {
	// sha256("abc")
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", service.HashContent("abc"))
}

func TestDocumentService_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Same filename and content is stored once", func(t *testing.T) {
		docService := setupDocumentService(t)

		first, err := docService.Save(ctx, "notes.md", "hello", "md", 3)
		require.NoError(t, err)
		second, err := docService.Save(ctx, "notes.md", "hello", "md", 3)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		n, err := docService.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
	})

	t.Run("Changed content is a new record", func(t *testing.T) {
		docService := setupDocumentService(t)

		_, err := docService.Save(ctx, "notes.md", "v1", "md", 1)
		require.NoError(t, err)
		_, err = docService.Save(ctx, "notes.md", "v2", "md", 1)
		require.NoError(t, err)

		docs, err := docService.ListByFilename(ctx, "notes.md")
		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})

	t.Run("Validation", func(t *testing.T) {
		docService := setupDocumentService(t)

		_, err := docService.Save(ctx, " ", "x", "md", 1)
		assert.ErrorIs(t, err, app_errors.ErrValidation)
		_, err = docService.Save(ctx, "a.md", "x", "md", -1)
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})
}

func TestDocumentService_IsLoaded(t *testing.T) {
	ctx := context.Background()
	docService := setupDocumentService(t)

	_, err := docService.Save(ctx, "notes.md", "hello", "md", 1)
	require.NoError(t, err)

	loaded, err := docService.IsLoaded(ctx, "notes.md", "hello")
	require.NoError(t, err)
	assert.True(t, loaded)

	loaded, err = docService.IsLoaded(ctx, "notes.md", "changed")
	require.NoError(t, err)
	assert.False(t, loaded)
}

func TestDocumentService_Errors(t *testing.T) {
	ctx := context.Background()
	docService := setupDocumentService(t)

	_, err := docService.Get(ctx, 42)
	assert.ErrorIs(t, err, app_errors.ErrNotFound)

	err = docService.UpdateChunkCount(ctx, 42, 1)
	assert.ErrorIs(t, err, app_errors.ErrNotFound)

	now := time.Now()
	_, err = docService.ListLoadedBetween(ctx, now, now.Add(-time.Hour))
	assert.ErrorIs(t, err, app_errors.ErrValidation)
}
