package repository

import (
	"context"
	"time"

	"ai-lab/backend/internal/model"

	"github.com/pgvector/pgvector-go"
)

// ChatRepository persists chats and their ordered entries.
// Implementations must apply every mutation atomically.
type ChatRepository interface {
	CreateChat(ctx context.Context, chat *model.Chat) error
	GetChat(ctx context.Context, chatID string) (*model.Chat, error)
	// ListChats returns chats newest first.
	ListChats(ctx context.Context) ([]model.Chat, error)
	SearchChats(ctx context.Context, titleFragment string) ([]model.Chat, error)
	// ListChatsCreatedBetween returns chats created in [start, end], oldest first.
	ListChatsCreatedBetween(ctx context.Context, start, end time.Time) ([]model.Chat, error)
	UpdateChatTitle(ctx context.Context, chatID, title string) error
	// DeleteChat removes the chat and all of its entries. Deleting an unknown
	// chat is not an error.
	DeleteChat(ctx context.Context, chatID string) error
	CountChats(ctx context.Context) (int64, error)

	// AppendEntry fails with ErrNotFound when the chat does not exist.
	AppendEntry(ctx context.Context, entry *model.Entry) error
	// ListEntries returns entries oldest first, ties in insertion order.
	ListEntries(ctx context.Context, chatID string) ([]model.Entry, error)
	ListEntriesByRole(ctx context.Context, chatID string, role model.Role) ([]model.Entry, error)
	// SearchEntries and FindEntriesByRole span every chat, oldest first.
	SearchEntries(ctx context.Context, keyword string) ([]model.Entry, error)
	FindEntriesByRole(ctx context.Context, role model.Role) ([]model.Entry, error)
	DeleteEntries(ctx context.Context, chatID string) error
	// DeleteEntry is a no-op when the entry is absent or belongs to another chat.
	DeleteEntry(ctx context.Context, chatID, entryID string) error
	CountEntries(ctx context.Context, chatID string) (int64, error)
}

// DocumentRepository stores metadata about loaded documents.
type DocumentRepository interface {
	// SaveIfAbsent inserts doc unless a document with the same filename and
	// content hash exists, in which case the stored one is returned.
	SaveIfAbsent(ctx context.Context, doc *model.Document) (*model.Document, bool, error)
	Get(ctx context.Context, id int64) (*model.Document, error)
	FindByFilenameAndHash(ctx context.Context, filename, contentHash string) (*model.Document, error)
	ListByFilename(ctx context.Context, filename string) ([]model.Document, error)
	ListByType(ctx context.Context, documentType string) ([]model.Document, error)
	SearchByFilename(ctx context.Context, pattern string) ([]model.Document, error)
	ListRecent(ctx context.Context) ([]model.Document, error)
	ListLoadedBetween(ctx context.Context, start, end time.Time) ([]model.Document, error)
	UpdateChunkCount(ctx context.Context, id int64, chunkCount int) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
	CountByType(ctx context.Context, documentType string) (int64, error)
}

// VectorRepository stores embedded text fragments.
type VectorRepository interface {
	Upsert(ctx context.Context, record *model.VectorRecord) error
	Get(ctx context.Context, id string) (*model.VectorRecord, error)
	List(ctx context.Context) ([]model.VectorRecord, error)
	// FindNearest returns up to limit records ordered by ascending L2 distance.
	FindNearest(ctx context.Context, query pgvector.Vector, limit int) ([]model.ScoredVector, error)
	FindWithinDistance(ctx context.Context, query pgvector.Vector, distance float64) ([]model.ScoredVector, error)
	SearchByContent(ctx context.Context, keyword string) ([]model.VectorRecord, error)
	SearchByMetadata(ctx context.Context, subset map[string]any) ([]model.VectorRecord, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
	CountWithEmbedding(ctx context.Context) (int64, error)
	Exists(ctx context.Context, id string) (bool, error)
}
