package interfaces

import (
	"context"
	"time"

	"ai-lab/backend/internal/llm"
	"ai-lab/backend/internal/model"
	"ai-lab/backend/internal/relay"
	"ai-lab/backend/internal/service"
)

// Handlers depend on these contracts rather than the concrete services.

// ChatService defines the contract for chat-related business logic.
type ChatService interface {
	CreateChat(ctx context.Context, title string) (*model.Chat, error)
	GetChat(ctx context.Context, chatID string) (*model.Chat, error)
	GetFullChat(ctx context.Context, chatID string) (*model.FullChat, error)
	ListChats(ctx context.Context) ([]model.Chat, error)
	SearchChats(ctx context.Context, titleFragment string) ([]model.Chat, error)
	ListChatsCreatedBetween(ctx context.Context, start, end time.Time) ([]model.Chat, error)
	SearchEntries(ctx context.Context, keyword string) ([]model.Entry, error)
	FindEntriesByRole(ctx context.Context, role string) ([]model.Entry, error)
	UpdateChatTitle(ctx context.Context, chatID, newTitle string) error
	DeleteChat(ctx context.Context, chatID string) error
	ListEntries(ctx context.Context, chatID string) ([]model.Entry, error)
	ListEntriesByRole(ctx context.Context, chatID, role string) ([]model.Entry, error)
	CountChats(ctx context.Context) (int64, error)
	CountEntries(ctx context.Context, chatID string) (int64, error)
	ClearEntries(ctx context.Context, chatID string) error
	DeleteEntry(ctx context.Context, chatID, entryID string) error
	SendMessage(ctx context.Context, chatID, prompt string) (*model.Turn, error)
	StreamMessage(ctx context.Context, chatID, prompt string, sink relay.Sink) (*model.Turn, error)
}

// DocumentService defines the contract for loaded-document bookkeeping.
type DocumentService interface {
	Save(ctx context.Context, filename, content, documentType string, chunkCount int) (*model.Document, error)
	IsLoaded(ctx context.Context, filename, content string) (bool, error)
	Get(ctx context.Context, id int64) (*model.Document, error)
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

// VectorService defines the contract for the vector store.
type VectorService interface {
	Save(ctx context.Context, req *service.SaveVectorRequest) (*model.VectorRecord, error)
	Update(ctx context.Context, id string, req *service.UpdateVectorRequest) (*model.VectorRecord, error)
	Get(ctx context.Context, id string) (*model.VectorRecord, error)
	List(ctx context.Context) ([]model.VectorRecord, error)
	FindNearest(ctx context.Context, query []float32, limit int) ([]model.ScoredVector, error)
	FindWithinDistance(ctx context.Context, query []float32, distance float64) ([]model.ScoredVector, error)
	SearchByContent(ctx context.Context, keyword string) ([]model.VectorRecord, error)
	SearchByMetadata(ctx context.Context, subset map[string]any) ([]model.VectorRecord, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
	CountWithEmbedding(ctx context.Context) (int64, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// ModelService defines the contract for model discovery.
type ModelService interface {
	List(ctx context.Context) (*llm.ListModelsResponse, error)
}
