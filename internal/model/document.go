package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// Document records that a file has been loaded for retrieval. The pair
// (Filename, ContentHash) is unique.
type Document struct {
	ID           int64     `json:"id"`
	Filename     string    `json:"filename"`
	ContentHash  string    `json:"content_hash"`
	DocumentType string    `json:"document_type"`
	ChunkCount   int       `json:"chunk_count"`
	LoadedAt     time.Time `json:"loaded_at"`
}

// VectorRecord is one embedded text fragment in the vector store.
type VectorRecord struct {
	ID        string          `json:"id"`
	Content   string          `json:"content"`
	Metadata  map[string]any  `json:"metadata"`
	Embedding pgvector.Vector `json:"-"`
}

// HasEmbedding reports whether the record carries a non-empty vector.
func (v *VectorRecord) HasEmbedding() bool {
	return len(v.Embedding.Slice()) > 0
}

// ScoredVector pairs a record with its distance to a query vector.
type ScoredVector struct {
	VectorRecord
	Distance float64 `json:"distance"`
}
