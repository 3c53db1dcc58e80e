package knowledge

import (
	"context"
	"errors"
	"time"
)

// ErrStoreUnavailable signals that no embedding capability is bound, so
// writes cannot be indexed. Reads degrade to empty results instead.
var ErrStoreUnavailable = errors.New("knowledge store unavailable: no embedding capability bound")

// Document is a short knowledge snippet with routing metadata.
type Document struct {
	ID        string
	Content   string
	Category  string
	Keywords  []string
	CreatedAt time.Time
}

// Metadata is the document metadata carried on retrieval results.
type Metadata struct {
	Category  string    `json:"category"`
	Keywords  []string  `json:"keywords"`
	CreatedAt time.Time `json:"created_at"`
}

// RetrievalResult is one ranked hit. Distance is 1 - cosine similarity,
// lower means more relevant.
type RetrievalResult struct {
	ID       string   `json:"id"`
	Content  string   `json:"content"`
	Metadata Metadata `json:"metadata"`
	Distance float64  `json:"distance"`
}

// ScoredDocument pairs a stored document with its query similarity.
type ScoredDocument struct {
	Document   Document
	Similarity float64
}

// Stats summarizes the collection.
type Stats struct {
	TotalDocuments int64            `json:"total_documents"`
	Categories     map[string]int64 `json:"categories"`
	EmbedderName   string           `json:"embedder"`
	Degraded       bool             `json:"degraded"`
}

// DocumentRepository is the persistence contract the store is bound to.
// The production implementation lives on gorm + pgvector.
type DocumentRepository interface {
	SearchSimilar(ctx context.Context, vector []float32, limit int) ([]ScoredDocument, error)
	Create(ctx context.Context, doc *Document, vector []float32) error
	FindAll(ctx context.Context) ([]Document, error)
	DeleteAll(ctx context.Context) error
	CountByCategory(ctx context.Context) (map[string]int64, error)
}
