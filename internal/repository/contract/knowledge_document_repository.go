package contract

import (
	"context"

	"ai-bankassist-be/pkg/knowledge"
)

// KnowledgeDocumentRepository persists knowledge base documents with their
// embeddings. The method set matches knowledge.DocumentRepository so the
// implementation plugs straight into the knowledge store.
type KnowledgeDocumentRepository interface {
	Create(ctx context.Context, doc *knowledge.Document, vector []float32) error
	FindAll(ctx context.Context) ([]knowledge.Document, error)
	DeleteAll(ctx context.Context) error
	CountByCategory(ctx context.Context) (map[string]int64, error)
	SearchSimilar(ctx context.Context, vector []float32, limit int) ([]knowledge.ScoredDocument, error)
}
