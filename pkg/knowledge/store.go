package knowledge

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"ai-bankassist-be/internal/pkg/logger"
	"ai-bankassist-be/pkg/embedding"
)

// Store holds the banking knowledge collection behind an optional
// embedding capability. When no embedder is bound the store still works,
// but Query returns empty results and Add fails with ErrStoreUnavailable.
type Store struct {
	repo         DocumentRepository
	embedder     embedding.EmbeddingProvider
	embedderName string
	logger       logger.ILogger

	// Rebuild swaps the whole collection, so it excludes readers.
	mu sync.RWMutex

	docSeq uint64
}

func NewStore(repo DocumentRepository, embedderName string, embedder embedding.EmbeddingProvider, log logger.ILogger) *Store {
	return &Store{
		repo:         repo,
		embedder:     embedder,
		embedderName: embedderName,
		logger:       log,
	}
}

// Degraded reports whether the store has no usable embedding capability.
func (s *Store) Degraded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.embedder == nil
}

// Query returns up to k results ordered by ascending distance.
// Failures degrade to an empty slice, never an error.
func (s *Store) Query(ctx context.Context, text string, k int) []RetrievalResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.embedder == nil {
		s.logger.Warn("KnowledgeStore", "Query skipped, no embedding capability bound", nil)
		return []RetrievalResult{}
	}

	res, err := s.embedder.Generate(text, embedding.TaskRetrievalQuery)
	if err != nil {
		s.logger.Error("KnowledgeStore", "Query embedding failed", map[string]interface{}{"error": err.Error()})
		return []RetrievalResult{}
	}

	scored, err := s.repo.SearchSimilar(ctx, res.Embedding.Values, k)
	if err != nil {
		s.logger.Error("KnowledgeStore", "Similarity search failed", map[string]interface{}{"error": err.Error()})
		return []RetrievalResult{}
	}

	results := make([]RetrievalResult, 0, len(scored))
	for _, sd := range scored {
		results = append(results, toResult(sd))
	}
	return results
}

// Add indexes a new document and returns its generated id.
func (s *Store) Add(ctx context.Context, content, category string, keywords []string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.embedder == nil {
		return "", ErrStoreUnavailable
	}

	res, err := s.embedder.Generate(content, embedding.TaskRetrievalDocument)
	if err != nil {
		return "", fmt.Errorf("embed document: %w", err)
	}

	doc := &Document{
		ID:        s.nextDocID(time.Now()),
		Content:   content,
		Category:  category,
		Keywords:  keywords,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, doc, res.Embedding.Values); err != nil {
		return "", fmt.Errorf("store document: %w", err)
	}

	s.logger.Info("KnowledgeStore", "Document added", map[string]interface{}{"id": doc.ID, "category": category})
	return doc.ID, nil
}

// ListAll returns every document with metadata, for fallback re-ranking
// and statistics.
func (s *Store) ListAll(ctx context.Context) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.repo.FindAll(ctx)
}

// Stats mirrors the collection-info endpoint: totals plus per-category counts.
func (s *Store) Stats(ctx context.Context) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories, err := s.repo.CountByCategory(ctx)
	if err != nil {
		s.logger.Error("KnowledgeStore", "Stats query failed", map[string]interface{}{"error": err.Error()})
		categories = map[string]int64{}
	}

	var total int64
	for _, c := range categories {
		total += c
	}

	return Stats{
		TotalDocuments: total,
		Categories:     categories,
		EmbedderName:   s.embedderName,
		Degraded:       s.embedder == nil,
	}
}

// Rebuild drains the collection and re-indexes every document with the
// bound embedder, or the seed set when the store was empty. Needed when
// the stored vectors came from a different provider (selection can land
// on another model across restarts), since vectors are not comparable
// across models.
func (s *Store) Rebuild(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.embedder == nil {
		return ErrStoreUnavailable
	}

	docs, err := s.repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("drain collection: %w", err)
	}
	if len(docs) == 0 {
		docs = Seeds()
	}

	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("reset collection: %w", err)
	}

	now := time.Now()
	for _, doc := range docs {
		res, err := s.embedder.Generate(doc.Content, embedding.TaskRetrievalDocument)
		if err != nil {
			return fmt.Errorf("re-embed document %s: %w", doc.ID, err)
		}
		reindexed := &Document{
			ID:        s.nextDocID(now),
			Content:   doc.Content,
			Category:  doc.Category,
			Keywords:  doc.Keywords,
			CreatedAt: now,
		}
		if err := s.repo.Create(ctx, reindexed, res.Embedding.Values); err != nil {
			return fmt.Errorf("reinsert document: %w", err)
		}
	}

	s.logger.Info("KnowledgeStore", "Collection rebuilt", map[string]interface{}{
		"documents": len(docs),
		"embedder":  s.embedderName,
	})
	return nil
}

// nextDocID derives a timestamped id with a sequence suffix so that ids
// minted within the same second stay unique.
func (s *Store) nextDocID(now time.Time) string {
	seq := atomic.AddUint64(&s.docSeq, 1)
	return fmt.Sprintf("doc_%s%03d", now.Format("20060102_150405"), seq%1000)
}

func toResult(sd ScoredDocument) RetrievalResult {
	distance := 1.0 - sd.Similarity
	if distance < 0 {
		distance = 0
	}
	if distance > 1 {
		distance = 1
	}
	return RetrievalResult{
		ID:      sd.Document.ID,
		Content: sd.Document.Content,
		Metadata: Metadata{
			Category:  sd.Document.Category,
			Keywords:  sd.Document.Keywords,
			CreatedAt: sd.Document.CreatedAt,
		},
		Distance: distance,
	}
}
