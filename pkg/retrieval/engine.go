package retrieval

import (
	"context"
	"math"
	"sort"
	"strings"

	"ai-bankassist-be/internal/pkg/logger"
	"ai-bankassist-be/pkg/embedding"
	"ai-bankassist-be/pkg/knowledge"
)

// KnowledgeSource is the slice of the knowledge store the engine needs.
type KnowledgeSource interface {
	Query(ctx context.Context, text string, k int) []knowledge.RetrievalResult
	ListAll(ctx context.Context) ([]knowledge.Document, error)
}

// Engine layers query expansion and a fallback chain on top of the
// knowledge store. Search never returns an error; every failure degrades
// to fewer (possibly zero) results with a logged diagnostic.
type Engine struct {
	source   KnowledgeSource
	embedder embedding.EmbeddingProvider // may be nil in degraded mode
	logger   logger.ILogger

	// Strategies run in order until one yields results.
	strategies []func(ctx context.Context, query string, limit int) []knowledge.RetrievalResult
}

func NewEngine(source KnowledgeSource, embedder embedding.EmbeddingProvider, log logger.ILogger) *Engine {
	e := &Engine{
		source:   source,
		embedder: embedder,
		logger:   log,
	}
	e.strategies = []func(ctx context.Context, query string, limit int) []knowledge.RetrievalResult{
		e.vectorSearch,
		e.localRerank,
		e.lexicalFallback,
	}
	return e
}

// Search returns up to limit results ordered by ascending distance.
func (e *Engine) Search(ctx context.Context, query string, limit int) []knowledge.RetrievalResult {
	if strings.TrimSpace(query) == "" || limit <= 0 {
		return []knowledge.RetrievalResult{}
	}

	for _, strategy := range e.strategies {
		if results := strategy(ctx, query, limit); len(results) > 0 {
			return results
		}
	}

	return []knowledge.RetrievalResult{}
}

// vectorSearch tries each expanded query variant against the ANN index,
// stopping at the first variant with hits.
func (e *Engine) vectorSearch(ctx context.Context, query string, limit int) []knowledge.RetrievalResult {
	for _, variant := range ExpandQuery(query) {
		if results := e.source.Query(ctx, variant, limit); len(results) > 0 {
			return results
		}
	}
	return nil
}

// localRerank embeds the raw query and every stored document locally and
// ranks by cosine distance. Used when the ANN index is cold or stale.
func (e *Engine) localRerank(ctx context.Context, query string, limit int) []knowledge.RetrievalResult {
	if e.embedder == nil {
		return nil
	}

	docs, err := e.source.ListAll(ctx)
	if err != nil || len(docs) == 0 {
		if err != nil {
			e.logger.Warn("RetrievalEngine", "Local re-rank list failed", map[string]interface{}{"error": err.Error()})
		}
		return nil
	}

	queryRes, err := e.embedder.Generate(query, embedding.TaskRetrievalQuery)
	if err != nil {
		e.logger.Warn("RetrievalEngine", "Local re-rank query embedding failed", map[string]interface{}{"error": err.Error()})
		return nil
	}

	results := make([]knowledge.RetrievalResult, 0, len(docs))
	for _, doc := range docs {
		docRes, err := e.embedder.Generate(doc.Content, embedding.TaskRetrievalDocument)
		if err != nil {
			e.logger.Warn("RetrievalEngine", "Local re-rank document embedding failed", map[string]interface{}{
				"doc_id": doc.ID,
				"error":  err.Error(),
			})
			continue
		}
		results = append(results, knowledge.RetrievalResult{
			ID:      doc.ID,
			Content: doc.Content,
			Metadata: knowledge.Metadata{
				Category:  doc.Category,
				Keywords:  doc.Keywords,
				CreatedAt: doc.CreatedAt,
			},
			Distance: cosineDistance(queryRes.Embedding.Values, docRes.Embedding.Values),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})
	return top(results, limit)
}

// lexicalFallback scans all documents for literal substring matches and
// ranks them by token-overlap distance. Last resort when no embedding
// capability is available at all.
func (e *Engine) lexicalFallback(ctx context.Context, query string, limit int) []knowledge.RetrievalResult {
	docs, err := e.source.ListAll(ctx)
	if err != nil {
		e.logger.Warn("RetrievalEngine", "Lexical fallback list failed", map[string]interface{}{"error": err.Error()})
		return nil
	}

	queryTokens := Tokenize(query)

	var results []knowledge.RetrievalResult
	for _, doc := range docs {
		if !lexicalMatch(query, doc) {
			continue
		}
		similarity := Jaccard(queryTokens, Tokenize(doc.Content))
		results = append(results, knowledge.RetrievalResult{
			ID:      doc.ID,
			Content: doc.Content,
			Metadata: knowledge.Metadata{
				Category:  doc.Category,
				Keywords:  doc.Keywords,
				CreatedAt: doc.CreatedAt,
			},
			Distance: 1.0 - similarity,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})
	return top(results, limit)
}

// lexicalMatch qualifies a document when the raw query is a substring of
// its content or of any keyword.
func lexicalMatch(query string, doc knowledge.Document) bool {
	if strings.Contains(doc.Content, query) {
		return true
	}
	for _, kw := range doc.Keywords {
		if strings.Contains(kw, query) {
			return true
		}
	}
	return false
}

// cosineDistance is 1 - cosine similarity, defined as 1.0 when either
// vector has zero norm.
func cosineDistance(a, b []float32) float64 {
	var dot, normA, normB float64
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 1.0
	}
	return 1.0 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}

func top(results []knowledge.RetrievalResult, limit int) []knowledge.RetrievalResult {
	if len(results) > limit {
		return results[:limit]
	}
	return results
}
