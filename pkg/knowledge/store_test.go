package knowledge

import (
	"context"
	"errors"
	"sort"
	"testing"

	"ai-bankassist-be/internal/pkg/logger"
	"ai-bankassist-be/pkg/embedding"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	docs      []Document
	vectors   map[string][]float32
	searchRes []ScoredDocument
	searchErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{vectors: map[string][]float32{}}
}

func (f *fakeRepo) SearchSimilar(ctx context.Context, vector []float32, limit int) ([]ScoredDocument, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if len(f.searchRes) > limit {
		return f.searchRes[:limit], nil
	}
	return f.searchRes, nil
}

func (f *fakeRepo) Create(ctx context.Context, doc *Document, vector []float32) error {
	f.docs = append(f.docs, *doc)
	f.vectors[doc.ID] = vector
	return nil
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]Document, error) {
	return append([]Document{}, f.docs...), nil
}

func (f *fakeRepo) DeleteAll(ctx context.Context) error {
	f.docs = nil
	f.vectors = map[string][]float32{}
	return nil
}

func (f *fakeRepo) CountByCategory(ctx context.Context) (map[string]int64, error) {
	out := map[string]int64{}
	for _, d := range f.docs {
		out[d.Category]++
	}
	return out, nil
}

type fakeEmbedder struct {
	vec []float32
	err error
}

func (f *fakeEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &embedding.EmbeddingResponse{Embedding: embedding.EmbeddingResponseEmbedding{Values: f.vec}}, nil
}

func TestQueryDegradedStoreReturnsEmpty(t *testing.T) {
	store := NewStore(newFakeRepo(), "", nil, logger.NewNopLogger())

	results := store.Query(context.Background(), "转账怎么操作", 5)

	assert.Empty(t, results)
	assert.True(t, store.Degraded())
}

func TestQueryEmbeddingFailureDegradesToEmpty(t *testing.T) {
	store := NewStore(newFakeRepo(), "openai", &fakeEmbedder{err: errors.New("timeout")}, logger.NewNopLogger())

	results := store.Query(context.Background(), "转账", 5)

	assert.Empty(t, results)
}

func TestQueryMapsSimilarityToDistance(t *testing.T) {
	repo := newFakeRepo()
	repo.searchRes = []ScoredDocument{
		{Document: Document{ID: "doc_1", Content: "转账服务", Category: "转账服务"}, Similarity: 0.9},
		{Document: Document{ID: "doc_2", Content: "利息计算", Category: "利息计算"}, Similarity: 0.4},
	}
	store := NewStore(repo, "openai", &fakeEmbedder{vec: []float32{0.1}}, logger.NewNopLogger())

	results := store.Query(context.Background(), "转账", 5)

	require.Len(t, results, 2)
	assert.InDelta(t, 0.1, results[0].Distance, 1e-6)
	assert.InDelta(t, 0.6, results[1].Distance, 1e-6)
	assert.Equal(t, "转账服务", results[0].Metadata.Category)
}

func TestAddWithoutEmbedderFails(t *testing.T) {
	store := NewStore(newFakeRepo(), "", nil, logger.NewNopLogger())

	_, err := store.Add(context.Background(), "新知识", "账户管理", []string{"账户"})

	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestAddAssignsFreshIDs(t *testing.T) {
	repo := newFakeRepo()
	store := NewStore(repo, "openai", &fakeEmbedder{vec: []float32{0.5}}, logger.NewNopLogger())

	id1, err := store.Add(context.Background(), "文档一", "账户管理", []string{"账户"})
	require.NoError(t, err)
	id2, err := store.Add(context.Background(), "文档二", "账户管理", []string{"余额"})
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
	assert.Contains(t, id1, "doc_")
	assert.Len(t, repo.docs, 2)
}

func TestRebuildSeedsEmptyStore(t *testing.T) {
	repo := newFakeRepo()
	store := NewStore(repo, "ollama", &fakeEmbedder{vec: []float32{0.2}}, logger.NewNopLogger())

	err := store.Rebuild(context.Background())

	require.NoError(t, err)
	assert.Len(t, repo.docs, len(Seeds()))
}

func TestRebuildIsContentIdempotent(t *testing.T) {
	repo := newFakeRepo()
	store := NewStore(repo, "ollama", &fakeEmbedder{vec: []float32{0.2}}, logger.NewNopLogger())

	require.NoError(t, store.Rebuild(context.Background()))
	first := contentSet(repo.docs)

	require.NoError(t, store.Rebuild(context.Background()))
	second := contentSet(repo.docs)

	// Ids may differ between runs, content must not.
	assert.Equal(t, first, second)
}

func TestRebuildWithoutEmbedderFails(t *testing.T) {
	store := NewStore(newFakeRepo(), "", nil, logger.NewNopLogger())

	assert.ErrorIs(t, store.Rebuild(context.Background()), ErrStoreUnavailable)
}

func TestStatsCountsCategories(t *testing.T) {
	repo := newFakeRepo()
	store := NewStore(repo, "openai", &fakeEmbedder{vec: []float32{0.3}}, logger.NewNopLogger())
	require.NoError(t, store.Rebuild(context.Background()))

	stats := store.Stats(context.Background())

	assert.Equal(t, int64(len(Seeds())), stats.TotalDocuments)
	assert.Equal(t, int64(2), stats.Categories["理财产品"])
	assert.False(t, stats.Degraded)
}

func contentSet(docs []Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Content)
	}
	sort.Strings(out)
	return out
}
