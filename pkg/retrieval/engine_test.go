package retrieval

import (
	"context"
	"testing"

	"ai-bankassist-be/internal/pkg/logger"
	"ai-bankassist-be/pkg/embedding"
	"ai-bankassist-be/pkg/knowledge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	vectorHits map[string][]knowledge.RetrievalResult
	docs       []knowledge.Document
	listErr    error
}

func (f *fakeSource) Query(ctx context.Context, text string, k int) []knowledge.RetrievalResult {
	return f.vectorHits[text]
}

func (f *fakeSource) ListAll(ctx context.Context) ([]knowledge.Document, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.docs, nil
}

// mapEmbedder returns a fixed vector per exact text, unknown texts get a
// default so document embedding never fails unexpectedly in tests.
type mapEmbedder struct {
	vectors map[string][]float32
}

func (m *mapEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	vec, ok := m.vectors[text]
	if !ok {
		vec = []float32{0, 0, 1}
	}
	return &embedding.EmbeddingResponse{Embedding: embedding.EmbeddingResponseEmbedding{Values: vec}}, nil
}

func TestSearchTier1UsesVectorHits(t *testing.T) {
	source := &fakeSource{
		vectorHits: map[string][]knowledge.RetrievalResult{
			"转账怎么操作": {{ID: "doc_1", Content: "转账服务", Distance: 0.1}},
		},
	}
	engine := NewEngine(source, nil, logger.NewNopLogger())

	results := engine.Search(context.Background(), "转账怎么操作", 3)

	require.Len(t, results, 1)
	assert.Equal(t, "doc_1", results[0].ID)
}

func TestSearchTier1ExpandedVariantHits(t *testing.T) {
	// Original query misses, a synonym variant hits.
	source := &fakeSource{
		vectorHits: map[string][]knowledge.RetrievalResult{
			"贷款申请": {{ID: "doc_loan", Content: "个人消费贷款", Distance: 0.2}},
		},
	}
	engine := NewEngine(source, nil, logger.NewNopLogger())

	results := engine.Search(context.Background(), "贷款", 3)

	require.Len(t, results, 1)
	assert.Equal(t, "doc_loan", results[0].ID)
}

func TestSearchTier2RanksByCosineDistance(t *testing.T) {
	source := &fakeSource{
		docs: []knowledge.Document{
			{ID: "far", Content: "无关内容"},
			{ID: "near", Content: "理财产品介绍"},
		},
	}
	embedder := &mapEmbedder{vectors: map[string][]float32{
		"理财":     {1, 0, 0},
		"理财产品介绍": {0.9, 0.1, 0},
		"无关内容":   {0, 1, 0},
	}}
	engine := NewEngine(source, embedder, logger.NewNopLogger())

	results := engine.Search(context.Background(), "理财", 2)

	require.Len(t, results, 2)
	assert.Equal(t, "near", results[0].ID)
	assert.Equal(t, "far", results[1].ID)
	assert.Less(t, results[0].Distance, results[1].Distance)
}

func TestSearchTier3LexicalWhenNoEmbedder(t *testing.T) {
	source := &fakeSource{
		docs: []knowledge.Document{
			{ID: "doc_card", Content: "信用卡是先消费后还款的支付工具", Keywords: []string{"信用卡", "透支"}},
			{ID: "doc_time", Content: "银行服务时间说明", Keywords: []string{"服务时间"}},
		},
	}
	engine := NewEngine(source, nil, logger.NewNopLogger())

	results := engine.Search(context.Background(), "信用卡", 3)

	require.Len(t, results, 1)
	assert.Equal(t, "doc_card", results[0].ID)
}

func TestSearchTier3MatchesKeywords(t *testing.T) {
	source := &fakeSource{
		docs: []knowledge.Document{
			{ID: "doc_sec", Content: "妥善保管密码", Keywords: []string{"银行卡安全"}},
		},
	}
	engine := NewEngine(source, nil, logger.NewNopLogger())

	results := engine.Search(context.Background(), "银行卡安全", 3)

	require.Len(t, results, 1)
	assert.Equal(t, "doc_sec", results[0].ID)
}

func TestSearchAllTiersEmptyReturnsEmptyNotError(t *testing.T) {
	engine := NewEngine(&fakeSource{}, nil, logger.NewNopLogger())

	results := engine.Search(context.Background(), "毫不相关的查询", 3)

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchBlankQueryReturnsEmpty(t *testing.T) {
	engine := NewEngine(&fakeSource{}, nil, logger.NewNopLogger())

	assert.Empty(t, engine.Search(context.Background(), "   ", 3))
	assert.Empty(t, engine.Search(context.Background(), "转账", 0))
}

func TestCosineDistanceZeroNorm(t *testing.T) {
	assert.Equal(t, 1.0, cosineDistance([]float32{0, 0}, []float32{1, 0}))
	assert.Equal(t, 1.0, cosineDistance([]float32{1, 0}, []float32{0, 0}))
	assert.InDelta(t, 0.0, cosineDistance([]float32{1, 0}, []float32{1, 0}), 1e-9)
}
