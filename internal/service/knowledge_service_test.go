package service

import (
	"context"
	"testing"
	"time"

	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/internal/pkg/logger"
	"ai-bankassist-be/pkg/knowledge"
	"ai-bankassist-be/pkg/retrieval"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDocRepo struct {
	docs []knowledge.Document
}

func (f *fakeDocRepo) SearchSimilar(ctx context.Context, vector []float32, limit int) ([]knowledge.ScoredDocument, error) {
	return nil, nil
}

func (f *fakeDocRepo) Create(ctx context.Context, doc *knowledge.Document, vector []float32) error {
	f.docs = append(f.docs, *doc)
	return nil
}

func (f *fakeDocRepo) FindAll(ctx context.Context) ([]knowledge.Document, error) {
	return append([]knowledge.Document{}, f.docs...), nil
}

func (f *fakeDocRepo) DeleteAll(ctx context.Context) error {
	f.docs = nil
	return nil
}

func (f *fakeDocRepo) CountByCategory(ctx context.Context) (map[string]int64, error) {
	out := map[string]int64{}
	for _, d := range f.docs {
		out[d.Category]++
	}
	return out, nil
}

// Degraded setup: no embedder bound, so retrieval runs on the lexical
// fallback and writes are rejected.
func newDegradedKnowledgeService(repo *fakeDocRepo) IKnowledgeService {
	store := knowledge.NewStore(repo, "", nil, logger.NewNopLogger())
	engine := retrieval.NewEngine(store, nil, logger.NewNopLogger())
	return NewKnowledgeService(store, engine)
}

func TestListDocumentsMapsToDTO(t *testing.T) {
	repo := &fakeDocRepo{docs: []knowledge.Document{
		{ID: "doc_1", Content: "转账需要收款人账号", Category: "转账服务", Keywords: []string{"转账"}, CreatedAt: time.Now()},
		{ID: "doc_2", Content: "储蓄账户没有最低余额要求", Category: "账户管理", CreatedAt: time.Now()},
	}}
	svc := newDegradedKnowledgeService(repo)

	docs, err := svc.ListDocuments(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "doc_1", docs[0].Id)
	assert.Equal(t, "转账服务", docs[0].Category)
	assert.Equal(t, []string{"转账"}, docs[0].Keywords)
}

func TestStatsReportsDegradedMode(t *testing.T) {
	repo := &fakeDocRepo{docs: []knowledge.Document{
		{ID: "doc_1", Content: "a", Category: "账户管理"},
		{ID: "doc_2", Content: "b", Category: "账户管理"},
		{ID: "doc_3", Content: "c", Category: "贷款服务"},
	}}
	svc := newDegradedKnowledgeService(repo)

	stats := svc.Stats(context.Background())

	assert.Equal(t, int64(3), stats.TotalDocuments)
	assert.Equal(t, int64(2), stats.Categories["账户管理"])
	assert.True(t, stats.Degraded)
}

func TestAddDocumentRejectedWithoutEmbedder(t *testing.T) {
	svc := newDegradedKnowledgeService(&fakeDocRepo{})

	_, err := svc.AddDocument(context.Background(), &dto.AddDocumentRequest{
		Content:  "新的知识条目",
		Category: "账户管理",
	})

	assert.ErrorIs(t, err, knowledge.ErrStoreUnavailable)
}

func TestSearchFallsBackToLexical(t *testing.T) {
	repo := &fakeDocRepo{docs: []knowledge.Document{
		{ID: "doc_1", Content: "转账需要提供收款人姓名和账号", Category: "转账服务", Keywords: []string{"转账", "收款人"}},
		{ID: "doc_2", Content: "理财产品有风险", Category: "理财产品", Keywords: []string{"理财"}},
	}}
	svc := newDegradedKnowledgeService(repo)

	results := svc.Search(context.Background(), &dto.KnowledgeSearchRequest{Query: "转账", Limit: 5})

	require.NotEmpty(t, results)
	assert.Equal(t, "doc_1", results[0].Id)
	assert.Equal(t, "转账服务", results[0].Metadata["category"])
}

func TestSearchDefaultsLimit(t *testing.T) {
	svc := newDegradedKnowledgeService(&fakeDocRepo{})

	// Zero limit must not panic or return an error path.
	results := svc.Search(context.Background(), &dto.KnowledgeSearchRequest{Query: "余额"})

	assert.Empty(t, results)
}
