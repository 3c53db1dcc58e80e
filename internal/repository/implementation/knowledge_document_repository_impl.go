package implementation

import (
	"context"

	"ai-bankassist-be/internal/mapper"
	"ai-bankassist-be/internal/model"
	"ai-bankassist-be/internal/repository/contract"
	"ai-bankassist-be/pkg/knowledge"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type KnowledgeDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeDocumentMapper
}

func NewKnowledgeDocumentRepository(db *gorm.DB) contract.KnowledgeDocumentRepository {
	return &KnowledgeDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeDocumentMapper(),
	}
}

func (r *KnowledgeDocumentRepositoryImpl) Create(ctx context.Context, doc *knowledge.Document, vector []float32) error {
	m, err := r.mapper.ToModel(doc, vector)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *KnowledgeDocumentRepositoryImpl) FindAll(ctx context.Context) ([]knowledge.Document, error) {
	var models []*model.KnowledgeDocument
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToDocuments(models), nil
}

func (r *KnowledgeDocumentRepositoryImpl) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.KnowledgeDocument{}).Error
}

func (r *KnowledgeDocumentRepositoryImpl) CountByCategory(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Category string
		Count    int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.KnowledgeDocument{}).
		Select("category, COUNT(*) as count").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, rr := range rows {
		counts[rr.Category] = rr.Count
	}
	return counts, nil
}

// SearchSimilar ranks documents by cosine similarity of their embeddings.
// Cosine distance in pgvector is 1 - cosine_similarity, so
// 1 - (embedding <=> query_vector) recovers the similarity score.
func (r *KnowledgeDocumentRepositoryImpl) SearchSimilar(ctx context.Context, vector []float32, limit int) ([]knowledge.ScoredDocument, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.KnowledgeDocument
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(vector)

	err := r.db.WithContext(ctx).
		Table("knowledge_documents").
		Select("knowledge_documents.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]knowledge.ScoredDocument, len(results))
	for i, res := range results {
		scored[i] = knowledge.ScoredDocument{
			Document:   *r.mapper.ToDocument(&res.KnowledgeDocument),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
