package mapper

import (
	"encoding/json"

	"ai-bankassist-be/internal/model"
	"ai-bankassist-be/pkg/knowledge"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type KnowledgeDocumentMapper struct{}

func NewKnowledgeDocumentMapper() *KnowledgeDocumentMapper {
	return &KnowledgeDocumentMapper{}
}

func (m *KnowledgeDocumentMapper) ToDocument(d *model.KnowledgeDocument) *knowledge.Document {
	if d == nil {
		return nil
	}
	var keywords []string
	if len(d.Keywords) > 0 {
		// A corrupt keywords column degrades to no keywords rather than failing the read.
		_ = json.Unmarshal(d.Keywords, &keywords)
	}
	return &knowledge.Document{
		ID:        d.Id,
		Content:   d.Content,
		Category:  d.Category,
		Keywords:  keywords,
		CreatedAt: d.CreatedAt,
	}
}

func (m *KnowledgeDocumentMapper) ToModel(doc *knowledge.Document, embedding []float32) (*model.KnowledgeDocument, error) {
	if doc == nil {
		return nil, nil
	}
	keywords, err := json.Marshal(doc.Keywords)
	if err != nil {
		return nil, err
	}
	return &model.KnowledgeDocument{
		Id:        doc.ID,
		Content:   doc.Content,
		Category:  doc.Category,
		Keywords:  datatypes.JSON(keywords),
		Embedding: pgvector.NewVector(embedding),
		CreatedAt: doc.CreatedAt,
	}, nil
}

func (m *KnowledgeDocumentMapper) ToDocuments(models []*model.KnowledgeDocument) []knowledge.Document {
	docs := make([]knowledge.Document, len(models))
	for i, d := range models {
		docs[i] = *m.ToDocument(d)
	}
	return docs
}
