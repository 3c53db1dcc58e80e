package service

import (
	"context"

	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/pkg/knowledge"
	"ai-bankassist-be/pkg/retrieval"
)

type IKnowledgeService interface {
	AddDocument(ctx context.Context, req *dto.AddDocumentRequest) (*dto.DocumentResponse, error)
	ListDocuments(ctx context.Context) ([]dto.DocumentResponse, error)
	Stats(ctx context.Context) dto.KnowledgeStatsResponse
	Rebuild(ctx context.Context) error
	Search(ctx context.Context, req *dto.KnowledgeSearchRequest) []dto.KnowledgeSearchResult
}

type knowledgeService struct {
	store  *knowledge.Store
	engine *retrieval.Engine
}

func NewKnowledgeService(store *knowledge.Store, engine *retrieval.Engine) IKnowledgeService {
	return &knowledgeService{
		store:  store,
		engine: engine,
	}
}

func (s *knowledgeService) AddDocument(ctx context.Context, req *dto.AddDocumentRequest) (*dto.DocumentResponse, error) {
	id, err := s.store.Add(ctx, req.Content, req.Category, req.Keywords)
	if err != nil {
		return nil, err
	}
	return &dto.DocumentResponse{
		Id:       id,
		Content:  req.Content,
		Category: req.Category,
		Keywords: req.Keywords,
	}, nil
}

func (s *knowledgeService) ListDocuments(ctx context.Context) ([]dto.DocumentResponse, error) {
	docs, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentResponse, len(docs))
	for i, d := range docs {
		out[i] = dto.DocumentResponse{
			Id:        d.ID,
			Content:   d.Content,
			Category:  d.Category,
			Keywords:  d.Keywords,
			CreatedAt: d.CreatedAt,
		}
	}
	return out, nil
}

func (s *knowledgeService) Stats(ctx context.Context) dto.KnowledgeStatsResponse {
	stats := s.store.Stats(ctx)
	return dto.KnowledgeStatsResponse{
		TotalDocuments: stats.TotalDocuments,
		Categories:     stats.Categories,
		EmbedderName:   stats.EmbedderName,
		Degraded:       stats.Degraded,
	}
}

func (s *knowledgeService) Rebuild(ctx context.Context) error {
	return s.store.Rebuild(ctx)
}

func (s *knowledgeService) Search(ctx context.Context, req *dto.KnowledgeSearchRequest) []dto.KnowledgeSearchResult {
	limit := req.Limit
	if limit <= 0 {
		limit = 5
	}
	results := s.engine.Search(ctx, req.Query, limit)
	out := make([]dto.KnowledgeSearchResult, len(results))
	for i, r := range results {
		out[i] = dto.KnowledgeSearchResult{
			Id:      r.ID,
			Content: r.Content,
			Metadata: map[string]interface{}{
				"category":   r.Metadata.Category,
				"keywords":   r.Metadata.Keywords,
				"created_at": r.Metadata.CreatedAt,
			},
			Distance: r.Distance,
		}
	}
	return out
}
