package main

import (
	"context"
	"log"

	"ai-bankassist-be/internal/config"
	"ai-bankassist-be/internal/pkg/logger"
	"ai-bankassist-be/internal/repository/implementation"
	"ai-bankassist-be/pkg/embedding"
	"ai-bankassist-be/pkg/knowledge"

	"gorm.io/gorm"
)

// SeedKnowledge indexes the base knowledge set. Requires a working
// embedding provider; without one the rebuild is skipped and the
// retrieval layer will run on its lexical fallback.
func SeedKnowledge(db *gorm.DB, cfg *config.Config) {
	embedderName, embedder := embedding.Select([]embedding.Candidate{
		{Name: "openai", Provider: embedding.NewOpenAIProvider(cfg.Ai.OpenAIAPIKey, cfg.Ai.OpenAIBaseURL, cfg.Ai.OpenAIEmbeddingModel)},
		{Name: "minimax", Provider: embedding.NewMiniMaxProvider(cfg.Ai.MiniMaxAPIKey, cfg.Ai.MiniMaxGroup, "embo-01")},
		{Name: "ollama", Provider: embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaEmbeddingModel)},
	})
	if embedder == nil {
		log.Println("Warn: No embedding provider reachable, skipping knowledge indexing")
		return
	}
	log.Printf("Using embedding provider: %s", embedderName)

	docRepo := implementation.NewKnowledgeDocumentRepository(db)
	store := knowledge.NewStore(docRepo, embedderName, embedder, logger.NewNopLogger())

	if err := store.Rebuild(context.Background()); err != nil {
		log.Printf("Error rebuilding knowledge collection: %v", err)
		return
	}

	stats := store.Stats(context.Background())
	log.Printf("Indexed %d knowledge documents across %d categories", stats.TotalDocuments, len(stats.Categories))
}
