package dto

import "time"

type AddDocumentRequest struct {
	Content  string   `json:"content" validate:"required"`
	Category string   `json:"category" validate:"required"`
	Keywords []string `json:"keywords"`
}

type DocumentResponse struct {
	Id        string    `json:"id"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Keywords  []string  `json:"keywords,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type KnowledgeSearchRequest struct {
	Query string `json:"query" validate:"required"`
	Limit int    `json:"limit"`
}

type KnowledgeSearchResult struct {
	Id       string                 `json:"id"`
	Content  string                 `json:"content"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	Distance float64                `json:"distance"`
}

type KnowledgeStatsResponse struct {
	TotalDocuments int64            `json:"total_documents"`
	Categories     map[string]int64 `json:"categories"`
	EmbedderName   string           `json:"embedder_name,omitempty"`
	Degraded       bool             `json:"degraded"`
}
