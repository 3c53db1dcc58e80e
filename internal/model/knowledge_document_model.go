package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type KnowledgeDocument struct {
	Id        string          `gorm:"type:varchar(30);primaryKey"`
	Content   string          `gorm:"type:text;not null"`
	Category  string          `gorm:"type:varchar(50);index;not null"`
	Keywords  datatypes.JSON  `gorm:"type:jsonb"`
	Embedding pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}

func (KnowledgeDocument) TableName() string {
	return "knowledge_documents"
}
