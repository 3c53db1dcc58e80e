package model

import (
	"time"

	"gorm.io/datatypes"
)

// EscalationAlert is the audit record for conversations flagged for
// human follow-up.
type EscalationAlert struct {
	Id             uint           `gorm:"primaryKey;autoIncrement"`
	ConversationID string         `gorm:"type:varchar(40);index;not null"`
	AgentType      string         `gorm:"type:varchar(20);not null"`
	Confidence     float64        `gorm:"not null"`
	Message        string         `gorm:"type:text"`
	Response       string         `gorm:"type:text"`
	Metadata       datatypes.JSON `gorm:"type:jsonb"`
	NotifiedAt     *time.Time
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (EscalationAlert) TableName() string {
	return "escalation_alerts"
}
