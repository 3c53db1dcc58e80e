package dto

import "time"

type ChatHistoryTurn struct {
	AgentType string `json:"agent_type,omitempty"`
	Role      string `json:"role"`
	Content   string `json:"content"`
}

type ChatRequest struct {
	Message        string `json:"message" validate:"required"`
	ConversationID string `json:"conversation_id"`
}

type ChatResponse struct {
	Response       string                 `json:"response"`
	AgentType      string                 `json:"agent_type"`
	Confidence     float64                `json:"confidence"`
	ConversationID string                 `json:"conversation_id"`
	Actions        []string               `json:"actions,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
	Timestamp      time.Time              `json:"timestamp"`
}

type AgentDescriptor struct {
	Type         string   `json:"type"`
	Name         string   `json:"name"`
	Capabilities []string `json:"capabilities"`
}

type AgentStatusResponse struct {
	Agents             map[string]AgentDescriptor `json:"agents"`
	ConversationStates int                        `json:"conversation_states"`
}

type EscalationAlertResponse struct {
	Id             uint       `json:"id"`
	ConversationID string     `json:"conversation_id"`
	AgentType      string     `json:"agent_type"`
	Confidence     float64    `json:"confidence"`
	Message        string     `json:"message"`
	Response       string     `json:"response"`
	NotifiedAt     *time.Time `json:"notified_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
