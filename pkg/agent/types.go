package agent

import (
	"context"

	"ai-bankassist-be/pkg/knowledge"
)

// Type identifies a responder domain.
type Type string

const (
	TypeGeneral    Type = "general"
	TypeAccount    Type = "account"
	TypeTransfer   Type = "transfer"
	TypeInvestment Type = "investment"
	TypeLoan       Type = "loan"
	TypeSecurity   Type = "security"

	// TypeError is only ever emitted by the coordinator's catch-all.
	TypeError Type = "error"
)

// Capability tags advertised in the status snapshot.
type Capability string

const (
	CapabilityQA            Capability = "qa"
	CapabilityGuidance      Capability = "guidance"
	CapabilityTransaction   Capability = "transaction"
	CapabilityRisk          Capability = "risk"
	CapabilityDocumentation Capability = "documentation"
	CapabilityEscalation    Capability = "escalation"
	CapabilitySecurity      Capability = "security"
)

// Descriptor describes a responder for the status endpoint.
type Descriptor struct {
	Type         Type         `json:"type"`
	Name         string       `json:"name"`
	Capabilities []Capability `json:"capabilities"`
}

// Account is the read-only view of an account this package needs.
type Account struct {
	ID       uint
	Number   string
	Balance  float64
	Currency string
}

// AccountReader is the structured data accessor for balance lookups.
// Implementations return (nil, nil) when nothing matches.
type AccountReader interface {
	FindByNumber(ctx context.Context, number string) (*Account, error)
	FindByUser(ctx context.Context, userID uint) (*Account, error)
	FindDefault(ctx context.Context) (*Account, error)
}

// Retriever is the slice of the retrieval engine responders use.
type Retriever interface {
	Search(ctx context.Context, query string, limit int) []knowledge.RetrievalResult
}

// HistoryTurn is one prior turn of the conversation, minimally tagged
// with the responder that produced it.
type HistoryTurn struct {
	AgentType Type   `json:"agent_type"`
	Role      string `json:"role"`
	Content   string `json:"content"`
}

// Context carries the per-message conversation context.
type Context struct {
	UserID   uint
	Username string
	History  []HistoryTurn
}

// Result is the outcome of responding to one message.
type Result struct {
	AgentType  Type                   `json:"agent_type"`
	Response   string                 `json:"response"`
	Confidence float64                `json:"confidence"`
	Actions    []string               `json:"actions"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`

	// Err carries degradation detail for logging only, never for callers.
	Err string `json:"-"`
}
