package memory

import (
	"sync"
	"time"
)

// ConversationState tracks routing state for one conversation.
// TurnCount only ever grows, and NeedsEscalation is sticky: once set it
// stays for the life of the process.
type ConversationState struct {
	ConversationID  string    `json:"conversation_id"`
	CurrentAgent    string    `json:"current_agent"`
	TurnCount       int       `json:"turn_count"`
	NeedsEscalation bool      `json:"needs_escalation"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ConversationStateRepository is a plain mutex-guarded map. State must
// never expire mid-conversation: an evicted entry would reset the turn
// count and re-arm the escalation flag, firing a duplicate alert.
type ConversationStateRepository struct {
	mu     sync.Mutex
	states map[string]*ConversationState
}

func NewConversationStateRepository() *ConversationStateRepository {
	return &ConversationStateRepository{
		states: make(map[string]*ConversationState),
	}
}

// Apply records the outcome of one routed message: sets the current
// agent, bumps the turn count and latches the escalation flag on low
// confidence. Returns true only when the flag flips from false to true.
func (r *ConversationStateRepository) Apply(conversationID, agentType string, lowConfidence bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, found := r.states[conversationID]
	if !found {
		state = &ConversationState{ConversationID: conversationID}
		r.states[conversationID] = state
	}

	state.CurrentAgent = agentType
	state.TurnCount++
	state.UpdatedAt = time.Now()

	newlyEscalated := lowConfidence && !state.NeedsEscalation
	if lowConfidence {
		state.NeedsEscalation = true
	}

	return newlyEscalated
}

func (r *ConversationStateRepository) Get(conversationID string) (*ConversationState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, found := r.states[conversationID]
	return state, found
}

// Count reports how many conversations are currently tracked.
func (r *ConversationStateRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}
