package agent

import (
	"context"

	"ai-bankassist-be/internal/pkg/logger"
)

// ConversationStateStore tracks per-conversation routing state. Apply
// must serialize updates per conversation id and returns true when the
// escalation flag flips from false to true.
type ConversationStateStore interface {
	Apply(conversationID, agentType string, lowConfidence bool) (newlyEscalated bool)
	Count() int
}

// EscalationFunc is invoked once per conversation when it first crosses
// into needs-escalation territory.
type EscalationFunc func(conversationID string, result Result)

// Status is the coordinator snapshot for the status endpoint.
type Status struct {
	Agents             map[string]Descriptor `json:"agents"`
	ConversationStates int                   `json:"conversation_states"`
}

// Coordinator scores all responders against each message and delegates
// to the winner. The responder slice is a fixed priority order; ties go
// to the earliest entry (strictly-greater argmax), which makes the
// tie-break deterministic.
type Coordinator struct {
	responders   []*Responder
	general      *Responder
	states       ConversationStateStore
	onEscalation EscalationFunc
	logger       logger.ILogger
}

// continuityBonus favors the responder that handled recent turns. It is
// additive and uncapped, so a boosted score may exceed 1.0.
const continuityBonus = 0.2

// continuityWindow is how many trailing history turns count.
const continuityWindow = 3

// confidenceFloor is the winning-score threshold below which the
// general responder takes over.
const confidenceFloor = 0.3

// escalationThreshold marks a reply as low confidence for state tracking.
const escalationThreshold = 0.5

func NewCoordinator(deps Deps, states ConversationStateStore, onEscalation EscalationFunc) *Coordinator {
	general := NewGeneralResponder(deps)
	return &Coordinator{
		responders: []*Responder{
			general,
			NewAccountResponder(deps),
			NewTransferResponder(deps),
			NewInvestmentResponder(deps),
			NewLoanResponder(deps),
		},
		general:      general,
		states:       states,
		onEscalation: onEscalation,
		logger:       deps.Logger,
	}
}

// NewCoordinatorWithResponders wires an explicit responder set. The
// first entry doubles as the confidence-floor fallback.
func NewCoordinatorWithResponders(responders []*Responder, states ConversationStateStore, log logger.ILogger) *Coordinator {
	return &Coordinator{
		responders: responders,
		general:    responders[0],
		states:     states,
		logger:     log,
	}
}

// Route is the single entry point per inbound message. It never panics
// outward: any unclassified failure becomes the generic error result.
func (c *Coordinator) Route(ctx context.Context, message, conversationID string, convCtx *Context) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Coordinator", "Unexpected failure while routing message", map[string]interface{}{
				"panic": r,
			})
			result = Result{
				AgentType:  TypeError,
				Response:   "抱歉，我现在无法处理您的请求，请稍后再试。",
				Confidence: 0.0,
			}
		}
	}()

	winner := c.selectResponder(message, convCtx)

	result = winner.Respond(ctx, message, convCtx)

	c.logger.Info("Coordinator", "Message routed", map[string]interface{}{
		"agent":      string(winner.Type),
		"confidence": result.Confidence,
	})

	if conversationID != "" && c.states != nil {
		newlyEscalated := c.states.Apply(conversationID, string(winner.Type), result.Confidence < escalationThreshold)
		if newlyEscalated {
			c.logger.Warn("Coordinator", "Conversation flagged for escalation", map[string]interface{}{
				"conversation_id": conversationID,
				"agent":           string(winner.Type),
			})
			if c.onEscalation != nil {
				c.onEscalation(conversationID, result)
			}
		}
	}

	return result
}

// selectResponder applies scoring, the continuity bonus and the
// confidence floor.
func (c *Coordinator) selectResponder(message string, convCtx *Context) *Responder {
	recent := recentAgentTypes(convCtx)

	var winner *Responder
	best := -1.0
	for _, r := range c.responders {
		score := r.Score(message)
		if recent[r.Type] {
			score += continuityBonus
		}
		if score > best {
			best = score
			winner = r
		}
	}

	if best < confidenceFloor {
		return c.general
	}
	return winner
}

// recentAgentTypes collects the responder types of the last few turns.
func recentAgentTypes(convCtx *Context) map[Type]bool {
	out := map[Type]bool{}
	if convCtx == nil || len(convCtx.History) == 0 {
		return out
	}
	start := 0
	if len(convCtx.History) > continuityWindow {
		start = len(convCtx.History) - continuityWindow
	}
	for _, turn := range convCtx.History[start:] {
		if turn.AgentType != "" {
			out[turn.AgentType] = true
		}
	}
	return out
}

// Status snapshots the responder roster and how many conversations are
// being tracked. No per-conversation detail leaves this package.
func (c *Coordinator) Status() Status {
	agents := make(map[string]Descriptor, len(c.responders))
	for _, r := range c.responders {
		agents[string(r.Type)] = r.Descriptor()
	}
	count := 0
	if c.states != nil {
		count = c.states.Count()
	}
	return Status{
		Agents:             agents,
		ConversationStates: count,
	}
}
