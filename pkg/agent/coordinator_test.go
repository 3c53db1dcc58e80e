package agent

import (
	"context"
	"testing"

	"ai-bankassist-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStates struct {
	applied []string
	lowConf []bool
	flags   map[string]bool
}

func newFakeStates() *fakeStates {
	return &fakeStates{flags: map[string]bool{}}
}

func (f *fakeStates) Apply(conversationID, agentType string, lowConfidence bool) bool {
	f.applied = append(f.applied, agentType)
	f.lowConf = append(f.lowConf, lowConfidence)
	if lowConfidence && !f.flags[conversationID] {
		f.flags[conversationID] = true
		return true
	}
	return false
}

func (f *fakeStates) Count() int { return len(f.flags) }

func stubResponder(t Type, score float64, result Result) *Responder {
	return &Responder{
		Type:         t,
		Name:         string(t),
		Capabilities: []Capability{CapabilityQA},
		Score:        func(string) float64 { return score },
		Respond: func(context.Context, string, *Context) Result {
			return result
		},
	}
}

func TestRouteBalanceEndToEnd(t *testing.T) {
	accounts := &fakeAccounts{
		byUser: map[uint]*Account{
			1: {ID: 1, Number: "6226090000000123", Balance: 125000.50, Currency: "CNY"},
		},
	}
	deps := testDeps(&fakeRetriever{}, &fakeLLM{text: "ok"}, accounts)
	states := newFakeStates()
	coord := NewCoordinator(deps, states, nil)

	result := coord.Route(context.Background(), "查询余额", "conv_1", &Context{UserID: 1})

	assert.Equal(t, TypeAccount, result.AgentType)
	assert.Equal(t, 0.95, result.Confidence)
	assert.Contains(t, result.Response, "6226090000000123")
	assert.Contains(t, result.Response, "125000.50")
	assert.Contains(t, result.Response, "CNY")
	assert.Contains(t, result.Actions, "account_balance_query")
	require.Len(t, states.applied, 1)
	assert.Equal(t, "account", states.applied[0])
	assert.False(t, states.lowConf[0])
}

func TestRouteInvestmentMessageWins(t *testing.T) {
	deps := testDeps(&fakeRetriever{}, &fakeLLM{text: "为您介绍理财产品"}, nil)
	coord := NewCoordinator(deps, newFakeStates(), nil)

	// Five distinct investment keywords, score 1.0.
	result := coord.Route(context.Background(), "我想购买理财产品，收益和风险如何", "conv_2", &Context{})

	assert.Equal(t, TypeInvestment, result.AgentType)
	assert.Equal(t, 0.9, result.Confidence)
}

func TestRouteFloorSubstitutesGeneral(t *testing.T) {
	general := stubResponder(TypeGeneral, 0.0, Result{AgentType: TypeGeneral, Response: "general", Confidence: 0.8})
	weak := stubResponder(TypeLoan, 0.1, Result{AgentType: TypeLoan, Response: "loan", Confidence: 0.9})
	coord := NewCoordinatorWithResponders([]*Responder{general, weak}, newFakeStates(), logger.NewNopLogger())

	result := coord.Route(context.Background(), "anything", "", nil)

	// Best score 0.1 < 0.3, so general answers despite losing the argmax.
	assert.Equal(t, TypeGeneral, result.AgentType)
}

func TestRouteContinuityBonusIsAdditiveNotDecisive(t *testing.T) {
	general := stubResponder(TypeGeneral, 0.6, Result{AgentType: TypeGeneral, Response: "general", Confidence: 0.8})
	loan := stubResponder(TypeLoan, 0.25, Result{AgentType: TypeLoan, Response: "loan", Confidence: 0.9})
	coord := NewCoordinatorWithResponders([]*Responder{general, loan}, newFakeStates(), logger.NewNopLogger())

	history := []HistoryTurn{
		{AgentType: TypeLoan, Role: "assistant", Content: "a"},
		{AgentType: TypeLoan, Role: "assistant", Content: "b"},
		{AgentType: TypeLoan, Role: "assistant", Content: "c"},
	}

	// Loan gets 0.25 + 0.2 = 0.45, still below general's 0.6.
	result := coord.Route(context.Background(), "嗯", "", &Context{History: history})

	assert.Equal(t, TypeGeneral, result.AgentType)
}

func TestRouteContinuityBonusFlipsCloseRace(t *testing.T) {
	general := stubResponder(TypeGeneral, 0.6, Result{AgentType: TypeGeneral, Response: "general", Confidence: 0.8})
	loan := stubResponder(TypeLoan, 0.5, Result{AgentType: TypeLoan, Response: "loan", Confidence: 0.9})
	coord := NewCoordinatorWithResponders([]*Responder{general, loan}, newFakeStates(), logger.NewNopLogger())

	history := []HistoryTurn{{AgentType: TypeLoan, Role: "assistant", Content: "a"}}

	result := coord.Route(context.Background(), "嗯", "", &Context{History: history})

	// 0.5 + 0.2 beats 0.6.
	assert.Equal(t, TypeLoan, result.AgentType)
}

func TestRouteContinuityOnlyCountsLastThreeTurns(t *testing.T) {
	general := stubResponder(TypeGeneral, 0.6, Result{AgentType: TypeGeneral, Response: "general", Confidence: 0.8})
	loan := stubResponder(TypeLoan, 0.5, Result{AgentType: TypeLoan, Response: "loan", Confidence: 0.9})
	coord := NewCoordinatorWithResponders([]*Responder{general, loan}, newFakeStates(), logger.NewNopLogger())

	// Loan turn is four turns back, outside the window.
	history := []HistoryTurn{
		{AgentType: TypeLoan, Role: "assistant", Content: "old"},
		{AgentType: TypeGeneral, Role: "assistant", Content: "a"},
		{AgentType: TypeGeneral, Role: "assistant", Content: "b"},
		{AgentType: TypeGeneral, Role: "assistant", Content: "c"},
	}

	result := coord.Route(context.Background(), "嗯", "", &Context{History: history})

	assert.Equal(t, TypeGeneral, result.AgentType)
}

func TestRouteTieGoesToEarliestResponder(t *testing.T) {
	first := stubResponder(TypeTransfer, 0.8, Result{AgentType: TypeTransfer, Response: "transfer", Confidence: 0.9})
	second := stubResponder(TypeLoan, 0.8, Result{AgentType: TypeLoan, Response: "loan", Confidence: 0.9})
	coord := NewCoordinatorWithResponders([]*Responder{first, second}, newFakeStates(), logger.NewNopLogger())

	result := coord.Route(context.Background(), "anything", "", nil)

	assert.Equal(t, TypeTransfer, result.AgentType)
}

func TestRoutePanicBecomesErrorResult(t *testing.T) {
	boom := &Responder{
		Type:  TypeGeneral,
		Name:  "general",
		Score: func(string) float64 { return 1.0 },
		Respond: func(context.Context, string, *Context) Result {
			panic("unexpected")
		},
	}
	coord := NewCoordinatorWithResponders([]*Responder{boom}, newFakeStates(), logger.NewNopLogger())

	result := coord.Route(context.Background(), "hello", "conv_x", nil)

	assert.Equal(t, TypeError, result.AgentType)
	assert.Equal(t, 0.0, result.Confidence)
	assert.NotEmpty(t, result.Response)
}

func TestRouteLowConfidenceTriggersEscalationOnce(t *testing.T) {
	weak := stubResponder(TypeGeneral, 1.0, Result{AgentType: TypeGeneral, Response: "抱歉", Confidence: 0.0})
	states := newFakeStates()

	var escalated []string
	coord := NewCoordinatorWithResponders([]*Responder{weak}, states, logger.NewNopLogger())
	coord.onEscalation = func(conversationID string, result Result) {
		escalated = append(escalated, conversationID)
	}

	coord.Route(context.Background(), "hi", "conv_9", nil)
	coord.Route(context.Background(), "hi again", "conv_9", nil)

	// The flag is sticky, so only the first flip notifies.
	assert.Equal(t, []string{"conv_9"}, escalated)
}

func TestStatusSnapshot(t *testing.T) {
	deps := testDeps(&fakeRetriever{}, &fakeLLM{text: "ok"}, nil)
	states := newFakeStates()
	coord := NewCoordinator(deps, states, nil)

	status := coord.Status()

	require.Len(t, status.Agents, 5)
	assert.Equal(t, "账户专员", status.Agents["account"].Name)
	assert.Contains(t, status.Agents["general"].Capabilities, CapabilityEscalation)
	assert.Equal(t, 0, status.ConversationStates)
}
