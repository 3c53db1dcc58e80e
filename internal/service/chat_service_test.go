package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/internal/pkg/logger"
	"ai-bankassist-be/internal/repository/memory"
	"ai-bankassist-be/pkg/agent"
	"ai-bankassist-be/pkg/knowledge"
	"ai-bankassist-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRetriever struct {
	results []knowledge.RetrievalResult
}

func (f *fakeRetriever) Search(ctx context.Context, query string, limit int) []knowledge.RetrievalResult {
	return f.results
}

type fakeLLM struct {
	text string
	err  error
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return f.text, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.text, f.err
}

type capturingPublisher struct {
	mu       sync.Mutex
	payloads []interface{}
}

func (p *capturingPublisher) Publish(ctx context.Context, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

func newTestChatService(provider *fakeLLM, publisher IPublisherService) IChatService {
	deps := agent.Deps{
		Retriever: &fakeRetriever{},
		Provider:  provider,
		Logger:    logger.NewNopLogger(),
	}
	return NewChatService(deps, memory.NewConversationStateRepository(), nil, publisher, logger.NewNopLogger())
}

func TestProcessMessageGeneratesConversationID(t *testing.T) {
	svc := newTestChatService(&fakeLLM{text: "为您解答"}, nil)

	res, err := svc.ProcessMessage(context.Background(), 0, "", &dto.ChatRequest{Message: "你好"})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.ConversationID, "conv_"))
	assert.NotEmpty(t, res.Response)
	assert.NotEmpty(t, res.AgentType)
	assert.False(t, res.Timestamp.IsZero())
}

func TestProcessMessageConversationIDsAreUnique(t *testing.T) {
	svc := newTestChatService(&fakeLLM{text: "为您解答"}, nil)

	// Two conversations opened back to back, well within one second,
	// must not share an id (and therefore state or history).
	first, err := svc.ProcessMessage(context.Background(), 0, "", &dto.ChatRequest{Message: "你好"})
	require.NoError(t, err)
	second, err := svc.ProcessMessage(context.Background(), 0, "", &dto.ChatRequest{Message: "你好"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ConversationID, second.ConversationID)
}

func TestProcessMessageKeepsConversationID(t *testing.T) {
	svc := newTestChatService(&fakeLLM{text: "为您解答"}, nil)

	res, err := svc.ProcessMessage(context.Background(), 0, "", &dto.ChatRequest{
		Message:        "你好",
		ConversationID: "conv_fixed",
	})

	require.NoError(t, err)
	assert.Equal(t, "conv_fixed", res.ConversationID)
}

func TestProcessMessageEscalationPublishesEvent(t *testing.T) {
	publisher := &capturingPublisher{}
	svc := newTestChatService(&fakeLLM{err: errors.New("model offline")}, publisher)

	// Generation failure degrades to the apology with confidence 0,
	// which must flip the conversation flag and emit exactly one event.
	res, err := svc.ProcessMessage(context.Background(), 0, "", &dto.ChatRequest{
		Message:        "你好",
		ConversationID: "conv_esc",
	})

	require.NoError(t, err)
	assert.Equal(t, "general", res.AgentType)
	assert.Equal(t, 0.0, res.Confidence)

	require.Len(t, publisher.payloads, 1)
	event, ok := publisher.payloads[0].(escalationEvent)
	require.True(t, ok)
	assert.Equal(t, "conv_esc", event.ConversationID)
	assert.Equal(t, "你好", event.Message)
	assert.Equal(t, "general", event.AgentType)
	assert.Equal(t, res.Response, event.Response)
	assert.NotEmpty(t, event.EventID)

	// The flag is sticky: a second low-confidence turn emits nothing new.
	_, err = svc.ProcessMessage(context.Background(), 0, "", &dto.ChatRequest{
		Message:        "在吗",
		ConversationID: "conv_esc",
	})
	require.NoError(t, err)
	assert.Len(t, publisher.payloads, 1)
}

func TestProcessMessageEscalationEventIsSerializable(t *testing.T) {
	publisher := &capturingPublisher{}
	svc := newTestChatService(&fakeLLM{err: errors.New("model offline")}, publisher)

	_, err := svc.ProcessMessage(context.Background(), 0, "", &dto.ChatRequest{
		Message:        "你好",
		ConversationID: "conv_wire",
	})
	require.NoError(t, err)
	require.Len(t, publisher.payloads, 1)

	data, err := json.Marshal(publisher.payloads[0])
	require.NoError(t, err)

	var decoded escalationEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "conv_wire", decoded.ConversationID)
}

func TestAgentStatusListsAllResponders(t *testing.T) {
	svc := newTestChatService(&fakeLLM{text: "为您解答"}, nil)

	status := svc.AgentStatus()

	require.Len(t, status.Agents, 5)
	for _, key := range []string{"general", "account", "transfer", "investment", "loan"} {
		desc, ok := status.Agents[key]
		require.True(t, ok, "missing agent %s", key)
		assert.NotEmpty(t, desc.Name)
		assert.NotEmpty(t, desc.Capabilities)
	}
	assert.Equal(t, 0, status.ConversationStates)
}

func TestProcessMessageAccumulatesAndTrimsHistory(t *testing.T) {
	svc := newTestChatService(&fakeLLM{text: "为您解答"}, nil).(*chatService)

	for i := 0; i < 8; i++ {
		_, err := svc.ProcessMessage(context.Background(), 0, "", &dto.ChatRequest{
			Message:        "你好",
			ConversationID: "conv_hist",
		})
		require.NoError(t, err)
	}

	// Two turns per message, capped at the window.
	turns := svc.loadHistory("conv_hist")
	require.Len(t, turns, historyWindow)
	assert.Equal(t, "user", turns[len(turns)-2].Role)
	assert.Equal(t, "assistant", turns[len(turns)-1].Role)
	assert.NotEmpty(t, turns[len(turns)-1].AgentType)
}

func TestHistoryReturnsCachedTurns(t *testing.T) {
	svc := newTestChatService(&fakeLLM{text: "为您解答"}, nil)

	_, err := svc.ProcessMessage(context.Background(), 0, "", &dto.ChatRequest{
		Message:        "你好",
		ConversationID: "conv_view",
	})
	require.NoError(t, err)

	turns := svc.History("conv_view")
	require.Len(t, turns, 2)
	assert.Equal(t, "user", turns[0].Role)
	assert.Equal(t, "你好", turns[0].Content)
	assert.Equal(t, "assistant", turns[1].Role)
	assert.NotEmpty(t, turns[1].AgentType)

	assert.Empty(t, svc.History("conv_unknown"))
}
