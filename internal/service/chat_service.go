package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/internal/pkg/logger"
	"ai-bankassist-be/internal/repository/specification"
	"ai-bankassist-be/internal/repository/unitofwork"
	"ai-bankassist-be/pkg/agent"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// historyWindow caps the per-conversation turns kept for routing context.
const historyWindow = 10

type IChatService interface {
	ProcessMessage(ctx context.Context, userID uint, username string, req *dto.ChatRequest) (*dto.ChatResponse, error)
	History(conversationID string) []dto.ChatHistoryTurn
	AgentStatus() dto.AgentStatusResponse
	ListEscalations(ctx context.Context) ([]dto.EscalationAlertResponse, error)
}

type chatService struct {
	coordinator *agent.Coordinator
	uowFactory  unitofwork.RepositoryFactory
	publisher   IPublisherService
	logger      logger.ILogger

	// Recent turns per conversation, for the continuity bonus and prompts.
	history *cache.Cache

	// Message currently being routed per conversation, so the escalation
	// callback can include it in the alert payload.
	pending sync.Map
}

func NewChatService(
	deps agent.Deps,
	states agent.ConversationStateStore,
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	log logger.ILogger,
) IChatService {
	s := &chatService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     log,
		history:    cache.New(1*time.Hour, 10*time.Minute),
	}
	s.coordinator = agent.NewCoordinator(deps, states, s.onEscalation)
	return s
}

type escalationEvent struct {
	EventID        string  `json:"event_id"`
	ConversationID string  `json:"conversation_id"`
	AgentType      string  `json:"agent_type"`
	Confidence     float64 `json:"confidence"`
	Message        string  `json:"message"`
	Response       string  `json:"response"`
}

func (s *chatService) onEscalation(conversationID string, result agent.Result) {
	if s.publisher == nil {
		return
	}

	var message string
	if x, ok := s.pending.Load(conversationID); ok {
		message = x.(string)
	}

	event := escalationEvent{
		EventID:        uuid.NewString(),
		ConversationID: conversationID,
		AgentType:      string(result.AgentType),
		Confidence:     result.Confidence,
		Message:        message,
		Response:       result.Response,
	}
	if err := s.publisher.Publish(context.Background(), event); err != nil {
		s.logger.Error("ChatService", "Failed to publish escalation event", map[string]interface{}{
			"conversation_id": conversationID,
			"error":           err.Error(),
		})
	}
}

func (s *chatService) ProcessMessage(ctx context.Context, userID uint, username string, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	conversationID := req.ConversationID
	if conversationID == "" {
		// Timestamp for readability, uuid suffix so two conversations
		// started in the same second cannot share state.
		conversationID = fmt.Sprintf("conv_%s_%s", time.Now().Format("20060102_150405"), uuid.NewString()[:8])
	}

	s.pending.Store(conversationID, req.Message)
	defer s.pending.Delete(conversationID)

	agentCtx := &agent.Context{
		UserID:   userID,
		Username: username,
		History:  s.loadHistory(conversationID),
	}

	result := s.coordinator.Route(ctx, req.Message, conversationID, agentCtx)

	s.appendHistory(conversationID, agentCtx.History, req.Message, result)

	return &dto.ChatResponse{
		Response:       result.Response,
		AgentType:      string(result.AgentType),
		Confidence:     result.Confidence,
		ConversationID: conversationID,
		Actions:        result.Actions,
		Metadata:       result.Metadata,
		Timestamp:      time.Now(),
	}, nil
}

func (s *chatService) loadHistory(conversationID string) []agent.HistoryTurn {
	if x, found := s.history.Get(conversationID); found {
		return x.([]agent.HistoryTurn)
	}
	return nil
}

func (s *chatService) appendHistory(conversationID string, turns []agent.HistoryTurn, message string, result agent.Result) {
	turns = append(turns,
		agent.HistoryTurn{Role: "user", Content: message},
		agent.HistoryTurn{AgentType: result.AgentType, Role: "assistant", Content: result.Response},
	)
	if len(turns) > historyWindow {
		turns = turns[len(turns)-historyWindow:]
	}
	s.history.Set(conversationID, turns, cache.DefaultExpiration)
}

// History returns the cached window of recent turns. Conversations fall
// out of the cache after an hour of inactivity, so this is a view of the
// live exchange rather than an archive.
func (s *chatService) History(conversationID string) []dto.ChatHistoryTurn {
	turns := s.loadHistory(conversationID)
	out := make([]dto.ChatHistoryTurn, len(turns))
	for i, turn := range turns {
		out[i] = dto.ChatHistoryTurn{
			AgentType: string(turn.AgentType),
			Role:      turn.Role,
			Content:   turn.Content,
		}
	}
	return out
}

func (s *chatService) AgentStatus() dto.AgentStatusResponse {
	status := s.coordinator.Status()

	agents := make(map[string]dto.AgentDescriptor, len(status.Agents))
	for key, desc := range status.Agents {
		caps := make([]string, len(desc.Capabilities))
		for i, c := range desc.Capabilities {
			caps[i] = string(c)
		}
		agents[key] = dto.AgentDescriptor{
			Type:         string(desc.Type),
			Name:         desc.Name,
			Capabilities: caps,
		}
	}

	return dto.AgentStatusResponse{
		Agents:             agents,
		ConversationStates: status.ConversationStates,
	}
}

func (s *chatService) ListEscalations(ctx context.Context) ([]dto.EscalationAlertResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	alerts, err := uow.EscalationAlertRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.EscalationAlertResponse, len(alerts))
	for i, a := range alerts {
		out[i] = dto.EscalationAlertResponse{
			Id:             a.Id,
			ConversationID: a.ConversationID,
			AgentType:      a.AgentType,
			Confidence:     a.Confidence,
			Message:        a.Message,
			Response:       a.Response,
			NotifiedAt:     a.NotifiedAt,
			CreatedAt:      a.CreatedAt,
		}
	}
	return out, nil
}
