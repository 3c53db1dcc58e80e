package service

import (
	"context"

	"ai-bankassist-be/internal/pkg/logger"
	"ai-bankassist-be/internal/websocket"
	"ai-bankassist-be/pkg/events"
	pktNats "ai-bankassist-be/pkg/nats"
)

// NotificationService pushes escalation events from the NATS bus out to
// connected websocket clients.
type NotificationService struct {
	subscriber *pktNats.Subscriber
	hub        *websocket.Hub
	logger     logger.ILogger
}

func NewNotificationService(sub *pktNats.Subscriber, hub *websocket.Hub, log logger.ILogger) *NotificationService {
	return &NotificationService{
		subscriber: sub,
		hub:        hub,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events."+EscalationTopicName, "escalation-ws-worker", s.handleEscalation)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start escalation subscriber", map[string]interface{}{"error": err})
		return
	}

	err = s.subscriber.Subscribe("events.TRANSACTION_COMPLETED", "transaction-ws-worker", s.handleTransaction)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start transaction subscriber", map[string]interface{}{"error": err})
		return
	}

	s.logger.Info("NotificationService", "Listening for bus events", nil)
}

// handleEscalation fans the alert out to every connected client; support
// staff watch the same channel as the demo UI.
func (s *NotificationService) handleEscalation(ctx context.Context, event events.Event) error {
	s.logger.Info("NotificationService", "Broadcasting escalation", map[string]interface{}{
		"payload": event.Payload(),
	})
	s.hub.Broadcast(websocket.TypeEscalation, event.Payload())
	return nil
}

// handleTransaction pushes a completed-transaction frame only to the
// owning user's devices.
func (s *NotificationService) handleTransaction(ctx context.Context, event events.Event) error {
	payload := event.Payload()
	rawID, ok := payload["user_id"].(float64)
	if !ok || rawID <= 0 {
		return nil
	}
	s.hub.Send(uint(rawID), websocket.TypeTransaction, payload)
	return nil
}
