package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ai-bankassist-be/internal/model"
	"ai-bankassist-be/internal/pkg/mailer"
	"ai-bankassist-be/internal/repository/unitofwork"
	"ai-bankassist-be/pkg/events"
	pktNats "ai-bankassist-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/datatypes"
)

// EscalationTopicName is the in-process topic chat routing publishes to
// whenever a conversation is newly flagged.
const EscalationTopicName = "ESCALATION_ALERT"

type IEscalationConsumerService interface {
	Consume(ctx context.Context) error
}

type escalationConsumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	alertRecipient string
	eventPublisher *pktNats.Publisher
}

func NewEscalationConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	alertRecipient string,
	eventPublisher *pktNats.Publisher,
) IEscalationConsumerService {
	return &escalationConsumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		emailService:   emailService,
		alertRecipient: alertRecipient,
		eventPublisher: eventPublisher,
	}
}

func (cs *escalationConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *escalationConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload escalationEvent
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal escalation message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing escalation for conversation %s (agent %s, confidence %.2f)",
		payload.ConversationID, payload.AgentType, payload.Confidence)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	metadata, _ := json.Marshal(map[string]interface{}{"event_id": payload.EventID})
	alert := &model.EscalationAlert{
		ConversationID: payload.ConversationID,
		AgentType:      payload.AgentType,
		Confidence:     payload.Confidence,
		Message:        payload.Message,
		Response:       payload.Response,
		Metadata:       datatypes.JSON(metadata),
		CreatedAt:      time.Now(),
	}
	if err := uow.EscalationAlertRepository().Create(ctx, alert); err != nil {
		log.Printf("[ERROR] Failed to persist escalation alert: %v", err)
		msg.Nack() // Nack for retriable errors
		return
	}

	// Email is best effort: support still sees the alert in the console.
	if cs.emailService != nil && cs.alertRecipient != "" {
		err := cs.emailService.SendEscalationAlert(
			cs.alertRecipient,
			payload.ConversationID,
			payload.AgentType,
			payload.Confidence,
			payload.Message,
			payload.Response,
		)
		if err == nil {
			if err := uow.EscalationAlertRepository().MarkNotified(ctx, alert.Id); err != nil {
				log.Printf("[WARN] Failed to mark alert %d notified: %v", alert.Id, err)
			}
		}
	}

	if cs.eventPublisher != nil {
		err := cs.eventPublisher.Publish(ctx, events.NewBaseEvent(EscalationTopicName, map[string]interface{}{
			"conversation_id": payload.ConversationID,
			"agent_type":      payload.AgentType,
			"confidence":      payload.Confidence,
		}))
		if err != nil {
			log.Printf("[WARN] Failed to publish escalation event to NATS: %v", err)
		}
	}

	log.Printf("[SUCCESS] Escalation processed for conversation %s", payload.ConversationID)
	msg.Ack()
}
