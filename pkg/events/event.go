package events

import "time"

// Event is the contract every cross-service event satisfies. Consumers
// only ever see the type code and the flattened payload.
type Event interface {
	// EventType returns the event code, e.g. "ESCALATION_ALERT".
	EventType() string

	// Payload returns the event data as a flat map, ready for JSON.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation used for all events in this
// system. Domain packages fill Type and Data; OccurredAt is stamped at
// construction.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

// NewBaseEvent stamps the occurrence time so callers cannot forget it.
func NewBaseEvent(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
