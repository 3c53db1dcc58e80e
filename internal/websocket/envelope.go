package websocket

import "encoding/json"

// Envelope is the wire frame for every websocket message, both directions.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

const (
	TypeChat         = "chat"
	TypeChatResponse = "chat_response"
	TypeEscalation   = "escalation"
	TypeTransaction  = "transaction"
	TypeError        = "error"
)

func NewEnvelope(msgType string, data interface{}) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Type: msgType, Data: raw})
}

// ErrorFrame builds an error envelope; marshalling a plain string map
// cannot fail, so the result is always usable.
func ErrorFrame(message string) []byte {
	frame, _ := NewEnvelope(TypeError, map[string]string{"message": message})
	return frame
}
