package websocket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelopeRoundTrip(t *testing.T) {
	frame, err := NewEnvelope(TypeChatResponse, map[string]string{"response": "您好"})
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(frame, &env))
	assert.Equal(t, TypeChatResponse, env.Type)

	var data map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "您好", data["response"])
}

func TestMalformedFrameDoesNotParse(t *testing.T) {
	var env Envelope
	err := json.Unmarshal([]byte("not json at all"), &env)
	assert.Error(t, err)
}

func TestErrorFrameAlwaysUsable(t *testing.T) {
	frame := ErrorFrame("invalid message format")
	require.NotNil(t, frame)

	var env Envelope
	require.NoError(t, json.Unmarshal(frame, &env))
	assert.Equal(t, TypeError, env.Type)

	var data map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "invalid message format", data["message"])
}
