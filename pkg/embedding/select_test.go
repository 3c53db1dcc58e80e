package embedding

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeProvider struct {
	vec []float32
	err error
}

func (f *fakeProvider) Generate(text string, taskType string) (*EmbeddingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &EmbeddingResponse{Embedding: EmbeddingResponseEmbedding{Values: f.vec}}, nil
}

func TestSelectPicksFirstHealthyCandidate(t *testing.T) {
	broken := &fakeProvider{err: errors.New("connection refused")}
	healthy := &fakeProvider{vec: []float32{0.1, 0.2}}

	name, provider := Select([]Candidate{
		{Name: "openai", Provider: broken},
		{Name: "minimax", Provider: healthy},
		{Name: "ollama", Provider: &fakeProvider{vec: []float32{0.3}}},
	})

	assert.Equal(t, "minimax", name)
	assert.Equal(t, healthy, provider)
}

func TestSelectAllCandidatesFail(t *testing.T) {
	name, provider := Select([]Candidate{
		{Name: "openai", Provider: &fakeProvider{err: errors.New("401")}},
		{Name: "ollama", Provider: &fakeProvider{vec: nil}},
	})

	assert.Empty(t, name)
	assert.Nil(t, provider)
}

func TestSelectSkipsNilProviders(t *testing.T) {
	healthy := &fakeProvider{vec: []float32{1}}

	name, provider := Select([]Candidate{
		{Name: "openai", Provider: nil},
		{Name: "ollama", Provider: healthy},
	})

	assert.Equal(t, "ollama", name)
	assert.NotNil(t, provider)
}

func TestProbeRejectsEmptyEmbedding(t *testing.T) {
	err := Probe(&fakeProvider{vec: []float32{}})
	assert.Error(t, err)
}

func TestNormalizeVector(t *testing.T) {
	normalized := normalizeVector([]float32{3, 4})
	assert.InDelta(t, 0.6, normalized[0], 1e-6)
	assert.InDelta(t, 0.8, normalized[1], 1e-6)

	// Zero vector stays untouched
	zero := normalizeVector([]float32{0, 0})
	assert.Equal(t, []float32{0, 0}, zero)
}
