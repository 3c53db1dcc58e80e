package memory

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCreatesStateLazily(t *testing.T) {
	repo := NewConversationStateRepository()

	_, found := repo.Get("conv_1")
	assert.False(t, found)

	repo.Apply("conv_1", "account", false)

	state, found := repo.Get("conv_1")
	require.True(t, found)
	assert.Equal(t, "account", state.CurrentAgent)
	assert.Equal(t, 1, state.TurnCount)
	assert.False(t, state.NeedsEscalation)
}

func TestTurnCountIsMonotonic(t *testing.T) {
	repo := NewConversationStateRepository()

	for i := 0; i < 5; i++ {
		repo.Apply("conv_1", "loan", false)
	}

	state, _ := repo.Get("conv_1")
	assert.Equal(t, 5, state.TurnCount)
}

func TestEscalationFlagIsSticky(t *testing.T) {
	repo := NewConversationStateRepository()

	newly := repo.Apply("conv_1", "general", true)
	assert.True(t, newly)

	// High-confidence follow-ups never clear the flag.
	newly = repo.Apply("conv_1", "general", false)
	assert.False(t, newly)

	state, _ := repo.Get("conv_1")
	assert.True(t, state.NeedsEscalation)

	// A second low-confidence turn is not "newly" escalated.
	newly = repo.Apply("conv_1", "general", true)
	assert.False(t, newly)
}

func TestStateSurvivesLongIdlePeriods(t *testing.T) {
	repo := NewConversationStateRepository()

	newly := repo.Apply("conv_1", "general", true)
	require.True(t, newly)
	repo.Apply("conv_1", "general", false)

	// Backdate the last update well past any session timeout. The state
	// must still be there: an evicted entry would reset the turn count
	// and re-arm the flag, firing a duplicate escalation alert.
	state, found := repo.Get("conv_1")
	require.True(t, found)
	state.UpdatedAt = time.Now().Add(-24 * time.Hour)

	newly = repo.Apply("conv_1", "general", true)
	assert.False(t, newly)

	state, found = repo.Get("conv_1")
	require.True(t, found)
	assert.Equal(t, 3, state.TurnCount)
	assert.True(t, state.NeedsEscalation)
}

func TestCountTracksDistinctConversations(t *testing.T) {
	repo := NewConversationStateRepository()

	repo.Apply("conv_1", "general", false)
	repo.Apply("conv_2", "account", false)
	repo.Apply("conv_1", "account", false)

	assert.Equal(t, 2, repo.Count())
}

func TestConcurrentAppliesDoNotLoseTurns(t *testing.T) {
	repo := NewConversationStateRepository()

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			repo.Apply("conv_1", "transfer", false)
		}()
	}
	wg.Wait()

	state, _ := repo.Get("conv_1")
	assert.Equal(t, workers, state.TurnCount)
}
