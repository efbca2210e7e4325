package progression

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steezy/steezy/internal/catalog"
	"github.com/steezy/steezy/internal/progress"
)

func sampleHistory() []progress.UserTrickProgress {
	completed := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	return []progress.UserTrickProgress{
		{TrickID: "1", UserID: "user1", ComfortLevel: progress.Mastered, Attempts: 15, CompletedAt: &completed},
		{TrickID: "2", UserID: "user1", ComfortLevel: progress.Comfortable, Attempts: 8},
		{TrickID: "3", UserID: "user1", ComfortLevel: progress.Trying, Attempts: 3},
		{TrickID: "4", UserID: "user1", ComfortLevel: progress.Learning, Attempts: 1},
	}
}

func TestProfile(t *testing.T) {
	e := Default()
	p := e.Profile(sampleHistory(), []string{"user2", "user3"}, []int{1200, 30})

	assert.Equal(t, 50, p.Points)
	assert.Equal(t, 1, p.Level.Number)
	require.NotNil(t, p.NextLevel)
	assert.Equal(t, 2, p.NextLevel.Number)
	assert.InDelta(t, 0.1, p.Progress, 1e-9)
	assert.Equal(t, 450, p.PointsRemaining)
	assert.Equal(t, 2, p.Rank)
	assert.Equal(t, 1, p.Mastered)
	assert.Equal(t, 3, p.Active)
	assert.Equal(t, 27, p.Attempts)
	assert.Equal(t, Achievements{FirstTrick: true}, p.Achievements)
	require.NotNil(t, p.Next)
	assert.Equal(t, "5", p.Next.ID)
}

func TestProfile_MaxLevel(t *testing.T) {
	e := Default()
	var all []string
	for _, tr := range e.OrderedCatalog() {
		all = append(all, tr.ID)
	}

	p := e.Profile(mastered(all...), nil, nil)

	assert.Equal(t, 1955, p.Points)
	assert.Equal(t, 4, p.Level.Number)
	assert.Nil(t, p.Next, "everything mastered leaves nothing to recommend")
	assert.Equal(t, 1, p.Rank)
}

func TestProfile_TopLevel(t *testing.T) {
	c, err := catalog.New([]catalog.Trick{
		{ID: "a", Name: "A", Difficulty: 1, Risk: 1, Category: catalog.CategoryJumps, SteezPoints: 600},
	}, []catalog.Level{
		{Number: 1, Name: "One", RequiredPoints: 0},
		{Number: 2, Name: "Two", RequiredPoints: 500},
	})
	require.NoError(t, err)

	p := New(c).Profile(mastered("a"), nil, nil)
	assert.Equal(t, 2, p.Level.Number)
	assert.Nil(t, p.NextLevel)
	assert.Equal(t, 1.0, p.Progress)
	assert.Equal(t, 0, p.PointsRemaining)
}

func TestStateOf(t *testing.T) {
	records := sampleHistory()
	tests := []struct {
		id   string
		want TrickState
	}{
		{"1", StateMastered},
		{"2", StateInProgress},
		{"3", StateLocked}, // Frontside 180 not mastered yet
		{"5", StateAvailable},
		{"11", StateLocked},
	}
	for _, tt := range tests {
		tr, ok := catalog.Lookup(tt.id)
		require.True(t, ok)
		assert.Equal(t, tt.want, StateOf(tr, records), "StateOf(%s)", tt.id)
	}
}

func TestTrickState_Display(t *testing.T) {
	assert.Equal(t, "Locked", StateLocked.Label())
	assert.Equal(t, "Mastered", StateMastered.Label())
	assert.Equal(t, "Unknown", TrickState(99).Label())
	assert.Equal(t, "?", TrickState(99).Icon())
}

func TestEngine_ConcurrentUse(t *testing.T) {
	e := Default()
	records := sampleHistory()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := e.Profile(records, nil, []int{10, 20})
			if p.Points != 50 {
				t.Errorf("Points = %d, want 50", p.Points)
			}
		}()
	}
	wg.Wait()
}
