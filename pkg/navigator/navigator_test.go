package navigator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigation(t *testing.T) {
	files := []string{"NQ-2023-M8.csv", "NQ-2023-M10.csv", "NQ-2024-M1.csv"}

	tests := []struct {
		name    string
		state   State
		actions []Action
		want    string
	}{
		{
			name:  "initial",
			state: NewState(files),
			want:  "NQ-2023-M8.csv",
		},
		{
			name:    "next",
			state:   NewState(files),
			actions: []Action{ActionNext},
			want:    "NQ-2023-M10.csv",
		},
		{
			name:    "next wraps to the first",
			state:   State{Datasets: files, Index: 2},
			actions: []Action{ActionNext},
			want:    "NQ-2023-M8.csv",
		},
		{
			name:    "prev wraps to the last",
			state:   NewState(files),
			actions: []Action{ActionPrev},
			want:    "NQ-2024-M1.csv",
		},
		{
			name:    "no trigger keeps the dataset",
			state:   State{Datasets: files, Index: 1},
			actions: []Action{ActionNone, ActionNone},
			want:    "NQ-2023-M10.csv",
		},
		{
			name:    "round trip",
			state:   NewState(files),
			actions: []Action{ActionNext, ActionNext, ActionNext, ActionNext, ActionPrev},
			want:    "NQ-2023-M8.csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := tt.state
			for _, a := range tt.actions {
				state = Apply(state, a)
			}

			current, err := state.Current()
			require.NoError(t, err)
			assert.Equal(t, tt.want, current)
		})
	}
}

func TestNext_DoesNotModifyState(t *testing.T) {
	state := NewState([]string{"a", "b"})
	next := Next(state)
	assert.Equal(t, 0, state.Index)
	assert.Equal(t, 1, next.Index)

	single := NewState([]string{"a"})
	assert.Equal(t, 0, Next(single).Index)
	assert.Equal(t, 0, Prev(single).Index)
}

func TestEmptyState(t *testing.T) {
	state := NewState(nil)
	_, err := state.Current()
	assert.ErrorIs(t, err, ErrNoDatasets)

	_, err = Next(state).Current()
	assert.ErrorIs(t, err, ErrNoDatasets)
	_, err = Prev(state).Current()
	assert.ErrorIs(t, err, ErrNoDatasets)
}

func TestWeekState(t *testing.T) {
	assert.Equal(t, WeekState{Week: 2}, NextWeek(WeekState{Week: 1}))
	assert.Equal(t, WeekState{Week: 1}, PrevWeek(WeekState{Week: 1}))
	assert.Equal(t, WeekState{Week: 1}, PrevWeek(WeekState{Week: 0}))
	assert.Equal(t, WeekState{Week: 52}, PrevWeek(WeekState{Week: 53}))
	assert.Equal(t, WeekState{Week: 54}, ApplyWeek(WeekState{Week: 53}, ActionNext))
	assert.Equal(t, WeekState{Week: 53}, ApplyWeek(WeekState{Week: 53}, ActionNone))
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("next")
	require.NoError(t, err)
	assert.Equal(t, ActionNext, a)

	_, err = ParseAction("jump")
	assert.Error(t, err)
}
