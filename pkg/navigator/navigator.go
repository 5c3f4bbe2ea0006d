// Package navigator moves between the datasets of a chart. The states are values:
// every operation returns the next state and never modifies its input.
package navigator

import (
	"errors"
	"fmt"
)

var ErrNoDatasets = errors.New("no datasets to navigate")

type Action string

const (
	ActionNone Action = ""
	ActionNext Action = "next"
	ActionPrev Action = "prev"
)

func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionNone, ActionNext, ActionPrev:
		return a, nil
	}

	return ActionNone, fmt.Errorf("unknown navigation action %q", s)
}

// State is the position in an ordered list of dataset keys.
type State struct {
	Datasets []string `json:"datasets"`
	Index    int      `json:"index"`
}

func NewState(datasets []string) State {
	return State{Datasets: datasets}
}

func (s State) Len() int {
	return len(s.Datasets)
}

// Current returns the key of the current dataset.
func (s State) Current() (string, error) {
	if len(s.Datasets) == 0 {
		return "", ErrNoDatasets
	}

	return s.Datasets[wrap(s.Index, len(s.Datasets))], nil
}

// Next moves to the next dataset, wrapping from the last one to the first one.
func Next(s State) State {
	return move(s, 1)
}

// Prev moves to the previous dataset, wrapping from the first one to the last one.
func Prev(s State) State {
	return move(s, -1)
}

// Apply applies the action, ActionNone keeps the state.
func Apply(s State, action Action) State {
	switch action {
	case ActionNext:
		return Next(s)
	case ActionPrev:
		return Prev(s)
	}

	return s
}

func move(s State, delta int) State {
	if len(s.Datasets) == 0 {
		return State{}
	}

	return State{
		Datasets: s.Datasets,
		Index:    wrap(s.Index+delta, len(s.Datasets)),
	}
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// WeekState navigates week numbers, week numbers start from 1.
type WeekState struct {
	Week int `json:"week"`
}

// NextWeek is not bounded, the data source decides whether the week exists.
func NextWeek(s WeekState) WeekState {
	return WeekState{Week: s.Week + 1}
}

// PrevWeek stops at week 1.
func PrevWeek(s WeekState) WeekState {
	if s.Week-1 < 1 {
		return WeekState{Week: 1}
	}

	return WeekState{Week: s.Week - 1}
}

func ApplyWeek(s WeekState, action Action) WeekState {
	switch action {
	case ActionNext:
		return NextWeek(s)
	case ActionPrev:
		return PrevWeek(s)
	}

	return s
}
